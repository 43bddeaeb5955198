package models

import "gorm.io/gorm"

// Material is a tenant-scoped packaging or consumable entry tracked in its
// native purchase unit; no unit conversion is applied to materials.
type Material struct {
	gorm.Model
	OwnerID        uint    `gorm:"not null;index" json:"owner_id"`
	Owner          *User   `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Name           string  `gorm:"not null;index" json:"name"`
	Category       string  `json:"category"`
	Quantity       float64 `gorm:"not null" json:"quantity"`
	Unit           string  `gorm:"not null" json:"unit"`
	PricePerUnit   float64 `gorm:"type:decimal(12,4);not null" json:"price_per_unit"`
	PurchaseAmount float64 `gorm:"not null" json:"purchase_amount"`
	Notes          string  `gorm:"type:text" json:"notes"`

	SupplierID *uint     `json:"supplier_id,omitempty"`
	Supplier   *Supplier `gorm:"foreignKey:SupplierID;constraint:OnDelete:SET NULL" json:"supplier,omitempty"`
}
