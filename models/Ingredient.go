package models

import "gorm.io/gorm"

// Ingredient is a tenant-scoped masterlist entry costed by weight.
//
// PricePerGram is derived from Quantity and PurchaseAmount (or from the
// count-based attributes) and is never entered directly. For count-based
// ingredients Quantity always equals PiecesPerPurchaseUnit * WeightPerPiece,
// the total grams bought.
type Ingredient struct {
	gorm.Model
	OwnerID        uint    `gorm:"not null;index" json:"owner_id"`
	Owner          *User   `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Name           string  `gorm:"not null;index" json:"name"`
	Category       string  `json:"category"`
	Quantity       float64 `gorm:"not null" json:"quantity"`
	Unit           string  `gorm:"not null" json:"unit"`
	PurchaseAmount float64 `gorm:"not null" json:"purchase_amount"`
	PricePerGram   float64 `gorm:"type:decimal(12,4);not null" json:"price_per_gram"`

	SupplierID *uint     `json:"supplier_id,omitempty"`
	Supplier   *Supplier `gorm:"foreignKey:SupplierID;constraint:OnDelete:SET NULL" json:"supplier,omitempty"`

	IsCountBased          bool    `gorm:"not null;default:false" json:"is_count_based"`
	PurchaseUnit          string  `json:"purchase_unit"`
	PiecesPerPurchaseUnit float64 `json:"pieces_per_purchase_unit"`
	WeightPerPiece        float64 `json:"weight_per_piece"`
}
