package models

import "gorm.io/gorm"

// Supplier is a tenant-scoped vendor record. Ingredients and materials hold a
// weak reference to it: deleting a supplier nulls the reference, it never
// cascades into the masterlist.
type Supplier struct {
	gorm.Model
	OwnerID     uint   `gorm:"not null;index" json:"owner_id"`
	Owner       *User  `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Name        string `gorm:"not null" json:"name"`
	ContactName string `json:"contact_name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Notes       string `gorm:"type:text" json:"notes"`
}
