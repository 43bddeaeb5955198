package models

import (
	"time"

	"gorm.io/gorm"
)

// Order records a realized sale of a recipe for historical analytics. Cost is
// snapshotted from the recipe's aggregated cost at creation time so later
// masterlist price changes do not rewrite history.
type Order struct {
	gorm.Model
	OwnerID   uint      `gorm:"not null;index" json:"owner_id"`
	Owner     *User     `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	RecipeID  uint      `gorm:"not null;index" json:"recipe_id"`
	Recipe    *Recipe   `gorm:"foreignKey:RecipeID" json:"recipe,omitempty"`
	Quantity  float64   `gorm:"not null" json:"quantity"`
	Revenue   float64   `gorm:"not null" json:"revenue"`
	Cost      float64   `gorm:"not null" json:"cost"`
	OrderedAt time.Time `gorm:"not null" json:"ordered_at"`
	Notes     string    `gorm:"type:text" json:"notes"`
}
