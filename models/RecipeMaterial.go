package models

import "gorm.io/gorm"

// RecipeMaterial links a recipe to a packaging material with the quantity
// consumed per batch. Same cascade rules as RecipeIngredient.
type RecipeMaterial struct {
	gorm.Model
	RecipeID   uint    `gorm:"not null;index" json:"recipe_id"`
	MaterialID uint    `gorm:"not null;index" json:"material_id"`
	Quantity   float64 `gorm:"not null" json:"quantity"`

	Material *Material `gorm:"foreignKey:MaterialID;constraint:OnDelete:CASCADE" json:"material,omitempty"`
}
