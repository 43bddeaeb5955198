package models

import "gorm.io/gorm"

// RecipeIngredient links a recipe to a masterlist ingredient with the amount
// used in one batch. Position defines the rendering order within the recipe
// and GroupLabel optionally collects lines into a named sub-group such as
// "Frosting". Deleting the recipe or the referenced ingredient removes the row.
type RecipeIngredient struct {
	gorm.Model
	RecipeID     uint    `gorm:"not null;index" json:"recipe_id"`
	IngredientID uint    `gorm:"not null;index" json:"ingredient_id"`
	Quantity     float64 `gorm:"not null" json:"quantity"`
	Unit         string  `json:"unit"`
	GroupLabel   string  `json:"group_label"`
	Position     int     `gorm:"not null;default:0" json:"position"`

	Ingredient *Ingredient `gorm:"foreignKey:IngredientID;constraint:OnDelete:CASCADE" json:"ingredient,omitempty"`
}
