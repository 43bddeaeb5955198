package models

import (
	"strings"

	"gorm.io/gorm"
)

// Access types controlling who may view a free (shared) recipe. The
// AccessType field is only consulted when IsFreeRecipe is true.
const (
	AccessTypeAdmin         = "admin"
	AccessTypeAll           = "all"
	AccessTypeByPlan        = "by-plan"
	AccessTypeSelectedUsers = "selected-users"
)

// DefaultAccessType is applied when a recipe carries no recognised access type.
const DefaultAccessType = AccessTypeAll

// Recipe is a tenant-scoped recipe with costing targets and optional
// free-recipe sharing flags.
type Recipe struct {
	gorm.Model
	OwnerID     uint   `gorm:"not null;index" json:"owner_id"`
	Owner       *User  `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Name        string `gorm:"not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Category    string `json:"category"`

	Servings              int     `json:"servings"`
	BatchYield            float64 `json:"batch_yield"`
	TargetMarginPercent   float64 `json:"target_margin_percent"`
	TargetFoodCostPercent float64 `json:"target_food_cost_percent"`
	LaborCost             float64 `json:"labor_cost"`

	IsFreeRecipe      bool   `gorm:"not null;default:false" json:"is_free_recipe"`
	IsVisible         bool   `gorm:"not null;default:true" json:"is_visible"`
	AccessType        string `gorm:"type:varchar(32);default:all" json:"access_type"`
	AllowedPlans      string `gorm:"type:text" json:"allowed_plans"`
	AllowedUserEmails string `gorm:"type:text" json:"allowed_user_emails"`

	Ingredients []RecipeIngredient `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"ingredients"`
	Materials   []RecipeMaterial   `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"materials"`
}

// ValidAccessType reports whether the value is one of the recognised access types.
func ValidAccessType(value string) bool {
	switch value {
	case AccessTypeAdmin, AccessTypeAll, AccessTypeByPlan, AccessTypeSelectedUsers:
		return true
	default:
		return false
	}
}

// NormalizeAccessType trims the value and falls back to DefaultAccessType when
// it is not recognised.
func NormalizeAccessType(value string) string {
	trimmed := strings.ToLower(strings.TrimSpace(value))
	if ValidAccessType(trimmed) {
		return trimmed
	}
	return DefaultAccessType
}
