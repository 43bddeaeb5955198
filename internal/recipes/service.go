// Package recipes manages tenant-scoped recipes: building and updating them
// with their ingredient and material lines, costing them, sharing them as free
// recipes, cloning shared recipes across tenants, and the onboarding starter
// pack import.
package recipes

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"cocina/models"
)

// IngredientLineInput describes one ingredient row of a recipe write.
type IngredientLineInput struct {
	IngredientID uint    `json:"ingredient_id"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
	GroupLabel   string  `json:"group_label"`
	Position     int     `json:"position"`
}

// MaterialLineInput describes one material row of a recipe write.
type MaterialLineInput struct {
	MaterialID uint    `json:"material_id"`
	Quantity   float64 `json:"quantity"`
}

// Input is the parse-and-validate boundary for recipe writes. The association
// sets always arrive whole; updates replace the stored sets with them.
type Input struct {
	Name                  string  `json:"name"`
	Description           string  `json:"description"`
	Category              string  `json:"category"`
	Servings              int     `json:"servings"`
	BatchYield            float64 `json:"batch_yield"`
	TargetMarginPercent   float64 `json:"target_margin_percent"`
	TargetFoodCostPercent float64 `json:"target_food_cost_percent"`
	LaborCost             float64 `json:"labor_cost"`

	IsFreeRecipe      bool   `json:"is_free_recipe"`
	IsVisible         bool   `json:"is_visible"`
	AccessType        string `json:"access_type"`
	AllowedPlans      string `json:"allowed_plans"`
	AllowedUserEmails string `json:"allowed_user_emails"`

	Ingredients []IngredientLineInput `json:"ingredients"`
	Materials   []MaterialLineInput   `json:"materials"`
}

// Create stores a new recipe with its association sets in one transaction.
func Create(ctx context.Context, db *gorm.DB, ownerID uint, input Input) (*models.Recipe, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrEmptyName
	}

	var recipeID uint
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		recipe := &models.Recipe{
			OwnerID:               ownerID,
			Name:                  name,
			Description:           input.Description,
			Category:              strings.TrimSpace(input.Category),
			Servings:              input.Servings,
			BatchYield:            input.BatchYield,
			TargetMarginPercent:   input.TargetMarginPercent,
			TargetFoodCostPercent: input.TargetFoodCostPercent,
			LaborCost:             input.LaborCost,
			IsFreeRecipe:          input.IsFreeRecipe,
			IsVisible:             input.IsVisible,
			AccessType:            models.NormalizeAccessType(input.AccessType),
			AllowedPlans:          input.AllowedPlans,
			AllowedUserEmails:     input.AllowedUserEmails,
		}
		if err := tx.Create(recipe).Error; err != nil {
			return err
		}
		recipeID = recipe.ID
		return insertLines(tx, recipe.ID, input)
	})
	if err != nil {
		return nil, err
	}

	return Get(ctx, db, ownerID, recipeID)
}

// Update rewrites a tenant's recipe. The stored ingredient and material sets
// are replaced wholesale by the incoming ones inside a single transaction, so
// no partially rewritten association set is ever observable.
func Update(ctx context.Context, db *gorm.DB, ownerID, id uint, input Input) (*models.Recipe, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrEmptyName
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		recipe := &models.Recipe{}
		if err := tx.Where("owner_id = ?", ownerID).First(recipe, id).Error; err != nil {
			return err
		}

		updates := map[string]any{
			"name":                     name,
			"description":              input.Description,
			"category":                 strings.TrimSpace(input.Category),
			"servings":                 input.Servings,
			"batch_yield":              input.BatchYield,
			"target_margin_percent":    input.TargetMarginPercent,
			"target_food_cost_percent": input.TargetFoodCostPercent,
			"labor_cost":               input.LaborCost,
			"is_free_recipe":           input.IsFreeRecipe,
			"is_visible":               input.IsVisible,
			"access_type":              models.NormalizeAccessType(input.AccessType),
			"allowed_plans":            input.AllowedPlans,
			"allowed_user_emails":      input.AllowedUserEmails,
		}
		if err := tx.Model(recipe).Updates(updates).Error; err != nil {
			return err
		}

		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.RecipeMaterial{}).Error; err != nil {
			return err
		}

		return insertLines(tx, recipe.ID, input)
	})
	if err != nil {
		return nil, err
	}

	return Get(ctx, db, ownerID, id)
}

func insertLines(tx *gorm.DB, recipeID uint, input Input) error {
	for _, line := range input.Ingredients {
		row := models.RecipeIngredient{
			RecipeID:     recipeID,
			IngredientID: line.IngredientID,
			Quantity:     line.Quantity,
			Unit:         strings.TrimSpace(line.Unit),
			GroupLabel:   strings.TrimSpace(line.GroupLabel),
			Position:     line.Position,
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}
	for _, line := range input.Materials {
		row := models.RecipeMaterial{
			RecipeID:   recipeID,
			MaterialID: line.MaterialID,
			Quantity:   line.Quantity,
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

// Get loads a tenant's recipe with its lines in display order and the
// referenced masterlist entries preloaded.
func Get(ctx context.Context, db *gorm.DB, ownerID, id uint) (*models.Recipe, error) {
	recipe := &models.Recipe{}
	err := db.WithContext(ctx).
		Preload("Ingredients", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("position asc, id asc")
		}).
		Preload("Ingredients.Ingredient").
		Preload("Materials").
		Preload("Materials.Material").
		Where("owner_id = ?", ownerID).
		First(recipe, id).Error
	if err != nil {
		return nil, err
	}
	return recipe, nil
}

// List returns the tenant's recipes ordered by name, without lines.
func List(ctx context.Context, db *gorm.DB, ownerID uint) ([]models.Recipe, error) {
	var results []models.Recipe
	err := db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("name asc").
		Find(&results).Error
	return results, err
}

// Delete removes a tenant's recipe together with its association rows.
func Delete(ctx context.Context, db *gorm.DB, ownerID, id uint) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		recipe := &models.Recipe{}
		if err := tx.Where("owner_id = ?", ownerID).First(recipe, id).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.RecipeMaterial{}).Error; err != nil {
			return err
		}
		return tx.Delete(recipe).Error
	})
}
