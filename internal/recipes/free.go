package recipes

import (
	"context"

	"gorm.io/gorm"

	"cocina/internal/access"
	"cocina/models"
)

// GetShared loads a recipe by id regardless of owner and applies the access
// policy for the viewer. A recipe the viewer may not see yields
// ErrAccessDenied; a missing one yields gorm.ErrRecordNotFound.
func GetShared(ctx context.Context, db *gorm.DB, id uint, viewer access.Viewer) (*models.Recipe, error) {
	recipe := &models.Recipe{}
	err := db.WithContext(ctx).
		Preload("Ingredients", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("position asc, id asc")
		}).
		Preload("Ingredients.Ingredient").
		Preload("Materials").
		Preload("Materials.Material").
		First(recipe, id).Error
	if err != nil {
		return nil, err
	}

	if !access.CanView(recipe, viewer) {
		return nil, ErrAccessDenied
	}
	return recipe, nil
}

// ListShared returns all free recipes the viewer may see. Each candidate is
// filtered through the same access.CanView decision that gates a single
// fetch, so the list can never diverge from per-recipe access.
func ListShared(ctx context.Context, db *gorm.DB, viewer access.Viewer) ([]models.Recipe, error) {
	var candidates []models.Recipe
	err := db.WithContext(ctx).
		Where("is_free_recipe = ?", true).
		Order("name asc").
		Find(&candidates).Error
	if err != nil {
		return nil, err
	}

	visible := make([]models.Recipe, 0, len(candidates))
	for i := range candidates {
		if access.CanView(&candidates[i], viewer) {
			visible = append(visible, candidates[i])
		}
	}
	return visible, nil
}
