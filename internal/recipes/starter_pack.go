package recipes

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"cocina/internal/pantry"
	"cocina/models"
)

// ImportResult reports what a starter pack import actually did. Skips are an
// expected outcome, not a failure: the import is an onboarding convenience
// and partial success must be reported accurately.
type ImportResult struct {
	ImportedIngredients int `json:"imported_ingredients"`
	ImportedMaterials   int `json:"imported_materials"`
	SkippedDuplicates   int `json:"skipped_duplicates"`
}

// StarterPackTemplates holds the admin-curated entries offered to new
// tenants.
type StarterPackTemplates struct {
	Ingredients []models.Ingredient `json:"ingredients"`
	Materials   []models.Material   `json:"materials"`
}

// templateOwners selects the accounts whose masterlist rows act as starter
// pack templates. Only admin-owned rows are importable; everything else is a
// private tenant row regardless of the ID a caller supplies.
func templateOwners(tx *gorm.DB) *gorm.DB {
	return tx.Model(&models.User{}).Select("id").Where("lower(role) = ?", models.RoleAdmin)
}

// ListStarterPackTemplates returns the template ingredients and materials
// available for import, ordered by name.
func ListStarterPackTemplates(ctx context.Context, db *gorm.DB) (StarterPackTemplates, error) {
	templates := StarterPackTemplates{}
	tx := db.WithContext(ctx)

	if err := tx.
		Where("owner_id IN (?)", templateOwners(tx)).
		Order("name asc").
		Find(&templates.Ingredients).Error; err != nil {
		return StarterPackTemplates{}, err
	}

	if err := tx.
		Where("owner_id IN (?)", templateOwners(tx)).
		Order("name asc").
		Find(&templates.Materials).Error; err != nil {
		return StarterPackTemplates{}, err
	}

	return templates, nil
}

// ImportStarterPack copies the selected template ingredients and materials
// into the target tenant. IDs that do not name an admin-owned template row
// are ignored; items whose name the tenant already uses are skipped; copies
// drop identity and supplier references like a clone does. The user's
// starter-pack timestamp is set when processing completes. The whole import
// runs in one transaction so no partial rows survive a failure.
func ImportStarterPack(ctx context.Context, db *gorm.DB, targetUserID uint, ingredientIDs, materialIDs []uint) (ImportResult, error) {
	result := ImportResult{}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, id := range ingredientIDs {
			template := &models.Ingredient{}
			if err := tx.
				Where("owner_id IN (?)", templateOwners(tx)).
				First(template, id).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					continue
				}
				return err
			}

			existing, err := pantry.IngredientByName(ctx, tx, targetUserID, template.Name)
			if err != nil {
				return err
			}
			if existing != nil {
				result.SkippedDuplicates++
				continue
			}

			if _, err := resolveIngredient(ctx, tx, targetUserID, template); err != nil {
				return err
			}
			result.ImportedIngredients++
		}

		for _, id := range materialIDs {
			template := &models.Material{}
			if err := tx.
				Where("owner_id IN (?)", templateOwners(tx)).
				First(template, id).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					continue
				}
				return err
			}

			existing, err := pantry.MaterialByName(ctx, tx, targetUserID, template.Name)
			if err != nil {
				return err
			}
			if existing != nil {
				result.SkippedDuplicates++
				continue
			}

			if _, err := resolveMaterial(ctx, tx, targetUserID, template); err != nil {
				return err
			}
			result.ImportedMaterials++
		}

		now := time.Now().UTC()
		return tx.Model(&models.User{}).
			Where("id = ?", targetUserID).
			Update("starter_pack_imported_at", &now).Error
	})
	if err != nil {
		return ImportResult{}, err
	}

	return result, nil
}
