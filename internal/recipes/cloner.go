package recipes

import (
	"context"

	"gorm.io/gorm"

	"cocina/internal/pantry"
	"cocina/models"
)

// Clone deep-copies a recipe into the target tenant. Masterlist entries are
// resolved by the duplicate-matching rule: an ingredient or material the
// target already maintains under the same name is reused, keeping the
// target's own pricing; anything else is copied into the tenant with its
// supplier reference dropped, since suppliers are not portable across
// tenants. Sharing flags are reset so the clone starts as a private recipe.
//
// Callers are expected to have already checked access; Clone itself only
// distinguishes a missing source (gorm.ErrRecordNotFound). The whole copy
// runs in one transaction so a failed clone leaves no partial recipe behind.
func Clone(ctx context.Context, db *gorm.DB, sourceRecipeID, targetUserID uint) (*models.Recipe, error) {
	var cloneID uint
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		source := &models.Recipe{}
		if err := tx.
			Preload("Ingredients", func(q *gorm.DB) *gorm.DB {
				return q.Order("position asc, id asc")
			}).
			Preload("Ingredients.Ingredient").
			Preload("Materials").
			Preload("Materials.Material").
			First(source, sourceRecipeID).Error; err != nil {
			return err
		}

		clone := &models.Recipe{
			OwnerID:               targetUserID,
			Name:                  source.Name,
			Description:           source.Description,
			Category:              source.Category,
			Servings:              source.Servings,
			BatchYield:            source.BatchYield,
			TargetMarginPercent:   source.TargetMarginPercent,
			TargetFoodCostPercent: source.TargetFoodCostPercent,
			LaborCost:             source.LaborCost,
			IsFreeRecipe:          false,
			IsVisible:             true,
			AccessType:            models.AccessTypeAll,
			AllowedPlans:          "",
			AllowedUserEmails:     "",
		}
		if err := tx.Create(clone).Error; err != nil {
			return err
		}
		cloneID = clone.ID

		for _, line := range source.Ingredients {
			if line.Ingredient == nil {
				continue
			}
			ingredient, err := resolveIngredient(ctx, tx, targetUserID, line.Ingredient)
			if err != nil {
				return err
			}
			row := models.RecipeIngredient{
				RecipeID:     clone.ID,
				IngredientID: ingredient.ID,
				Quantity:     line.Quantity,
				Unit:         line.Unit,
				GroupLabel:   line.GroupLabel,
				Position:     line.Position,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}

		for _, line := range source.Materials {
			if line.Material == nil {
				continue
			}
			material, err := resolveMaterial(ctx, tx, targetUserID, line.Material)
			if err != nil {
				return err
			}
			row := models.RecipeMaterial{
				RecipeID:   clone.ID,
				MaterialID: material.ID,
				Quantity:   line.Quantity,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return Get(ctx, db, targetUserID, cloneID)
}

func resolveIngredient(ctx context.Context, tx *gorm.DB, targetUserID uint, source *models.Ingredient) (*models.Ingredient, error) {
	existing, err := pantry.IngredientByName(ctx, tx, targetUserID, source.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	copied := &models.Ingredient{
		OwnerID:               targetUserID,
		Name:                  source.Name,
		Category:              source.Category,
		Quantity:              source.Quantity,
		Unit:                  source.Unit,
		PurchaseAmount:        source.PurchaseAmount,
		PricePerGram:          source.PricePerGram,
		SupplierID:            nil,
		IsCountBased:          source.IsCountBased,
		PurchaseUnit:          source.PurchaseUnit,
		PiecesPerPurchaseUnit: source.PiecesPerPurchaseUnit,
		WeightPerPiece:        source.WeightPerPiece,
	}
	if err := tx.Create(copied).Error; err != nil {
		return nil, err
	}
	return copied, nil
}

func resolveMaterial(ctx context.Context, tx *gorm.DB, targetUserID uint, source *models.Material) (*models.Material, error) {
	existing, err := pantry.MaterialByName(ctx, tx, targetUserID, source.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	copied := &models.Material{
		OwnerID:        targetUserID,
		Name:           source.Name,
		Category:       source.Category,
		Quantity:       source.Quantity,
		Unit:           source.Unit,
		PricePerUnit:   source.PricePerUnit,
		PurchaseAmount: source.PurchaseAmount,
		Notes:          source.Notes,
		SupplierID:     nil,
	}
	if err := tx.Create(copied).Error; err != nil {
		return nil, err
	}
	return copied, nil
}
