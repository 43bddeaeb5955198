package pantry

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"cocina/internal/costing"
	"cocina/models"
)

var (
	// ErrDuplicateName signals that the tenant already has an item with the
	// candidate name. Interactive forms block on it; bulk imports skip instead.
	ErrDuplicateName = errors.New("pantry: an item with this name already exists")
	// ErrEmptyName signals a blank item name.
	ErrEmptyName = errors.New("pantry: name must not be empty")
)

// IngredientInput is the parse-and-validate boundary for ingredient writes.
// Handlers decode request payloads into it; the price per gram is always
// derived here, never taken from the caller.
type IngredientInput struct {
	Name                  string  `json:"name"`
	Category              string  `json:"category"`
	Quantity              float64 `json:"quantity"`
	Unit                  string  `json:"unit"`
	PurchaseAmount        float64 `json:"purchase_amount"`
	SupplierID            *uint   `json:"supplier_id"`
	IsCountBased          bool    `json:"is_count_based"`
	PurchaseUnit          string  `json:"purchase_unit"`
	PiecesPerPurchaseUnit float64 `json:"pieces_per_purchase_unit"`
	WeightPerPiece        float64 `json:"weight_per_piece"`
}

// CreateIngredient validates the input, derives the canonical cost, guards
// against duplicate names and stores the ingredient for the tenant.
func CreateIngredient(ctx context.Context, db *gorm.DB, ownerID uint, input IngredientInput) (*models.Ingredient, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrEmptyName
	}

	if existing, err := IngredientByName(ctx, db, ownerID, name); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, ErrDuplicateName
	}

	cost, err := costing.ComputeIngredientCost(costingInput(input))
	if err != nil {
		return nil, err
	}

	ingredient := &models.Ingredient{
		OwnerID:               ownerID,
		Name:                  name,
		Category:              strings.TrimSpace(input.Category),
		Quantity:              cost.CanonicalQuantityGrams,
		Unit:                  strings.TrimSpace(input.Unit),
		PurchaseAmount:        input.PurchaseAmount,
		PricePerGram:          cost.PricePerGram,
		SupplierID:            input.SupplierID,
		IsCountBased:          input.IsCountBased,
		PurchaseUnit:          strings.TrimSpace(input.PurchaseUnit),
		PiecesPerPurchaseUnit: input.PiecesPerPurchaseUnit,
		WeightPerPiece:        input.WeightPerPiece,
	}

	if err := db.WithContext(ctx).Create(ingredient).Error; err != nil {
		return nil, err
	}
	return ingredient, nil
}

// UpdateIngredient rewrites a tenant's ingredient from the input, re-deriving
// the canonical cost. The duplicate check excludes the record itself.
func UpdateIngredient(ctx context.Context, db *gorm.DB, ownerID, id uint, input IngredientInput) (*models.Ingredient, error) {
	ingredient := &models.Ingredient{}
	if err := db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		First(ingredient, id).Error; err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrEmptyName
	}

	if existing, err := IngredientByName(ctx, db, ownerID, name); err != nil {
		return nil, err
	} else if existing != nil && existing.ID != ingredient.ID {
		return nil, ErrDuplicateName
	}

	cost, err := costing.ComputeIngredientCost(costingInput(input))
	if err != nil {
		return nil, err
	}

	updates := map[string]any{
		"name":                     name,
		"category":                 strings.TrimSpace(input.Category),
		"quantity":                 cost.CanonicalQuantityGrams,
		"unit":                     strings.TrimSpace(input.Unit),
		"purchase_amount":          input.PurchaseAmount,
		"price_per_gram":           cost.PricePerGram,
		"supplier_id":              input.SupplierID,
		"is_count_based":           input.IsCountBased,
		"purchase_unit":            strings.TrimSpace(input.PurchaseUnit),
		"pieces_per_purchase_unit": input.PiecesPerPurchaseUnit,
		"weight_per_piece":         input.WeightPerPiece,
	}

	if err := db.WithContext(ctx).Model(ingredient).Updates(updates).Error; err != nil {
		return nil, err
	}

	if err := db.WithContext(ctx).First(ingredient, ingredient.ID).Error; err != nil {
		return nil, err
	}
	return ingredient, nil
}

// DeleteIngredient removes a tenant's ingredient together with any recipe
// lines that reference it; a recipe line is meaningless without its
// ingredient.
func DeleteIngredient(ctx context.Context, db *gorm.DB, ownerID, id uint) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ingredient := &models.Ingredient{}
		if err := tx.Where("owner_id = ?", ownerID).First(ingredient, id).Error; err != nil {
			return err
		}
		if err := tx.Where("ingredient_id = ?", ingredient.ID).
			Delete(&models.RecipeIngredient{}).Error; err != nil {
			return err
		}
		return tx.Delete(ingredient).Error
	})
}

// ListIngredients returns the tenant's ingredients ordered by name with
// supplier details preloaded.
func ListIngredients(ctx context.Context, db *gorm.DB, ownerID uint) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	err := db.WithContext(ctx).
		Preload("Supplier").
		Where("owner_id = ?", ownerID).
		Order("name asc").
		Find(&ingredients).Error
	return ingredients, err
}

func costingInput(input IngredientInput) costing.IngredientInput {
	return costing.IngredientInput{
		Quantity:              input.Quantity,
		PurchaseAmount:        input.PurchaseAmount,
		IsCountBased:          input.IsCountBased,
		PiecesPerPurchaseUnit: input.PiecesPerPurchaseUnit,
		WeightPerPiece:        input.WeightPerPiece,
	}
}
