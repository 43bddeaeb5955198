// Package pantry manages the tenant-scoped masterlists: ingredients,
// materials and suppliers, together with the advisory duplicate-name guard
// the entry forms and bulk imports both rely on.
package pantry

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"cocina/models"
)

// NamesEqual is the single matching rule for duplicate detection: both sides
// are trimmed and compared case-insensitively.
func NamesEqual(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// FindDuplicateIngredient returns the first ingredient whose name matches the
// candidate, ignoring the record identified by excludeID so an edit form does
// not collide with itself. The check is advisory; callers decide whether a
// match blocks the operation.
func FindDuplicateIngredient(candidate string, items []models.Ingredient, excludeID uint) *models.Ingredient {
	for i := range items {
		if items[i].ID == excludeID {
			continue
		}
		if NamesEqual(candidate, items[i].Name) {
			return &items[i]
		}
	}
	return nil
}

// FindDuplicateMaterial mirrors FindDuplicateIngredient for materials.
func FindDuplicateMaterial(candidate string, items []models.Material, excludeID uint) *models.Material {
	for i := range items {
		if items[i].ID == excludeID {
			continue
		}
		if NamesEqual(candidate, items[i].Name) {
			return &items[i]
		}
	}
	return nil
}

// FindDuplicateSupplier mirrors FindDuplicateIngredient for suppliers.
func FindDuplicateSupplier(candidate string, items []models.Supplier, excludeID uint) *models.Supplier {
	for i := range items {
		if items[i].ID == excludeID {
			continue
		}
		if NamesEqual(candidate, items[i].Name) {
			return &items[i]
		}
	}
	return nil
}

// IngredientByName looks up a tenant's ingredient by the duplicate-matching
// rule. A nil result with nil error means no match.
func IngredientByName(ctx context.Context, db *gorm.DB, ownerID uint, name string) (*models.Ingredient, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	ingredient := &models.Ingredient{}
	err := db.WithContext(ctx).
		Where("owner_id = ? AND lower(trim(name)) = ?", ownerID, normalized).
		First(ingredient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return ingredient, nil
}

// MaterialByName mirrors IngredientByName for materials.
func MaterialByName(ctx context.Context, db *gorm.DB, ownerID uint, name string) (*models.Material, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	material := &models.Material{}
	err := db.WithContext(ctx).
		Where("owner_id = ? AND lower(trim(name)) = ?", ownerID, normalized).
		First(material).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return material, nil
}

// SupplierByName mirrors IngredientByName for suppliers.
func SupplierByName(ctx context.Context, db *gorm.DB, ownerID uint, name string) (*models.Supplier, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	supplier := &models.Supplier{}
	err := db.WithContext(ctx).
		Where("owner_id = ? AND lower(trim(name)) = ?", ownerID, normalized).
		First(supplier).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return supplier, nil
}
