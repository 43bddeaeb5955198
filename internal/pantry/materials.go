package pantry

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"cocina/internal/costing"
	"cocina/models"
)

// MaterialInput is the parse-and-validate boundary for material writes.
// Materials keep their native purchase unit; only the unit price is validated.
type MaterialInput struct {
	Name           string  `json:"name"`
	Category       string  `json:"category"`
	Quantity       float64 `json:"quantity"`
	Unit           string  `json:"unit"`
	PricePerUnit   float64 `json:"price_per_unit"`
	PurchaseAmount float64 `json:"purchase_amount"`
	SupplierID     *uint   `json:"supplier_id"`
	Notes          string  `json:"notes"`
}

// CreateMaterial validates the input, guards against duplicate names and
// stores the material for the tenant.
func CreateMaterial(ctx context.Context, db *gorm.DB, ownerID uint, input MaterialInput) (*models.Material, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrEmptyName
	}

	if existing, err := MaterialByName(ctx, db, ownerID, name); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, ErrDuplicateName
	}

	pricePerUnit, err := costing.ComputeMaterialCost(input.PricePerUnit)
	if err != nil {
		return nil, err
	}

	material := &models.Material{
		OwnerID:        ownerID,
		Name:           name,
		Category:       strings.TrimSpace(input.Category),
		Quantity:       input.Quantity,
		Unit:           strings.TrimSpace(input.Unit),
		PricePerUnit:   pricePerUnit,
		PurchaseAmount: input.PurchaseAmount,
		SupplierID:     input.SupplierID,
		Notes:          input.Notes,
	}

	if err := db.WithContext(ctx).Create(material).Error; err != nil {
		return nil, err
	}
	return material, nil
}

// UpdateMaterial rewrites a tenant's material from the input. The duplicate
// check excludes the record itself.
func UpdateMaterial(ctx context.Context, db *gorm.DB, ownerID, id uint, input MaterialInput) (*models.Material, error) {
	material := &models.Material{}
	if err := db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		First(material, id).Error; err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrEmptyName
	}

	if existing, err := MaterialByName(ctx, db, ownerID, name); err != nil {
		return nil, err
	} else if existing != nil && existing.ID != material.ID {
		return nil, ErrDuplicateName
	}

	pricePerUnit, err := costing.ComputeMaterialCost(input.PricePerUnit)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{
		"name":            name,
		"category":        strings.TrimSpace(input.Category),
		"quantity":        input.Quantity,
		"unit":            strings.TrimSpace(input.Unit),
		"price_per_unit":  pricePerUnit,
		"purchase_amount": input.PurchaseAmount,
		"supplier_id":     input.SupplierID,
		"notes":           input.Notes,
	}

	if err := db.WithContext(ctx).Model(material).Updates(updates).Error; err != nil {
		return nil, err
	}

	if err := db.WithContext(ctx).First(material, material.ID).Error; err != nil {
		return nil, err
	}
	return material, nil
}

// DeleteMaterial removes a tenant's material together with any recipe lines
// referencing it.
func DeleteMaterial(ctx context.Context, db *gorm.DB, ownerID, id uint) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		material := &models.Material{}
		if err := tx.Where("owner_id = ?", ownerID).First(material, id).Error; err != nil {
			return err
		}
		if err := tx.Where("material_id = ?", material.ID).
			Delete(&models.RecipeMaterial{}).Error; err != nil {
			return err
		}
		return tx.Delete(material).Error
	})
}

// ListMaterials returns the tenant's materials ordered by name with supplier
// details preloaded.
func ListMaterials(ctx context.Context, db *gorm.DB, ownerID uint) ([]models.Material, error) {
	var materials []models.Material
	err := db.WithContext(ctx).
		Preload("Supplier").
		Where("owner_id = ?", ownerID).
		Order("name asc").
		Find(&materials).Error
	return materials, err
}
