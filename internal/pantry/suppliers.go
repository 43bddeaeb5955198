package pantry

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"cocina/models"
)

// SupplierInput is the parse-and-validate boundary for supplier writes.
type SupplierInput struct {
	Name        string `json:"name"`
	ContactName string `json:"contact_name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Notes       string `json:"notes"`
}

// CreateSupplier validates the input, guards against duplicate names and
// stores the supplier for the tenant.
func CreateSupplier(ctx context.Context, db *gorm.DB, ownerID uint, input SupplierInput) (*models.Supplier, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrEmptyName
	}

	if existing, err := SupplierByName(ctx, db, ownerID, name); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, ErrDuplicateName
	}

	supplier := &models.Supplier{
		OwnerID:     ownerID,
		Name:        name,
		ContactName: strings.TrimSpace(input.ContactName),
		Phone:       strings.TrimSpace(input.Phone),
		Email:       strings.TrimSpace(input.Email),
		Notes:       input.Notes,
	}

	if err := db.WithContext(ctx).Create(supplier).Error; err != nil {
		return nil, err
	}
	return supplier, nil
}

// UpdateSupplier rewrites a tenant's supplier from the input.
func UpdateSupplier(ctx context.Context, db *gorm.DB, ownerID, id uint, input SupplierInput) (*models.Supplier, error) {
	supplier := &models.Supplier{}
	if err := db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		First(supplier, id).Error; err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrEmptyName
	}

	if existing, err := SupplierByName(ctx, db, ownerID, name); err != nil {
		return nil, err
	} else if existing != nil && existing.ID != supplier.ID {
		return nil, ErrDuplicateName
	}

	updates := map[string]any{
		"name":         name,
		"contact_name": strings.TrimSpace(input.ContactName),
		"phone":        strings.TrimSpace(input.Phone),
		"email":        strings.TrimSpace(input.Email),
		"notes":        input.Notes,
	}

	if err := db.WithContext(ctx).Model(supplier).Updates(updates).Error; err != nil {
		return nil, err
	}

	if err := db.WithContext(ctx).First(supplier, supplier.ID).Error; err != nil {
		return nil, err
	}
	return supplier, nil
}

// DeleteSupplier removes a tenant's supplier. Ingredient and material rows
// referencing it keep existing with their supplier cleared; the reference is
// weak and never cascades into the masterlist.
func DeleteSupplier(ctx context.Context, db *gorm.DB, ownerID, id uint) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		supplier := &models.Supplier{}
		if err := tx.Where("owner_id = ?", ownerID).First(supplier, id).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Ingredient{}).
			Where("supplier_id = ?", supplier.ID).
			Update("supplier_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Material{}).
			Where("supplier_id = ?", supplier.ID).
			Update("supplier_id", nil).Error; err != nil {
			return err
		}

		return tx.Delete(supplier).Error
	})
}

// ListSuppliers returns the tenant's suppliers ordered by name.
func ListSuppliers(ctx context.Context, db *gorm.DB, ownerID uint) ([]models.Supplier, error) {
	var suppliers []models.Supplier
	err := db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("name asc").
		Find(&suppliers).Error
	return suppliers, err
}
