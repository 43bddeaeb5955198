package recipes

import (
	"context"
	"time"

	"gorm.io/gorm"

	"cocina/models"
)

// OrderInput is the parse-and-validate boundary for recording a sale.
type OrderInput struct {
	RecipeID  uint       `json:"recipe_id"`
	Quantity  float64    `json:"quantity"`
	Revenue   float64    `json:"revenue"`
	OrderedAt *time.Time `json:"ordered_at"`
	Notes     string     `json:"notes"`
}

// RecordOrder stores a realized sale of one of the tenant's recipes,
// snapshotting the cost from the recipe's current aggregate so later price
// edits do not rewrite history.
func RecordOrder(ctx context.Context, db *gorm.DB, ownerID uint, input OrderInput) (*models.Order, error) {
	recipe, err := Get(ctx, db, ownerID, input.RecipeID)
	if err != nil {
		return nil, err
	}

	report := Cost(recipe)

	orderedAt := time.Now().UTC()
	if input.OrderedAt != nil {
		orderedAt = input.OrderedAt.UTC()
	}

	quantity := input.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	order := &models.Order{
		OwnerID:   ownerID,
		RecipeID:  recipe.ID,
		Quantity:  quantity,
		Revenue:   input.Revenue,
		Cost:      report.CostPerUnit * quantity,
		OrderedAt: orderedAt,
		Notes:     input.Notes,
	}

	if err := db.WithContext(ctx).Create(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

// ListOrders returns the tenant's orders, newest first.
func ListOrders(ctx context.Context, db *gorm.DB, ownerID uint) ([]models.Order, error) {
	var orders []models.Order
	err := db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("ordered_at desc, id desc").
		Find(&orders).Error
	return orders, err
}
