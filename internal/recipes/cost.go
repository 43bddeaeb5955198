package recipes

import (
	"errors"

	"cocina/internal/costing"
	"cocina/internal/pricing"
	"cocina/models"
)

var (
	// ErrEmptyName signals a blank recipe name.
	ErrEmptyName = errors.New("recipes: name must not be empty")
	// ErrAccessDenied signals the viewer may not see the requested shared
	// recipe. The HTTP layer reports it as not found so restricted recipes do
	// not leak their existence.
	ErrAccessDenied = errors.New("recipes: access denied")
)

// CostReport combines the aggregated batch cost with price guidance derived
// from the recipe's targets.
type CostReport struct {
	costing.Summary
	SuggestedPriceByMargin   float64 `json:"suggested_price_by_margin"`
	SuggestedPriceByFoodCost float64 `json:"suggested_price_by_food_cost"`
	FoodCostAtMarginPrice    float64 `json:"food_cost_at_margin_price"`
	MarginAtMarginPrice      float64 `json:"margin_at_margin_price"`
}

// Cost aggregates a loaded recipe's lines and derives price suggestions. Lines
// whose masterlist entry cannot be resolved contribute nothing; a recipe being
// edited must still produce a usable cost preview. The recipe's associations
// must already be preloaded (as Get does).
func Cost(recipe *models.Recipe) CostReport {
	ingredientLines := make([]costing.Line, 0, len(recipe.Ingredients))
	for _, line := range recipe.Ingredients {
		if line.Ingredient == nil {
			continue
		}
		ingredientLines = append(ingredientLines, costing.Line{
			UnitCost: line.Ingredient.PricePerGram,
			Quantity: line.Quantity,
		})
	}

	materialLines := make([]costing.Line, 0, len(recipe.Materials))
	for _, line := range recipe.Materials {
		if line.Material == nil {
			continue
		}
		materialLines = append(materialLines, costing.Line{
			UnitCost: line.Material.PricePerUnit,
			Quantity: line.Quantity,
		})
	}

	summary := costing.Aggregate(ingredientLines, materialLines, recipe.LaborCost, recipe.BatchYield)

	marginPrice := pricing.SuggestedPriceByMargin(summary.TotalCost, recipe.TargetMarginPercent)

	return CostReport{
		Summary:                  summary,
		SuggestedPriceByMargin:   marginPrice,
		SuggestedPriceByFoodCost: pricing.SuggestedPriceByFoodCost(summary.TotalCost, recipe.TargetFoodCostPercent),
		FoodCostAtMarginPrice:    pricing.ActualFoodCostPercent(summary.TotalCost, marginPrice),
		MarginAtMarginPrice:      pricing.ActualMarginPercent(summary.TotalCost, marginPrice),
	}
}
