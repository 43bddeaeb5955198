// Package pricing turns an aggregated recipe cost into price guidance: forward
// suggestions from a target margin or food-cost percentage, and the reverse
// calculations for a price the user actually charges. All functions are pure.
//
// Invalid percentages yield a zero price instead of an error so a live cost
// panel never crashes on a transiently out-of-range field.
package pricing

import "math"

// SuggestedPriceByMargin returns the price that achieves marginPercent of
// profit on totalCost. Margins outside [0, 100) yield zero.
func SuggestedPriceByMargin(totalCost, marginPercent float64) float64 {
	if !validCost(totalCost) || !isFinite(marginPercent) {
		return 0
	}
	if marginPercent < 0 || marginPercent >= 100 {
		return 0
	}
	return totalCost / (1 - marginPercent/100)
}

// SuggestedPriceByFoodCost returns the price at which totalCost represents
// foodCostPercent of revenue. Percentages outside (0, 100) yield zero.
func SuggestedPriceByFoodCost(totalCost, foodCostPercent float64) float64 {
	if !validCost(totalCost) || !isFinite(foodCostPercent) {
		return 0
	}
	if foodCostPercent <= 0 || foodCostPercent >= 100 {
		return 0
	}
	return totalCost / (foodCostPercent / 100)
}

// ActualFoodCostPercent returns the share of price consumed by totalCost, or
// zero when price is not positive.
func ActualFoodCostPercent(totalCost, price float64) float64 {
	if !validCost(totalCost) || !isFinite(price) || price <= 0 {
		return 0
	}
	return totalCost / price * 100
}

// ActualMarginPercent returns the profit share of price over totalCost, or
// zero when price is not positive.
func ActualMarginPercent(totalCost, price float64) float64 {
	if !validCost(totalCost) || !isFinite(price) || price <= 0 {
		return 0
	}
	return (price - totalCost) / price * 100
}

func validCost(totalCost float64) bool {
	return isFinite(totalCost) && totalCost >= 0
}

func isFinite(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0)
}
