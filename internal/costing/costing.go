// Package costing holds the pure cost calculations behind the masterlist and
// recipe surfaces: canonical per-gram ingredient costs, material pass-through
// costs, and the per-recipe aggregation. Everything here is side-effect free
// and safe for concurrent use.
package costing

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidQuantity signals a non-positive quantity or purchase amount on
	// a weight-based ingredient.
	ErrInvalidQuantity = errors.New("costing: quantity and purchase amount must be positive")
	// ErrInvalidCountBasedInput signals non-positive pieces, weight per piece,
	// or purchase amount on a count-based ingredient.
	ErrInvalidCountBasedInput = errors.New("costing: pieces, weight per piece and purchase amount must be positive")
	// ErrInvalidUnitPrice signals a negative material unit price.
	ErrInvalidUnitPrice = errors.New("costing: unit price must not be negative")
)

// IngredientInput carries the purchase data an ingredient cost is derived from.
// Quantity is ignored for count-based inputs; the count attributes are ignored
// for weight-based ones.
type IngredientInput struct {
	Quantity              float64
	PurchaseAmount        float64
	IsCountBased          bool
	PiecesPerPurchaseUnit float64
	WeightPerPiece        float64
}

// IngredientCost is the canonical costing result. CostPerPiece is only set for
// count-based inputs and exists for display; the stored cost basis is always
// PricePerGram.
type IngredientCost struct {
	PricePerGram           float64
	CanonicalQuantityGrams float64
	CostPerPiece           float64
}

// ComputeIngredientCost converts purchase data into a canonical cost per gram,
// rounded half-up to four decimal places.
//
// Quantities are divided directly into the purchase amount regardless of the
// declared unit ("ml" is treated as numerically equivalent to "g"). Whether
// that is an intentional simplification is a question for the domain owner;
// it is preserved here as found.
func ComputeIngredientCost(in IngredientInput) (IngredientCost, error) {
	if in.IsCountBased {
		if in.PiecesPerPurchaseUnit <= 0 || in.WeightPerPiece <= 0 || in.PurchaseAmount <= 0 {
			return IngredientCost{}, ErrInvalidCountBasedInput
		}
		totalGrams := in.PiecesPerPurchaseUnit * in.WeightPerPiece
		return IngredientCost{
			PricePerGram:           Round4(in.PurchaseAmount / totalGrams),
			CanonicalQuantityGrams: totalGrams,
			CostPerPiece:           Round4(in.PurchaseAmount / in.PiecesPerPurchaseUnit),
		}, nil
	}

	if in.Quantity <= 0 || in.PurchaseAmount <= 0 {
		return IngredientCost{}, ErrInvalidQuantity
	}
	return IngredientCost{
		PricePerGram:           Round4(in.PurchaseAmount / in.Quantity),
		CanonicalQuantityGrams: in.Quantity,
	}, nil
}

// ComputeMaterialCost validates and passes through a material's unit price.
// Materials stay in their native purchase unit, so no conversion applies.
func ComputeMaterialCost(pricePerUnit float64) (float64, error) {
	if pricePerUnit < 0 || !isFinite(pricePerUnit) {
		return 0, ErrInvalidUnitPrice
	}
	return pricePerUnit, nil
}

// Round4 rounds half-up to four decimal places.
func Round4(value float64) float64 {
	return decimal.NewFromFloat(value).Round(4).InexactFloat64()
}

func isFinite(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0)
}
