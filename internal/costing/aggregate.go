package costing

// Line is one costed row of a recipe: a canonical unit cost (per gram for
// ingredients, per unit for materials) and the quantity consumed per batch.
type Line struct {
	UnitCost float64
	Quantity float64
}

// Summary is the aggregated cost of one recipe batch.
type Summary struct {
	IngredientsCost float64 `json:"ingredients_cost"`
	MaterialsCost   float64 `json:"materials_cost"`
	LaborCost       float64 `json:"labor_cost"`
	TotalCost       float64 `json:"total_cost"`
	CostPerUnit     float64 `json:"cost_per_unit"`
}

// Aggregate sums ingredient, material and labor costs into a batch total and a
// per-unit cost. Lines with non-finite cost or quantity contribute zero rather
// than failing the whole aggregation, which keeps live cost previews usable
// while a recipe is only partially entered. A batch yield of zero or less is
// treated as one to avoid dividing by zero.
func Aggregate(ingredients, materials []Line, laborCost, batchYield float64) Summary {
	summary := Summary{
		IngredientsCost: sumLines(ingredients),
		MaterialsCost:   sumLines(materials),
	}

	if isFinite(laborCost) {
		summary.LaborCost = laborCost
	}
	summary.TotalCost = summary.IngredientsCost + summary.MaterialsCost + summary.LaborCost

	yield := batchYield
	if !isFinite(yield) || yield < 1 {
		yield = 1
	}
	summary.CostPerUnit = summary.TotalCost / yield

	return summary
}

func sumLines(lines []Line) float64 {
	total := 0.0
	for _, line := range lines {
		if !isFinite(line.UnitCost) || !isFinite(line.Quantity) {
			continue
		}
		total += line.UnitCost * line.Quantity
	}
	return total
}
