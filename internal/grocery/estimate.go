package grocery

import (
	"math"

	"github.com/linymin/nutriplan-365/internal/catalog"
	"github.com/linymin/nutriplan-365/internal/nutrition"
	"github.com/linymin/nutriplan-365/internal/profile"
)

// categoryCalorieShare is the rough fraction of weekly calories each
// ingredient category contributes in a typical selection.
var categoryCalorieShare = map[catalog.Category]float64{
	catalog.CategoryMeat:      0.20,
	catalog.CategorySeafood:   0.10,
	catalog.CategoryVegetable: 0.08,
	catalog.CategoryStaple:    0.35,
	catalog.CategoryLegume:    0.08,
	catalog.CategoryEggDairy:  0.10,
	catalog.CategoryFruit:     0.06,
	catalog.CategorySeasoning: 0.03,
}

const defaultCalorieShare = 0.05

// EstimateWeeklyAmount estimates how much of one ingredient to buy for a
// week, from the user's weekly calorie target and the ingredient's category
// calorie share, adjusted for mode. Amounts are rounded to practical shop
// quantities per unit.
func EstimateWeeklyAmount(ing catalog.Ingredient, mode nutrition.Mode, p *profile.UserProfile, totalSelected int) (float64, catalog.Unit) {
	target := nutrition.TargetFor(mode, p)
	weeklyCalories := float64(target.CaloriesMin+target.CaloriesMax) / 2 * 7

	share, ok := categoryCalorieShare[ing.Category]
	if !ok {
		share = defaultCalorieShare
	}

	switch mode {
	case nutrition.ModeMuscle:
		switch ing.Category {
		case catalog.CategoryMeat, catalog.CategorySeafood, catalog.CategoryEggDairy, catalog.CategoryLegume:
			share *= 1.3
		case catalog.CategoryStaple:
			share *= 1.2
		}
	case nutrition.ModeFatLoss:
		switch ing.Category {
		case catalog.CategoryVegetable:
			share *= 1.5
		case catalog.CategoryStaple:
			share *= 0.7
		}
	}

	// Split the category's calories over the items the user likely selected
	// in it.
	itemsInCategory := math.Max(3, math.Ceil(float64(totalSelected)/8))
	caloriesForItem := weeklyCalories * share / itemsInCategory

	gramsNeeded := caloriesForItem / ing.CaloriesPer100g * 100

	switch ing.Unit {
	case catalog.UnitPiece:
		// Roughly 50g per piece (eggs). The floor only catches degenerate
		// input; positive estimates always ceil to at least 1.
		amount := math.Ceil(gramsNeeded / 50)
		if amount < 1 {
			amount = 7
		}
		return amount, ing.Unit
	case catalog.UnitMilliliter:
		amount := math.Round(gramsNeeded/100) * 100
		if amount < 500 {
			amount = 500
		}
		return amount, ing.Unit
	default:
		amount := math.Round(gramsNeeded/50) * 50
		if amount < 100 {
			amount = 100
		}
		if amount > 2000 {
			amount = 2000
		}
		return amount, ing.Unit
	}
}
