package analysis

import (
	"math"
	"time"

	"github.com/linymin/nutriplan-365/internal/catalog"
	"github.com/linymin/nutriplan-365/internal/nutrition"
	"github.com/linymin/nutriplan-365/internal/planner"
)

// CategoryAmount is the planned versus actual grams consumed for one
// ingredient category over a week.
type CategoryAmount struct {
	Category catalog.Category `json:"category"`
	Planned  float64          `json:"planned"`
	Actual   float64          `json:"actual"`
}

// WeeklyDietRecord is the durable per-week intake summary an analysis runs
// over. Actual figures are prorated from the planned ones by the share of
// days the user adopted.
type WeeklyDietRecord struct {
	WeekStart         time.Time        `json:"week_start"`
	Mode              nutrition.Mode   `json:"mode"`
	AdoptedDays       int              `json:"adopted_days"`
	AdoptionRate      int              `json:"adoption_rate"`
	PlannedNutrition  nutrition.Info   `json:"planned_nutrition"`
	ActualNutrition   nutrition.Info   `json:"actual_nutrition"`
	Recommendations   []string         `json:"recommendations"`
	CategoryBreakdown []CategoryAmount `json:"category_breakdown"`
}

// BuildRecord derives the weekly intake record from a plan and its current
// adoption state. The adoption rate and recommendation texts are persisted
// with the record so history queries reproduce them as they stood.
func BuildRecord(plan *planner.WeeklyPlan, dishes *catalog.DishCatalog) WeeklyDietRecord {
	adopted := plan.AdoptedDays()
	share := float64(adopted) / 7
	a := Analyze(plan, nil)

	rec := WeeklyDietRecord{
		WeekStart:        plan.WeekStart,
		Mode:             plan.Mode,
		AdoptedDays:      adopted,
		AdoptionRate:     a.AdoptionRate,
		Recommendations:  a.Recommendations,
		PlannedNutrition: plan.TotalNutrition,
		ActualNutrition: nutrition.Info{
			Calories: plan.TotalNutrition.Calories * share,
			Protein:  plan.TotalNutrition.Protein * share,
			Carbs:    plan.TotalNutrition.Carbs * share,
			Fat:      plan.TotalNutrition.Fat * share,
			Fiber:    plan.TotalNutrition.Fiber * share,
		}.Rounded(),
	}

	planned := make(map[catalog.Category]float64)
	ingredients := dishes.Ingredients()
	for _, day := range plan.Days {
		for _, meal := range day.Meals() {
			for _, dish := range meal.Dishes {
				for _, di := range dish.Ingredients {
					ing, ok := ingredients.ByID(di.IngredientID)
					if !ok {
						continue
					}
					planned[ing.Category] += di.Amount
				}
			}
		}
	}

	for _, cat := range catalog.Categories() {
		amount, ok := planned[cat]
		if !ok {
			continue
		}
		rec.CategoryBreakdown = append(rec.CategoryBreakdown, CategoryAmount{
			Category: cat,
			Planned:  math.Round(amount),
			Actual:   math.Round(amount * share),
		})
	}
	return rec
}
