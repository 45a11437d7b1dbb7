package planner

import (
	"time"

	"github.com/google/uuid"

	"github.com/linymin/nutriplan-365/internal/catalog"
	"github.com/linymin/nutriplan-365/internal/nutrition"
)

// Generator produces 7-day plans from a meal composer.
type Generator struct {
	composer *Composer
}

// NewGenerator builds a Generator.
func NewGenerator(composer *Composer) *Generator {
	return &Generator{composer: composer}
}

// GeneratePlan composes breakfast, lunch and dinner for 7 days. Dishes used
// earlier the same day are excluded from later meals of that day; the
// exclusion resets between days, so repeats across days are allowed. The
// input selection is stored as the plan's snapshot unchanged.
func (g *Generator) GeneratePlan(mode nutrition.Mode, selection []catalog.Ingredient, weekStart time.Time) *WeeklyPlan {
	availableIDs := make([]string, len(selection))
	for i, ing := range selection {
		availableIDs[i] = ing.ID
	}

	plan := &WeeklyPlan{
		ID:              uuid.NewString(),
		WeekStart:       weekStart,
		Mode:            mode,
		Days:            make([]DailyPlan, 0, 7),
		IngredientsUsed: selection,
	}

	for dayIdx := 0; dayIdx < 7; dayIdx++ {
		used := make(map[string]bool)

		breakfast := g.composer.ComposeMeal(mode, catalog.SlotBreakfast, availableIDs, used)
		markUsed(used, breakfast)
		lunch := g.composer.ComposeMeal(mode, catalog.SlotLunch, availableIDs, used)
		markUsed(used, lunch)
		dinner := g.composer.ComposeMeal(mode, catalog.SlotDinner, availableIDs, used)

		day := DailyPlan{
			DateIndex: dayIdx,
			DayName:   dayNames[dayIdx],
			Breakfast: breakfast,
			Lunch:     lunch,
			Dinner:    dinner,
		}
		day.TotalNutrition = breakfast.TotalNutrition.
			Add(lunch.TotalNutrition).
			Add(dinner.TotalNutrition)

		plan.Days = append(plan.Days, day)
		plan.TotalNutrition = plan.TotalNutrition.Add(day.TotalNutrition)
	}

	return plan
}

func markUsed(used map[string]bool, m Meal) {
	for _, d := range m.Dishes {
		used[d.ID] = true
	}
}
