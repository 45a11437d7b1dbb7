package analysis

import (
	"strings"
	"testing"
	"time"

	"github.com/linymin/nutriplan-365/internal/catalog"
	"github.com/linymin/nutriplan-365/internal/nutrition"
	"github.com/linymin/nutriplan-365/internal/planner"
)

// balancedWeek is a plan whose daily averages sit inside every macro band:
// protein 30%, carbs 50%, fat 20% of calories.
func balancedWeek(adoptedDays int) *planner.WeeklyPlan {
	days := make([]planner.DailyPlan, 7)
	names := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	for i := range days {
		days[i] = planner.DailyPlan{DateIndex: i, DayName: names[i], Adopted: i < adoptedDays}
	}
	return &planner.WeeklyPlan{
		ID:        "balanced",
		WeekStart: time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		Mode:      nutrition.ModeGeneral,
		Days:      days,
		TotalNutrition: nutrition.Info{
			Calories: 14000,
			Protein:  1050, // 4200 kcal, 30%
			Carbs:    1750, // 7000 kcal, 50%
			Fat:      311,  // 2800 kcal, 20%
			Fiber:    63,
		},
		IngredientsUsed: []catalog.Ingredient{
			{ID: "a", Category: catalog.CategoryMeat},
			{ID: "b", Category: catalog.CategoryVegetable},
			{ID: "c", Category: catalog.CategoryStaple},
			{ID: "d", Category: catalog.CategoryLegume},
			{ID: "e", Category: catalog.CategoryEggDairy},
			{ID: "f", Category: catalog.CategoryFruit},
			{ID: "g", Category: catalog.CategorySeafood},
			{ID: "h", Category: catalog.CategorySeasoning},
		},
	}
}

func TestAnalyzeAdoptionRate(t *testing.T) {
	cases := []struct {
		adopted int
		want    int
	}{
		{0, 0},
		{3, 43},
		{5, 71},
		{7, 100},
	}
	for _, c := range cases {
		a := Analyze(balancedWeek(c.adopted), nil)
		if a.AdoptionRate != c.want {
			t.Errorf("Adopted %d days: expected rate %d, got %d", c.adopted, c.want, a.AdoptionRate)
		}
	}
}

func TestAnalyzeVarietyScore(t *testing.T) {
	plan := balancedWeek(7)
	a := Analyze(plan, nil)
	if a.VarietyScore != 100 {
		t.Errorf("Expected 100 for all 8 categories, got %d", a.VarietyScore)
	}

	plan.IngredientsUsed = plan.IngredientsUsed[:4]
	a = Analyze(plan, nil)
	if a.VarietyScore != 50 {
		t.Errorf("Expected 50 for 4 of 8 categories, got %d", a.VarietyScore)
	}

	plan.IngredientsUsed = nil
	a = Analyze(plan, nil)
	if a.VarietyScore != 0 {
		t.Errorf("Expected 0 for no ingredients, got %d", a.VarietyScore)
	}
}

func TestAnalyzeBalanceScore(t *testing.T) {
	t.Run("AllBandsHit", func(t *testing.T) {
		a := Analyze(balancedWeek(7), nil)
		if a.BalanceScore != 100 {
			t.Errorf("Expected balance 100, got %d", a.BalanceScore)
		}
	})

	t.Run("ProteinBelowBand", func(t *testing.T) {
		plan := balancedWeek(7)
		// Protein 10%, carbs 60%, fat 30%: protein misses, carbs and fat hit.
		plan.TotalNutrition = nutrition.Info{
			Calories: 14000,
			Protein:  350,  // 1400 kcal
			Carbs:    2100, // 8400 kcal
			Fat:      467,  // 4200 kcal
		}
		a := Analyze(plan, nil)
		if a.BalanceScore != 83 {
			t.Errorf("Expected balance 83 (one band missed), got %d", a.BalanceScore)
		}
	})

	t.Run("EmptyPlan", func(t *testing.T) {
		plan := balancedWeek(7)
		plan.TotalNutrition = nutrition.Info{}
		a := Analyze(plan, nil)
		if a.BalanceScore != 0 {
			t.Errorf("Expected balance 0 for empty nutrition, got %d", a.BalanceScore)
		}
	})
}

func TestAnalyzeTrends(t *testing.T) {
	plan := balancedWeek(7)

	t.Run("NoPreviousWeek", func(t *testing.T) {
		a := Analyze(plan, nil)
		if a.ProteinTrend != TrendStable || a.CarbsTrend != TrendStable || a.FatTrend != TrendStable {
			t.Errorf("Expected all-stable trends without history, got %s/%s/%s", a.ProteinTrend, a.CarbsTrend, a.FatTrend)
		}
	})

	t.Run("AgainstPreviousWeek", func(t *testing.T) {
		previous := &nutrition.Info{
			Protein: 700,  // daily 100 vs current 150: increasing
			Carbs:   1750, // unchanged: stable
			Fat:     3500, // daily 500 vs current 44: decreasing
		}
		a := Analyze(plan, previous)
		if a.ProteinTrend != TrendIncreasing {
			t.Errorf("Expected protein increasing, got %s", a.ProteinTrend)
		}
		if a.CarbsTrend != TrendStable {
			t.Errorf("Expected carbs stable, got %s", a.CarbsTrend)
		}
		if a.FatTrend != TrendDecreasing {
			t.Errorf("Expected fat decreasing, got %s", a.FatTrend)
		}
	})

	t.Run("WithinFivePercentIsStable", func(t *testing.T) {
		previous := &plan.TotalNutrition
		a := Analyze(plan, previous)
		if a.ProteinTrend != TrendStable {
			t.Errorf("Expected identical weeks to trend stable, got %s", a.ProteinTrend)
		}
	})
}

func TestAnalyzeRecommendations(t *testing.T) {
	t.Run("AllGood", func(t *testing.T) {
		a := Analyze(balancedWeek(7), nil)
		if len(a.Recommendations) != 1 {
			t.Fatalf("Expected single affirmation, got %v", a.Recommendations)
		}
		if !strings.Contains(a.Recommendations[0], "well-balanced") {
			t.Errorf("Expected affirmation text, got '%s'", a.Recommendations[0])
		}
	})

	t.Run("LowAdoptionFirst", func(t *testing.T) {
		plan := balancedWeek(2)
		plan.IngredientsUsed = plan.IngredientsUsed[:3]
		a := Analyze(plan, nil)
		if len(a.Recommendations) < 2 {
			t.Fatalf("Expected multiple suggestions, got %v", a.Recommendations)
		}
		if !strings.Contains(a.Recommendations[0], "Adoption") {
			t.Errorf("Expected adoption suggestion first, got '%s'", a.Recommendations[0])
		}
		if !strings.Contains(a.Recommendations[1], "variety") {
			t.Errorf("Expected variety suggestion second, got '%s'", a.Recommendations[1])
		}
	})
}

func TestBuildRecord(t *testing.T) {
	ingredients := catalog.NewIngredientCatalog()
	dishes := catalog.NewDishCatalog(ingredients)

	var dish catalog.Dish
	for _, d := range dishes.All() {
		if d.ID == "boiled-eggs" {
			dish = d
			break
		}
	}

	plan := balancedWeek(0)
	meal := planner.Meal{Slot: catalog.SlotBreakfast, Dishes: []catalog.Dish{dish}}
	for i := range plan.Days {
		plan.Days[i].Breakfast = meal
	}
	// 3 of 7 days adopted.
	for i := 0; i < 3; i++ {
		plan.Days[i].Adopted = true
	}

	rec := BuildRecord(plan, dishes)

	if rec.AdoptedDays != 3 {
		t.Errorf("Expected 3 adopted days, got %d", rec.AdoptedDays)
	}
	if rec.AdoptionRate != 43 {
		t.Errorf("Expected adoption rate 43, got %d", rec.AdoptionRate)
	}
	if len(rec.Recommendations) == 0 {
		t.Fatal("Expected persisted recommendations")
	}
	if !strings.Contains(rec.Recommendations[0], "Adoption") {
		t.Errorf("Expected low-adoption suggestion first, got '%s'", rec.Recommendations[0])
	}
	if !rec.WeekStart.Equal(plan.WeekStart) {
		t.Errorf("Expected week start %v, got %v", plan.WeekStart, rec.WeekStart)
	}
	if rec.PlannedNutrition != plan.TotalNutrition {
		t.Errorf("Expected planned nutrition to equal plan totals")
	}
	// 14000 * 3/7 = 6000
	if rec.ActualNutrition.Calories != 6000 {
		t.Errorf("Expected actual calories 6000, got %v", rec.ActualNutrition.Calories)
	}

	if len(rec.CategoryBreakdown) != 1 {
		t.Fatalf("Expected one category in breakdown, got %d", len(rec.CategoryBreakdown))
	}
	eggs := rec.CategoryBreakdown[0]
	if eggs.Category != catalog.CategoryEggDairy {
		t.Errorf("Expected egg_dairy category, got %s", eggs.Category)
	}
	// 100g per day over 7 days planned; 3/7 adopted.
	if eggs.Planned != 700 {
		t.Errorf("Expected planned 700g, got %v", eggs.Planned)
	}
	if eggs.Actual != 300 {
		t.Errorf("Expected actual 300g, got %v", eggs.Actual)
	}
}
