// Package export renders plans, grocery lists and analyses as Markdown text
// for the CLI and the Telegram bot.
package export

import (
	"fmt"
	"strings"

	"github.com/linymin/nutriplan-365/internal/analysis"
	"github.com/linymin/nutriplan-365/internal/catalog"
	"github.com/linymin/nutriplan-365/internal/grocery"
	"github.com/linymin/nutriplan-365/internal/nutrition"
	"github.com/linymin/nutriplan-365/internal/planner"
)

var modeLabels = map[nutrition.Mode]string{
	nutrition.ModeMuscle:  "Muscle Gain",
	nutrition.ModeFatLoss: "Fat Loss",
	nutrition.ModeGeneral: "General Health",
}

// ModeLabel returns the display name of a mode.
func ModeLabel(m nutrition.Mode) string {
	if label, ok := modeLabels[m]; ok {
		return label
	}
	return string(m)
}

// FormatWeeklyPlan renders a generated plan day by day.
func FormatWeeklyPlan(plan *planner.WeeklyPlan) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📅 *Weekly Meal Plan* — %s\n", ModeLabel(plan.Mode)))
	sb.WriteString(fmt.Sprintf("Week of %s\n\n", plan.WeekStart.Format("2006-01-02")))

	for _, day := range plan.Days {
		adopted := ""
		if day.Adopted {
			adopted = " ✅"
		}
		sb.WriteString(fmt.Sprintf("*%s*%s\n", day.DayName, adopted))
		for _, meal := range day.Meals() {
			sb.WriteString(fmt.Sprintf("  _%s_: ", mealSlotLabel(meal.Slot)))
			if len(meal.Dishes) == 0 {
				sb.WriteString("(nothing planned)\n")
				continue
			}
			names := make([]string, 0, len(meal.Dishes))
			for _, d := range meal.Dishes {
				names = append(names, d.Name)
			}
			sb.WriteString(strings.Join(names, ", "))
			sb.WriteString(fmt.Sprintf(" (%.0f kcal)\n", meal.TotalNutrition.Calories))
		}
		sb.WriteString(fmt.Sprintf("  Total: %.0f kcal | P %.0fg | C %.0fg | F %.0fg\n\n",
			day.TotalNutrition.Calories, day.TotalNutrition.Protein,
			day.TotalNutrition.Carbs, day.TotalNutrition.Fat))
	}

	sb.WriteString(fmt.Sprintf("*Week total*: %.0f kcal | P %.0fg | C %.0fg | F %.0fg | Fiber %.0fg\n",
		plan.TotalNutrition.Calories, plan.TotalNutrition.Protein,
		plan.TotalNutrition.Carbs, plan.TotalNutrition.Fat, plan.TotalNutrition.Fiber))
	return sb.String()
}

func mealSlotLabel(s catalog.MealSlot) string {
	switch s {
	case catalog.SlotBreakfast:
		return "Breakfast"
	case catalog.SlotLunch:
		return "Lunch"
	case catalog.SlotDinner:
		return "Dinner"
	}
	return string(s)
}

// FormatGroceryList renders shopping items grouped by category.
func FormatGroceryList(items []grocery.Item) string {
	var sb strings.Builder
	sb.WriteString("🛒 *Grocery List*\n")

	var current catalog.Category
	for _, item := range items {
		if item.Ingredient.Category != current {
			current = item.Ingredient.Category
			sb.WriteString(fmt.Sprintf("\n%s *%s*\n", catalog.CategoryIcon(current), categoryLabel(current)))
		}
		sb.WriteString(fmt.Sprintf("• %s %s: %s\n",
			item.Ingredient.DisplayIcon(), item.Ingredient.Name,
			formatAmount(item.Amount, item.Ingredient.Unit)))
	}
	return sb.String()
}

var categoryLabels = map[catalog.Category]string{
	catalog.CategoryMeat:      "Meat",
	catalog.CategoryVegetable: "Vegetables",
	catalog.CategoryStaple:    "Staples",
	catalog.CategoryLegume:    "Legumes",
	catalog.CategoryEggDairy:  "Eggs & Dairy",
	catalog.CategoryFruit:     "Fruit",
	catalog.CategorySeafood:   "Seafood",
	catalog.CategorySeasoning: "Seasonings",
}

func categoryLabel(c catalog.Category) string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

func formatAmount(amount float64, unit catalog.Unit) string {
	switch unit {
	case catalog.UnitPiece:
		return fmt.Sprintf("%.0f pcs", amount)
	case catalog.UnitMilliliter:
		return fmt.Sprintf("%.0f ml", amount)
	default:
		return fmt.Sprintf("%.0f g", amount)
	}
}

// FormatAnalysis renders the weekly adherence report.
func FormatAnalysis(a analysis.Analysis) string {
	var sb strings.Builder
	sb.WriteString("📊 *Weekly Diet Analysis*\n\n")
	sb.WriteString(fmt.Sprintf("• Adoption rate: %d%%\n", a.AdoptionRate))
	sb.WriteString(fmt.Sprintf("• Variety score: %d/100\n", a.VarietyScore))
	sb.WriteString(fmt.Sprintf("• Balance score: %d/100\n", a.BalanceScore))
	sb.WriteString(fmt.Sprintf("• Daily average: %.0f kcal | P %.0fg | C %.0fg | F %.0fg\n\n",
		a.DailyAverage.Calories, a.DailyAverage.Protein, a.DailyAverage.Carbs, a.DailyAverage.Fat))

	sb.WriteString("*Trends*\n")
	sb.WriteString(fmt.Sprintf("• Protein: %s\n", trendLabel(a.ProteinTrend)))
	sb.WriteString(fmt.Sprintf("• Carbs: %s\n", trendLabel(a.CarbsTrend)))
	sb.WriteString(fmt.Sprintf("• Fat: %s\n\n", trendLabel(a.FatTrend)))

	sb.WriteString("*Suggestions*\n")
	for _, r := range a.Recommendations {
		sb.WriteString(fmt.Sprintf("• %s\n", r))
	}
	return sb.String()
}

func trendLabel(t analysis.Trend) string {
	switch t {
	case analysis.TrendIncreasing:
		return "📈 increasing"
	case analysis.TrendDecreasing:
		return "📉 decreasing"
	default:
		return "➡️ stable"
	}
}

// FormatTargets renders a user's computed nutrition targets.
func FormatTargets(t nutrition.Target, bmr, tdee int) string {
	proteinG, carbsG, fatG := t.GramTargets()

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🎯 *Nutrition Targets* — %s\n\n", ModeLabel(t.Mode)))
	sb.WriteString(fmt.Sprintf("• BMR: %d kcal\n", bmr))
	sb.WriteString(fmt.Sprintf("• TDEE: %d kcal\n", tdee))
	sb.WriteString(fmt.Sprintf("• Daily calories: %d–%d kcal\n", t.CaloriesMin, t.CaloriesMax))
	sb.WriteString(fmt.Sprintf("• Protein: %dg (%.0f%%)\n", proteinG, t.ProteinRatio*100))
	sb.WriteString(fmt.Sprintf("• Carbs: %dg (%.0f%%)\n", carbsG, t.CarbsRatio*100))
	sb.WriteString(fmt.Sprintf("• Fat: %dg (%.0f%%)\n", fatG, t.FatRatio*100))
	return sb.String()
}
