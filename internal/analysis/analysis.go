// Package analysis scores a completed weekly plan for adherence, variety
// and macro balance.
package analysis

import (
	"math"

	"github.com/linymin/nutriplan-365/internal/catalog"
	"github.com/linymin/nutriplan-365/internal/nutrition"
	"github.com/linymin/nutriplan-365/internal/planner"
)

// Trend classifies how a macro moved week over week.
type Trend string

const (
	TrendIncreasing Trend = "increasing"
	TrendStable     Trend = "stable"
	TrendDecreasing Trend = "decreasing"
)

// Acceptable calorie-ratio bands for the balance score.
const (
	proteinBandMin, proteinBandMax = 0.20, 0.40
	carbsBandMin, carbsBandMax     = 0.40, 0.60
	fatBandMin, fatBandMax         = 0.15, 0.35
)

const scoreThreshold = 70

// totalCategories is the size of the category taxonomy the variety score is
// measured against.
const totalCategories = 8

// Analysis is the diet-adherence summary of one weekly plan.
type Analysis struct {
	AdoptionRate    int            `json:"adoption_rate"`
	DailyAverage    nutrition.Info `json:"daily_average"`
	VarietyScore    int            `json:"variety_score"`
	BalanceScore    int            `json:"balance_score"`
	ProteinTrend    Trend          `json:"protein_trend"`
	CarbsTrend      Trend          `json:"carbs_trend"`
	FatTrend        Trend          `json:"fat_trend"`
	Recommendations []string       `json:"recommendations"`
}

// Analyze computes the adherence summary for a plan. previousWeek, when
// present, is the prior week's total nutrition and feeds the trend
// classification; without it every trend is stable.
func Analyze(plan *planner.WeeklyPlan, previousWeek *nutrition.Info) Analysis {
	a := Analysis{
		AdoptionRate: int(math.Round(float64(plan.AdoptedDays()) / 7 * 100)),
		DailyAverage: nutrition.Info{
			Calories: plan.TotalNutrition.Calories / 7,
			Protein:  plan.TotalNutrition.Protein / 7,
			Carbs:    plan.TotalNutrition.Carbs / 7,
			Fat:      plan.TotalNutrition.Fat / 7,
			Fiber:    plan.TotalNutrition.Fiber / 7,
		}.Rounded(),
	}

	categories := make(map[catalog.Category]bool)
	for _, ing := range plan.IngredientsUsed {
		categories[ing.Category] = true
	}
	a.VarietyScore = int(math.Min(100, math.Round(float64(len(categories))/totalCategories*100)))

	a.BalanceScore = balanceScore(a.DailyAverage)

	if previousWeek != nil {
		a.ProteinTrend = classifyTrend(a.DailyAverage.Protein, previousWeek.Protein/7)
		a.CarbsTrend = classifyTrend(a.DailyAverage.Carbs, previousWeek.Carbs/7)
		a.FatTrend = classifyTrend(a.DailyAverage.Fat, previousWeek.Fat/7)
	} else {
		a.ProteinTrend, a.CarbsTrend, a.FatTrend = TrendStable, TrendStable, TrendStable
	}

	a.Recommendations = recommendations(a)
	return a
}

// balanceScore checks the actual macro calorie ratios against the
// acceptable bands: 100 inside the band, 50 outside, averaged.
func balanceScore(daily nutrition.Info) int {
	totalKcal := daily.Protein*nutrition.KcalPerGramProtein +
		daily.Carbs*nutrition.KcalPerGramCarbs +
		daily.Fat*nutrition.KcalPerGramFat
	if totalKcal == 0 {
		return 0
	}

	proteinRatio := daily.Protein * nutrition.KcalPerGramProtein / totalKcal
	carbsRatio := daily.Carbs * nutrition.KcalPerGramCarbs / totalKcal
	fatRatio := daily.Fat * nutrition.KcalPerGramFat / totalKcal

	score := bandScore(proteinRatio, proteinBandMin, proteinBandMax) +
		bandScore(carbsRatio, carbsBandMin, carbsBandMax) +
		bandScore(fatRatio, fatBandMin, fatBandMax)
	return int(math.Round(float64(score) / 3))
}

func bandScore(ratio, min, max float64) int {
	if ratio >= min && ratio <= max {
		return 100
	}
	return 50
}

// classifyTrend compares daily averages: more than 5% above the previous
// value is increasing, more than 5% below is decreasing.
func classifyTrend(current, previous float64) Trend {
	if previous == 0 {
		return TrendStable
	}
	diff := (current - previous) / previous * 100
	switch {
	case diff > 5:
		return TrendIncreasing
	case diff < -5:
		return TrendDecreasing
	default:
		return TrendStable
	}
}

// recommendations produces the rule-based suggestion sentences in fixed
// order: adoption, variety, balance, then the all-good affirmation.
func recommendations(a Analysis) []string {
	var recs []string
	if a.AdoptionRate < scoreThreshold {
		recs = append(recs, "Adoption was low this week; adjust the recipes to match how you actually eat.")
	}
	if a.VarietyScore < scoreThreshold {
		recs = append(recs, "Ingredient variety is limited; add more ingredient categories next week.")
	}
	if a.BalanceScore < scoreThreshold {
		recs = append(recs, "Macro balance needs attention; watch your protein and carb intake.")
	}
	if len(recs) == 0 {
		recs = append(recs, "A well-balanced week; keep your current plan going.")
	}
	return recs
}
