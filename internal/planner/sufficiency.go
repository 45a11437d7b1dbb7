package planner

import (
	"fmt"

	"github.com/linymin/nutriplan-365/internal/catalog"
)

// MinimumIngredients is the selection size below which a week of varied
// meals becomes hard to compose.
const MinimumIngredients = 25

// Categories with fewer than this many selected items trigger a variety
// suggestion.
const minPerCategory = 2

const maxSuggestions = 3

// SufficiencyReport is the advisory result of checking a selection. It never
// blocks generation.
type SufficiencyReport struct {
	Sufficient   bool     `json:"sufficient"`
	CurrentCount int      `json:"current_count"`
	MinimumCount int      `json:"minimum_count"`
	Suggestions  []string `json:"suggestions,omitempty"`
}

// CheckIngredientsSufficiency reports whether a selection is large and
// varied enough for a balanced week. Suggestions name missing or
// under-represented categories, capped at three.
func CheckIngredientsSufficiency(selected []catalog.Ingredient) SufficiencyReport {
	report := SufficiencyReport{
		Sufficient:   len(selected) >= MinimumIngredients,
		CurrentCount: len(selected),
		MinimumCount: MinimumIngredients,
	}

	counts := make(map[catalog.Category]int)
	for _, ing := range selected {
		counts[ing.Category]++
	}

	for _, cat := range catalog.Categories() {
		if len(report.Suggestions) == maxSuggestions {
			break
		}
		switch n := counts[cat]; {
		case n == 0:
			report.Suggestions = append(report.Suggestions, fmt.Sprintf("add %s %s", catalog.CategoryIcon(cat), cat))
		case n < minPerCategory:
			report.Suggestions = append(report.Suggestions, fmt.Sprintf("increase variety in %s %s", catalog.CategoryIcon(cat), cat))
		}
	}

	return report
}
