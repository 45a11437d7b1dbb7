// Package recommend ranks catalog ingredients against a user's dietary mode,
// preferences and restrictions.
package recommend

import (
	"sort"

	"github.com/linymin/nutriplan-365/internal/catalog"
	"github.com/linymin/nutriplan-365/internal/nutrition"
	"github.com/linymin/nutriplan-365/internal/profile"
)

// profileTagToID maps the preference tags a profile form collects to catalog
// ingredient ids. Tags without an entry here, and mapped ids that are not in
// the catalog, are silently ignored.
var profileTagToID = map[string]string{
	"chicken":      "chicken-breast",
	"pork":         "pork-lean",
	"beef":         "beef",
	"fish":         "fish",
	"shrimp":       "shrimp",
	"eggs":         "egg",
	"tofu":         "tofu",
	"broccoli":     "broccoli",
	"tomato":       "tomato",
	"potato":       "potato",
	"rice":         "rice",
	"noodles":      "noodles",
	"cilantro":     "cilantro",
	"celery":       "celery",
	"bitter_melon": "bitter_melon",
	"eggplant":     "eggplant",
	"mushroom":     "mushroom",
	"onion":        "onion",
	"garlic":       "garlic",
}

// Recommender scores and filters the ingredient catalog. It is a pure
// function of catalog, profile and mode; it holds no mutable state.
type Recommender struct {
	catalog *catalog.IngredientCatalog
}

// NewRecommender builds a Recommender over an ingredient catalog.
func NewRecommender(c *catalog.IngredientCatalog) *Recommender {
	return &Recommender{catalog: c}
}

// Recommend returns ranked ingredient ids for a mode and profile. Disliked
// ingredients are hard-excluded, dietary restrictions apply cumulatively,
// and the remainder is scored and sorted descending (catalog order breaks
// ties). Only positively scored ids are returned; topN > 0 additionally caps
// the list, topN <= 0 means no cap.
func (r *Recommender) Recommend(mode nutrition.Mode, p *profile.UserProfile, topN int) []string {
	liked := mapTags(likedTags(p))
	disliked := mapTags(dislikedTags(p))

	var scored []scoredIngredient
	for _, ing := range r.catalog.All() {
		if disliked[ing.ID] {
			continue
		}
		if excludedByRestrictions(ing, p) {
			continue
		}
		scored = append(scored, scoredIngredient{
			id:    ing.ID,
			score: score(ing, mode, p, liked),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	var out []string
	for _, s := range scored {
		if s.score <= 0 {
			continue
		}
		out = append(out, s.id)
		if topN > 0 && len(out) == topN {
			break
		}
	}
	return out
}

type scoredIngredient struct {
	id    string
	score int
}

func likedTags(p *profile.UserProfile) []string {
	if p == nil {
		return nil
	}
	return p.LikedIngredients
}

func dislikedTags(p *profile.UserProfile) []string {
	if p == nil {
		return nil
	}
	return p.DislikedIngredients
}

func mapTags(tags []string) map[string]bool {
	ids := make(map[string]bool, len(tags))
	for _, tag := range tags {
		if id, ok := profileTagToID[tag]; ok {
			ids[id] = true
		}
	}
	return ids
}

// excludedByRestrictions applies every active dietary restriction; the
// filters are independent and cumulative.
func excludedByRestrictions(ing catalog.Ingredient, p *profile.UserProfile) bool {
	if p == nil {
		return false
	}
	if p.HasRestriction(profile.RestrictionVegetarian) || p.HasRestriction(profile.RestrictionVegan) {
		if ing.Category == catalog.CategoryMeat || ing.Category == catalog.CategorySeafood {
			return true
		}
	}
	if p.HasRestriction(profile.RestrictionNoBeef) && ing.ID == catalog.BeefID {
		return true
	}
	if p.HasRestriction(profile.RestrictionNoPork) {
		for _, id := range catalog.PorkProductIDs {
			if ing.ID == id {
				return true
			}
		}
	}
	if p.HasRestriction(profile.RestrictionSeafoodAllergy) && ing.Category == catalog.CategorySeafood {
		return true
	}
	if p.HasRestriction(profile.RestrictionLactoseFree) {
		for _, id := range catalog.DairyIDs {
			if ing.ID == id {
				return true
			}
		}
	}
	return false
}

func score(ing catalog.Ingredient, mode nutrition.Mode, p *profile.UserProfile, liked map[string]bool) int {
	s := 0
	if liked[ing.ID] {
		s += 50
	}

	switch mode {
	case nutrition.ModeMuscle:
		if ing.ProteinPer100g > 15 {
			s += 30
		}
		if ing.ProteinPer100g > 20 {
			s += 20
		}
		switch ing.Category {
		case catalog.CategoryMeat, catalog.CategoryEggDairy, catalog.CategorySeafood, catalog.CategoryLegume:
			s += 10
		}
	case nutrition.ModeFatLoss:
		if ing.CaloriesPer100g < 100 {
			s += 20
		}
		if ing.CaloriesPer100g < 50 {
			s += 15
		}
		if ing.ProteinPer100g > 10 {
			s += 15
		}
		if ing.Category == catalog.CategoryVegetable {
			s += 25
		}
		if ing.FatPer100g > 10 {
			s -= 20
		}
	default:
		s += 10
	}

	if p.HasExerciseType(profile.ExerciseStrength) && ing.ProteinPer100g > 15 {
		s += 15
	}
	if p.HasExerciseType(profile.ExerciseCardio) && ing.CarbsPer100g > 15 {
		s += 10
	}
	return s
}

// Reason produces a short display label explaining why an ingredient suits
// a mode.
func Reason(ing catalog.Ingredient, mode nutrition.Mode) string {
	switch mode {
	case nutrition.ModeMuscle:
		if ing.ProteinPer100g > 20 {
			return "very high protein"
		}
		if ing.ProteinPer100g > 10 {
			return "quality protein"
		}
		switch ing.Category {
		case catalog.CategoryMeat, catalog.CategoryEggDairy, catalog.CategorySeafood:
			return "good for muscle gain"
		}
	case nutrition.ModeFatLoss:
		if ing.CaloriesPer100g < 50 {
			return "very low calorie"
		}
		if ing.CaloriesPer100g < 100 {
			return "low calorie"
		}
		if ing.Category == catalog.CategoryVegetable {
			return "high fiber"
		}
		if ing.ProteinPer100g > 15 && ing.FatPer100g < 5 {
			return "high protein, low fat"
		}
	}
	return "balanced nutrition"
}
