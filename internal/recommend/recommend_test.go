package recommend

import (
	"math/rand"
	"testing"

	"github.com/linymin/nutriplan-365/internal/catalog"
	"github.com/linymin/nutriplan-365/internal/nutrition"
	"github.com/linymin/nutriplan-365/internal/profile"
)

func newRecommender() (*Recommender, *catalog.IngredientCatalog) {
	c := catalog.NewIngredientCatalog()
	return NewRecommender(c), c
}

func categoryOf(t *testing.T, c *catalog.IngredientCatalog, id string) catalog.Category {
	t.Helper()
	ing, ok := c.ByID(id)
	if !ok {
		t.Fatalf("Unknown ingredient id %s", id)
	}
	return ing.Category
}

func TestRecommendExcludesDisliked(t *testing.T) {
	r, _ := newRecommender()
	p := &profile.UserProfile{DislikedIngredients: []string{"chicken", "eggs"}}

	for _, mode := range nutrition.Modes() {
		for _, id := range r.Recommend(mode, p, 0) {
			if id == "chicken-breast" || id == "egg" {
				t.Errorf("Mode %s recommended disliked ingredient %s", mode, id)
			}
		}
	}
}

func TestRecommendDislikedNeverReturned(t *testing.T) {
	// Property over random profiles: a disliked tag's ingredient must never
	// appear regardless of mode, restrictions or liked overlap.
	r, _ := newRecommender()
	rng := rand.New(rand.NewSource(42))

	tags := make([]string, 0, len(profileTagToID))
	for tag := range profileTagToID {
		tags = append(tags, tag)
	}
	restrictions := []string{
		profile.RestrictionVegetarian, profile.RestrictionVegan,
		profile.RestrictionNoBeef, profile.RestrictionNoPork,
		profile.RestrictionSeafoodAllergy, profile.RestrictionLactoseFree,
	}

	for i := 0; i < 100; i++ {
		p := &profile.UserProfile{}
		for _, tag := range tags {
			switch rng.Intn(3) {
			case 0:
				p.LikedIngredients = append(p.LikedIngredients, tag)
			case 1:
				p.DislikedIngredients = append(p.DislikedIngredients, tag)
			}
		}
		for _, restr := range restrictions {
			if rng.Intn(4) == 0 {
				p.DietaryRestrictions = append(p.DietaryRestrictions, restr)
			}
		}

		disliked := make(map[string]bool)
		for _, tag := range p.DislikedIngredients {
			if id, ok := profileTagToID[tag]; ok {
				disliked[id] = true
			}
		}

		mode := nutrition.Modes()[rng.Intn(3)]
		for _, id := range r.Recommend(mode, p, 0) {
			if disliked[id] {
				t.Fatalf("Iteration %d: mode %s recommended disliked ingredient %s", i, mode, id)
			}
		}
	}
}

func TestRecommendRestrictions(t *testing.T) {
	r, c := newRecommender()

	t.Run("Vegetarian", func(t *testing.T) {
		p := &profile.UserProfile{DietaryRestrictions: []string{profile.RestrictionVegetarian}}
		for _, id := range r.Recommend(nutrition.ModeGeneral, p, 0) {
			cat := categoryOf(t, c, id)
			if cat == catalog.CategoryMeat || cat == catalog.CategorySeafood {
				t.Errorf("Vegetarian recommendation included %s (%s)", id, cat)
			}
		}
	})

	t.Run("NoPork", func(t *testing.T) {
		p := &profile.UserProfile{DietaryRestrictions: []string{profile.RestrictionNoPork}}
		pork := make(map[string]bool)
		for _, id := range catalog.PorkProductIDs {
			pork[id] = true
		}
		for _, id := range r.Recommend(nutrition.ModeGeneral, p, 0) {
			if pork[id] {
				t.Errorf("no_pork recommendation included %s", id)
			}
		}
	})

	t.Run("LactoseFreeStillAllowsEggs", func(t *testing.T) {
		p := &profile.UserProfile{DietaryRestrictions: []string{profile.RestrictionLactoseFree}}
		ids := r.Recommend(nutrition.ModeMuscle, p, 0)
		sawEgg := false
		for _, id := range ids {
			if id == "milk" || id == "yogurt" {
				t.Errorf("lactose_free recommendation included %s", id)
			}
			if id == "egg" {
				sawEgg = true
			}
		}
		if !sawEgg {
			t.Error("Expected eggs to survive the lactose_free filter")
		}
	})

	t.Run("Cumulative", func(t *testing.T) {
		p := &profile.UserProfile{DietaryRestrictions: []string{
			profile.RestrictionVegetarian, profile.RestrictionLactoseFree,
		}}
		for _, id := range r.Recommend(nutrition.ModeGeneral, p, 0) {
			cat := categoryOf(t, c, id)
			if cat == catalog.CategoryMeat || cat == catalog.CategorySeafood || id == "milk" || id == "yogurt" {
				t.Errorf("Cumulative restrictions leaked %s", id)
			}
		}
	})
}

func TestRecommendScoringOrder(t *testing.T) {
	r, c := newRecommender()

	t.Run("MuscleFavorsHighProtein", func(t *testing.T) {
		ids := r.Recommend(nutrition.ModeMuscle, nil, 5)
		if len(ids) == 0 {
			t.Fatal("Expected recommendations for muscle mode")
		}
		top, _ := c.ByID(ids[0])
		if top.ProteinPer100g <= 20 {
			t.Errorf("Expected top muscle pick to exceed 20g protein, got %s (%vg)", top.ID, top.ProteinPer100g)
		}
	})

	t.Run("LikedOutranksUnliked", func(t *testing.T) {
		p := &profile.UserProfile{LikedIngredients: []string{"broccoli"}}
		ids := r.Recommend(nutrition.ModeGeneral, p, 1)
		if len(ids) != 1 || ids[0] != "broccoli" {
			t.Errorf("Expected liked broccoli on top in general mode, got %v", ids)
		}
	})
}

func TestRecommendTopN(t *testing.T) {
	r, _ := newRecommender()

	capped := r.Recommend(nutrition.ModeGeneral, nil, 5)
	if len(capped) != 5 {
		t.Errorf("Expected exactly 5 results, got %d", len(capped))
	}

	uncapped := r.Recommend(nutrition.ModeGeneral, nil, 0)
	if len(uncapped) <= 5 {
		t.Errorf("Expected uncapped list longer than 5, got %d", len(uncapped))
	}
}

func TestReason(t *testing.T) {
	_, c := newRecommender()

	chicken, _ := c.ByID("chicken-breast")
	if got := Reason(chicken, nutrition.ModeMuscle); got != "very high protein" {
		t.Errorf("Expected 'very high protein', got '%s'", got)
	}

	cucumber, ok := c.ByID("cucumber")
	if !ok {
		t.Fatal("Expected cucumber in catalog")
	}
	if got := Reason(cucumber, nutrition.ModeFatLoss); got != "very low calorie" {
		t.Errorf("Expected 'very low calorie', got '%s'", got)
	}

	if got := Reason(chicken, nutrition.ModeGeneral); got != "balanced nutrition" {
		t.Errorf("Expected 'balanced nutrition', got '%s'", got)
	}
}
