package planner

import (
	"math/rand"
	"sync"

	"github.com/linymin/nutriplan-365/internal/catalog"
	"github.com/linymin/nutriplan-365/internal/nutrition"
)

// Dishes selected per slot: a lighter breakfast, fuller lunch and dinner.
const (
	breakfastDishCount = 2
	mainMealDishCount  = 3
)

// Composer selects dishes for a single meal slot. The random source is
// injected so callers can seed it for reproducible output; *rand.Rand is
// not safe for concurrent use, so mu serializes access to it.
type Composer struct {
	dishes *catalog.DishCatalog
	mu     sync.Mutex
	rng    *rand.Rand
}

// NewComposer builds a Composer over a dish catalog.
func NewComposer(dishes *catalog.DishCatalog, rng *rand.Rand) *Composer {
	return &Composer{dishes: dishes, rng: rng}
}

// ComposeMeal picks dishes for a mode and slot from dishes the user can cook
// with the available ingredients, excluding ids already used. When no dish
// matches the availability filter it falls back to every mode/slot match, so
// a meal is produced whenever any dish exists for the combination; when even
// that is empty the result is a valid zero-dish meal. It never fails.
func (c *Composer) ComposeMeal(mode nutrition.Mode, slot catalog.MealSlot, availableIDs []string, excludeDishIDs map[string]bool) Meal {
	available := make(map[string]bool, len(availableIDs))
	for _, id := range availableIDs {
		available[id] = true
	}

	matching := c.dishes.FindMatching(mode, slot)

	var candidates []catalog.Dish
	for _, d := range matching {
		if excludeDishIDs[d.ID] {
			continue
		}
		if d.UsesAny(available) {
			candidates = append(candidates, d)
		}
	}

	// Availability produced nothing; ignore it rather than serve no meal.
	if len(candidates) == 0 {
		for _, d := range matching {
			if !excludeDishIDs[d.ID] {
				candidates = append(candidates, d)
			}
		}
	}

	c.mu.Lock()
	c.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	c.mu.Unlock()

	count := mainMealDishCount
	if slot == catalog.SlotBreakfast {
		count = breakfastDishCount
	}
	if count > len(candidates) {
		count = len(candidates)
	}
	selected := candidates[:count]

	var total nutrition.Info
	for _, d := range selected {
		total = total.Add(c.dishes.Nutrition(d))
	}

	return Meal{
		Slot:           slot,
		Dishes:         selected,
		TotalNutrition: total.Rounded(),
	}
}
