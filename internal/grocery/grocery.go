// Package grocery rolls dish ingredient quantities up into shopping lists.
package grocery

import (
	"math/rand"
	"sort"

	"github.com/linymin/nutriplan-365/internal/catalog"
	"github.com/linymin/nutriplan-365/internal/nutrition"
	"github.com/linymin/nutriplan-365/internal/planner"
)

// Item is one shopping list line. Checked is session state for the caller;
// the aggregator always leaves it false.
type Item struct {
	Ingredient catalog.Ingredient `json:"ingredient"`
	Amount     float64            `json:"amount"`
	Checked    bool               `json:"checked"`
}

// sampledDishesPerDay approximates 2 dishes per meal across 3 meals.
const sampledDishesPerDay = 6

// Aggregator builds deduplicated shopping lists from the dish catalog or a
// generated plan.
type Aggregator struct {
	dishes *catalog.DishCatalog
}

// NewAggregator builds an Aggregator over a dish catalog.
func NewAggregator(dishes *catalog.DishCatalog) *Aggregator {
	return &Aggregator{dishes: dishes}
}

// Aggregate estimates a shopping list for a mode by sampling 6 random
// mode-suitable dishes per day, ignoring meal-slot structure. It is a coarse
// weekly estimate, not tied to an actual generated plan; use FromPlan for
// the exact list.
func (a *Aggregator) Aggregate(mode nutrition.Mode, days int, rng *rand.Rand) []Item {
	suitable := a.dishes.ForMode(mode)

	amounts := make(map[string]float64)
	for day := 0; day < days; day++ {
		shuffled := make([]catalog.Dish, len(suitable))
		copy(shuffled, suitable)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		count := sampledDishesPerDay
		if count > len(shuffled) {
			count = len(shuffled)
		}
		for _, d := range shuffled[:count] {
			for _, di := range d.Ingredients {
				amounts[di.IngredientID] += di.Amount
			}
		}
	}

	return a.toItems(amounts)
}

// FromPlan aggregates the exact ingredient amounts of every dish across all
// 21 meal slots of a generated plan.
func (a *Aggregator) FromPlan(plan *planner.WeeklyPlan) []Item {
	amounts := make(map[string]float64)
	for _, day := range plan.Days {
		for _, meal := range day.Meals() {
			for _, d := range meal.Dishes {
				for _, di := range d.Ingredients {
					amounts[di.IngredientID] += di.Amount
				}
			}
		}
	}
	return a.toItems(amounts)
}

// FromDay aggregates one representative day and scales it to a week.
func (a *Aggregator) FromDay(day planner.DailyPlan) []Item {
	amounts := make(map[string]float64)
	for _, meal := range day.Meals() {
		for _, d := range meal.Dishes {
			for _, di := range d.Ingredients {
				amounts[di.IngredientID] += di.Amount * 7
			}
		}
	}
	return a.toItems(amounts)
}

// toItems resolves accumulated amounts into list items with a stable order:
// category display order, then name.
func (a *Aggregator) toItems(amounts map[string]float64) []Item {
	catalogOrder := make(map[catalog.Category]int, 8)
	for i, c := range catalog.Categories() {
		catalogOrder[c] = i
	}

	ingredients := a.dishes.Ingredients()
	items := make([]Item, 0, len(amounts))
	for id, amount := range amounts {
		ing, ok := ingredients.ByID(id)
		if !ok {
			continue
		}
		items = append(items, Item{Ingredient: ing, Amount: amount})
	}

	sort.Slice(items, func(i, j int) bool {
		ci, cj := catalogOrder[items[i].Ingredient.Category], catalogOrder[items[j].Ingredient.Category]
		if ci != cj {
			return ci < cj
		}
		return items[i].Ingredient.Name < items[j].Ingredient.Name
	})
	return items
}
