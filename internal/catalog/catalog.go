package catalog

import (
	"fmt"

	"github.com/linymin/nutriplan-365/internal/nutrition"
)

// Category is the fixed ingredient taxonomy.
type Category string

const (
	CategoryMeat      Category = "meat"
	CategoryVegetable Category = "vegetable"
	CategoryStaple    Category = "staple"
	CategoryLegume    Category = "legume"
	CategoryEggDairy  Category = "egg_dairy"
	CategoryFruit     Category = "fruit"
	CategorySeafood   Category = "seafood"
	CategorySeasoning Category = "seasoning"
)

// displayOrder fixes the order categories are presented in.
var displayOrder = []Category{
	CategoryMeat,
	CategoryVegetable,
	CategoryStaple,
	CategoryLegume,
	CategoryEggDairy,
	CategoryFruit,
	CategorySeafood,
	CategorySeasoning,
}

// Categories returns every category in display order.
func Categories() []Category {
	out := make([]Category, len(displayOrder))
	copy(out, displayOrder)
	return out
}

var categoryIcons = map[Category]string{
	CategoryMeat:      "🥩",
	CategoryVegetable: "🥬",
	CategoryStaple:    "🍚",
	CategoryLegume:    "🫘",
	CategoryEggDairy:  "🥚",
	CategoryFruit:     "🍎",
	CategorySeafood:   "🦐",
	CategorySeasoning: "🧂",
}

// CategoryIcon returns the emoji for a category.
func CategoryIcon(c Category) string {
	return categoryIcons[c]
}

// Unit is the shopping unit an ingredient is measured in.
type Unit string

const (
	UnitGram       Unit = "gram"
	UnitMilliliter Unit = "ml"
	UnitPiece      Unit = "piece"
)

// Origin marks whether an ingredient came from the built-in table or was
// created by a user.
type Origin string

const (
	OriginBuiltin Origin = "builtin"
	OriginCustom  Origin = "custom"
)

// Ingredient is an immutable catalog entry with per-100g macros.
type Ingredient struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Category        Category `json:"category"`
	Unit            Unit     `json:"unit"`
	CaloriesPer100g float64  `json:"caloriesPer100g"`
	ProteinPer100g  float64  `json:"proteinPer100g"`
	CarbsPer100g    float64  `json:"carbsPer100g"`
	FatPer100g      float64  `json:"fatPer100g"`
	Icon            string   `json:"icon,omitempty"`
	Origin          Origin   `json:"origin,omitempty"`
}

// DisplayIcon returns the ingredient's own icon, falling back to its
// category emoji.
func (i Ingredient) DisplayIcon() string {
	if i.Icon != "" {
		return i.Icon
	}
	return CategoryIcon(i.Category)
}

// IngredientCatalog is the combined built-in + custom ingredient table.
// Built-in entries are loaded once and never mutated; only AddCustom grows
// the table.
type IngredientCatalog struct {
	items []Ingredient
	index map[string]Ingredient
}

// NewIngredientCatalog builds the catalog from the built-in table.
func NewIngredientCatalog() *IngredientCatalog {
	c := &IngredientCatalog{index: make(map[string]Ingredient, len(builtinIngredients))}
	for _, ing := range builtinIngredients {
		ing.Origin = OriginBuiltin
		c.items = append(c.items, ing)
		c.index[ing.ID] = ing
	}
	return c
}

// Default per-100g macros applied to custom ingredients created without
// nutrition data. Roughly a mixed-vegetable estimate.
var customDefaults = Ingredient{
	CaloriesPer100g: 50,
	ProteinPer100g:  2,
	CarbsPer100g:    8,
	FatPer100g:      1,
}

// AddCustom registers a user-created ingredient. Blank macros are defaulted
// rather than rejected; a duplicate ID is an error.
func (c *IngredientCatalog) AddCustom(ing Ingredient) error {
	if ing.ID == "" || ing.Name == "" {
		return fmt.Errorf("custom ingredient needs an id and a name")
	}
	if _, exists := c.index[ing.ID]; exists {
		return fmt.Errorf("ingredient id %q already exists", ing.ID)
	}
	if ing.Unit == "" {
		ing.Unit = UnitGram
	}
	if ing.CaloriesPer100g == 0 && ing.ProteinPer100g == 0 && ing.CarbsPer100g == 0 && ing.FatPer100g == 0 {
		ing.CaloriesPer100g = customDefaults.CaloriesPer100g
		ing.ProteinPer100g = customDefaults.ProteinPer100g
		ing.CarbsPer100g = customDefaults.CarbsPer100g
		ing.FatPer100g = customDefaults.FatPer100g
	}
	ing.Origin = OriginCustom
	c.items = append(c.items, ing)
	c.index[ing.ID] = ing
	return nil
}

// ByID looks an ingredient up by id.
func (c *IngredientCatalog) ByID(id string) (Ingredient, bool) {
	ing, ok := c.index[id]
	return ing, ok
}

// ByCategory returns all ingredients of one category, in catalog order.
func (c *IngredientCatalog) ByCategory(cat Category) []Ingredient {
	var out []Ingredient
	for _, ing := range c.items {
		if ing.Category == cat {
			out = append(out, ing)
		}
	}
	return out
}

// All returns every ingredient in catalog order.
func (c *IngredientCatalog) All() []Ingredient {
	out := make([]Ingredient, len(c.items))
	copy(out, c.items)
	return out
}

// MealSlot is one of the three daily meal slots.
type MealSlot string

const (
	SlotBreakfast MealSlot = "breakfast"
	SlotLunch     MealSlot = "lunch"
	SlotDinner    MealSlot = "dinner"
)

// MealSlots returns the slots in day order.
func MealSlots() []MealSlot {
	return []MealSlot{SlotBreakfast, SlotLunch, SlotDinner}
}

// Difficulty grades how hard a dish is to cook.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// DishIngredient references a catalog ingredient with the amount (grams,
// or ml/pieces scaled by the 100g macro basis) the dish uses.
type DishIngredient struct {
	IngredientID string  `json:"ingredient_id"`
	Amount       float64 `json:"amount"`
}

// Dish is a static, immutable recipe.
type Dish struct {
	ID                 string           `json:"id"`
	Name               string           `json:"name"`
	Description        string           `json:"description"`
	Ingredients        []DishIngredient `json:"ingredients"`
	Steps              []string         `json:"steps"`
	CookingTimeMinutes int              `json:"cooking_time_minutes"`
	Difficulty         Difficulty       `json:"difficulty"`
	SuitableModes      []nutrition.Mode `json:"suitable_modes"`
	SuitableSlots      []MealSlot       `json:"suitable_slots"`
}

// SuitsMode reports whether the dish fits a dietary mode.
func (d Dish) SuitsMode(m nutrition.Mode) bool {
	for _, sm := range d.SuitableModes {
		if sm == m {
			return true
		}
	}
	return false
}

// SuitsSlot reports whether the dish fits a meal slot.
func (d Dish) SuitsSlot(s MealSlot) bool {
	for _, ss := range d.SuitableSlots {
		if ss == s {
			return true
		}
	}
	return false
}

// UsesAny reports whether the dish contains at least one of the given
// ingredient ids.
func (d Dish) UsesAny(ids map[string]bool) bool {
	for _, di := range d.Ingredients {
		if ids[di.IngredientID] {
			return true
		}
	}
	return false
}

// dishFiber is the flat fiber estimate added per dish. Ingredient entries
// carry no fiber data, so dishes are credited a fixed amount instead.
const dishFiber = 1.5

// DishCatalog is the static recipe table.
type DishCatalog struct {
	dishes      []Dish
	ingredients *IngredientCatalog
}

// NewDishCatalog builds the dish table on top of an ingredient catalog.
func NewDishCatalog(ingredients *IngredientCatalog) *DishCatalog {
	return &DishCatalog{dishes: builtinDishes, ingredients: ingredients}
}

// All returns every dish.
func (c *DishCatalog) All() []Dish {
	out := make([]Dish, len(c.dishes))
	copy(out, c.dishes)
	return out
}

// FindMatching returns the dishes suitable for both the mode and the slot,
// in catalog order.
func (c *DishCatalog) FindMatching(mode nutrition.Mode, slot MealSlot) []Dish {
	var out []Dish
	for _, d := range c.dishes {
		if d.SuitsMode(mode) && d.SuitsSlot(slot) {
			out = append(out, d)
		}
	}
	return out
}

// ForMode returns the dishes suitable for a mode regardless of slot.
func (c *DishCatalog) ForMode(mode nutrition.Mode) []Dish {
	var out []Dish
	for _, d := range c.dishes {
		if d.SuitsMode(mode) {
			out = append(out, d)
		}
	}
	return out
}

// Nutrition sums a dish's macros from its ingredients' per-100g values.
// Fiber is the flat per-dish constant, not derived from ingredients.
func (c *DishCatalog) Nutrition(d Dish) nutrition.Info {
	var info nutrition.Info
	for _, di := range d.Ingredients {
		ing, ok := c.ingredients.ByID(di.IngredientID)
		if !ok {
			continue
		}
		factor := di.Amount / 100
		info.Calories += ing.CaloriesPer100g * factor
		info.Protein += ing.ProteinPer100g * factor
		info.Carbs += ing.CarbsPer100g * factor
		info.Fat += ing.FatPer100g * factor
	}
	info.Fiber = dishFiber
	return info
}

// Ingredients exposes the ingredient catalog backing this dish table.
func (c *DishCatalog) Ingredients() *IngredientCatalog {
	return c.ingredients
}
