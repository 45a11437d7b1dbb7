package catalog

// builtinIngredients is the static food table. Macros are per 100g (or per
// 100ml / per 100g-equivalent for piece-measured items such as eggs).
var builtinIngredients = []Ingredient{
	// Meat
	{ID: "chicken-breast", Name: "Chicken breast", Category: CategoryMeat, Unit: UnitGram, CaloriesPer100g: 165, ProteinPer100g: 31, CarbsPer100g: 0, FatPer100g: 3.6},
	{ID: "chicken-leg", Name: "Chicken leg", Category: CategoryMeat, Unit: UnitGram, CaloriesPer100g: 181, ProteinPer100g: 19.3, CarbsPer100g: 0, FatPer100g: 11.3},
	{ID: "pork-lean", Name: "Lean pork", Category: CategoryMeat, Unit: UnitGram, CaloriesPer100g: 143, ProteinPer100g: 21, CarbsPer100g: 0, FatPer100g: 6},
	{ID: "beef", Name: "Beef", Category: CategoryMeat, Unit: UnitGram, CaloriesPer100g: 250, ProteinPer100g: 26, CarbsPer100g: 0, FatPer100g: 15, Icon: "🥩"},
	{ID: "pork-ribs", Name: "Pork ribs", Category: CategoryMeat, Unit: UnitGram, CaloriesPer100g: 264, ProteinPer100g: 18, CarbsPer100g: 0, FatPer100g: 21},

	// Vegetables
	{ID: "broccoli", Name: "Broccoli", Category: CategoryVegetable, Unit: UnitGram, CaloriesPer100g: 34, ProteinPer100g: 2.8, CarbsPer100g: 7, FatPer100g: 0.4, Icon: "🥦"},
	{ID: "spinach", Name: "Spinach", Category: CategoryVegetable, Unit: UnitGram, CaloriesPer100g: 23, ProteinPer100g: 2.9, CarbsPer100g: 3.6, FatPer100g: 0.4},
	{ID: "tomato", Name: "Tomato", Category: CategoryVegetable, Unit: UnitGram, CaloriesPer100g: 18, ProteinPer100g: 0.9, CarbsPer100g: 3.9, FatPer100g: 0.2, Icon: "🍅"},
	{ID: "carrot", Name: "Carrot", Category: CategoryVegetable, Unit: UnitGram, CaloriesPer100g: 41, ProteinPer100g: 0.9, CarbsPer100g: 10, FatPer100g: 0.2, Icon: "🥕"},
	{ID: "cucumber", Name: "Cucumber", Category: CategoryVegetable, Unit: UnitGram, CaloriesPer100g: 15, ProteinPer100g: 0.7, CarbsPer100g: 3.6, FatPer100g: 0.1, Icon: "🥒"},
	{ID: "cabbage", Name: "Napa cabbage", Category: CategoryVegetable, Unit: UnitGram, CaloriesPer100g: 25, ProteinPer100g: 1.3, CarbsPer100g: 5.8, FatPer100g: 0.1},
	{ID: "mushroom", Name: "Shiitake mushroom", Category: CategoryVegetable, Unit: UnitGram, CaloriesPer100g: 22, ProteinPer100g: 2.2, CarbsPer100g: 3.3, FatPer100g: 0.3, Icon: "🍄"},
	{ID: "greenbean", Name: "Green peas", Category: CategoryVegetable, Unit: UnitGram, CaloriesPer100g: 81, ProteinPer100g: 5.4, CarbsPer100g: 14, FatPer100g: 0.4},

	// Staples
	{ID: "rice", Name: "Rice", Category: CategoryStaple, Unit: UnitGram, CaloriesPer100g: 130, ProteinPer100g: 2.7, CarbsPer100g: 28, FatPer100g: 0.3, Icon: "🍚"},
	{ID: "noodles", Name: "Noodles", Category: CategoryStaple, Unit: UnitGram, CaloriesPer100g: 138, ProteinPer100g: 4.5, CarbsPer100g: 25, FatPer100g: 2, Icon: "🍜"},
	{ID: "oats", Name: "Oats", Category: CategoryStaple, Unit: UnitGram, CaloriesPer100g: 389, ProteinPer100g: 17, CarbsPer100g: 66, FatPer100g: 7},
	{ID: "sweet-potato", Name: "Sweet potato", Category: CategoryStaple, Unit: UnitGram, CaloriesPer100g: 86, ProteinPer100g: 1.6, CarbsPer100g: 20, FatPer100g: 0.1, Icon: "🍠"},
	{ID: "corn", Name: "Corn", Category: CategoryStaple, Unit: UnitGram, CaloriesPer100g: 96, ProteinPer100g: 3.4, CarbsPer100g: 21, FatPer100g: 1.5, Icon: "🌽"},

	// Legumes
	{ID: "tofu", Name: "Tofu", Category: CategoryLegume, Unit: UnitGram, CaloriesPer100g: 76, ProteinPer100g: 8, CarbsPer100g: 1.9, FatPer100g: 4.8},
	{ID: "soymilk", Name: "Soy milk", Category: CategoryLegume, Unit: UnitMilliliter, CaloriesPer100g: 33, ProteinPer100g: 2.9, CarbsPer100g: 2.5, FatPer100g: 1.5},
	{ID: "edamame", Name: "Edamame", Category: CategoryLegume, Unit: UnitGram, CaloriesPer100g: 121, ProteinPer100g: 11, CarbsPer100g: 10, FatPer100g: 5},

	// Eggs & dairy
	{ID: "egg", Name: "Egg", Category: CategoryEggDairy, Unit: UnitPiece, CaloriesPer100g: 155, ProteinPer100g: 13, CarbsPer100g: 1.1, FatPer100g: 11, Icon: "🥚"},
	{ID: "milk", Name: "Milk", Category: CategoryEggDairy, Unit: UnitMilliliter, CaloriesPer100g: 42, ProteinPer100g: 3.4, CarbsPer100g: 5, FatPer100g: 1, Icon: "🥛"},
	{ID: "yogurt", Name: "Yogurt", Category: CategoryEggDairy, Unit: UnitGram, CaloriesPer100g: 59, ProteinPer100g: 3.5, CarbsPer100g: 4.7, FatPer100g: 3.3},

	// Fruit
	{ID: "apple", Name: "Apple", Category: CategoryFruit, Unit: UnitGram, CaloriesPer100g: 52, ProteinPer100g: 0.3, CarbsPer100g: 14, FatPer100g: 0.2, Icon: "🍎"},
	{ID: "banana", Name: "Banana", Category: CategoryFruit, Unit: UnitGram, CaloriesPer100g: 89, ProteinPer100g: 1.1, CarbsPer100g: 23, FatPer100g: 0.3, Icon: "🍌"},
	{ID: "orange", Name: "Orange", Category: CategoryFruit, Unit: UnitGram, CaloriesPer100g: 47, ProteinPer100g: 0.9, CarbsPer100g: 12, FatPer100g: 0.1, Icon: "🍊"},

	// Seafood
	{ID: "shrimp", Name: "Shrimp", Category: CategorySeafood, Unit: UnitGram, CaloriesPer100g: 99, ProteinPer100g: 24, CarbsPer100g: 0.2, FatPer100g: 0.3, Icon: "🦐"},
	{ID: "fish", Name: "White fish", Category: CategorySeafood, Unit: UnitGram, CaloriesPer100g: 82, ProteinPer100g: 18, CarbsPer100g: 0, FatPer100g: 0.7, Icon: "🐟"},
	{ID: "salmon", Name: "Salmon", Category: CategorySeafood, Unit: UnitGram, CaloriesPer100g: 208, ProteinPer100g: 20, CarbsPer100g: 0, FatPer100g: 13},
}

// Ingredient id sets used by dietary restriction filters. Restrictions that
// name categories filter by Category instead.
var (
	PorkProductIDs = []string{"pork-lean", "pork-ribs", "pork-belly"}
	DairyIDs       = []string{"milk", "yogurt"}
	BeefID         = "beef"
)
