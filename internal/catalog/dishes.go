package catalog

import "github.com/linymin/nutriplan-365/internal/nutrition"

var allModes = []nutrition.Mode{nutrition.ModeMuscle, nutrition.ModeFatLoss, nutrition.ModeGeneral}

// builtinDishes is the static recipe table.
var builtinDishes = []Dish{
	{
		ID:          "beef-broccoli-stir-fry",
		Name:        "Beef and broccoli stir-fry",
		Description: "High protein, low fat; tender beef with crisp broccoli",
		Ingredients: []DishIngredient{
			{IngredientID: "beef", Amount: 200},
			{IngredientID: "broccoli", Amount: 150},
		},
		Steps: []string{
			"Slice the beef thinly against the grain and marinate with cooking wine, soy sauce and starch for 15 minutes",
			"Cut the broccoli into florets and blanch for 1 minute in salted water with a drop of oil",
			"Flash-fry the beef in a hot pan until it just changes color, then remove",
			"Fry minced garlic in the remaining oil and add the broccoli",
			"Return the beef, season with oyster sauce and salt, and toss over high heat",
		},
		CookingTimeMinutes: 20,
		Difficulty:         DifficultyMedium,
		SuitableModes:      []nutrition.Mode{nutrition.ModeMuscle, nutrition.ModeGeneral},
		SuitableSlots:      []MealSlot{SlotLunch, SlotDinner},
	},
	{
		ID:          "steamed-chicken-breast",
		Name:        "Steamed chicken breast",
		Description: "Low fat, high protein; keeps the chicken's natural flavor",
		Ingredients: []DishIngredient{
			{IngredientID: "chicken-breast", Amount: 200},
		},
		Steps: []string{
			"Rinse the chicken breast and pound it lightly with the back of a knife",
			"Rub both sides with salt, cooking wine and ginger and marinate for 10 minutes",
			"Steam over high heat for 15 minutes until cooked through",
			"Slice and drizzle with seasoned soy sauce and a little sesame oil",
			"Finish with chopped scallions",
		},
		CookingTimeMinutes: 25,
		Difficulty:         DifficultyEasy,
		SuitableModes:      []nutrition.Mode{nutrition.ModeMuscle, nutrition.ModeFatLoss},
		SuitableSlots:      []MealSlot{SlotLunch, SlotDinner},
	},
	{
		ID:          "scrambled-eggs-tomato",
		Name:        "Scrambled eggs with tomato",
		Description: "Classic home dish, sweet and tangy, rich in nutrients",
		Ingredients: []DishIngredient{
			{IngredientID: "tomato", Amount: 200},
			{IngredientID: "egg", Amount: 100},
		},
		Steps: []string{
			"Cut the tomatoes into chunks and beat the eggs with a pinch of salt",
			"Scramble the eggs in hot oil until just set, then remove",
			"Cook the tomato chunks over medium heat until they release their juice",
			"Add a little sugar, return the eggs",
			"Toss gently and finish with chopped scallions",
		},
		CookingTimeMinutes: 15,
		Difficulty:         DifficultyEasy,
		SuitableModes:      allModes,
		SuitableSlots:      []MealSlot{SlotBreakfast, SlotLunch, SlotDinner},
	},
	{
		ID:          "garlic-spinach",
		Name:        "Garlic spinach",
		Description: "Light and refreshing, rich in iron and fiber",
		Ingredients: []DishIngredient{
			{IngredientID: "spinach", Amount: 200},
		},
		Steps: []string{
			"Blanch the spinach for 30 seconds and drain",
			"Mince the garlic",
			"Fry the garlic in hot oil until fragrant",
			"Add the spinach, toss quickly and season with salt",
			"Drizzle with sesame oil before serving",
		},
		CookingTimeMinutes: 10,
		Difficulty:         DifficultyEasy,
		SuitableModes:      allModes,
		SuitableSlots:      []MealSlot{SlotLunch, SlotDinner},
	},
	{
		ID:          "steamed-fish",
		Name:        "Steamed fish",
		Description: "Tender fish, high protein and low fat",
		Ingredients: []DishIngredient{
			{IngredientID: "fish", Amount: 300},
		},
		Steps: []string{
			"Score both sides of the fish so it absorbs flavor",
			"Rub with salt and stuff ginger slices inside",
			"Steam over high heat for 8 minutes",
			"Pour off the liquid, top with shredded scallions",
			"Pour hot oil and seasoned soy sauce over the top",
		},
		CookingTimeMinutes: 20,
		Difficulty:         DifficultyMedium,
		SuitableModes:      allModes,
		SuitableSlots:      []MealSlot{SlotLunch, SlotDinner},
	},
	{
		ID:          "mapo-tofu",
		Name:        "Mapo tofu",
		Description: "Sichuan classic, numbing and spicy, great with rice",
		Ingredients: []DishIngredient{
			{IngredientID: "tofu", Amount: 300},
			{IngredientID: "pork-lean", Amount: 50},
		},
		Steps: []string{
			"Dice the tofu and blanch it in lightly salted water",
			"Brown the minced pork, then fry chili bean paste until fragrant",
			"Add stock and the tofu, and simmer for 5 minutes",
			"Thicken with a starch slurry",
			"Finish with ground Sichuan pepper and scallions",
		},
		CookingTimeMinutes: 20,
		Difficulty:         DifficultyMedium,
		SuitableModes:      []nutrition.Mode{nutrition.ModeGeneral},
		SuitableSlots:      []MealSlot{SlotLunch, SlotDinner},
	},
	{
		ID:          "shrimp-cucumber",
		Name:        "Stir-fried shrimp with cucumber",
		Description: "Light and crisp, high protein and low calorie",
		Ingredients: []DishIngredient{
			{IngredientID: "shrimp", Amount: 150},
			{IngredientID: "cucumber", Amount: 200},
		},
		Steps: []string{
			"Devein the shrimp and marinate with cooking wine and a pinch of salt",
			"Slice the cucumber",
			"Stir-fry the shrimp until pink, then remove",
			"Stir-fry the cucumber briefly, return the shrimp",
			"Season with salt and toss to combine",
		},
		CookingTimeMinutes: 15,
		Difficulty:         DifficultyEasy,
		SuitableModes:      []nutrition.Mode{nutrition.ModeMuscle, nutrition.ModeFatLoss},
		SuitableSlots:      []MealSlot{SlotLunch, SlotDinner},
	},
	{
		ID:          "braised-pork-ribs",
		Name:        "Braised pork ribs",
		Description: "Glossy, tender and richly savory",
		Ingredients: []DishIngredient{
			{IngredientID: "pork-ribs", Amount: 300},
		},
		Steps: []string{
			"Blanch the ribs to remove impurities",
			"Caramelize sugar in oil and coat the ribs",
			"Add soy sauce, cooking wine, ginger and hot water to cover",
			"Simmer covered for 40 minutes",
			"Reduce the sauce over high heat until it coats the ribs",
		},
		CookingTimeMinutes: 60,
		Difficulty:         DifficultyMedium,
		SuitableModes:      []nutrition.Mode{nutrition.ModeMuscle, nutrition.ModeGeneral},
		SuitableSlots:      []MealSlot{SlotLunch, SlotDinner},
	},
	{
		ID:          "oatmeal-banana",
		Name:        "Banana oatmeal",
		Description: "Filling breakfast with slow-release energy",
		Ingredients: []DishIngredient{
			{IngredientID: "oats", Amount: 60},
			{IngredientID: "banana", Amount: 100},
			{IngredientID: "milk", Amount: 200},
		},
		Steps: []string{
			"Bring the milk to a gentle simmer",
			"Add the oats and cook for 3 minutes, stirring",
			"Slice the banana",
			"Stir the banana into the porridge",
			"Rest for 2 minutes before serving",
		},
		CookingTimeMinutes: 10,
		Difficulty:         DifficultyEasy,
		SuitableModes:      []nutrition.Mode{nutrition.ModeMuscle, nutrition.ModeGeneral},
		SuitableSlots:      []MealSlot{SlotBreakfast},
	},
	{
		ID:          "boiled-eggs",
		Name:        "Boiled eggs",
		Description: "Simple, reliable source of complete protein",
		Ingredients: []DishIngredient{
			{IngredientID: "egg", Amount: 100},
		},
		Steps: []string{
			"Place the eggs in cold water",
			"Bring to a boil, then cook for 8 minutes",
			"Transfer to cold water to stop the cooking",
			"Peel and serve",
		},
		CookingTimeMinutes: 15,
		Difficulty:         DifficultyEasy,
		SuitableModes:      allModes,
		SuitableSlots:      []MealSlot{SlotBreakfast},
	},
	{
		ID:          "sauteed-cabbage",
		Name:        "Sauteed napa cabbage",
		Description: "Light and crisp, full of vitamins and fiber",
		Ingredients: []DishIngredient{
			{IngredientID: "cabbage", Amount: 300},
		},
		Steps: []string{
			"Tear the cabbage into pieces, keeping stems and leaves separate",
			"Fry dried chili and garlic in hot oil",
			"Add the stems first and stir-fry for a minute",
			"Add the leaves and a splash of vinegar",
			"Season with salt and serve immediately",
		},
		CookingTimeMinutes: 10,
		Difficulty:         DifficultyEasy,
		SuitableModes:      []nutrition.Mode{nutrition.ModeFatLoss, nutrition.ModeGeneral},
		SuitableSlots:      []MealSlot{SlotLunch, SlotDinner},
	},
	{
		ID:          "egg-drop-soup",
		Name:        "Tomato egg drop soup",
		Description: "Appetizing soup, sweet and tangy",
		Ingredients: []DishIngredient{
			{IngredientID: "tomato", Amount: 150},
			{IngredientID: "egg", Amount: 50},
		},
		Steps: []string{
			"Cook the tomato chunks until soft",
			"Add water and bring to a boil",
			"Pour in the beaten egg in a thin stream",
			"Season with salt and white pepper",
			"Finish with scallions and sesame oil",
		},
		CookingTimeMinutes: 15,
		Difficulty:         DifficultyEasy,
		SuitableModes:      []nutrition.Mode{nutrition.ModeFatLoss, nutrition.ModeGeneral},
		SuitableSlots:      []MealSlot{SlotBreakfast, SlotLunch, SlotDinner},
	},
	{
		ID:          "mushroom-chicken",
		Name:        "Braised chicken with mushrooms",
		Description: "Savory and nourishing slow-cooked chicken",
		Ingredients: []DishIngredient{
			{IngredientID: "chicken-leg", Amount: 300},
			{IngredientID: "mushroom", Amount: 100},
		},
		Steps: []string{
			"Chop the chicken and blanch it",
			"Soak the mushrooms until soft",
			"Brown the chicken with ginger and scallions",
			"Add the mushrooms, soy sauce and the soaking water",
			"Simmer for 30 minutes until tender",
		},
		CookingTimeMinutes: 45,
		Difficulty:         DifficultyMedium,
		SuitableModes:      []nutrition.Mode{nutrition.ModeMuscle, nutrition.ModeGeneral},
		SuitableSlots:      []MealSlot{SlotLunch, SlotDinner},
	},
	{
		ID:          "sweet-potato-porridge",
		Name:        "Sweet potato porridge",
		Description: "Whole-grain breakfast, easy on digestion",
		Ingredients: []DishIngredient{
			{IngredientID: "sweet-potato", Amount: 150},
			{IngredientID: "rice", Amount: 50},
		},
		Steps: []string{
			"Peel and dice the sweet potato",
			"Rinse the rice and add plenty of water",
			"Bring to a boil, then add the sweet potato",
			"Simmer on low heat for 30 minutes, stirring occasionally",
		},
		CookingTimeMinutes: 40,
		Difficulty:         DifficultyEasy,
		SuitableModes:      []nutrition.Mode{nutrition.ModeGeneral},
		SuitableSlots:      []MealSlot{SlotBreakfast},
	},
	{
		ID:          "steamed-rice",
		Name:        "Steamed rice",
		Description: "The staple base, steady energy",
		Ingredients: []DishIngredient{
			{IngredientID: "rice", Amount: 100},
		},
		Steps: []string{
			"Rinse the rice twice",
			"Add water to one knuckle above the rice",
			"Cook in a rice cooker",
			"Fluff before serving",
		},
		CookingTimeMinutes: 30,
		Difficulty:         DifficultyEasy,
		SuitableModes:      []nutrition.Mode{nutrition.ModeMuscle, nutrition.ModeGeneral},
		SuitableSlots:      []MealSlot{SlotLunch, SlotDinner},
	},
	{
		ID:          "salmon-salad",
		Name:        "Salmon salad",
		Description: "High protein, low carb, rich in omega-3",
		Ingredients: []DishIngredient{
			{IngredientID: "salmon", Amount: 150},
			{IngredientID: "cucumber", Amount: 100},
			{IngredientID: "tomato", Amount: 100},
		},
		Steps: []string{
			"Sear the salmon for 2 minutes per side and flake it",
			"Dice the cucumber and tomato",
			"Combine everything in a bowl",
			"Dress with olive oil, lemon juice and black pepper",
		},
		CookingTimeMinutes: 20,
		Difficulty:         DifficultyEasy,
		SuitableModes:      []nutrition.Mode{nutrition.ModeMuscle, nutrition.ModeFatLoss},
		SuitableSlots:      []MealSlot{SlotLunch, SlotDinner},
	},
	{
		ID:          "tofu-vegetable-soup",
		Name:        "Tofu and vegetable soup",
		Description: "Light, low calorie, hydrating",
		Ingredients: []DishIngredient{
			{IngredientID: "tofu", Amount: 150},
			{IngredientID: "spinach", Amount: 100},
			{IngredientID: "carrot", Amount: 50},
		},
		Steps: []string{
			"Dice the tofu and slice the carrot",
			"Bring stock to a boil and add the carrot",
			"Add the tofu and simmer for 5 minutes",
			"Add the spinach last",
			"Season with salt and a drop of sesame oil",
		},
		CookingTimeMinutes: 15,
		Difficulty:         DifficultyEasy,
		SuitableModes:      []nutrition.Mode{nutrition.ModeFatLoss, nutrition.ModeGeneral},
		SuitableSlots:      []MealSlot{SlotDinner},
	},
	{
		ID:          "corn-salad",
		Name:        "Corn salad",
		Description: "Fresh and crisp, high in fiber",
		Ingredients: []DishIngredient{
			{IngredientID: "corn", Amount: 150},
			{IngredientID: "cucumber", Amount: 100},
		},
		Steps: []string{
			"Boil the corn and strip the kernels",
			"Dice the cucumber",
			"Mix the corn and cucumber",
			"Add a little salt and olive oil",
			"Toss and serve",
		},
		CookingTimeMinutes: 20,
		Difficulty:         DifficultyEasy,
		SuitableModes:      []nutrition.Mode{nutrition.ModeFatLoss, nutrition.ModeGeneral},
		SuitableSlots:      []MealSlot{SlotLunch},
	},
	{
		ID:          "egg-fried-rice",
		Name:        "Egg fried rice",
		Description: "Classic staple, quick and simple",
		Ingredients: []DishIngredient{
			{IngredientID: "rice", Amount: 200},
			{IngredientID: "egg", Amount: 100},
			{IngredientID: "carrot", Amount: 30},
		},
		Steps: []string{
			"Use cooled rice, broken up by hand",
			"Beat the eggs and dice the carrot",
			"Scramble the eggs in plenty of oil and break them up",
			"Add the rice and toss until every grain is coated",
			"Add the carrot, season with salt and stir through",
		},
		CookingTimeMinutes: 15,
		Difficulty:         DifficultyEasy,
		SuitableModes:      []nutrition.Mode{nutrition.ModeMuscle, nutrition.ModeGeneral},
		SuitableSlots:      []MealSlot{SlotLunch, SlotDinner},
	},
	{
		ID:          "milk-oats",
		Name:        "Milk with oats",
		Description: "Fast balanced breakfast",
		Ingredients: []DishIngredient{
			{IngredientID: "milk", Amount: 250},
			{IngredientID: "oats", Amount: 50},
		},
		Steps: []string{
			"Put the oats in a bowl",
			"Warm the milk",
			"Pour the milk over the oats",
			"Stir and rest for 2 minutes",
			"Top with fruit or nuts if you like",
		},
		CookingTimeMinutes: 5,
		Difficulty:         DifficultyEasy,
		SuitableModes:      allModes,
		SuitableSlots:      []MealSlot{SlotBreakfast},
	},
}
