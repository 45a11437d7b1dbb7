package profile

// ExerciseFrequency buckets self-reported workout cadence. It drives the
// activity multiplier used for TDEE estimation.
type ExerciseFrequency string

const (
	FrequencyNone     ExerciseFrequency = "none"
	FrequencyLight    ExerciseFrequency = "light"
	FrequencyModerate ExerciseFrequency = "moderate"
	FrequencyFrequent ExerciseFrequency = "frequent"
	FrequencyDaily    ExerciseFrequency = "daily"
)

// Exercise types referenced by the ingredient recommender.
const (
	ExerciseStrength = "strength"
	ExerciseCardio   = "cardio"
)

// Dietary restriction tags. Unknown tags are ignored by every consumer.
const (
	RestrictionVegetarian     = "vegetarian"
	RestrictionVegan          = "vegan"
	RestrictionNoBeef         = "no_beef"
	RestrictionNoPork         = "no_pork"
	RestrictionSeafoodAllergy = "seafood_allergy"
	RestrictionLactoseFree    = "lactose_free"
)

// UserProfile holds the body metrics and preferences a user filled in.
// Height and weight are optional; consumers fall back to defaults when they
// are missing rather than failing.
type UserProfile struct {
	HeightCm            *float64          `json:"height_cm,omitempty"`
	WeightKg            *float64          `json:"weight_kg,omitempty"`
	ExerciseFrequency   ExerciseFrequency `json:"exercise_frequency,omitempty"`
	ExerciseTypes       []string          `json:"exercise_types,omitempty"`
	TastePreferences    []string          `json:"taste_preferences,omitempty"`
	DietaryRestrictions []string          `json:"dietary_restrictions,omitempty"`
	CookingPreferences  []string          `json:"cooking_preferences,omitempty"`
	LikedIngredients    []string          `json:"liked_ingredients,omitempty"`
	DislikedIngredients []string          `json:"disliked_ingredients,omitempty"`
}

// HasExerciseType reports whether the profile lists the given exercise type.
func (p *UserProfile) HasExerciseType(t string) bool {
	if p == nil {
		return false
	}
	for _, et := range p.ExerciseTypes {
		if et == t {
			return true
		}
	}
	return false
}

// HasRestriction reports whether the profile lists the given dietary restriction.
func (p *UserProfile) HasRestriction(r string) bool {
	if p == nil {
		return false
	}
	for _, dr := range p.DietaryRestrictions {
		if dr == r {
			return true
		}
	}
	return false
}
