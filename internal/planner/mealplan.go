// Package planner assembles dishes into meals, days and weekly plans.
package planner

import (
	"time"

	"github.com/linymin/nutriplan-365/internal/catalog"
	"github.com/linymin/nutriplan-365/internal/nutrition"
)

// Meal is the set of dishes selected for one slot of one day. Immutable once
// built; TotalNutrition is the rounded sum over Dishes.
type Meal struct {
	Slot           catalog.MealSlot `json:"slot"`
	Dishes         []catalog.Dish   `json:"dishes"`
	TotalNutrition nutrition.Info   `json:"total_nutrition"`
}

// DailyPlan is one generated day. Adopted is the only field a user can
// change after generation.
type DailyPlan struct {
	DateIndex      int            `json:"date_index"`
	DayName        string         `json:"day_name"`
	Breakfast      Meal           `json:"breakfast"`
	Lunch          Meal           `json:"lunch"`
	Dinner         Meal           `json:"dinner"`
	TotalNutrition nutrition.Info `json:"total_nutrition"`
	Adopted        bool           `json:"adopted"`
}

// Meals returns the day's meals in slot order.
func (d DailyPlan) Meals() []Meal {
	return []Meal{d.Breakfast, d.Lunch, d.Dinner}
}

// WeeklyPlan is a generated 7-day plan. IngredientsUsed snapshots the exact
// selection the plan was generated from, so staleness against a changed
// selection is detectable.
type WeeklyPlan struct {
	ID              string               `json:"id"`
	WeekStart       time.Time            `json:"week_start"`
	Mode            nutrition.Mode       `json:"mode"`
	Days            []DailyPlan          `json:"days"`
	TotalNutrition  nutrition.Info       `json:"total_nutrition"`
	IngredientsUsed []catalog.Ingredient `json:"ingredients_used"`
}

// SameSelection reports whether the given selection matches the snapshot the
// plan was generated from. A mismatch means the plan is stale and should be
// regenerated.
func (p *WeeklyPlan) SameSelection(selection []catalog.Ingredient) bool {
	if len(selection) != len(p.IngredientsUsed) {
		return false
	}
	used := make(map[string]bool, len(p.IngredientsUsed))
	for _, ing := range p.IngredientsUsed {
		used[ing.ID] = true
	}
	for _, ing := range selection {
		if !used[ing.ID] {
			return false
		}
	}
	return true
}

// AdoptedDays counts the days marked adopted.
func (p *WeeklyPlan) AdoptedDays() int {
	n := 0
	for _, d := range p.Days {
		if d.Adopted {
			n++
		}
	}
	return n
}

// ToggleDayAdoption returns a copy of the plan with only the given day's
// adopted flag flipped. The input plan is never mutated. An out-of-range
// index returns an unchanged copy.
func ToggleDayAdoption(p *WeeklyPlan, dayIndex int) *WeeklyPlan {
	out := *p
	out.Days = make([]DailyPlan, len(p.Days))
	copy(out.Days, p.Days)
	if dayIndex >= 0 && dayIndex < len(out.Days) {
		out.Days[dayIndex].Adopted = !out.Days[dayIndex].Adopted
	}
	return &out
}

var dayNames = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// WeekStart returns the Monday of t's week at midnight UTC.
func WeekStart(t time.Time) time.Time {
	t = t.UTC()
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	t = t.AddDate(0, 0, -(weekday - 1))
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
