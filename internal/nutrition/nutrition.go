package nutrition

import "math"

// Mode is the dietary goal that parameterizes targets and scoring everywhere.
type Mode string

const (
	ModeMuscle  Mode = "muscle"
	ModeFatLoss Mode = "fatloss"
	ModeGeneral Mode = "general"
)

// Modes lists all dietary modes in display order.
func Modes() []Mode {
	return []Mode{ModeMuscle, ModeFatLoss, ModeGeneral}
}

// Valid reports whether m is a known dietary mode.
func (m Mode) Valid() bool {
	switch m {
	case ModeMuscle, ModeFatLoss, ModeGeneral:
		return true
	}
	return false
}

// Info holds calories (kcal) and macros (grams). It is always derived from
// ingredient data, never hand-edited.
type Info struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
}

// Add returns the component-wise sum of n and o.
func (n Info) Add(o Info) Info {
	return Info{
		Calories: n.Calories + o.Calories,
		Protein:  n.Protein + o.Protein,
		Carbs:    n.Carbs + o.Carbs,
		Fat:      n.Fat + o.Fat,
		Fiber:    n.Fiber + o.Fiber,
	}
}

// Rounded returns n with every component rounded to the nearest integer.
func (n Info) Rounded() Info {
	return Info{
		Calories: math.Round(n.Calories),
		Protein:  math.Round(n.Protein),
		Carbs:    math.Round(n.Carbs),
		Fat:      math.Round(n.Fat),
		Fiber:    math.Round(n.Fiber),
	}
}

// Calories per gram of each macro nutrient.
const (
	KcalPerGramProtein = 4
	KcalPerGramCarbs   = 4
	KcalPerGramFat     = 9
)

// Target is a personalized calorie band plus macro calorie ratios.
// The three ratios sum to 1.0 and CaloriesMin <= CaloriesMax always holds.
type Target struct {
	Mode         Mode    `json:"mode"`
	CaloriesMin  int     `json:"calories_min"`
	CaloriesMax  int     `json:"calories_max"`
	ProteinRatio float64 `json:"protein_ratio"`
	CarbsRatio   float64 `json:"carbs_ratio"`
	FatRatio     float64 `json:"fat_ratio"`
}

// GramTargets backs out daily gram targets from the middle of the calorie
// band using 4 kcal/g for protein and carbs and 9 kcal/g for fat.
func (t Target) GramTargets() (proteinG, carbsG, fatG int) {
	avg := float64(t.CaloriesMin+t.CaloriesMax) / 2
	proteinG = int(math.Round(avg * t.ProteinRatio / KcalPerGramProtein))
	carbsG = int(math.Round(avg * t.CarbsRatio / KcalPerGramCarbs))
	fatG = int(math.Round(avg * t.FatRatio / KcalPerGramFat))
	return proteinG, carbsG, fatG
}

// Status classifies an actual intake against a target band.
type Status string

const (
	StatusOnTarget Status = "on_target"
	StatusNear     Status = "near"
	StatusOff      Status = "off"
)

// ClassifyCalories reports how an actual calorie intake compares to the
// target band. "Near" allows a 10% margin on either side.
func ClassifyCalories(actual float64, t Target) Status {
	min, max := float64(t.CaloriesMin), float64(t.CaloriesMax)
	switch {
	case actual >= min && actual <= max:
		return StatusOnTarget
	case actual >= min*0.9 && actual <= max*1.1:
		return StatusNear
	default:
		return StatusOff
	}
}
