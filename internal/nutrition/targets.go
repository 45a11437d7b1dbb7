package nutrition

import (
	"math"

	"github.com/linymin/nutriplan-365/internal/profile"
)

// defaultBMR is used when the profile has no height or weight.
const defaultBMR = 1600

// assumedAge feeds the Mifflin-St Jeor formula; the profile carries no age.
const assumedAge = 30

// activityMultipliers maps exercise frequency to its TDEE multiplier.
// Unknown or empty frequency falls back to 1.4 (lightly active).
var activityMultipliers = map[profile.ExerciseFrequency]float64{
	profile.FrequencyNone:     1.2,
	profile.FrequencyLight:    1.375,
	profile.FrequencyModerate: 1.55,
	profile.FrequencyFrequent: 1.725,
	profile.FrequencyDaily:    1.9,
}

const defaultActivityMultiplier = 1.4

// CalculateBMR estimates basal metabolic rate via Mifflin-St Jeor. The
// profile has no gender field, so the male (+5) and female (-161) variants
// are averaged to avoid systematic bias. Missing height or weight yields a
// fixed default instead of an error.
func CalculateBMR(p *profile.UserProfile) int {
	if p == nil || p.WeightKg == nil || p.HeightCm == nil {
		return defaultBMR
	}

	weight, height := *p.WeightKg, *p.HeightCm
	base := 10*weight + 6.25*height - 5*assumedAge
	maleBMR := base + 5
	femaleBMR := base - 161

	return int(math.Round((maleBMR + femaleBMR) / 2))
}

// CalculateTDEE scales a BMR by the activity multiplier for the given
// exercise frequency.
func CalculateTDEE(bmr int, freq profile.ExerciseFrequency) int {
	mult, ok := activityMultipliers[freq]
	if !ok {
		mult = defaultActivityMultiplier
	}
	return int(math.Round(float64(bmr) * mult))
}

// TargetFor derives the personalized calorie band and macro ratios for a
// dietary mode. The fat-loss band never drops below BMR; the muscle band
// sits in a surplus above TDEE.
func TargetFor(mode Mode, p *profile.UserProfile) Target {
	bmr := CalculateBMR(p)
	var freq profile.ExerciseFrequency
	if p != nil {
		freq = p.ExerciseFrequency
	}
	tdee := CalculateTDEE(bmr, freq)

	t := Target{Mode: mode}
	switch mode {
	case ModeMuscle:
		t.CaloriesMin = maxInt(bmr, tdee+200)
		t.CaloriesMax = tdee + 500
		t.ProteinRatio, t.CarbsRatio, t.FatRatio = 0.30, 0.45, 0.25
	case ModeFatLoss:
		t.CaloriesMin = maxInt(bmr, tdee-500)
		t.CaloriesMax = maxInt(bmr+100, tdee-200)
		t.ProteinRatio, t.CarbsRatio, t.FatRatio = 0.35, 0.35, 0.30
	default:
		t.CaloriesMin = maxInt(bmr, tdee-100)
		t.CaloriesMax = tdee + 100
		t.ProteinRatio, t.CarbsRatio, t.FatRatio = 0.25, 0.50, 0.25
	}
	return t
}

// MealCalorieSplit distributes a daily calorie target over the three meal
// slots. Fat loss shifts calories away from dinner; muscle gain spreads
// them more evenly.
func MealCalorieSplit(dailyTarget int, mode Mode) (breakfast, lunch, dinner int) {
	d := float64(dailyTarget)
	switch mode {
	case ModeMuscle:
		return int(math.Round(d * 0.30)), int(math.Round(d * 0.35)), int(math.Round(d * 0.35))
	case ModeFatLoss:
		return int(math.Round(d * 0.30)), int(math.Round(d * 0.40)), int(math.Round(d * 0.30))
	default:
		return int(math.Round(d * 0.25)), int(math.Round(d * 0.40)), int(math.Round(d * 0.35))
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
