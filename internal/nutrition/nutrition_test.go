package nutrition

import (
	"math"
	"testing"

	"github.com/linymin/nutriplan-365/internal/profile"
)

func floatPtr(v float64) *float64 { return &v }

func TestCalculateBMR(t *testing.T) {
	t.Run("KnownProfile", func(t *testing.T) {
		p := &profile.UserProfile{
			HeightCm: floatPtr(170),
			WeightKg: floatPtr(65),
		}
		// 10*65 + 6.25*170 - 5*30 = 1562.5; averaged offset -78 -> 1484.5 -> 1485
		got := CalculateBMR(p)
		if got != 1485 {
			t.Errorf("Expected BMR 1485, got %d", got)
		}
	})

	t.Run("MissingMetricsFallsBack", func(t *testing.T) {
		if got := CalculateBMR(&profile.UserProfile{}); got != 1600 {
			t.Errorf("Expected default BMR 1600, got %d", got)
		}
		if got := CalculateBMR(nil); got != 1600 {
			t.Errorf("Expected default BMR 1600 for nil profile, got %d", got)
		}
		if got := CalculateBMR(&profile.UserProfile{WeightKg: floatPtr(70)}); got != 1600 {
			t.Errorf("Expected default BMR 1600 when height missing, got %d", got)
		}
	})
}

func TestCalculateTDEE(t *testing.T) {
	cases := []struct {
		freq profile.ExerciseFrequency
		want int
	}{
		{profile.FrequencyNone, 1920},     // 1600 * 1.2
		{profile.FrequencyLight, 2200},    // 1600 * 1.375
		{profile.FrequencyModerate, 2480}, // 1600 * 1.55
		{profile.FrequencyFrequent, 2760}, // 1600 * 1.725
		{profile.FrequencyDaily, 3040},    // 1600 * 1.9
		{"", 2240},                        // unknown -> 1.4
		{"sometimes", 2240},
	}
	for _, c := range cases {
		if got := CalculateTDEE(1600, c.freq); got != c.want {
			t.Errorf("TDEE(1600, %q): expected %d, got %d", c.freq, c.want, got)
		}
	}
}

func TestTargetFor(t *testing.T) {
	p := &profile.UserProfile{
		HeightCm:          floatPtr(175),
		WeightKg:          floatPtr(70),
		ExerciseFrequency: profile.FrequencyModerate,
	}
	// BMR = round((10*70 + 6.25*175 - 150) - 78) = 1566; TDEE = round(1566*1.55) = 2427

	t.Run("Muscle", func(t *testing.T) {
		tgt := TargetFor(ModeMuscle, p)
		if tgt.CaloriesMin != 2627 {
			t.Errorf("Expected CaloriesMin 2627, got %d", tgt.CaloriesMin)
		}
		if tgt.CaloriesMax != 2927 {
			t.Errorf("Expected CaloriesMax 2927, got %d", tgt.CaloriesMax)
		}
		if tgt.ProteinRatio != 0.30 || tgt.CarbsRatio != 0.45 || tgt.FatRatio != 0.25 {
			t.Errorf("Unexpected muscle ratios: %v/%v/%v", tgt.ProteinRatio, tgt.CarbsRatio, tgt.FatRatio)
		}
	})

	t.Run("FatLossNeverBelowBMR", func(t *testing.T) {
		sedentary := &profile.UserProfile{
			HeightCm:          floatPtr(175),
			WeightKg:          floatPtr(70),
			ExerciseFrequency: profile.FrequencyNone,
		}
		tgt := TargetFor(ModeFatLoss, sedentary)
		bmr := CalculateBMR(sedentary)
		if tgt.CaloriesMin < bmr {
			t.Errorf("Fat loss CaloriesMin %d fell below BMR %d", tgt.CaloriesMin, bmr)
		}
	})

	t.Run("InvariantsAllModes", func(t *testing.T) {
		for _, mode := range Modes() {
			tgt := TargetFor(mode, p)
			if tgt.CaloriesMin > tgt.CaloriesMax {
				t.Errorf("%s: CaloriesMin %d > CaloriesMax %d", mode, tgt.CaloriesMin, tgt.CaloriesMax)
			}
			sum := tgt.ProteinRatio + tgt.CarbsRatio + tgt.FatRatio
			if math.Abs(sum-1.0) > 1e-6 {
				t.Errorf("%s: ratios sum to %v, expected 1.0", mode, sum)
			}
		}
	})

	t.Run("NilProfile", func(t *testing.T) {
		tgt := TargetFor(ModeGeneral, nil)
		if tgt.CaloriesMin > tgt.CaloriesMax {
			t.Errorf("nil profile: CaloriesMin %d > CaloriesMax %d", tgt.CaloriesMin, tgt.CaloriesMax)
		}
	})
}

func TestGramTargets(t *testing.T) {
	tgt := Target{
		Mode:        ModeGeneral,
		CaloriesMin: 2000, CaloriesMax: 2200,
		ProteinRatio: 0.25, CarbsRatio: 0.50, FatRatio: 0.25,
	}
	// Band average 2100: protein 2100*0.25/4=131, carbs 2100*0.50/4=263, fat 2100*0.25/9=58
	proteinG, carbsG, fatG := tgt.GramTargets()
	if proteinG != 131 {
		t.Errorf("Expected protein 131g, got %d", proteinG)
	}
	if carbsG != 263 {
		t.Errorf("Expected carbs 263g, got %d", carbsG)
	}
	if fatG != 58 {
		t.Errorf("Expected fat 58g, got %d", fatG)
	}
}

func TestClassifyCalories(t *testing.T) {
	tgt := Target{CaloriesMin: 2000, CaloriesMax: 2200}
	cases := []struct {
		actual float64
		want   Status
	}{
		{2100, StatusOnTarget},
		{2000, StatusOnTarget},
		{2200, StatusOnTarget},
		{1900, StatusNear}, // within 2000*0.9
		{2400, StatusNear}, // within 2200*1.1
		{1700, StatusOff},
		{2500, StatusOff},
	}
	for _, c := range cases {
		if got := ClassifyCalories(c.actual, tgt); got != c.want {
			t.Errorf("ClassifyCalories(%v): expected %s, got %s", c.actual, c.want, got)
		}
	}
}

func TestMealCalorieSplit(t *testing.T) {
	b, l, d := MealCalorieSplit(2000, ModeFatLoss)
	if b != 600 || l != 800 || d != 600 {
		t.Errorf("Expected 600/800/600, got %d/%d/%d", b, l, d)
	}
}

func TestInfoRounding(t *testing.T) {
	info := Info{Calories: 100.4, Protein: 10.5, Carbs: 20.49, Fat: 5.51, Fiber: 1.5}
	r := info.Rounded()
	if r.Calories != 100 || r.Protein != 11 || r.Carbs != 20 || r.Fat != 6 || r.Fiber != 2 {
		t.Errorf("Unexpected rounding result: %+v", r)
	}
}
