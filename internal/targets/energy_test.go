package targets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saadjs/kcal-core/internal/targets"
)

func referenceProfile() targets.BodyProfile {
	return targets.BodyProfile{
		Age:           30,
		Gender:        targets.GenderMale,
		HeightCm:      180,
		WeightKg:      80,
		ActivityLevel: targets.ActivityModerate,
	}
}

func TestBMRAndTDEEReferenceProfile(t *testing.T) {
	t.Parallel()
	p := referenceProfile()

	bmr := targets.BMR(p)
	assert.InDelta(t, 1780, bmr, 1e-9)
	assert.InDelta(t, 2759, targets.TDEE(bmr, p.ActivityLevel), 1e-9)
}

func TestBMRNonMaleUsesFemaleOffset(t *testing.T) {
	t.Parallel()
	p := referenceProfile()
	male := targets.BMR(p)

	for _, g := range []targets.Gender{targets.GenderFemale, targets.GenderOther, targets.Gender("unknown")} {
		p.Gender = g
		assert.InDelta(t, male-166, targets.BMR(p), 1e-9, "gender %q", g)
	}
}

func TestBMRMonotonic(t *testing.T) {
	t.Parallel()
	p := referenceProfile()
	heavier, taller, older := p, p, p
	heavier.WeightKg++
	taller.HeightCm++
	older.Age++

	assert.Greater(t, targets.BMR(heavier), targets.BMR(p))
	assert.Greater(t, targets.BMR(taller), targets.BMR(p))
	assert.Less(t, targets.BMR(older), targets.BMR(p))
}

func TestActivityMultipliers(t *testing.T) {
	t.Parallel()
	cases := map[string]float64{
		"sedentary":   1.2,
		"light":       1.375,
		"moderate":    1.55,
		"active":      1.725,
		"very_active": 1.9,
		"Very-Active": 1.9,
		"couch":       1.2,
		"":            1.2,
	}
	for in, want := range cases {
		assert.Equal(t, want, targets.ParseActivityLevel(in).Multiplier(), "level %q", in)
	}
}

func TestCalorieTarget(t *testing.T) {
	t.Parallel()
	assert.InDelta(t, 2500, targets.CalorieTarget(2500, targets.GoalMaintain, 0.5), 1e-9)
	assert.InDelta(t, 2000, targets.CalorieTarget(2500, targets.GoalLose, 0.5*7/7.7), 1e-9)
	assert.InDelta(t, 3050, targets.CalorieTarget(2500, targets.GoalGain, 0.5), 1e-9)
	assert.InDelta(t, 2500, targets.CalorieTarget(2500, targets.GoalType("bulk"), 0.5), 1e-9)
}

func TestCalorieTargetLoseFloor(t *testing.T) {
	t.Parallel()
	for _, rate := range []float64{0, 0.25, 0.5, 1, 2, 5, 100} {
		for _, tdee := range []float64{0, 1100, 1500, 2200, 3500} {
			got := targets.CalorieTarget(tdee, targets.GoalLose, rate)
			assert.GreaterOrEqual(t, got, targets.MinLoseCalories, "tdee=%v rate=%v", tdee, rate)
		}
	}
}

func TestMacroSplitNormalize(t *testing.T) {
	t.Parallel()
	for _, split := range []targets.MacroSplit{
		{ProteinPct: 50, CarbsPct: 50, FatPct: 50},
		{ProteinPct: 30, CarbsPct: 40, FatPct: 30},
		{ProteinPct: 1, CarbsPct: 2, FatPct: 97},
		{ProteinPct: 10, CarbsPct: 10, FatPct: 5},
	} {
		n := split.Normalize()
		assert.InDelta(t, 100, n.ProteinPct+n.CarbsPct+n.FatPct, 1e-9, "split %+v", split)
	}

	even := targets.MacroSplit{ProteinPct: 50, CarbsPct: 50, FatPct: 50}.Normalize()
	assert.InDelta(t, 33.333, even.ProteinPct, 0.001)
	assert.Equal(t, targets.MacroSplit{}, targets.MacroSplit{}.Normalize())
}

func TestMacroTargets(t *testing.T) {
	t.Parallel()
	got := targets.MacroTargets(2000, targets.MacroSplit{ProteinPct: 30, CarbsPct: 40, FatPct: 30})
	assert.Equal(t, targets.MacroGrams{Protein: 150, Carbs: 200, Fat: 67}, got)

	skewed := targets.MacroTargets(2000, targets.MacroSplit{ProteinPct: 60, CarbsPct: 80, FatPct: 60})
	assert.Equal(t, got, skewed)

	assert.Equal(t, targets.MacroGrams{}, targets.MacroTargets(2000, targets.MacroSplit{}))
}

func TestFiberTarget(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 28, targets.FiberTarget(2000))
	assert.Equal(t, 39, targets.FiberTarget(2759))
	assert.Equal(t, 0, targets.FiberTarget(0))
}

func TestCalculate(t *testing.T) {
	t.Parallel()
	got := targets.Calculate(referenceProfile(), targets.Goal{
		Type:         targets.GoalMaintain,
		WeeklyRateKg: 0,
		Split:        targets.MacroSplit{ProteinPct: 30, CarbsPct: 40, FatPct: 30},
	})
	require.InDelta(t, 2759, got.DailyCalories, 1e-9)
	assert.Equal(t, 207, got.Macros.Protein)
	assert.Equal(t, 276, got.Macros.Carbs)
	assert.Equal(t, 92, got.Macros.Fat)
	assert.Equal(t, 39, got.FiberGrams)
}

func TestWeightProgress(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 1.0, targets.WeightProgress(80, 75, 75))
	assert.InDelta(t, 0.5, targets.WeightProgress(85, 90, 80), 1e-9)
	assert.Equal(t, 1.0, targets.WeightProgress(70, 90, 80))
	assert.Equal(t, 0.0, targets.WeightProgress(90, 90, 80))
	// distance only: gaining while trying to lose still counts
	assert.InDelta(t, 0.5, targets.WeightProgress(95, 90, 80), 1e-9)
}

func TestParseGender(t *testing.T) {
	t.Parallel()
	assert.Equal(t, targets.GenderMale, targets.ParseGender(" Male "))
	assert.Equal(t, targets.GenderFemale, targets.ParseGender("female"))
	assert.Equal(t, targets.GenderOther, targets.ParseGender("nonbinary"))
}
