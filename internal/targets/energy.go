package targets

import "math"

const (
	// KcalPerKgFat is the energy stored in one kilogram of adipose tissue.
	KcalPerKgFat = 7700.0
	// MinLoseCalories is the floor for a weight-loss calorie target.
	MinLoseCalories = 1200.0

	kcalPerGramProtein = 4.0
	kcalPerGramCarbs   = 4.0
	kcalPerGramFat     = 9.0
	fiberPerKcal       = 0.014
)

// BMR uses Mifflin-St Jeor. Only GenderMale gets the +5 offset; female,
// other and unknown values all get -161.
func BMR(p BodyProfile) float64 {
	base := 10*p.WeightKg + 6.25*p.HeightCm - 5*float64(p.Age)
	switch p.Gender {
	case GenderMale:
		return base + 5
	default:
		return base - 161
	}
}

func TDEE(bmr float64, level ActivityLevel) float64 {
	return bmr * level.Multiplier()
}

// CalorieTarget adjusts tdee by the daily share of the weekly rate. The rate
// is used as a magnitude; goalType decides the direction. Loss targets never
// drop below MinLoseCalories.
func CalorieTarget(tdee float64, goalType GoalType, weeklyRateKg float64) float64 {
	adjustment := math.Abs(weeklyRateKg) * KcalPerKgFat / 7
	switch goalType {
	case GoalLose:
		return math.Max(tdee-adjustment, MinLoseCalories)
	case GoalGain:
		return tdee + adjustment
	case GoalMaintain:
		return tdee
	default:
		return tdee
	}
}

type MacroGrams struct {
	Protein int
	Carbs   int
	Fat     int
}

// MacroTargets converts a calorie target into grams after renormalizing the
// split. Each macro is rounded independently, so the grams may not reproduce
// the calorie target exactly.
func MacroTargets(calories float64, split MacroSplit) MacroGrams {
	n := split.Normalize()
	return MacroGrams{
		Protein: nonNegativeRound(calories * n.ProteinPct / 100 / kcalPerGramProtein),
		Carbs:   nonNegativeRound(calories * n.CarbsPct / 100 / kcalPerGramCarbs),
		Fat:     nonNegativeRound(calories * n.FatPct / 100 / kcalPerGramFat),
	}
}

// FiberTarget is roughly 14 g per 1000 kcal.
func FiberTarget(calories float64) int {
	return nonNegativeRound(calories * fiberPerKcal)
}

// Targets is the full set of values derived from a profile and goal.
type Targets struct {
	BMR           float64
	TDEE          float64
	DailyCalories float64
	Macros        MacroGrams
	FiberGrams    int
}

func Calculate(p BodyProfile, g Goal) Targets {
	bmr := BMR(p)
	tdee := TDEE(bmr, p.ActivityLevel)
	calories := math.Max(CalorieTarget(tdee, g.Type, g.WeeklyRateKg), 0)
	return Targets{
		BMR:           bmr,
		TDEE:          tdee,
		DailyCalories: calories,
		Macros:        MacroTargets(calories, g.Split),
		FiberGrams:    FiberTarget(calories),
	}
}

// WeightProgress reports how far current has moved from start toward target
// as a fraction in [0, 1]. It measures distance only, so moving away from the
// target in the opposite direction also increases progress.
func WeightProgress(current, start, target float64) float64 {
	if start == target {
		return 1
	}
	return clamp01(math.Abs(current-start) / math.Abs(target-start))
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func nonNegativeRound(v float64) int {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	return int(math.Round(v))
}
