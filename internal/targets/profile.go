// Package targets derives daily energy and macro targets from a body profile
// and goal, and classifies how well consumption tracks those targets.
//
// Every function is pure. Unknown enum values fall back to a documented
// default instead of failing, so callers can always render a result.
package targets

import "strings"

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// ParseGender normalizes s. Values other than male/female map to GenderOther.
func ParseGender(s string) Gender {
	switch g := Gender(normalize(s)); g {
	case GenderMale, GenderFemale:
		return g
	default:
		return GenderOther
	}
}

type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// ParseActivityLevel normalizes s. Unrecognized values are kept as-is and
// resolve to the sedentary multiplier.
func ParseActivityLevel(s string) ActivityLevel {
	return ActivityLevel(strings.ReplaceAll(normalize(s), "-", "_"))
}

// Multiplier returns the TDEE factor for the level; unknown levels use 1.2.
func (a ActivityLevel) Multiplier() float64 {
	switch a {
	case ActivitySedentary:
		return 1.2
	case ActivityLight:
		return 1.375
	case ActivityModerate:
		return 1.55
	case ActivityActive:
		return 1.725
	case ActivityVeryActive:
		return 1.9
	default:
		return 1.2
	}
}

func (a ActivityLevel) Valid() bool {
	switch a {
	case ActivitySedentary, ActivityLight, ActivityModerate, ActivityActive, ActivityVeryActive:
		return true
	}
	return false
}

type GoalType string

const (
	GoalLose     GoalType = "lose"
	GoalMaintain GoalType = "maintain"
	GoalGain     GoalType = "gain"
)

// ParseGoalType normalizes s without rejecting unknown values.
func ParseGoalType(s string) GoalType {
	return GoalType(normalize(s))
}

func (g GoalType) Valid() bool {
	switch g {
	case GoalLose, GoalMaintain, GoalGain:
		return true
	}
	return false
}

// BodyProfile is an immutable snapshot of the person the targets are computed for.
type BodyProfile struct {
	Age           int
	Gender        Gender
	HeightCm      float64
	WeightKg      float64
	ActivityLevel ActivityLevel
}

// MacroSplit holds protein/carbs/fat as percentages of calories. The three
// values need not sum to 100.
type MacroSplit struct {
	ProteinPct float64
	CarbsPct   float64
	FatPct     float64
}

// Normalize rescales the split so the percentages sum to exactly 100. A split
// whose total is not positive normalizes to all zeros.
func (m MacroSplit) Normalize() MacroSplit {
	total := m.ProteinPct + m.CarbsPct + m.FatPct
	if total <= 0 {
		return MacroSplit{}
	}
	return MacroSplit{
		ProteinPct: m.ProteinPct / total * 100,
		CarbsPct:   m.CarbsPct / total * 100,
		FatPct:     m.FatPct / total * 100,
	}
}

type Goal struct {
	Type         GoalType
	WeeklyRateKg float64
	Split        MacroSplit
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
