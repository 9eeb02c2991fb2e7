package targets

import "math"

type Status string

const (
	StatusUnder   Status = "under"
	StatusOnTrack Status = "on-track"
	StatusOver    Status = "over"
)

type Feedback struct {
	Status  Status
	Percent float64
	Message string
}

type band struct {
	low  float64
	high float64
}

// dailyBand returns the on-track percentage range for a goal. Unknown goals
// use the maintain band.
func dailyBand(goalType GoalType) band {
	switch goalType {
	case GoalLose:
		return band{low: 80, high: 100}
	case GoalGain, GoalMaintain:
		return band{low: 90, high: 110}
	default:
		return band{low: 90, high: 110}
	}
}

var dailyMessages = map[GoalType]map[Status]string{
	GoalLose: {
		StatusUnder:   "You're well under your calorie target. Make sure you're eating enough to stay energized.",
		StatusOnTrack: "Great job! You're right on track for your weight loss goal.",
		StatusOver:    "You've gone over your calorie target today. Tomorrow is a fresh start.",
	},
	GoalGain: {
		StatusUnder:   "You're below your calorie target. Add a snack or a bigger portion to keep gaining.",
		StatusOnTrack: "Nice work! You're fueling your weight gain goal.",
		StatusOver:    "You're above your calorie target. A little extra is fine, but keep it steady.",
	},
	GoalMaintain: {
		StatusUnder:   "You're under your calorie target. Try to eat a bit more to maintain your weight.",
		StatusOnTrack: "Perfect balance! You're maintaining right where you want to be.",
		StatusOver:    "You're over your calorie target. Balance it out over the next few days.",
	},
}

// DailyProgress classifies consumed calories against target using the goal's
// band. Boundaries are inclusive on the on-track side with no tolerance. A
// non-positive target reports 0%.
func DailyProgress(consumed, target float64, goalType GoalType) Feedback {
	percent := percentOf(consumed, target)
	b := dailyBand(goalType)
	status := classify(percent, b)

	messages, ok := dailyMessages[goalType]
	if !ok {
		messages = dailyMessages[GoalMaintain]
	}
	return Feedback{
		Status:  status,
		Percent: math.Round(percent),
		Message: messages[status],
	}
}

type MacroType string

const (
	MacroProtein MacroType = "protein"
	MacroCarbs   MacroType = "carbs"
	MacroFat     MacroType = "fat"
	MacroFiber   MacroType = "fiber"
)

var macroBand = band{low: 80, high: 120}

// MacroProgress uses one band for every macro and goal.
func MacroProgress(consumed, target float64, macro MacroType) Feedback {
	percent := percentOf(consumed, target)
	status := classify(percent, macroBand)
	name := string(macro)
	if name == "" {
		name = "macro"
	}

	var msg string
	switch status {
	case StatusUnder:
		msg = "You need more " + name + " to reach today's target."
	case StatusOnTrack:
		msg = "Your " + name + " intake is on track."
	default:
		msg = "You've exceeded your " + name + " target for today."
	}
	return Feedback{Status: status, Percent: math.Round(percent), Message: msg}
}

func classify(percent float64, b band) Status {
	switch {
	case percent < b.low:
		return StatusUnder
	case percent <= b.high:
		return StatusOnTrack
	default:
		return StatusOver
	}
}

func percentOf(consumed, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return consumed / target * 100
}
