package targets

import "math"

// DailyTotals is one day of summed intake.
type DailyTotals struct {
	Date     string  `json:"date" yaml:"date"`
	Calories float64 `json:"calories" yaml:"calories"`
	Protein  float64 `json:"protein" yaml:"protein"`
	Carbs    float64 `json:"carbs" yaml:"carbs"`
	Fat      float64 `json:"fat" yaml:"fat"`
}

// InsightGoal is the goal a week of intake is judged against.
type InsightGoal struct {
	Type              GoalType
	TargetCalories    float64
	MacroDistribution MacroSplit
}

type WeeklyInsights struct {
	AdherencePercent int
	AvgCalories      int
	AvgProtein       int
	AvgCarbs         int
	AvgFat           int
	DaysOnTrack      int
	DaysTracked      int
	ProteinGoalMet   bool
	Message          string
}

const genericInsight = "Every day you track is a step forward. Keep logging your meals to see clearer trends."

type insightMessages struct {
	excellent    string
	proteinOnly  string
	caloriesOnly string
}

var weeklyMessages = map[GoalType]insightMessages{
	GoalLose: {
		excellent:    "Excellent week! You stayed in your calorie range and hit your protein, which helps preserve muscle while losing fat.",
		proteinOnly:  "Your protein intake is on point. Tightening up your calories on a few more days will speed up your progress.",
		caloriesOnly: "Great calorie control this week! Adding more protein will help you stay full and protect muscle.",
	},
	GoalGain: {
		excellent:    "Fantastic week! You ate enough and hit your protein, the perfect setup for building muscle.",
		proteinOnly:  "Protein is right where it should be. Push your calories a little higher to keep the gains coming.",
		caloriesOnly: "You're eating enough to grow. Prioritize protein at each meal to turn that surplus into muscle.",
	},
	GoalMaintain: {
		excellent:    "Rock-solid week! Your calories and protein were consistently balanced.",
		proteinOnly:  "Protein was consistent this week. Keep your calories a bit steadier to hold your weight.",
		caloriesOnly: "Your calories were nicely balanced. A bit more protein would round out your week.",
	},
}

const excellentAdherence = 0.8

// Adherent reports whether one day of calories meets the goal's band:
// lose counts days at or below 105% of target, gain at or above 95%, and
// maintain within 10% either side. Unknown goals use the maintain band.
func Adherent(calories, target float64, goalType GoalType) bool {
	switch goalType {
	case GoalLose:
		return calories <= target*1.05
	case GoalGain:
		return calories >= target*0.95
	default:
		return AdherenceWithin(calories, target, 0.10)
	}
}

// AdherenceWithin reports whether actual is within tolerance (a fraction) of
// target. A zero target only accepts zero.
func AdherenceWithin(actual, target, tolerance float64) bool {
	if target == 0 {
		return actual == 0
	}
	lower := target * (1 - tolerance)
	upper := target * (1 + tolerance)
	return actual >= lower && actual <= upper
}

// Weekly summarizes days against goal. The days slice is read-only.
func Weekly(days []DailyTotals, goal InsightGoal) WeeklyInsights {
	out := WeeklyInsights{DaysTracked: len(days), Message: genericInsight}
	if len(days) == 0 {
		return out
	}

	var calories, protein, carbs, fat float64
	onTrack := 0
	for _, d := range days {
		calories += d.Calories
		protein += d.Protein
		carbs += d.Carbs
		fat += d.Fat
		if Adherent(d.Calories, goal.TargetCalories, goal.Type) {
			onTrack++
		}
	}
	n := float64(len(days))
	avgProtein := protein / n
	adherence := float64(onTrack) / n

	proteinGoal := goal.MacroDistribution.ProteinPct * goal.TargetCalories / 400
	out.ProteinGoalMet = avgProtein >= proteinGoal

	out.AdherencePercent = int(math.Round(adherence * 100))
	out.AvgCalories = int(math.Round(calories / n))
	out.AvgProtein = int(math.Round(avgProtein))
	out.AvgCarbs = int(math.Round(carbs / n))
	out.AvgFat = int(math.Round(fat / n))
	out.DaysOnTrack = int(math.Round(adherence * n))
	out.Message = insightMessage(goal.Type, out.ProteinGoalMet, adherence)
	return out
}

func insightMessage(goalType GoalType, proteinMet bool, adherence float64) string {
	messages, ok := weeklyMessages[goalType]
	if !ok {
		messages = weeklyMessages[GoalMaintain]
	}
	switch {
	case proteinMet && adherence >= excellentAdherence:
		return messages.excellent
	case proteinMet:
		return messages.proteinOnly
	case adherence >= excellentAdherence:
		return messages.caloriesOnly
	default:
		return genericInsight
	}
}
