package targets

import (
	"math"
	"sort"
)

// MaxSuggestions caps the number of foods SuggestMeals returns.
const MaxSuggestions = 5

// Food is a suggestion candidate with nutrition for one serving.
type Food struct {
	Name     string  `json:"name" yaml:"name"`
	Calories float64 `json:"calories" yaml:"calories"`
	Proteins float64 `json:"proteins" yaml:"proteins"`
	Carbs    float64 `json:"carbs" yaml:"carbs"`
	Fat      float64 `json:"fat" yaml:"fat"`
}

// Remaining is what is left of the day's targets.
type Remaining struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
}

// SuggestMeals filters foods by goal-specific rules and returns the best
// MaxSuggestions. The input slice is not modified. Ratios are not guarded
// against zero-calorie or zero-protein foods. Unknown goals use the maintain
// rules.
func SuggestMeals(remaining Remaining, goalType GoalType, foods []Food) []Food {
	keep, less := mealRules(remaining, goalType)

	out := make([]Food, 0, len(foods))
	for _, f := range foods {
		if keep(f) {
			out = append(out, f)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i], out[j])
	})
	if len(out) > MaxSuggestions {
		out = out[:MaxSuggestions]
	}
	return out
}

func mealRules(remaining Remaining, goalType GoalType) (keep func(Food) bool, less func(a, b Food) bool) {
	switch goalType {
	case GoalLose:
		if remaining.Calories < 300 {
			keep = func(f Food) bool {
				return f.Calories <= remaining.Calories && f.Proteins >= 10 && f.Calories/f.Proteins < 15
			}
		} else {
			keep = func(f Food) bool {
				return f.Calories <= 0.6*remaining.Calories && f.Proteins >= 15
			}
		}
		less = func(a, b Food) bool {
			return proteinPerCalorie(a) > proteinPerCalorie(b)
		}
	case GoalGain:
		keep = func(f Food) bool {
			return f.Calories >= 200 && f.Proteins >= 15 && f.Calories <= remaining.Calories
		}
		less = func(a, b Food) bool {
			return a.Calories > b.Calories
		}
	default:
		keep = func(f Food) bool {
			return f.Calories <= 0.7*remaining.Calories && f.Proteins+f.Carbs+f.Fat > 15
		}
		less = func(a, b Food) bool {
			return math.Abs(proteinPerCalorie(a)-0.3) < math.Abs(proteinPerCalorie(b)-0.3)
		}
	}
	return keep, less
}

func proteinPerCalorie(f Food) float64 {
	return f.Proteins / f.Calories
}
