package targets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saadjs/kcal-core/internal/targets"
)

func foodIndex() []targets.Food {
	return []targets.Food{
		{Name: "chicken breast", Calories: 165, Proteins: 31, Carbs: 0, Fat: 3.6},
		{Name: "greek yogurt", Calories: 100, Proteins: 17, Carbs: 6, Fat: 0.7},
		{Name: "egg whites", Calories: 52, Proteins: 11, Carbs: 0.7, Fat: 0.2},
		{Name: "salmon", Calories: 208, Proteins: 20, Carbs: 0, Fat: 13},
		{Name: "steak", Calories: 271, Proteins: 25, Carbs: 0, Fat: 19},
		{Name: "protein shake", Calories: 400, Proteins: 40, Carbs: 45, Fat: 8},
		{Name: "pasta bowl", Calories: 650, Proteins: 22, Carbs: 110, Fat: 12},
		{Name: "oatmeal", Calories: 150, Proteins: 5, Carbs: 27, Fat: 3},
		{Name: "rice cake", Calories: 35, Proteins: 0.7, Carbs: 7.3, Fat: 0.3},
	}
}

func names(foods []targets.Food) []string {
	out := make([]string, 0, len(foods))
	for _, f := range foods {
		out = append(out, f.Name)
	}
	return out
}

func TestSuggestMealsLoseLowRemaining(t *testing.T) {
	t.Parallel()
	got := targets.SuggestMeals(targets.Remaining{Calories: 200}, targets.GoalLose, foodIndex())
	assert.Equal(t, []string{"egg whites", "chicken breast", "greek yogurt"}, names(got))
}

func TestSuggestMealsLoseHighRemaining(t *testing.T) {
	t.Parallel()
	got := targets.SuggestMeals(targets.Remaining{Calories: 500}, targets.GoalLose, foodIndex())
	// calories <= 300 and protein >= 15, sorted by protein per calorie
	assert.Equal(t, []string{"chicken breast", "greek yogurt", "salmon", "steak"}, names(got))
}

func TestSuggestMealsGain(t *testing.T) {
	t.Parallel()
	got := targets.SuggestMeals(targets.Remaining{Calories: 700}, targets.GoalGain, foodIndex())
	assert.Equal(t, []string{"pasta bowl", "protein shake", "steak", "salmon"}, names(got))
}

func TestSuggestMealsMaintain(t *testing.T) {
	t.Parallel()
	got := targets.SuggestMeals(targets.Remaining{Calories: 300}, targets.GoalMaintain, foodIndex())
	require.Len(t, got, 4)
	// egg whites and rice cake carry too few macros; steak is over 70% of remaining
	assert.Equal(t, []string{"chicken breast", "greek yogurt", "salmon", "oatmeal"}, names(got))
}

func TestSuggestMealsTruncatesAndKeepsInput(t *testing.T) {
	t.Parallel()
	foods := make([]targets.Food, 0, 12)
	for i := 0; i < 12; i++ {
		foods = append(foods, targets.Food{Name: "shake", Calories: 300 + float64(i), Proteins: 30})
	}
	original := append([]targets.Food(nil), foods...)

	got := targets.SuggestMeals(targets.Remaining{Calories: 1000}, targets.GoalGain, foods)
	require.Len(t, got, targets.MaxSuggestions)
	assert.Equal(t, 311.0, got[0].Calories)
	assert.Equal(t, original, foods)
}

func TestSuggestMealsZeroCalorieFoodDoesNotPanic(t *testing.T) {
	t.Parallel()
	foods := append(foodIndex(), targets.Food{Name: "water", Calories: 0, Proteins: 0, Carbs: 0, Fat: 0})
	assert.NotPanics(t, func() {
		targets.SuggestMeals(targets.Remaining{Calories: 200}, targets.GoalLose, foods)
		targets.SuggestMeals(targets.Remaining{Calories: 600}, targets.GoalMaintain, foods)
	})
}
