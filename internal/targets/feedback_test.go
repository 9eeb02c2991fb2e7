package targets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/saadjs/kcal-core/internal/targets"
)

func TestDailyProgressBoundaries(t *testing.T) {
	t.Parallel()
	cases := []struct {
		consumed float64
		goal     targets.GoalType
		want     targets.Status
	}{
		{1599, targets.GoalLose, targets.StatusUnder},
		{1600, targets.GoalLose, targets.StatusOnTrack},
		{2000, targets.GoalLose, targets.StatusOnTrack},
		{2001, targets.GoalLose, targets.StatusOver},
		{1799, targets.GoalGain, targets.StatusUnder},
		{1800, targets.GoalGain, targets.StatusOnTrack},
		{2200, targets.GoalGain, targets.StatusOnTrack},
		{2201, targets.GoalGain, targets.StatusOver},
		{1799, targets.GoalMaintain, targets.StatusUnder},
		{2200, targets.GoalMaintain, targets.StatusOnTrack},
		{2300, targets.GoalMaintain, targets.StatusOver},
		{1700, targets.GoalType("cut"), targets.StatusUnder},
	}
	for _, tc := range cases {
		got := targets.DailyProgress(tc.consumed, 2000, tc.goal)
		assert.Equal(t, tc.want, got.Status, "consumed=%v goal=%s", tc.consumed, tc.goal)
		assert.NotEmpty(t, got.Message)
	}
}

func TestDailyProgressReferenceScenario(t *testing.T) {
	t.Parallel()
	got := targets.DailyProgress(1600, 2000, targets.GoalLose)
	assert.Equal(t, targets.StatusOnTrack, got.Status)
	assert.Equal(t, 80.0, got.Percent)
}

func TestDailyProgressRoundsPercent(t *testing.T) {
	t.Parallel()
	got := targets.DailyProgress(1234, 2000, targets.GoalMaintain)
	assert.Equal(t, 62.0, got.Percent)
}

func TestDailyProgressZeroTarget(t *testing.T) {
	t.Parallel()
	got := targets.DailyProgress(500, 0, targets.GoalGain)
	assert.Equal(t, 0.0, got.Percent)
	assert.Equal(t, targets.StatusUnder, got.Status)
}

func TestMacroProgress(t *testing.T) {
	t.Parallel()
	assert.Equal(t, targets.StatusUnder, targets.MacroProgress(79, 100, targets.MacroProtein).Status)
	assert.Equal(t, targets.StatusOnTrack, targets.MacroProgress(80, 100, targets.MacroCarbs).Status)
	assert.Equal(t, targets.StatusOnTrack, targets.MacroProgress(120, 100, targets.MacroFat).Status)
	assert.Equal(t, targets.StatusOver, targets.MacroProgress(121, 100, targets.MacroFat).Status)

	got := targets.MacroProgress(50, 100, targets.MacroProtein)
	assert.Contains(t, got.Message, "protein")
	assert.Equal(t, 50.0, got.Percent)
}
