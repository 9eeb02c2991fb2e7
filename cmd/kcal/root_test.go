package kcal

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI executes the root command in-process against dbPath. Flag values
// are reset first because cobra keeps them between executions.
func runCLI(t *testing.T, dbPath string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(append([]string{"--db", dbPath}, args...))
	err := rootCmd.Execute()
	return buf.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if f.Value.Type() == "stringArray" {
			if sv, ok := f.Value.(pflag.SliceValue); ok {
				_ = sv.Replace(nil)
			}
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func tempDB(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "kcal.db")
}

func TestRootHelp(t *testing.T) {
	out, err := runCLI(t, tempDB(t), "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "target")
	assert.Contains(t, out, "unit")
}

func TestInitCommandIdempotent(t *testing.T) {
	path := tempDB(t)
	for i := 0; i < 2; i++ {
		out, err := runCLI(t, path, "init")
		require.NoError(t, err, "init run %d", i+1)
		assert.Contains(t, out, path)
	}
}

func TestTargetCalcJSON(t *testing.T) {
	out, err := runCLI(t, tempDB(t), "target", "calc",
		"--age", "30", "--gender", "male", "--height", "180", "--weight", "80",
		"--activity", "moderate", "--goal", "maintain", "--json")
	require.NoError(t, err)

	var got targetsJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.InDelta(t, 1780, got.BMR, 0.001)
	assert.InDelta(t, 2759, got.TDEE, 0.001)
	assert.InDelta(t, 2759, got.DailyCalories, 0.001)
	assert.Equal(t, 207, got.ProteinG)
	assert.Equal(t, 276, got.CarbsG)
	assert.Equal(t, 92, got.FatG)
	assert.Equal(t, 39, got.FiberG)
}

func TestProfileSetThenTarget(t *testing.T) {
	path := tempDB(t)
	_, err := runCLI(t, path, "profile", "set",
		"--age", "30", "--gender", "male", "--height", "180", "--weight", "80",
		"--activity", "moderate", "--goal", "lose", "--weekly-rate", "0.5",
		"--effective-date", "2026-01-01")
	require.NoError(t, err)

	out, err := runCLI(t, path, "target", "--json")
	require.NoError(t, err)
	var got targetsJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.InDelta(t, 2209, got.DailyCalories, 0.001)

	out, err = runCLI(t, path, "profile", "current")
	require.NoError(t, err)
	assert.Contains(t, out, "Goal: lose")
}

func TestTargetWithoutProfileFails(t *testing.T) {
	_, err := runCLI(t, tempDB(t), "target")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no profile configured")
}

func TestProfileSetRejectsUnderage(t *testing.T) {
	_, err := runCLI(t, tempDB(t), "profile", "set",
		"--age", "10", "--gender", "female", "--height", "140", "--weight", "35")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "age")
}

func TestConfigDefaultsApplyToProfile(t *testing.T) {
	path := tempDB(t)
	_, err := runCLI(t, path, "config", "set", "--default-goal", "gain", "--default-macro-split", "40,30,30")
	require.NoError(t, err)

	out, err := runCLI(t, path, "config", "get")
	require.NoError(t, err)
	assert.Contains(t, out, "default_goal_type\tgain")

	_, err = runCLI(t, path, "profile", "set",
		"--age", "25", "--gender", "female", "--height", "165", "--weight", "60",
		"--effective-date", "2026-02-01")
	require.NoError(t, err)

	out, err = runCLI(t, path, "profile", "current")
	require.NoError(t, err)
	assert.Contains(t, out, "Goal: gain")
	assert.Contains(t, out, "Macro split: 40/30/30")
}

func TestConfigSetReadsEveryFlag(t *testing.T) {
	path := tempDB(t)
	out, err := runCLI(t, path, "config", "set",
		"--default-goal", "lose", "--default-activity", "very-active", "--default-macro-split", "35,35,30")
	require.NoError(t, err)
	assert.Contains(t, out, "Updated 3 config value(s)")

	out, err = runCLI(t, path, "config", "get")
	require.NoError(t, err)
	assert.Contains(t, out, "default_goal_type\tlose")
	assert.Contains(t, out, "default_macro_split\t35,35,30")

	_, err = runCLI(t, path, "config", "set", "--default-activity", "couch")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "default_activity_level must be one of")

	_, err = runCLI(t, path, "config", "set")
	require.Error(t, err)
}

func TestFeedbackDaily(t *testing.T) {
	out, err := runCLI(t, tempDB(t), "feedback", "daily", "--consumed", "1800", "--target", "2000", "--goal", "lose", "--json")
	require.NoError(t, err)

	var got feedbackJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "on-track", got.Status)
	assert.InDelta(t, 90, got.Percent, 0.001)
}

func TestFeedbackMacroZeroTarget(t *testing.T) {
	out, err := runCLI(t, tempDB(t), "feedback", "macro", "--consumed", "50", "--target", "0", "--macro", "protein")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "under (0%)"), out)
}

func TestProgressWeightFromProfile(t *testing.T) {
	path := tempDB(t)
	_, err := runCLI(t, path, "profile", "set",
		"--age", "40", "--gender", "female", "--height", "170", "--weight", "90",
		"--goal", "lose", "--weekly-rate", "0.5", "--target-weight", "70")
	require.NoError(t, err)

	out, err := runCLI(t, path, "progress", "weight", "--current", "85")
	require.NoError(t, err)
	assert.Contains(t, out, "Progress: 25%")
}

func TestProgressWeightNeedsTarget(t *testing.T) {
	path := tempDB(t)
	_, err := runCLI(t, path, "profile", "set",
		"--age", "40", "--gender", "female", "--height", "170", "--weight", "90")
	require.NoError(t, err)

	_, err = runCLI(t, path, "progress", "weight", "--current", "85")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no target weight")
}

func TestSuggestFromFile(t *testing.T) {
	dir := t.TempDir()
	foods := filepath.Join(dir, "foods.yaml")
	require.NoError(t, os.WriteFile(foods, []byte(`
- {name: Chicken Breast, calories: 165, proteins: 31, carbs: 0, fat: 3.6}
- {name: Egg Whites, calories: 52, proteins: 11, carbs: 0.7, fat: 0.2}
- {name: Pasta, calories: 400, proteins: 14, carbs: 75, fat: 2}
`), 0o644))

	out, err := runCLI(t, filepath.Join(dir, "kcal.db"), "suggest", "--foods", foods, "--calories", "200", "--goal", "lose", "--json")
	require.NoError(t, err)

	var picks []struct {
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &picks))
	require.Len(t, picks, 2)
	assert.Equal(t, "Egg Whites", picks[0].Name)
	assert.Equal(t, "Chicken Breast", picks[1].Name)
}

func TestInsightsWeeklyWithFlags(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "week.yaml")
	require.NoError(t, os.WriteFile(data, []byte(`
days:
  - {date: "2026-03-01", calories: 1900, protein: 160, carbs: 180, fat: 60}
  - {date: "2026-03-02", calories: 2300, protein: 90, carbs: 260, fat: 80}
`), 0o644))

	out, err := runCLI(t, filepath.Join(dir, "kcal.db"), "insights", "weekly",
		"--data", data, "--goal", "lose", "--target-calories", "2000", "--macro-split", "30,40,30", "--json")
	require.NoError(t, err)

	var got weeklyJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 2, got.DaysTracked)
	assert.Equal(t, 1, got.DaysOnTrack)
	assert.Equal(t, 50, got.AdherencePercent)
	assert.Equal(t, 2100, got.AvgCalories)
}

func TestUnitConvert(t *testing.T) {
	out, err := runCLI(t, tempDB(t), "unit", "convert", "2", "cups", "ml")
	require.NoError(t, err)
	assert.Equal(t, "2 cup = 473.176 ml\n", out)
}

func TestUnitConvertIncompatible(t *testing.T) {
	_, err := runCLI(t, tempDB(t), "unit", "convert", "1", "cup", "g")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "incompatible units")
}

func TestUnitPreferThenDefault(t *testing.T) {
	path := tempDB(t)
	out, err := runCLI(t, path, "unit", "default", "Greek Yogurt")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "cup (suggestion"), out)

	_, err = runCLI(t, path, "unit", "prefer", "Greek Yogurt", "g")
	require.NoError(t, err)
	out, err = runCLI(t, path, "unit", "prefer", "greek yogurt", "G")
	require.NoError(t, err)
	assert.Contains(t, out, "used 2 time(s)")

	out, err = runCLI(t, path, "unit", "default", "greek yogurt")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "g (preference"), out)

	out, err = runCLI(t, path, "unit", "prefs")
	require.NoError(t, err)
	assert.Contains(t, out, "greek yogurt\tg\t2")
}

func TestUnitScale(t *testing.T) {
	out, err := runCLI(t, tempDB(t), "unit", "scale",
		"--base-qty", "100", "--base-unit", "g", "--qty", "4", "--unit", "oz",
		"--nutrient", "calories=165", "--nutrient", "protein=31", "--json")
	require.NoError(t, err)

	var got scaleJSONOut
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.False(t, got.Approximate)
	assert.InDelta(t, 187.11, got.Nutrients["calories"], 0.001)
	assert.InDelta(t, 35.15, got.Nutrients["protein"], 0.001)
}

func TestUnitScaleStrictRejectsApproximation(t *testing.T) {
	_, err := runCLI(t, tempDB(t), "unit", "scale",
		"--base-qty", "1", "--base-unit", "piece", "--qty", "50", "--unit", "g",
		"--nutrient", "calories=70", "--strict")
	require.Error(t, err)

	out, err := runCLI(t, tempDB(t), "unit", "scale",
		"--base-qty", "1", "--base-unit", "piece", "--qty", "2", "--unit", "g",
		"--nutrient", "calories=70")
	require.NoError(t, err)
	assert.Contains(t, out, "(approximate)")
	assert.Contains(t, out, "calories: 140")
}
