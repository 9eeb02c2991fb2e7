package kcal

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/saadjs/kcal-core/internal/service"
	"github.com/saadjs/kcal-core/internal/targets"
)

type weeklyJSON struct {
	AdherencePercent int    `json:"adherence_percent"`
	AvgCalories      int    `json:"avg_calories"`
	AvgProtein       int    `json:"avg_protein"`
	AvgCarbs         int    `json:"avg_carbs"`
	AvgFat           int    `json:"avg_fat"`
	DaysOnTrack      int    `json:"days_on_track"`
	DaysTracked      int    `json:"days_tracked"`
	ProteinGoalMet   bool   `json:"protein_goal_met"`
	Message          string `json:"message"`
}

var (
	insightsData           string
	insightsGoal           string
	insightsTargetCalories float64
	insightsSplit          string
	insightsJSON           bool
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Summarize intake over a period",
}

var insightsWeeklyCmd = &cobra.Command{
	Use:   "weekly",
	Short: "Weekly adherence, averages and coaching message",
	RunE: func(cmd *cobra.Command, args []string) error {
		days, err := service.LoadWeeklyData(insightsData)
		if err != nil {
			return err
		}
		goal, err := resolveInsightGoal(cmd)
		if err != nil {
			return err
		}
		w := targets.Weekly(days, goal)
		logger.Debug("weekly insights",
			zap.String("goal", string(goal.Type)),
			zap.Float64("target_calories", goal.TargetCalories),
			zap.Int("days", w.DaysTracked))

		if insightsJSON {
			return writeJSON(cmd.OutOrStdout(), weeklyJSON(w))
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Adherence: %d%% (%d of %d days on track)\n", w.AdherencePercent, w.DaysOnTrack, w.DaysTracked)
		fmt.Fprintf(out, "Averages: %d kcal, %dg protein, %dg carbs, %dg fat\n", w.AvgCalories, w.AvgProtein, w.AvgCarbs, w.AvgFat)
		fmt.Fprintf(out, "Protein goal met: %t\n", w.ProteinGoalMet)
		fmt.Fprintln(out, w.Message)
		return nil
	},
}

// resolveInsightGoal fills any goal field not given by flags from the
// current profile's computed targets.
func resolveInsightGoal(cmd *cobra.Command) (targets.InsightGoal, error) {
	goal := targets.InsightGoal{
		Type:           targets.ParseGoalType(insightsGoal),
		TargetCalories: insightsTargetCalories,
	}
	haveSplit := cmd.Flags().Changed("macro-split")
	if haveSplit {
		split, err := service.ParseMacroSplit(insightsSplit)
		if err != nil {
			return goal, err
		}
		goal.MacroDistribution = split
	}
	if cmd.Flags().Changed("goal") && cmd.Flags().Changed("target-calories") && haveSplit {
		return goal, nil
	}

	err := withDB(func(sqldb *sql.DB) error {
		p, err := requireProfile(sqldb, "")
		if err != nil {
			return err
		}
		body, g := service.ProfileTargets(*p)
		if !cmd.Flags().Changed("goal") {
			goal.Type = g.Type
		}
		if !cmd.Flags().Changed("target-calories") {
			goal.TargetCalories = targets.Calculate(body, g).DailyCalories
		}
		if !haveSplit {
			goal.MacroDistribution = g.Split
		}
		return nil
	})
	return goal, err
}

func init() {
	rootCmd.AddCommand(insightsCmd)
	insightsCmd.AddCommand(insightsWeeklyCmd)

	insightsWeeklyCmd.Flags().StringVar(&insightsData, "data", "", "YAML or JSON file of daily totals")
	insightsWeeklyCmd.Flags().StringVar(&insightsGoal, "goal", "", "Goal type (default from profile)")
	insightsWeeklyCmd.Flags().Float64Var(&insightsTargetCalories, "target-calories", 0, "Daily calorie target (default from profile)")
	insightsWeeklyCmd.Flags().StringVar(&insightsSplit, "macro-split", "", "Macro split protein,carbs,fat (default from profile)")
	insightsWeeklyCmd.Flags().BoolVar(&insightsJSON, "json", false, "Output JSON")
	_ = insightsWeeklyCmd.MarkFlagRequired("data")
}
