package kcal

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/saadjs/kcal-core/internal/targets"
)

type feedbackJSON struct {
	Status  string  `json:"status"`
	Percent float64 `json:"percent"`
	Message string  `json:"message"`
}

var (
	feedbackConsumed float64
	feedbackTarget   float64
	feedbackGoal     string
	feedbackMacro    string
	feedbackJSONOut  bool
)

var feedbackCmd = &cobra.Command{
	Use:   "feedback",
	Short: "Score intake against a target",
}

var feedbackDailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Score calories consumed against the daily target",
	RunE: func(cmd *cobra.Command, args []string) error {
		fb := targets.DailyProgress(feedbackConsumed, feedbackTarget, targets.ParseGoalType(feedbackGoal))
		return printFeedback(cmd.OutOrStdout(), fb, feedbackJSONOut)
	},
}

var feedbackMacroCmd = &cobra.Command{
	Use:   "macro",
	Short: "Score grams of one macro consumed against its target",
	RunE: func(cmd *cobra.Command, args []string) error {
		fb := targets.MacroProgress(feedbackConsumed, feedbackTarget, targets.MacroType(normalizeArg(feedbackMacro)))
		return printFeedback(cmd.OutOrStdout(), fb, feedbackJSONOut)
	},
}

func printFeedback(w io.Writer, fb targets.Feedback, asJSON bool) error {
	if asJSON {
		return writeJSON(w, feedbackJSON{Status: string(fb.Status), Percent: fb.Percent, Message: fb.Message})
	}
	fmt.Fprintf(w, "%s (%.0f%%): %s\n", fb.Status, fb.Percent, fb.Message)
	return nil
}

func init() {
	rootCmd.AddCommand(feedbackCmd)
	feedbackCmd.AddCommand(feedbackDailyCmd, feedbackMacroCmd)

	feedbackCmd.PersistentFlags().Float64Var(&feedbackConsumed, "consumed", 0, "Amount consumed")
	feedbackCmd.PersistentFlags().Float64Var(&feedbackTarget, "target", 0, "Target amount")
	feedbackCmd.PersistentFlags().BoolVar(&feedbackJSONOut, "json", false, "Output JSON")
	feedbackDailyCmd.Flags().StringVar(&feedbackGoal, "goal", string(targets.GoalMaintain), "Goal type: lose, maintain, gain")
	feedbackMacroCmd.Flags().StringVar(&feedbackMacro, "macro", string(targets.MacroProtein), "Macro: protein, carbs, fat, fiber")
}
