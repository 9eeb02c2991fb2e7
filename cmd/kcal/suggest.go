package kcal

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/saadjs/kcal-core/internal/service"
	"github.com/saadjs/kcal-core/internal/targets"
)

var (
	suggestFoods    string
	suggestCalories float64
	suggestProtein  float64
	suggestCarbs    float64
	suggestFat      float64
	suggestGoal     string
	suggestJSON     bool
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest foods that fit the remaining calories and macros",
	RunE: func(cmd *cobra.Command, args []string) error {
		foods, err := service.LoadFoodIndex(suggestFoods)
		if err != nil {
			return err
		}
		goal := targets.ParseGoalType(suggestGoal)
		if !cmd.Flags().Changed("goal") {
			goal, err = profileGoalType()
			if err != nil {
				return err
			}
		}
		remaining := targets.Remaining{
			Calories: suggestCalories,
			Protein:  suggestProtein,
			Carbs:    suggestCarbs,
			Fat:      suggestFat,
		}
		picks := targets.SuggestMeals(remaining, goal, foods)
		logger.Debug("meal suggestions", zap.String("goal", string(goal)), zap.Int("candidates", len(foods)), zap.Int("picked", len(picks)))

		if suggestJSON {
			return writeJSON(cmd.OutOrStdout(), picks)
		}
		if len(picks) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No suggestions fit the remaining budget")
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), "NAME\tKCAL\tP\tC\tF")
		for _, f := range picks {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%.0f\t%.1f\t%.1f\t%.1f\n", f.Name, f.Calories, f.Proteins, f.Carbs, f.Fat)
		}
		return nil
	},
}

// profileGoalType returns the current profile's goal, or maintain when no
// profile is configured.
func profileGoalType() (targets.GoalType, error) {
	goal := targets.GoalMaintain
	err := withDB(func(sqldb *sql.DB) error {
		p, err := service.CurrentProfile(sqldb, "")
		if err != nil {
			return err
		}
		if p != nil {
			goal = targets.ParseGoalType(p.GoalType)
		}
		return nil
	})
	return goal, err
}

func init() {
	rootCmd.AddCommand(suggestCmd)

	suggestCmd.Flags().StringVar(&suggestFoods, "foods", "", "YAML or JSON file of candidate foods")
	suggestCmd.Flags().Float64Var(&suggestCalories, "calories", 0, "Remaining calories")
	suggestCmd.Flags().Float64Var(&suggestProtein, "protein", 0, "Remaining protein grams")
	suggestCmd.Flags().Float64Var(&suggestCarbs, "carbs", 0, "Remaining carb grams")
	suggestCmd.Flags().Float64Var(&suggestFat, "fat", 0, "Remaining fat grams")
	suggestCmd.Flags().StringVar(&suggestGoal, "goal", "", "Goal type: lose, maintain, gain (default from profile)")
	suggestCmd.Flags().BoolVar(&suggestJSON, "json", false, "Output JSON")
	_ = suggestCmd.MarkFlagRequired("foods")
	_ = suggestCmd.MarkFlagRequired("calories")
}
