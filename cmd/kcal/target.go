package kcal

import (
	"database/sql"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/saadjs/kcal-core/internal/service"
	"github.com/saadjs/kcal-core/internal/targets"
)

type targetsJSON struct {
	BMR           float64 `json:"bmr"`
	TDEE          float64 `json:"tdee"`
	DailyCalories float64 `json:"daily_calories"`
	ProteinG      int     `json:"protein_g"`
	CarbsG        int     `json:"carbs_g"`
	FatG          int     `json:"fat_g"`
	FiberG        int     `json:"fiber_g"`
}

var (
	targetDate string
	targetJSON bool
)

var targetCmd = &cobra.Command{
	Use:   "target",
	Short: "Show daily calorie, macro and fiber targets for the current profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			p, err := requireProfile(sqldb, targetDate)
			if err != nil {
				return err
			}
			body, goal := service.ProfileTargets(*p)
			return printTargets(cmd.OutOrStdout(), targets.Calculate(body, goal), targetJSON)
		})
	},
}

var (
	calcAge      int
	calcGender   string
	calcHeight   float64
	calcWeight   float64
	calcActivity string
	calcGoal     string
	calcRate     float64
	calcSplit    string
)

var targetCalcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Compute targets from flags without touching the database",
	RunE: func(cmd *cobra.Command, args []string) error {
		split, err := service.ParseMacroSplit(calcSplit)
		if err != nil {
			return err
		}
		body := targets.BodyProfile{
			Age:           calcAge,
			Gender:        targets.ParseGender(calcGender),
			HeightCm:      calcHeight,
			WeightKg:      calcWeight,
			ActivityLevel: targets.ParseActivityLevel(calcActivity),
		}
		goal := targets.Goal{
			Type:         targets.ParseGoalType(calcGoal),
			WeeklyRateKg: calcRate,
			Split:        split,
		}
		return printTargets(cmd.OutOrStdout(), targets.Calculate(body, goal), targetJSON)
	},
}

func printTargets(w io.Writer, t targets.Targets, asJSON bool) error {
	if asJSON {
		return writeJSON(w, targetsJSON{
			BMR:           t.BMR,
			TDEE:          t.TDEE,
			DailyCalories: t.DailyCalories,
			ProteinG:      t.Macros.Protein,
			CarbsG:        t.Macros.Carbs,
			FatG:          t.Macros.Fat,
			FiberG:        t.FiberGrams,
		})
	}
	fmt.Fprintf(w, "BMR: %.0f kcal\nTDEE: %.0f kcal\nCalories: %.0f kcal\nProtein: %dg\nCarbs: %dg\nFat: %dg\nFiber: %dg\n",
		t.BMR, t.TDEE, t.DailyCalories, t.Macros.Protein, t.Macros.Carbs, t.Macros.Fat, t.FiberGrams)
	return nil
}

func init() {
	rootCmd.AddCommand(targetCmd)
	targetCmd.AddCommand(targetCalcCmd)

	targetCmd.PersistentFlags().BoolVar(&targetJSON, "json", false, "Output JSON")
	targetCmd.Flags().StringVar(&targetDate, "date", "", "Resolve profile at date YYYY-MM-DD (default today)")

	targetCalcCmd.Flags().IntVar(&calcAge, "age", 0, "Age in years")
	targetCalcCmd.Flags().StringVar(&calcGender, "gender", "", "Gender: male, female, other")
	targetCalcCmd.Flags().Float64Var(&calcHeight, "height", 0, "Height in cm")
	targetCalcCmd.Flags().Float64Var(&calcWeight, "weight", 0, "Weight in kg")
	targetCalcCmd.Flags().StringVar(&calcActivity, "activity", string(targets.ActivitySedentary), "Activity level")
	targetCalcCmd.Flags().StringVar(&calcGoal, "goal", string(targets.GoalMaintain), "Goal type: lose, maintain, gain")
	targetCalcCmd.Flags().Float64Var(&calcRate, "weekly-rate", 0, "Desired weekly weight change in kg")
	targetCalcCmd.Flags().StringVar(&calcSplit, "macro-split", "30,40,30", "Macro split as protein,carbs,fat percentages")
	_ = targetCalcCmd.MarkFlagRequired("age")
	_ = targetCalcCmd.MarkFlagRequired("gender")
	_ = targetCalcCmd.MarkFlagRequired("height")
	_ = targetCalcCmd.MarkFlagRequired("weight")
}
