package kcal

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saadjs/kcal-core/internal/model"
	"github.com/saadjs/kcal-core/internal/service"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage body profile and goal versions",
}

var (
	profileAge          int
	profileGender       string
	profileHeight       float64
	profileWeight       float64
	profileActivity     string
	profileGoal         string
	profileRate         float64
	profileMacroSplit   string
	profileStartWeight  float64
	profileTargetWeight float64
	profileDate         string
)

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set body profile and goal with an effective date",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := service.SetProfileInput{
			Age:           profileAge,
			Gender:        profileGender,
			HeightCm:      profileHeight,
			WeightKg:      profileWeight,
			ActivityLevel: profileActivity,
			GoalType:      profileGoal,
			WeeklyRateKg:  profileRate,
			EffectiveDate: profileDate,
		}
		if cmd.Flags().Changed("macro-split") {
			split, err := service.ParseMacroSplit(profileMacroSplit)
			if err != nil {
				return err
			}
			in.Split = &split
		}
		if cmd.Flags().Changed("start-weight") {
			in.StartWeightKg = &profileStartWeight
		}
		if cmd.Flags().Changed("target-weight") {
			in.TargetWeightKg = &profileTargetWeight
		}
		return withDB(func(sqldb *sql.DB) error {
			if err := service.SetProfile(sqldb, in); err != nil {
				return err
			}
			if in.EffectiveDate == "" {
				in.EffectiveDate = "today"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set profile effective %s\n", in.EffectiveDate)
			return nil
		})
	},
}

var profileCurrentDate string

var profileCurrentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show current profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			p, err := service.CurrentProfile(sqldb, profileCurrentDate)
			if err != nil {
				return err
			}
			if p == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No profile configured")
				return nil
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Effective: %s\nAge: %d\nGender: %s\nHeight: %.1fcm\nWeight: %.1fkg\nActivity: %s\n",
				p.EffectiveDate, p.Age, p.Gender, p.HeightCm, p.WeightKg, p.ActivityLevel)
			fmt.Fprintf(out, "Goal: %s (%.2fkg/week)\nMacro split: %.0f/%.0f/%.0f\n",
				p.GoalType, p.WeeklyRateKg, p.ProteinPct, p.CarbsPct, p.FatPct)
			if p.StartWeightKg != nil {
				fmt.Fprintf(out, "Start weight: %.1fkg\n", *p.StartWeightKg)
			}
			if p.TargetWeightKg != nil {
				fmt.Fprintf(out, "Target weight: %.1fkg\n", *p.TargetWeightKg)
			}
			return nil
		})
	},
}

var profileHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show profile history",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			items, err := service.ProfileHistory(sqldb)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "DATE\tWEIGHT\tACTIVITY\tGOAL\tRATE")
			for _, p := range items {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%.1f\t%s\t%s\t%.2f\n", p.EffectiveDate, p.WeightKg, p.ActivityLevel, p.GoalType, p.WeeklyRateKg)
			}
			return nil
		})
	},
}

// requireProfile loads the profile effective on date or explains how to
// create one.
func requireProfile(sqldb *sql.DB, date string) (*model.Profile, error) {
	p, err := service.CurrentProfile(sqldb, date)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("no profile configured (run `kcal profile set`)")
	}
	return p, nil
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileSetCmd, profileCurrentCmd, profileHistoryCmd)

	profileSetCmd.Flags().IntVar(&profileAge, "age", 0, "Age in years (13 or older)")
	profileSetCmd.Flags().StringVar(&profileGender, "gender", "", "Gender: male, female, other")
	profileSetCmd.Flags().Float64Var(&profileHeight, "height", 0, "Height in cm")
	profileSetCmd.Flags().Float64Var(&profileWeight, "weight", 0, "Weight in kg")
	profileSetCmd.Flags().StringVar(&profileActivity, "activity", "", "Activity level: sedentary, light, moderate, active, very_active (default from config)")
	profileSetCmd.Flags().StringVar(&profileGoal, "goal", "", "Goal type: lose, maintain, gain (default from config)")
	profileSetCmd.Flags().Float64Var(&profileRate, "weekly-rate", 0, "Desired weekly weight change in kg")
	profileSetCmd.Flags().StringVar(&profileMacroSplit, "macro-split", "", "Macro split as protein,carbs,fat percentages (default from config)")
	profileSetCmd.Flags().Float64Var(&profileStartWeight, "start-weight", 0, "Starting weight in kg for progress tracking")
	profileSetCmd.Flags().Float64Var(&profileTargetWeight, "target-weight", 0, "Target weight in kg for progress tracking")
	profileSetCmd.Flags().StringVar(&profileDate, "effective-date", "", "Effective date YYYY-MM-DD (default today)")
	_ = profileSetCmd.MarkFlagRequired("age")
	_ = profileSetCmd.MarkFlagRequired("gender")
	_ = profileSetCmd.MarkFlagRequired("height")
	_ = profileSetCmd.MarkFlagRequired("weight")

	profileCurrentCmd.Flags().StringVar(&profileCurrentDate, "date", "", "Resolve profile at date YYYY-MM-DD (default today)")
}
