package kcal

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/saadjs/kcal-core/internal/targets"
)

var (
	progressCurrent float64
	progressStart   float64
	progressTarget  float64
	progressDate    string
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show progress toward goals",
}

var progressWeightCmd = &cobra.Command{
	Use:   "weight",
	Short: "Show progress from start weight to target weight",
	RunE: func(cmd *cobra.Command, args []string) error {
		start, target := progressStart, progressTarget
		needStart := !cmd.Flags().Changed("start")
		needTarget := !cmd.Flags().Changed("target")
		if needStart || needTarget {
			err := withDB(func(sqldb *sql.DB) error {
				p, err := requireProfile(sqldb, progressDate)
				if err != nil {
					return err
				}
				if needStart {
					start = p.WeightKg
					if p.StartWeightKg != nil {
						start = *p.StartWeightKg
					}
				}
				if needTarget {
					if p.TargetWeightKg == nil {
						return fmt.Errorf("no target weight in profile (pass --target or set --target-weight)")
					}
					target = *p.TargetWeightKg
				}
				return nil
			})
			if err != nil {
				return err
			}
		}
		fraction := targets.WeightProgress(progressCurrent, start, target)
		logger.Debug("weight progress", zap.Float64("start", start), zap.Float64("target", target), zap.Float64("fraction", fraction))
		fmt.Fprintf(cmd.OutOrStdout(), "Progress: %.0f%% (start %.1fkg, current %.1fkg, target %.1fkg)\n",
			fraction*100, start, progressCurrent, target)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(progressCmd)
	progressCmd.AddCommand(progressWeightCmd)

	progressWeightCmd.Flags().Float64Var(&progressCurrent, "current", 0, "Current weight in kg")
	progressWeightCmd.Flags().Float64Var(&progressStart, "start", 0, "Start weight in kg (default from profile)")
	progressWeightCmd.Flags().Float64Var(&progressTarget, "target", 0, "Target weight in kg (default from profile)")
	progressWeightCmd.Flags().StringVar(&progressDate, "date", "", "Resolve profile at date YYYY-MM-DD (default today)")
	_ = progressWeightCmd.MarkFlagRequired("current")
}
