package kcal

import (
	"database/sql"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/saadjs/kcal-core/internal/service"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage kcal profile defaults",
}

var (
	cfgGoalType   string
	cfgActivity   string
	cfgMacroSplit string
)

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set configuration values",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			updates := 0
			for _, opt := range []struct {
				flag  string
				key   string
				value string
			}{
				{"default-goal", service.ConfigDefaultGoalType, cfgGoalType},
				{"default-activity", service.ConfigDefaultActivityLevel, cfgActivity},
				{"default-macro-split", service.ConfigDefaultMacroSplit, cfgMacroSplit},
			} {
				if !cmd.Flags().Changed(opt.flag) {
					continue
				}
				if err := service.SetConfig(sqldb, opt.key, opt.value); err != nil {
					return err
				}
				updates++
			}
			if updates == 0 {
				return fmt.Errorf("set at least one flag")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %d config value(s)\n", updates)
			return nil
		})
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			cfg, err := service.ListConfig(sqldb)
			if err != nil {
				return err
			}
			keys := make([]string, 0, len(cfg))
			for k := range cfg {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintln(cmd.OutOrStdout(), "KEY\tVALUE")
			for _, k := range keys {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", k, cfg[k])
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configSetCmd, configGetCmd)

	configSetCmd.Flags().StringVar(&cfgGoalType, "default-goal", "", "Default goal type: lose, maintain, gain")
	configSetCmd.Flags().StringVar(&cfgActivity, "default-activity", "", "Default activity level")
	configSetCmd.Flags().StringVar(&cfgMacroSplit, "default-macro-split", "", "Default macro split as protein,carbs,fat percentages")
}
