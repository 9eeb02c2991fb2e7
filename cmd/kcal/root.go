package kcal

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/saadjs/kcal-core/internal/app"
)

var (
	dbPath     string
	configPath string
	logLevel   string
	logFormat  string

	settings app.Settings
	logger   = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "kcal",
	Short: "kcal computes calorie targets and converts food quantities",
	Long:  "kcal derives calorie and macro targets from your body profile, scores daily and weekly intake, and converts food quantities between units.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := app.LoadSettings(configPath, cmd.Root().PersistentFlags())
		if err != nil {
			return err
		}
		l, err := app.NewLogger(s.LogLevel, s.LogFormat)
		if err != nil {
			return err
		}
		settings, logger = s, l
		logger.Debug("resolved settings", zap.String("db", s.DBPath), zap.String("log_level", s.LogLevel))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, app.KeyDB, "", "Path to SQLite database (env KCAL_DB)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default kcal.yaml in the user config dir)")
	rootCmd.PersistentFlags().StringVar(&logLevel, app.KeyLogLevel, "", "Log level: debug, info, warn, error (env KCAL_LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&logFormat, app.KeyLogFormat, "", "Log format: console or json (env KCAL_LOG_FORMAT)")
}
