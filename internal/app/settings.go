package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	KeyDB        = "db"
	KeyLogLevel  = "log-level"
	KeyLogFormat = "log-format"
)

// Settings are the runtime options resolved from flags, environment and an
// optional config file.
type Settings struct {
	DBPath    string
	LogLevel  string
	LogFormat string
}

// LoadSettings resolves settings with precedence flags > KCAL_* environment
// > config file > defaults. configFile may be empty, in which case kcal.yaml
// is looked up in the user config dir and the working directory and its
// absence is not an error.
func LoadSettings(configFile string, flags *pflag.FlagSet) (Settings, error) {
	v := viper.New()
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFormat, "console")

	v.SetEnvPrefix("KCAL")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType("yaml")
		if dir, err := ConfigDir(); err == nil {
			v.AddConfigPath(dir)
		}
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("read config: %w", err)
		}
	}

	if flags != nil {
		for _, key := range []string{KeyDB, KeyLogLevel, KeyLogFormat} {
			if f := flags.Lookup(key); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Settings{}, fmt.Errorf("bind flag %s: %w", key, err)
				}
			}
		}
	}

	s := Settings{
		DBPath:    strings.TrimSpace(v.GetString(KeyDB)),
		LogLevel:  strings.TrimSpace(v.GetString(KeyLogLevel)),
		LogFormat: strings.TrimSpace(v.GetString(KeyLogFormat)),
	}
	if s.DBPath == "" {
		path, err := DefaultDBPath()
		if err != nil {
			return Settings{}, err
		}
		s.DBPath = path
	}
	return s, nil
}
