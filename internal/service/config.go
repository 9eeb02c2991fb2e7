package service

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/saadjs/kcal-core/internal/targets"
)

const (
	ConfigDefaultGoalType      = "default_goal_type"
	ConfigDefaultActivityLevel = "default_activity_level"
	ConfigDefaultMacroSplit    = "default_macro_split"
)

// KnownConfigKeys lists the keys SetConfig accepts.
var KnownConfigKeys = []string{ConfigDefaultGoalType, ConfigDefaultActivityLevel, ConfigDefaultMacroSplit}

// Defaults are the values used when a profile omits goal, activity or split.
type Defaults struct {
	GoalType      targets.GoalType
	ActivityLevel targets.ActivityLevel
	Split         targets.MacroSplit
}

var builtinDefaults = Defaults{
	GoalType:      targets.GoalMaintain,
	ActivityLevel: targets.ActivitySedentary,
	Split:         targets.MacroSplit{ProteinPct: 30, CarbsPct: 40, FatPct: 30},
}

func SetConfig(db *sql.DB, key, value string) error {
	key = normalizeName(key)
	if key == "" {
		return fmt.Errorf("config key is required")
	}
	value = strings.TrimSpace(value)
	if err := validateConfigValue(key, value); err != nil {
		return err
	}
	_, err := db.Exec(`
INSERT INTO app_config(key, value, updated_at)
VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at
`, key, value)
	if err != nil {
		return fmt.Errorf("set config %q: %w", key, err)
	}
	return nil
}

func GetConfig(db *sql.DB, key string) (string, bool, error) {
	key = normalizeName(key)
	if key == "" {
		return "", false, fmt.Errorf("config key is required")
	}
	var value string
	err := db.QueryRow(`SELECT value FROM app_config WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get config %q: %w", key, err)
	}
	return value, true, nil
}

func ListConfig(db *sql.DB) (map[string]string, error) {
	rows, err := db.Query(`SELECT key, value FROM app_config ORDER BY key ASC`)
	if err != nil {
		return nil, fmt.Errorf("list config: %w", err)
	}
	defer rows.Close()
	out := map[string]string{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scan config: %w", err)
		}
		out[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate config: %w", err)
	}
	return out, nil
}

// LoadDefaults merges stored config over the built-in defaults.
func LoadDefaults(db *sql.DB) (Defaults, error) {
	out := builtinDefaults
	cfg, err := ListConfig(db)
	if err != nil {
		return out, err
	}
	if v, ok := cfg[ConfigDefaultGoalType]; ok {
		out.GoalType = targets.ParseGoalType(v)
	}
	if v, ok := cfg[ConfigDefaultActivityLevel]; ok {
		out.ActivityLevel = targets.ParseActivityLevel(v)
	}
	if v, ok := cfg[ConfigDefaultMacroSplit]; ok {
		split, err := ParseMacroSplit(v)
		if err != nil {
			return out, fmt.Errorf("config %s: %w", ConfigDefaultMacroSplit, err)
		}
		out.Split = split
	}
	return out, nil
}

// ParseMacroSplit parses "protein,carbs,fat" percentages.
func ParseMacroSplit(s string) (targets.MacroSplit, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return targets.MacroSplit{}, fmt.Errorf("macro split %q must be protein,carbs,fat", s)
	}
	vals := make([]float64, 3)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return targets.MacroSplit{}, fmt.Errorf("invalid macro split value %q", p)
		}
		if v < 0 {
			return targets.MacroSplit{}, fmt.Errorf("macro split values must be >= 0")
		}
		vals[i] = v
	}
	if vals[0]+vals[1]+vals[2] <= 0 {
		return targets.MacroSplit{}, fmt.Errorf("macro split must have a positive total")
	}
	return targets.MacroSplit{ProteinPct: vals[0], CarbsPct: vals[1], FatPct: vals[2]}, nil
}

func validateConfigValue(key, value string) error {
	switch key {
	case ConfigDefaultGoalType:
		if !targets.ParseGoalType(value).Valid() {
			return fmt.Errorf("%s must be one of: lose, maintain, gain", key)
		}
	case ConfigDefaultActivityLevel:
		if !targets.ParseActivityLevel(value).Valid() {
			return fmt.Errorf("%s must be one of: sedentary, light, moderate, active, very_active", key)
		}
	case ConfigDefaultMacroSplit:
		if _, err := ParseMacroSplit(value); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
	return nil
}

func normalizeName(name string) string {
	return strings.TrimSpace(strings.ToLower(name))
}
