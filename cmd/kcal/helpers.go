package kcal

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/saadjs/kcal-core/internal/app"
	"github.com/saadjs/kcal-core/internal/db"
)

func withDB(run func(*sql.DB) error) error {
	path := settings.DBPath
	if path == "" {
		p, err := app.DefaultDBPath()
		if err != nil {
			return err
		}
		path = p
	}
	if err := app.EnsureDBDir(path); err != nil {
		return err
	}
	sqldb, err := db.OpenMigrated(path)
	if err != nil {
		return err
	}
	defer sqldb.Close()
	return run(sqldb)
}

func writeJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Fprintln(w, string(b))
	return nil
}

// parseNutrients parses name=value pairs such as "calories=165".
func parseNutrients(pairs []string) (map[string]float64, error) {
	out := make(map[string]float64, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		name = strings.ToLower(strings.TrimSpace(name))
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid nutrient %q (expected name=value)", pair)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid nutrient value %q for %s", value, name)
		}
		if v < 0 {
			return nil, fmt.Errorf("nutrient %s must be >= 0", name)
		}
		out[name] = v
	}
	return out, nil
}

func parseFloatArg(name, value string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, value)
	}
	return v, nil
}

func normalizeArg(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
