package service

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/saadjs/kcal-core/internal/model"
	"github.com/saadjs/kcal-core/internal/targets"
)

type SetProfileInput struct {
	Age            int      `yaml:"age" validate:"gte=13,lte=120"`
	Gender         string   `yaml:"gender" validate:"oneof=male female other"`
	HeightCm       float64  `yaml:"height_cm" validate:"gt=0"`
	WeightKg       float64  `yaml:"weight_kg" validate:"gt=0"`
	ActivityLevel  string   `yaml:"activity_level" validate:"omitempty,oneof=sedentary light moderate active very_active"`
	GoalType       string   `yaml:"goal_type" validate:"omitempty,oneof=lose maintain gain"`
	WeeklyRateKg   float64  `yaml:"weekly_rate_kg" validate:"gte=0,lte=2"`
	StartWeightKg  *float64 `yaml:"start_weight_kg" validate:"omitempty,gt=0"`
	TargetWeightKg *float64 `yaml:"target_weight_kg" validate:"omitempty,gt=0"`
	EffectiveDate  string   `yaml:"effective_date"`

	// Split overrides the configured default macro split when set.
	Split *targets.MacroSplit
}

// SetProfile stores a profile version, replacing any version with the same
// effective date. Unset activity, goal and split come from LoadDefaults.
func SetProfile(db *sql.DB, in SetProfileInput) error {
	in.Gender = string(targets.ParseGender(in.Gender))
	in.ActivityLevel = string(targets.ParseActivityLevel(in.ActivityLevel))
	in.GoalType = string(targets.ParseGoalType(in.GoalType))
	if err := validateStruct(in); err != nil {
		return err
	}

	defaults, err := LoadDefaults(db)
	if err != nil {
		return err
	}
	if in.ActivityLevel == "" {
		in.ActivityLevel = string(defaults.ActivityLevel)
	}
	if in.GoalType == "" {
		in.GoalType = string(defaults.GoalType)
	}
	split := defaults.Split
	if in.Split != nil {
		split = *in.Split
		if split.ProteinPct < 0 || split.CarbsPct < 0 || split.FatPct < 0 {
			return fmt.Errorf("macro split values must be >= 0")
		}
		if split.ProteinPct+split.CarbsPct+split.FatPct <= 0 {
			return fmt.Errorf("macro split must have a positive total")
		}
	}

	in.EffectiveDate = strings.TrimSpace(in.EffectiveDate)
	if in.EffectiveDate == "" {
		in.EffectiveDate = time.Now().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", in.EffectiveDate); err != nil {
		return fmt.Errorf("invalid effective date %q (expected YYYY-MM-DD)", in.EffectiveDate)
	}

	_, err = db.Exec(`
INSERT INTO profiles(age, gender, height_cm, weight_kg, activity_level, goal_type, weekly_rate_kg,
  protein_pct, carbs_pct, fat_pct, start_weight_kg, target_weight_kg, effective_date)
VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(effective_date) DO UPDATE SET
  age=excluded.age,
  gender=excluded.gender,
  height_cm=excluded.height_cm,
  weight_kg=excluded.weight_kg,
  activity_level=excluded.activity_level,
  goal_type=excluded.goal_type,
  weekly_rate_kg=excluded.weekly_rate_kg,
  protein_pct=excluded.protein_pct,
  carbs_pct=excluded.carbs_pct,
  fat_pct=excluded.fat_pct,
  start_weight_kg=excluded.start_weight_kg,
  target_weight_kg=excluded.target_weight_kg
`, in.Age, in.Gender, in.HeightCm, in.WeightKg, in.ActivityLevel, in.GoalType, in.WeeklyRateKg,
		split.ProteinPct, split.CarbsPct, split.FatPct, in.StartWeightKg, in.TargetWeightKg, in.EffectiveDate)
	if err != nil {
		return fmt.Errorf("set profile: %w", err)
	}
	return nil
}

const profileColumns = `id, age, gender, height_cm, weight_kg, activity_level, goal_type, weekly_rate_kg,
  protein_pct, carbs_pct, fat_pct, start_weight_kg, target_weight_kg, effective_date, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (model.Profile, error) {
	var p model.Profile
	var start, target sql.NullFloat64
	err := row.Scan(&p.ID, &p.Age, &p.Gender, &p.HeightCm, &p.WeightKg, &p.ActivityLevel, &p.GoalType, &p.WeeklyRateKg,
		&p.ProteinPct, &p.CarbsPct, &p.FatPct, &start, &target, &p.EffectiveDate, &p.CreatedAt)
	if err != nil {
		return p, err
	}
	if start.Valid {
		v := start.Float64
		p.StartWeightKg = &v
	}
	if target.Valid {
		v := target.Float64
		p.TargetWeightKg = &v
	}
	return p, nil
}

// CurrentProfile returns the latest version effective on date, or nil.
func CurrentProfile(db *sql.DB, date string) (*model.Profile, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date)
	}

	p, err := scanProfile(db.QueryRow(`
SELECT `+profileColumns+`
FROM profiles
WHERE effective_date <= ?
ORDER BY effective_date DESC
LIMIT 1
`, date))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("current profile for %s: %w", date, err)
	}
	return &p, nil
}

func ProfileHistory(db *sql.DB) ([]model.Profile, error) {
	rows, err := db.Query(`SELECT ` + profileColumns + ` FROM profiles ORDER BY effective_date DESC`)
	if err != nil {
		return nil, fmt.Errorf("list profile history: %w", err)
	}
	defer rows.Close()

	items := make([]model.Profile, 0)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate profiles: %w", err)
	}
	return items, nil
}

// ProfileTargets converts a stored profile into calculator inputs.
func ProfileTargets(p model.Profile) (targets.BodyProfile, targets.Goal) {
	body := targets.BodyProfile{
		Age:           p.Age,
		Gender:        targets.ParseGender(p.Gender),
		HeightCm:      p.HeightCm,
		WeightKg:      p.WeightKg,
		ActivityLevel: targets.ParseActivityLevel(p.ActivityLevel),
	}
	goal := targets.Goal{
		Type:         targets.ParseGoalType(p.GoalType),
		WeeklyRateKg: p.WeeklyRateKg,
		Split:        targets.MacroSplit{ProteinPct: p.ProteinPct, CarbsPct: p.CarbsPct, FatPct: p.FatPct},
	}
	return body, goal
}
