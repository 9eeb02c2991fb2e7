package service

import (
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/saadjs/kcal-core/internal/model"
	"github.com/saadjs/kcal-core/internal/units"
)

// UnitPreferenceStore persists unit preferences in the unit_preferences
// table. It satisfies units.PreferenceStore.
type UnitPreferenceStore struct {
	db  *sql.DB
	log *zap.Logger
}

var _ units.PreferenceStore = (*UnitPreferenceStore)(nil)

func NewUnitPreferenceStore(db *sql.DB, log *zap.Logger) *UnitPreferenceStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &UnitPreferenceStore{db: db, log: log.Named("unit_preferences")}
}

func (s *UnitPreferenceStore) Get(key string) (units.Preference, bool, error) {
	var p units.Preference
	err := s.db.QueryRow(`
SELECT unit, frequency, last_used_at
FROM unit_preferences
WHERE food_name_norm = ?
`, key).Scan(&p.Unit, &p.Frequency, &p.LastUsed)
	if err == sql.ErrNoRows {
		s.log.Debug("no unit preference", zap.String("food", key))
		return units.Preference{}, false, nil
	}
	if err != nil {
		s.log.Warn("read unit preference", zap.String("food", key), zap.Error(err))
		return units.Preference{}, false, fmt.Errorf("get unit preference %q: %w", key, err)
	}
	return p, true, nil
}

func (s *UnitPreferenceStore) Put(key string, p units.Preference) error {
	_, err := s.db.Exec(`
INSERT INTO unit_preferences(food_name_norm, unit, frequency, last_used_at)
VALUES(?, ?, ?, ?)
ON CONFLICT(food_name_norm) DO UPDATE SET
  unit=excluded.unit,
  frequency=excluded.frequency,
  last_used_at=excluded.last_used_at
`, key, p.Unit, p.Frequency, p.LastUsed.UTC())
	if err != nil {
		return fmt.Errorf("put unit preference %q: %w", key, err)
	}
	s.log.Debug("saved unit preference",
		zap.String("food", key),
		zap.String("unit", p.Unit),
		zap.Int("frequency", p.Frequency),
	)
	return nil
}

// List returns preferences with the most used first. A limit <= 0 returns
// every row.
func (s *UnitPreferenceStore) List(limit int) ([]model.UnitPreference, error) {
	query := `
SELECT food_name_norm, unit, frequency, last_used_at
FROM unit_preferences
ORDER BY frequency DESC, last_used_at DESC, food_name_norm ASC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list unit preferences: %w", err)
	}
	defer rows.Close()

	items := make([]model.UnitPreference, 0)
	for rows.Next() {
		var p model.UnitPreference
		var lastUsed time.Time
		if err := rows.Scan(&p.FoodName, &p.Unit, &p.Frequency, &lastUsed); err != nil {
			return nil, fmt.Errorf("scan unit preference: %w", err)
		}
		p.LastUsedAt = lastUsed
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate unit preferences: %w", err)
	}
	return items, nil
}
