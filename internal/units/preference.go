package units

import (
	"fmt"
	"sync"
	"time"
)

// Preference is the unit a user last chose for a food.
type Preference struct {
	Unit      string    `json:"unit"`
	Frequency int       `json:"frequency"`
	LastUsed  time.Time `json:"last_used"`
}

// PreferenceStore persists preferences keyed by normalized food name.
// Get reports ok=false when no preference exists for key.
type PreferenceStore interface {
	Get(key string) (Preference, bool, error)
	Put(key string, p Preference) error
}

// MemoryStore is a PreferenceStore backed by a map.
type MemoryStore struct {
	mu    sync.RWMutex
	prefs map[string]Preference
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{prefs: map[string]Preference{}}
}

func (m *MemoryStore) Get(key string) (Preference, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.prefs[key]
	return p, ok, nil
}

func (m *MemoryStore) Put(key string, p Preference) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prefs[key] = p
	return nil
}

type Source string

const (
	SourcePreference Source = "preference"
	SourceServing    Source = "serving"
	SourceSuggestion Source = "suggestion"
	SourceFallback   Source = "fallback"
)

// DefaultUnit is the unit picked for a food and where it came from.
type DefaultUnit struct {
	Unit   string
	Source Source
	Reason string
	// StoreErr is set when the preference lookup failed and was skipped.
	StoreErr error
}

// Resolver picks default units and records the units users choose.
type Resolver struct {
	store PreferenceStore
	now   func() time.Time
}

// NewResolver returns a Resolver over store. A nil now uses time.Now.
func NewResolver(store PreferenceStore, now func() time.Time) *Resolver {
	if store == nil {
		store = NewMemoryStore()
	}
	if now == nil {
		now = time.Now
	}
	return &Resolver{store: store, now: now}
}

// BestDefaultUnit resolves, in order: a stored preference for the food, the
// label serving unit when it is a known unit, the keyword cascade, then
// grams.
func (r *Resolver) BestDefaultUnit(foodName, servingUnit string) DefaultUnit {
	var out DefaultUnit
	key := NormalizeFoodName(foodName)
	if key != "" {
		pref, ok, err := r.store.Get(key)
		switch {
		case err != nil:
			out.StoreErr = err
		case ok && pref.Unit != "":
			out.Unit = pref.Unit
			out.Source = SourcePreference
			out.Reason = fmt.Sprintf("you chose %s for this food %d time(s)", pref.Unit, pref.Frequency)
			return out
		}
	}

	if servingUnit != "" && UnitCategory(servingUnit) != CategoryUnknown {
		out.Unit = NormalizeUnit(servingUnit)
		out.Source = SourceServing
		out.Reason = "serving unit from the nutrition label"
		return out
	}

	if s := SuggestUnits(foodName); s.Group != defaultGroup {
		out.Unit = s.Top().Unit
		out.Source = SourceSuggestion
		out.Reason = s.Reason
		return out
	}

	out.Unit = "g"
	out.Source = SourceFallback
	out.Reason = fallbackSuggestion.Reason
	return out
}

// SavePreference records that unit was chosen for foodName, incrementing the
// use count. Concurrent saves for one food are last-writer-wins.
func (r *Resolver) SavePreference(foodName, unit string) (Preference, error) {
	key := NormalizeFoodName(foodName)
	if key == "" {
		return Preference{}, fmt.Errorf("food name is required")
	}
	unit = NormalizeUnit(unit)
	if unit == "" {
		return Preference{}, fmt.Errorf("unit is required")
	}
	prev, _, err := r.store.Get(key)
	if err != nil {
		return Preference{}, fmt.Errorf("load unit preference for %q: %w", key, err)
	}
	p := Preference{Unit: unit, Frequency: prev.Frequency + 1, LastUsed: r.now()}
	if err := r.store.Put(key, p); err != nil {
		return Preference{}, fmt.Errorf("save unit preference for %q: %w", key, err)
	}
	return p, nil
}
