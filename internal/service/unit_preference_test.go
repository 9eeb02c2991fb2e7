package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/saadjs/kcal-core/internal/service"
	"github.com/saadjs/kcal-core/internal/units"
)

func TestUnitPreferenceStoreWithResolver(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	store := service.NewUnitPreferenceStore(db, zap.NewNop())

	clock := time.Date(2026, 2, 20, 8, 30, 0, 0, time.UTC)
	r := units.NewResolver(store, func() time.Time { return clock })

	before := r.BestDefaultUnit("Chicken Breast", "")
	assert.Equal(t, "oz", before.Unit)
	assert.Equal(t, units.SourceSuggestion, before.Source)

	_, err := r.SavePreference("Chicken Breast", "g")
	require.NoError(t, err)
	clock = clock.Add(time.Hour)
	saved, err := r.SavePreference("chicken breast", "g")
	require.NoError(t, err)
	assert.Equal(t, 2, saved.Frequency)

	after := r.BestDefaultUnit("  chicken BREAST", "cup")
	assert.Equal(t, "g", after.Unit)
	assert.Equal(t, units.SourcePreference, after.Source)

	p, ok, err := store.Get("chicken breast")
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, p.LastUsed.Equal(clock), "last used %v", p.LastUsed)
}

func TestUnitPreferenceStoreMissingKey(t *testing.T) {
	t.Parallel()
	store := service.NewUnitPreferenceStore(newTestDB(t), nil)
	_, ok, err := store.Get("nothing here")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUnitPreferenceStoreList(t *testing.T) {
	t.Parallel()
	store := service.NewUnitPreferenceStore(newTestDB(t), nil)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, store.Put("rice", units.Preference{Unit: "cup", Frequency: 1, LastUsed: now}))
	require.NoError(t, store.Put("olive oil", units.Preference{Unit: "tbsp", Frequency: 4, LastUsed: now}))
	require.NoError(t, store.Put("milk", units.Preference{Unit: "ml", Frequency: 4, LastUsed: now.Add(time.Minute)}))

	all, err := store.List(0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"milk", "olive oil", "rice"}, []string{all[0].FoodName, all[1].FoodName, all[2].FoodName})

	top, err := store.List(1)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "ml", top[0].Unit)
}
