package external

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherlookup.app/internal/core/conditions"
	"weatherlookup.app/internal/core/units"
	"weatherlookup.app/internal/mocks"
)

func TestPreferencesAdapter_Defaults(t *testing.T) {
	prefs := NewPreferencesAdapter(NewMemoryStore(), "weather:abc", mocks.NewLogger())

	loaded, err := prefs.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, units.Celsius, loaded.Unit)
	assert.Equal(t, conditions.Light, loaded.Theme)
	assert.Empty(t, loaded.LastCity)
}

func TestPreferencesAdapter_SaveAndLoad(t *testing.T) {
	store := NewMemoryStore()
	prefs := NewPreferencesAdapter(store, "weather:abc", mocks.NewLogger())
	ctx := context.Background()

	require.NoError(t, prefs.SaveUnit(ctx, units.Fahrenheit))
	require.NoError(t, prefs.SaveTheme(ctx, conditions.Dark))
	require.NoError(t, prefs.SaveLastCity(ctx, "  Paris "))

	raw, ok, err := store.Get(ctx, "weather:abc:temperatureUnit")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "fahrenheit", raw)

	reloaded, err := NewPreferencesAdapter(store, "weather:abc", mocks.NewLogger()).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, units.Fahrenheit, reloaded.Unit)
	assert.Equal(t, conditions.Dark, reloaded.Theme)
	assert.Equal(t, "Paris", reloaded.LastCity)
}

func TestPreferencesAdapter_NamespacesAreIsolated(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, NewPreferencesAdapter(store, "weather:a", mocks.NewLogger()).SaveLastCity(ctx, "Oslo"))

	other, err := NewPreferencesAdapter(store, "weather:b", mocks.NewLogger()).Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, other.LastCity)
}

func TestPreferencesAdapter_EmptyCityDeletes(t *testing.T) {
	store := NewMemoryStore()
	prefs := NewPreferencesAdapter(store, "", mocks.NewLogger())
	ctx := context.Background()

	require.NoError(t, prefs.SaveLastCity(ctx, "Rome"))
	require.NoError(t, prefs.SaveLastCity(ctx, " "))

	_, ok, err := store.Get(ctx, KeyLastCity)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPreferencesAdapter_InvalidValuesFallBack(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "p:temperatureUnit", "kelvin"))
	require.NoError(t, store.Set(ctx, "p:theme", "sepia"))
	logger := mocks.NewLogger()

	loaded, err := NewPreferencesAdapter(store, "p", logger).Load(ctx)

	require.NoError(t, err)
	assert.Equal(t, units.Celsius, loaded.Unit)
	assert.Equal(t, conditions.Light, loaded.Theme)
	assert.True(t, logger.HasMessage("warn", "Ignoring invalid stored preference"))
}

func TestPreferencesAdapter_StoreFailure(t *testing.T) {
	store := mocks.NewKeyValueStore(t)
	store.On("Get", mock.Anything, "p:temperatureUnit").Return("", false, assert.AnError).Once()

	loaded, err := NewPreferencesAdapter(store, "p", mocks.NewLogger()).Load(context.Background())

	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, units.Celsius, loaded.Unit)
}

func TestPreferencesAdapter_RedisBackend(t *testing.T) {
	_, cfg := setupMockRedis(t)
	store, err := NewRedisStore(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	ctx := context.Background()

	prefs := NewPreferencesAdapter(store, "weather:redis", mocks.NewLogger())
	require.NoError(t, prefs.SaveUnit(ctx, units.Fahrenheit))
	require.NoError(t, prefs.SaveLastCity(ctx, "Lisbon"))

	loaded, err := prefs.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, units.Fahrenheit, loaded.Unit)
	assert.Equal(t, "Lisbon", loaded.LastCity)
}
