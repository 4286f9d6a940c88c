package external

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherlookup.app/internal/adapters/database"
	"weatherlookup.app/internal/config"
	"weatherlookup.app/pkg/errors"
)

func TestStoreFactory_CreateStore(t *testing.T) {
	factory := NewStoreFactory()

	t.Run("NilConfig", func(t *testing.T) {
		store, err := factory.CreateStore(nil)

		assert.Nil(t, store)
		assert.Equal(t, errors.ConfigurationError, errors.TypeOf(err))
	})

	t.Run("Memory", func(t *testing.T) {
		store, err := factory.CreateStore(&config.Config{
			Preferences: config.PreferencesConfig{Store: config.StoreTypeMemory},
		})

		require.NoError(t, err)
		assert.IsType(t, &MemoryStore{}, store)
	})

	t.Run("Redis", func(t *testing.T) {
		_, redisCfg := setupMockRedis(t)

		store, err := factory.CreateStore(&config.Config{
			Preferences: config.PreferencesConfig{Store: config.StoreTypeRedis},
			Redis:       *redisCfg,
		})

		require.NoError(t, err)
		t.Cleanup(func() { _ = store.Close() })
		assert.IsType(t, &RedisStore{}, store)
	})

	t.Run("SQLite", func(t *testing.T) {
		store, err := factory.CreateStore(&config.Config{
			Preferences: config.PreferencesConfig{
				Store:      config.StoreTypeSQLite,
				SQLitePath: filepath.Join(t.TempDir(), "prefs.db"),
			},
		})

		require.NoError(t, err)
		t.Cleanup(func() { _ = store.Close() })
		assert.IsType(t, &database.PreferenceRepositoryAdapter{}, store)
		assert.NoError(t, store.Ping(context.Background()))
	})

	t.Run("Unknown", func(t *testing.T) {
		store, err := factory.CreateStore(&config.Config{
			Preferences: config.PreferencesConfig{Store: config.StoreTypeUnknown},
		})

		assert.Nil(t, store)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported store type: unknown")
	})
}
