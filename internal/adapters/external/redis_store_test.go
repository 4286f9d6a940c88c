package external

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherlookup.app/internal/config"
	"weatherlookup.app/pkg/errors"
)

// setupMockRedis creates a mock Redis server for testing
func setupMockRedis(t *testing.T) (*miniredis.Miniredis, *config.RedisConfig) {
	t.Helper()

	mockRedis := miniredis.RunT(t)

	redisConfig := &config.RedisConfig{
		Addr:         mockRedis.Addr(),
		DB:           0,
		DialTimeout:  5,
		ReadTimeout:  3,
		WriteTimeout: 3,
	}

	return mockRedis, redisConfig
}

func TestNewRedisStore(t *testing.T) {
	t.Run("NilConfig", func(t *testing.T) {
		store, err := NewRedisStore(nil)

		assert.Nil(t, store)
		assert.Equal(t, errors.ConfigurationError, errors.TypeOf(err))
	})

	t.Run("ValidConfig", func(t *testing.T) {
		_, cfg := setupMockRedis(t)

		store, err := NewRedisStore(cfg)

		require.NoError(t, err)
		t.Cleanup(func() { _ = store.Close() })
		assert.NoError(t, store.Ping(context.Background()))
	})

	t.Run("ServerUnavailable", func(t *testing.T) {
		mockRedis, cfg := setupMockRedis(t)
		mockRedis.Close()

		store, err := NewRedisStore(cfg)

		assert.Nil(t, store)
		assert.Equal(t, errors.ExternalAPIError, errors.TypeOf(err))
	})
}

func TestRedisStore_Operations(t *testing.T) {
	mockRedis, cfg := setupMockRedis(t)
	store, err := NewRedisStore(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	ctx := context.Background()

	_, ok, err := store.Get(ctx, "weather:theme")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "weather:theme", "dark"))
	stored, err := mockRedis.Get("weather:theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", stored)
	assert.Zero(t, mockRedis.TTL("weather:theme"), "preferences never expire")

	value, ok, err := store.Get(ctx, "weather:theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", value)

	require.NoError(t, store.Delete(ctx, "weather:theme"))
	assert.False(t, mockRedis.Exists("weather:theme"))
}

func TestRedisStore_EmptyKey(t *testing.T) {
	_, cfg := setupMockRedis(t)
	store, err := NewRedisStore(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	_, _, err = store.Get(context.Background(), "")
	assert.Equal(t, errors.ValidationError, errors.TypeOf(err))
}

func TestRedisStore_BackendFailure(t *testing.T) {
	mockRedis, cfg := setupMockRedis(t)
	store, err := NewRedisStore(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	mockRedis.SetError("READONLY")

	_, _, err = store.Get(context.Background(), "weather:theme")
	assert.Equal(t, errors.ExternalAPIError, errors.TypeOf(err))
	assert.Equal(t, errors.ExternalAPIError, errors.TypeOf(store.Set(context.Background(), "k", "v")))
}
