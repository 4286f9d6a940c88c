package external

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherlookup.app/pkg/errors"
)

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, ok, err := store.Get(ctx, "weather:lastCity")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "weather:lastCity", "Paris"))
	value, ok, err := store.Get(ctx, "weather:lastCity")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Paris", value)
	assert.Equal(t, 1, store.Len())

	require.NoError(t, store.Delete(ctx, "weather:lastCity"))
	_, ok, err = store.Get(ctx, "weather:lastCity")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, store.Ping(ctx))
	assert.NoError(t, store.Close())
}

func TestMemoryStore_EmptyKey(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, _, err := store.Get(ctx, "")
	assert.Equal(t, errors.ValidationError, errors.TypeOf(err))
	assert.Equal(t, errors.ValidationError, errors.TypeOf(store.Set(ctx, "", "v")))
	assert.Equal(t, errors.ValidationError, errors.TypeOf(store.Delete(ctx, "")))
}
