package external

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherlookup.app/internal/mocks"
	"weatherlookup.app/pkg/errors"
)

func TestWriterSharer(t *testing.T) {
	var buf bytes.Buffer

	err := NewWriterSharer(&buf).Share(context.Background(), "Weather in Paris, FR", "sunny")

	require.NoError(t, err)
	assert.Equal(t, "Weather in Paris, FR\nsunny\n", buf.String())
}

func TestWriterSharer_CanceledContext(t *testing.T) {
	var buf bytes.Buffer
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewWriterSharer(&buf).Share(ctx, "t", "x")

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, buf.String())
}

func TestFileSharer_Appends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shared.txt")
	sharer := NewFileSharer(path)

	require.NoError(t, sharer.Share(context.Background(), "a", "first"))
	require.NoError(t, sharer.Share(context.Background(), "b", "second"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a\tfirst\nb\tsecond\n", string(content))
}

func TestFileSharer_EmptyPath(t *testing.T) {
	err := NewFileSharer("").Share(context.Background(), "a", "b")

	assert.Equal(t, errors.ConfigurationError, errors.TypeOf(err))
}

func TestFallbackSharer(t *testing.T) {
	t.Run("PrimarySucceeds", func(t *testing.T) {
		primary := mocks.NewSharer(t)
		fallback := mocks.NewSharer(t)
		primary.On("Share", context.Background(), "t", "x").Return(nil).Once()

		err := NewFallbackSharer(primary, fallback, mocks.NewLogger()).Share(context.Background(), "t", "x")

		assert.NoError(t, err)
	})

	t.Run("PrimaryFails", func(t *testing.T) {
		primary := mocks.NewSharer(t)
		fallback := mocks.NewSharer(t)
		logger := mocks.NewLogger()
		primary.On("Share", context.Background(), "t", "x").Return(assert.AnError).Once()
		fallback.On("Share", context.Background(), "t", "x").Return(nil).Once()

		err := NewFallbackSharer(primary, fallback, logger).Share(context.Background(), "t", "x")

		assert.NoError(t, err)
		assert.True(t, logger.HasMessage("warn", "Primary share target failed, using fallback"))
	})
}
