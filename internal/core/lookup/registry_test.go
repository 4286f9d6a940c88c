package lookup

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherlookup.app/internal/core/geolocation"
	"weatherlookup.app/internal/mocks"
)

func newTestRegistry(t *testing.T, clock func() time.Time) (*Registry, *mocks.MetricsRecorder) {
	metrics := mocks.NewMetricsRecorder(t)
	metrics.On("SetActiveSessions", mock.Anything).Maybe()
	logger := mocks.NewLogger()

	fetcher, err := NewFetcher(FetcherDependencies{Client: mocks.NewWeatherClient(t), Logger: logger, Metrics: metrics})
	require.NoError(t, err)

	factory := func(id string) (*Session, error) {
		return NewSession(SessionDependencies{
			Fetcher:     fetcher,
			Preferences: mocks.NewPreferencesStore(t),
			Locator:     geolocation.NewLocator(nil, logger),
			Logger:      logger,
			Metrics:     metrics,
			Clock:       clock,
		})
	}
	return NewRegistry(factory, metrics, logger), metrics
}

func TestRegistry_GetOrCreate(t *testing.T) {
	registry, metrics := newTestRegistry(t, time.Now)

	first, id, err := registry.GetOrCreate("")
	require.NoError(t, err)
	_, parseErr := uuid.Parse(id)
	assert.NoError(t, parseErr)

	again, sameID, err := registry.GetOrCreate(id)
	require.NoError(t, err)
	assert.Equal(t, id, sameID)
	assert.Same(t, first, again)

	_, otherID, err := registry.GetOrCreate("not-a-uuid")
	require.NoError(t, err)
	assert.NotEqual(t, "not-a-uuid", otherID)

	known := uuid.New().String()
	_, restoredID, err := registry.GetOrCreate(known)
	require.NoError(t, err)
	assert.Equal(t, known, restoredID, "a well-formed id keeps its identity")

	assert.Equal(t, 3, registry.Len())
	metrics.AssertCalled(t, "SetActiveSessions", 3)
}

func TestRegistry_Sweep(t *testing.T) {
	now := time.Date(2024, time.March, 4, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	registry, _ := newTestRegistry(t, clock)

	_, _, err := registry.Create()
	require.NoError(t, err)

	assert.Equal(t, 0, registry.Sweep(now.Add(10*time.Minute), 30*time.Minute))
	assert.Equal(t, 1, registry.Sweep(now.Add(31*time.Minute), 30*time.Minute))
	assert.Equal(t, 0, registry.Len())
}
