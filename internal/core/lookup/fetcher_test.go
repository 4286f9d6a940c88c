package lookup

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherlookup.app/internal/core/weather"
	"weatherlookup.app/internal/mocks"
	"weatherlookup.app/internal/ports"
	"weatherlookup.app/pkg/errors"
)

func TestNewFetcher_Validation(t *testing.T) {
	tests := []struct {
		name string
		deps FetcherDependencies
	}{
		{name: "MissingClient", deps: FetcherDependencies{Logger: mocks.NewLogger(), Metrics: mocks.NewMetricsRecorder(t)}},
		{name: "MissingLogger", deps: FetcherDependencies{Client: mocks.NewWeatherClient(t), Metrics: mocks.NewMetricsRecorder(t)}},
		{name: "MissingMetrics", deps: FetcherDependencies{Client: mocks.NewWeatherClient(t), Logger: mocks.NewLogger()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fetcher, err := NewFetcher(tt.deps)
			assert.Nil(t, fetcher)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestFetcher_Fetch_ByCoordinates(t *testing.T) {
	client := mocks.NewWeatherClient(t)
	metrics := mocks.NewMetricsRecorder(t)
	client.On("CurrentByCoords", mock.Anything, parisCoords).Return(snapshotFor("Paris", "FR", 20), nil).Once()
	client.On("ForecastByCoords", mock.Anything, parisCoords).Return(seriesFor("Paris"), nil).Once()
	metrics.On("RecordLookup", "coordinates", ports.OutcomeSuccess).Once()

	fetcher, err := NewFetcher(FetcherDependencies{Client: client, Logger: mocks.NewLogger(), Metrics: metrics})
	require.NoError(t, err)

	result, err := fetcher.Fetch(context.Background(), weather.ByCoordinates(parisCoords))

	require.NoError(t, err)
	assert.Equal(t, "Paris", result.Snapshot.City)
	assert.Len(t, result.Forecast.Samples, 40)
}

func TestFetcher_Fetch_UnnamedPlace(t *testing.T) {
	ocean := weather.Coordinates{Latitude: -40, Longitude: -120}
	unnamed := snapshotFor("", "", 14)
	unnamed.Coordinates = ocean

	client := mocks.NewWeatherClient(t)
	metrics := mocks.NewMetricsRecorder(t)
	client.EXPECT().CurrentByCoords(mock.Anything, ocean).Return(unnamed, nil).Once()
	client.EXPECT().ForecastByCoords(mock.Anything, ocean).Return(seriesFor(""), nil).Once()
	metrics.EXPECT().RecordLookup("coordinates", ports.OutcomeSuccess).Once()

	fetcher, err := NewFetcher(FetcherDependencies{Client: client, Logger: mocks.NewLogger(), Metrics: metrics})
	require.NoError(t, err)

	result, err := fetcher.Fetch(context.Background(), weather.ByCoordinates(ocean))

	require.NoError(t, err)
	assert.Equal(t, "-40.0000,-120.0000", result.Snapshot.Location())
}

func TestFetcher_Fetch_InvalidQuery(t *testing.T) {
	fetcher, err := NewFetcher(FetcherDependencies{
		Client:  mocks.NewWeatherClient(t),
		Logger:  mocks.NewLogger(),
		Metrics: mocks.NewMetricsRecorder(t),
	})
	require.NoError(t, err)

	_, err = fetcher.Fetch(context.Background(), weather.ByCity(" "))
	assert.True(t, errors.IsValidationError(err))
}

func TestFetcher_Fetch_PreservesErrorType(t *testing.T) {
	client := mocks.NewWeatherClient(t)
	metrics := mocks.NewMetricsRecorder(t)
	client.On("CurrentByCity", mock.Anything, "Paris").Return(nil, errors.NewUnauthorizedError()).Once()
	client.On("ForecastByCity", mock.Anything, "Paris").Return(seriesFor("Paris"), nil).Maybe()
	metrics.On("RecordLookup", "city", ports.OutcomeFailure).Once()

	fetcher, err := NewFetcher(FetcherDependencies{Client: client, Logger: mocks.NewLogger(), Metrics: metrics})
	require.NoError(t, err)

	result, err := fetcher.Fetch(context.Background(), weather.ByCity("Paris"))

	assert.Nil(t, result)
	assert.Equal(t, errors.UnauthorizedError, errors.TypeOf(err))
	assert.Equal(t, errors.MsgUnauthorized, errors.UserMessage(err))
}
