package ports

import (
	"context"

	"weatherlookup.app/internal/core/weather"
)

// WeatherClient defines the contract for the weather provider API.
// Temperatures are always returned in Celsius.
type WeatherClient interface {
	CurrentByCity(ctx context.Context, city string) (*weather.Snapshot, error)
	CurrentByCoords(ctx context.Context, coords weather.Coordinates) (*weather.Snapshot, error)
	ForecastByCity(ctx context.Context, city string) (*weather.ForecastSeries, error)
	ForecastByCoords(ctx context.Context, coords weather.Coordinates) (*weather.ForecastSeries, error)
}
