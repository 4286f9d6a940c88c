package external

import (
	"context"
	"time"

	"weatherlookup.app/internal/core/weather"
	"weatherlookup.app/internal/ports"
)

// WeatherClientLoggingDecorator decorates the weather client with structured logging
type WeatherClientLoggingDecorator struct {
	client ports.WeatherClient
	logger ports.Logger
}

// NewWeatherClientLoggingDecorator creates a new logging decorator for the weather client
func NewWeatherClientLoggingDecorator(client ports.WeatherClient, logger ports.Logger) ports.WeatherClient {
	return &WeatherClientLoggingDecorator{
		client: client,
		logger: logger,
	}
}

func (d *WeatherClientLoggingDecorator) CurrentByCity(ctx context.Context, city string) (*weather.Snapshot, error) {
	done := d.started(EndpointCurrent, ports.F("city", city))
	snapshot, err := d.client.CurrentByCity(ctx, city)
	done(err, snapshotFields(snapshot)...)
	return snapshot, err
}

func (d *WeatherClientLoggingDecorator) CurrentByCoords(ctx context.Context, coords weather.Coordinates) (*weather.Snapshot, error) {
	done := d.started(EndpointCurrent, ports.F("coordinates", coords.String()))
	snapshot, err := d.client.CurrentByCoords(ctx, coords)
	done(err, snapshotFields(snapshot)...)
	return snapshot, err
}

func (d *WeatherClientLoggingDecorator) ForecastByCity(ctx context.Context, city string) (*weather.ForecastSeries, error) {
	done := d.started(EndpointForecast, ports.F("city", city))
	series, err := d.client.ForecastByCity(ctx, city)
	done(err, seriesFields(series)...)
	return series, err
}

func (d *WeatherClientLoggingDecorator) ForecastByCoords(ctx context.Context, coords weather.Coordinates) (*weather.ForecastSeries, error) {
	done := d.started(EndpointForecast, ports.F("coordinates", coords.String()))
	series, err := d.client.ForecastByCoords(ctx, coords)
	done(err, seriesFields(series)...)
	return series, err
}

// started logs the request and returns the function that logs its outcome
func (d *WeatherClientLoggingDecorator) started(endpoint string, target ports.Field) func(error, ...ports.Field) {
	d.logger.Info("Weather API request started",
		ports.F("endpoint", endpoint),
		target,
		ports.F("event", "request"))

	startTime := time.Now()
	return func(err error, result ...ports.Field) {
		duration := time.Since(startTime)
		if err != nil {
			d.logger.Error("Weather API request failed",
				ports.F("endpoint", endpoint),
				target,
				ports.F("event", "error"),
				ports.F("duration_ms", duration.Milliseconds()),
				ports.F("error", err.Error()))
			return
		}

		fields := []ports.Field{
			ports.F("endpoint", endpoint),
			target,
			ports.F("event", "response"),
			ports.F("duration_ms", duration.Milliseconds()),
		}
		d.logger.Info("Weather API request completed", append(fields, result...)...)
	}
}

func snapshotFields(s *weather.Snapshot) []ports.Field {
	if s == nil {
		return nil
	}
	return []ports.Field{
		ports.F("resolved_city", s.City),
		ports.F("temperature", s.Temperature),
		ports.F("condition_id", s.Condition.ID),
	}
}

func seriesFields(s *weather.ForecastSeries) []ports.Field {
	if s == nil {
		return nil
	}
	return []ports.Field{
		ports.F("resolved_city", s.City),
		ports.F("samples", len(s.Samples)),
	}
}
