package external

import (
	"context"
	"time"

	"weatherlookup.app/internal/core/weather"
	"weatherlookup.app/internal/ports"
	"weatherlookup.app/pkg/errors"
)

// WeatherClientMetricsDecorator records one metric sample per provider request
type WeatherClientMetricsDecorator struct {
	client  ports.WeatherClient
	metrics ports.MetricsRecorder
}

// NewWeatherClientMetricsDecorator wraps client with request metrics
func NewWeatherClientMetricsDecorator(client ports.WeatherClient, metrics ports.MetricsRecorder) ports.WeatherClient {
	return &WeatherClientMetricsDecorator{client: client, metrics: metrics}
}

func (d *WeatherClientMetricsDecorator) CurrentByCity(ctx context.Context, city string) (*weather.Snapshot, error) {
	start := time.Now()
	snapshot, err := d.client.CurrentByCity(ctx, city)
	d.record(EndpointCurrent, start, err)
	return snapshot, err
}

func (d *WeatherClientMetricsDecorator) CurrentByCoords(ctx context.Context, coords weather.Coordinates) (*weather.Snapshot, error) {
	start := time.Now()
	snapshot, err := d.client.CurrentByCoords(ctx, coords)
	d.record(EndpointCurrent, start, err)
	return snapshot, err
}

func (d *WeatherClientMetricsDecorator) ForecastByCity(ctx context.Context, city string) (*weather.ForecastSeries, error) {
	start := time.Now()
	series, err := d.client.ForecastByCity(ctx, city)
	d.record(EndpointForecast, start, err)
	return series, err
}

func (d *WeatherClientMetricsDecorator) ForecastByCoords(ctx context.Context, coords weather.Coordinates) (*weather.ForecastSeries, error) {
	start := time.Now()
	series, err := d.client.ForecastByCoords(ctx, coords)
	d.record(EndpointForecast, start, err)
	return series, err
}

func (d *WeatherClientMetricsDecorator) record(endpoint string, start time.Time, err error) {
	d.metrics.RecordAPIRequest(endpoint, RequestOutcome(err), time.Since(start))
}

// RequestOutcome is the metric label for a provider call result
func RequestOutcome(err error) string {
	if err == nil {
		return ports.OutcomeSuccess
	}
	switch errors.TypeOf(err) {
	case errors.NotFoundError:
		return "not_found"
	case errors.MissingCredentialError:
		return "missing_credential"
	case errors.UnauthorizedError:
		return "unauthorized"
	case errors.RateLimitedError:
		return "rate_limited"
	case errors.NetworkUnavailableError:
		return "network_unavailable"
	default:
		return ports.OutcomeFailure
	}
}
