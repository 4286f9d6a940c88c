package lookup

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"weatherlookup.app/internal/core/weather"
	"weatherlookup.app/internal/ports"
	"weatherlookup.app/pkg/errors"
)

// Result is the current snapshot and forecast of one lookup. Both are always set.
type Result struct {
	Snapshot *weather.Snapshot
	Forecast *weather.ForecastSeries
}

// Fetcher performs a lookup: current conditions and forecast requested together.
type Fetcher struct {
	client  ports.WeatherClient
	logger  ports.Logger
	metrics ports.MetricsRecorder
}

type FetcherDependencies struct {
	Client  ports.WeatherClient
	Logger  ports.Logger
	Metrics ports.MetricsRecorder
}

func NewFetcher(deps FetcherDependencies) (*Fetcher, error) {
	if deps.Client == nil {
		return nil, errors.NewValidationError("weather client is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}

	return &Fetcher{
		client:  deps.Client,
		logger:  deps.Logger,
		metrics: deps.Metrics,
	}, nil
}

// Fetch issues the current and forecast requests concurrently and waits for
// both. If either fails the lookup fails and no partial result is returned.
func (f *Fetcher) Fetch(ctx context.Context, query weather.Query) (*Result, error) {
	if err := query.IsValid(); err != nil {
		return nil, errors.NewValidationError("invalid lookup: " + err.Error())
	}

	start := time.Now()
	f.logger.Debug("Looking up weather",
		ports.F("source", query.Source()),
		ports.F("query", query.String()))

	var (
		snapshot *weather.Snapshot
		forecast *weather.ForecastSeries
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		snapshot, err = f.current(gctx, query)
		return err
	})
	g.Go(func() error {
		var err error
		forecast, err = f.forecast(gctx, query)
		return err
	})

	if err := g.Wait(); err != nil {
		f.metrics.RecordLookup(query.Source(), ports.OutcomeFailure)
		f.logger.Warn("Weather lookup failed",
			ports.F("source", query.Source()),
			ports.F("query", query.String()),
			ports.F("error", err))
		return nil, fmt.Errorf("lookup %s: %w", query.String(), err)
	}

	if snapshot == nil || forecast == nil {
		f.metrics.RecordLookup(query.Source(), ports.OutcomeFailure)
		return nil, errors.NewUnknownFailureError(errors.MsgWeatherFailure, nil)
	}
	if err := snapshot.IsValid(); err != nil {
		f.metrics.RecordLookup(query.Source(), ports.OutcomeFailure)
		return nil, errors.NewUnknownFailureError(errors.MsgWeatherFailure, err)
	}

	f.metrics.RecordLookup(query.Source(), ports.OutcomeSuccess)
	f.logger.Debug("Weather lookup completed",
		ports.F("city", snapshot.City),
		ports.F("samples", len(forecast.Samples)),
		ports.F("duration_ms", time.Since(start).Milliseconds()))

	return &Result{Snapshot: snapshot, Forecast: forecast}, nil
}

func (f *Fetcher) current(ctx context.Context, query weather.Query) (*weather.Snapshot, error) {
	if query.Coordinates != nil {
		return f.client.CurrentByCoords(ctx, *query.Coordinates)
	}
	return f.client.CurrentByCity(ctx, query.City)
}

func (f *Fetcher) forecast(ctx context.Context, query weather.Query) (*weather.ForecastSeries, error) {
	if query.Coordinates != nil {
		return f.client.ForecastByCoords(ctx, *query.Coordinates)
	}
	return f.client.ForecastByCity(ctx, query.City)
}
