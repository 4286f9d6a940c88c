package ports

import (
	"context"
	"time"

	"weatherlookup.app/internal/core/weather"
)

// PositionOptions are the accuracy and freshness requirements of a position request
type PositionOptions struct {
	HighAccuracy bool
	Timeout      time.Duration
	MaximumAge   time.Duration
}

// PositionSource is the platform location capability.
// Errors are classified with the geolocation error types of pkg/errors.
type PositionSource interface {
	CurrentPosition(ctx context.Context, opts PositionOptions) (weather.Coordinates, error)
}
