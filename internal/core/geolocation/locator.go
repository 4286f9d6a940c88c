// Package geolocation wraps the platform position capability in a small
// request/response state machine with typed error reasons.
package geolocation

import (
	"context"
	stderrors "errors"
	"sync"
	"time"

	"weatherlookup.app/internal/core/weather"
	"weatherlookup.app/internal/ports"
	"weatherlookup.app/pkg/errors"
)

// RequestTimeout bounds every position request
const RequestTimeout = 10 * time.Second

// Status of the locator
type Status int

const (
	Idle Status = iota
	Pending
)

func (s Status) String() string {
	if s == Pending {
		return "pending"
	}
	return "idle"
}

// State is what the locator reports between requests.
// After a completed request exactly one of Coordinates or Err is set.
type State struct {
	Status      Status
	Coordinates *weather.Coordinates
	Err         error
}

// Locator requests fresh high-accuracy fixes from a position source.
// A nil source means the platform has no location capability.
type Locator struct {
	source ports.PositionSource
	logger ports.Logger

	mu    sync.Mutex
	state State
}

// NewLocator creates a locator over source
func NewLocator(source ports.PositionSource, logger ports.Logger) *Locator {
	return &Locator{source: source, logger: logger}
}

// Options returns the options sent with every request
func Options() ports.PositionOptions {
	return ports.PositionOptions{
		HighAccuracy: true,
		Timeout:      RequestTimeout,
		MaximumAge:   0,
	}
}

// Request asks for a position and blocks until the source answers or the
// timeout expires. Overlapping requests are not serialized; the state holds
// whichever completed last.
func (l *Locator) Request(ctx context.Context) (weather.Coordinates, error) {
	if l.source == nil {
		err := errors.NewUnsupportedError()
		l.complete(nil, err)
		return weather.Coordinates{}, err
	}

	l.mu.Lock()
	l.state.Status = Pending
	l.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	coords, err := l.source.CurrentPosition(ctx, Options())
	if err != nil {
		err = classify(ctx, err)
		l.logger.Warn("Position request failed", ports.F("reason", errors.TypeOf(err).String()))
		l.complete(nil, err)
		return weather.Coordinates{}, err
	}
	if verr := coords.IsValid(); verr != nil {
		err = errors.NewPositionUnavailableError(verr)
		l.complete(nil, err)
		return weather.Coordinates{}, err
	}

	l.logger.Debug("Position resolved", ports.F("coordinates", coords.String()))
	l.complete(&coords, nil)
	return coords, nil
}

// Report records a fix or an error obtained outside the locator, such as a
// position reported by a browser. Unclassified errors become PositionUnavailable.
func (l *Locator) Report(coords *weather.Coordinates, err error) {
	if err != nil && !errors.IsGeolocationError(err) {
		err = errors.NewPositionUnavailableError(err)
	}
	l.complete(coords, err)
}

// State returns a copy of the current state
func (l *Locator) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()

	state := l.state
	if state.Coordinates != nil {
		coords := *state.Coordinates
		state.Coordinates = &coords
	}
	return state
}

func (l *Locator) complete(coords *weather.Coordinates, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.state = State{Status: Idle}
	if err != nil {
		l.state.Err = err
		return
	}
	l.state.Coordinates = coords
}

func classify(ctx context.Context, err error) error {
	if errors.IsGeolocationError(err) {
		return err
	}
	if stderrors.Is(err, context.DeadlineExceeded) || stderrors.Is(ctx.Err(), context.DeadlineExceeded) {
		return errors.NewTimedOutError(err)
	}
	return errors.NewPositionUnavailableError(err)
}
