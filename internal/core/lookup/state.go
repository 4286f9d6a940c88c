package lookup

import (
	"time"

	"weatherlookup.app/internal/core/conditions"
	"weatherlookup.app/internal/core/units"
	"weatherlookup.app/internal/core/weather"
)

// Phase is the stage of the fetch lifecycle
type Phase int

const (
	Idle Phase = iota
	Loading
	Success
	Failed
)

func (p Phase) String() string {
	switch p {
	case Loading:
		return "loading"
	case Success:
		return "success"
	case Failed:
		return "failed"
	default:
		return "idle"
	}
}

// FetchState is the outcome of the latest lookup. Success always carries
// both Snapshot and Forecast, Loading keeps the previous ones until the new
// result lands, and Failed carries only Message.
type FetchState struct {
	Phase     Phase
	Snapshot  *weather.Snapshot
	Forecast  *weather.ForecastSeries
	Message   string
	UpdatedAt time.Time
}

// View is a consistent copy of everything the presentation layer needs
type View struct {
	State           FetchState
	Unit            units.Unit
	Theme           conditions.Theme
	LastCity        string
	LocationPending bool
	// Error is the message shown next to the search control: the lookup
	// failure if there is one, otherwise the last geolocation failure.
	Error string
}

// HasResult reports whether a snapshot is available for display
func (v View) HasResult() bool {
	switch v.State.Phase {
	case Success, Loading:
		return v.State.Snapshot != nil
	}
	return false
}

// Loading reports whether the search control should be disabled
func (v View) Loading() bool {
	return v.State.Phase == Loading
}
