// Package lookup coordinates weather lookups for one user: fetch lifecycle,
// persisted preferences and the triggers that start a lookup.
package lookup

import (
	"context"
	"strings"
	"sync"
	"time"

	"weatherlookup.app/internal/core/conditions"
	"weatherlookup.app/internal/core/geolocation"
	"weatherlookup.app/internal/core/units"
	"weatherlookup.app/internal/core/weather"
	"weatherlookup.app/internal/ports"
	"weatherlookup.app/pkg/errors"
)

// Session owns the fetch state and preferences of one user.
//
// Lookups are not cancelled when a newer one starts. Each lookup is tagged
// with a sequence number and only the most recently issued one may write
// its outcome; older resolutions are dropped.
type Session struct {
	fetcher     *Fetcher
	preferences ports.PreferencesStore
	locator     *geolocation.Locator
	sharer      ports.Sharer
	logger      ports.Logger
	metrics     ports.MetricsRecorder
	now         func() time.Time

	loadMu      sync.Mutex
	mu          sync.Mutex
	activated   bool
	loaded      bool
	prefs       ports.Preferences
	state       FetchState
	issued      uint64
	coords      *weather.Coordinates
	geoErr      error
	locating    int
	lastTouched time.Time
}

type SessionDependencies struct {
	Fetcher     *Fetcher
	Preferences ports.PreferencesStore
	Locator     *geolocation.Locator
	Sharer      ports.Sharer
	Logger      ports.Logger
	Metrics     ports.MetricsRecorder
	Clock       func() time.Time
}

func NewSession(deps SessionDependencies) (*Session, error) {
	if deps.Fetcher == nil {
		return nil, errors.NewValidationError("fetcher is required")
	}
	if deps.Preferences == nil {
		return nil, errors.NewValidationError("preferences store is required")
	}
	if deps.Locator == nil {
		return nil, errors.NewValidationError("locator is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}

	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}

	return &Session{
		fetcher:     deps.Fetcher,
		preferences: deps.Preferences,
		locator:     deps.Locator,
		sharer:      deps.Sharer,
		logger:      deps.Logger,
		metrics:     deps.Metrics,
		now:         clock,
		lastTouched: clock(),
	}, nil
}

// Activate loads the persisted preferences and starts the initial lookup:
// the last searched city if there is one, otherwise the current location.
// Only the first call has any effect, and it starts no lookup once one
// has already been issued.
func (s *Session) Activate(ctx context.Context) {
	s.mu.Lock()
	if s.activated {
		s.mu.Unlock()
		return
	}
	s.activated = true
	s.touch()
	s.mu.Unlock()

	s.Restore(ctx)

	s.mu.Lock()
	prefs := s.prefs
	noResult := s.state.Phase != Success
	noCoords := s.coords == nil
	issued := s.issued
	s.mu.Unlock()

	// A lookup started before activation already decides what is shown.
	if issued > 0 {
		return
	}

	if prefs.LastCity != "" {
		s.logger.Info("Restoring last searched city", ports.F("city", prefs.LastCity))
		s.lookup(ctx, weather.ByCity(prefs.LastCity))
		return
	}
	if !noResult || !noCoords {
		return
	}

	coords, ok := s.locate(ctx)
	if !ok {
		return
	}

	// Only fetch when no result has arrived and no other lookup was started
	// while the position request was outstanding.
	s.mu.Lock()
	fetch := s.state.Phase != Success && s.issued == issued
	s.mu.Unlock()
	if fetch {
		s.lookup(ctx, weather.ByCoordinates(coords))
	}
}

// Restore loads the persisted preferences without starting a lookup.
// Only the first call reads the store; a failed load leaves the defaults.
func (s *Session) Restore(ctx context.Context) {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	s.mu.Lock()
	loaded := s.loaded
	s.mu.Unlock()
	if loaded {
		return
	}

	prefs, err := s.preferences.Load(ctx)
	if err != nil {
		s.logger.Warn("Failed to load preferences, using defaults", ports.F("error", err))
		prefs = ports.Preferences{}
	}

	s.mu.Lock()
	s.prefs = prefs
	s.loaded = true
	s.mu.Unlock()
}

// Search persists city as the last searched city and looks it up.
// The result replaces any prior or in-flight lookup.
func (s *Session) Search(ctx context.Context, city string) error {
	city = strings.TrimSpace(city)
	if city == "" {
		return errors.NewValidationError("city cannot be empty")
	}

	s.mu.Lock()
	s.touch()
	s.prefs.LastCity = city
	s.mu.Unlock()

	if err := s.preferences.SaveLastCity(ctx, city); err != nil {
		s.logger.Warn("Failed to persist last city", ports.F("city", city), ports.F("error", err))
	}

	s.lookup(ctx, weather.ByCity(city))
	return nil
}

// UseLocation requests a fresh position and looks it up. A geolocation
// failure is shown in place of the lookup error.
func (s *Session) UseLocation(ctx context.Context) {
	s.mu.Lock()
	s.touch()
	s.mu.Unlock()

	coords, ok := s.locate(ctx)
	if !ok {
		return
	}
	s.lookup(ctx, weather.ByCoordinates(coords))
}

// UseCoordinates looks up a position obtained outside the session, such as
// one reported by a browser.
func (s *Session) UseCoordinates(ctx context.Context, coords weather.Coordinates) error {
	if err := coords.IsValid(); err != nil {
		return errors.NewValidationError("invalid coordinates: " + err.Error())
	}

	s.locator.Report(&coords, nil)
	s.mu.Lock()
	s.touch()
	s.coords = &coords
	s.geoErr = nil
	s.mu.Unlock()

	s.lookup(ctx, weather.ByCoordinates(coords))
	return nil
}

// ReportLocationError records a geolocation failure obtained outside the session
func (s *Session) ReportLocationError(err error) {
	s.locator.Report(nil, err)
	state := s.locator.State()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.setGeoError(state.Err)
}

// ToggleUnit flips the display unit and persists it. No lookup is made;
// stored temperatures stay in Celsius.
func (s *Session) ToggleUnit(ctx context.Context) units.Unit {
	s.mu.Lock()
	s.touch()
	s.prefs.Unit = s.prefs.Unit.Toggle()
	unit := s.prefs.Unit
	s.mu.Unlock()

	if err := s.preferences.SaveUnit(ctx, unit); err != nil {
		s.logger.Warn("Failed to persist unit", ports.F("unit", unit.String()), ports.F("error", err))
	}
	return unit
}

// ToggleTheme flips between light and dark and persists the choice
func (s *Session) ToggleTheme(ctx context.Context) conditions.Theme {
	s.mu.Lock()
	s.touch()
	s.prefs.Theme = s.prefs.Theme.Toggle()
	theme := s.prefs.Theme
	s.mu.Unlock()

	if err := s.preferences.SaveTheme(ctx, theme); err != nil {
		s.logger.Warn("Failed to persist theme", ports.F("theme", theme.String()), ports.F("error", err))
	}
	return theme
}

// Share hands the summary of the current snapshot to the share capability.
// It returns false when there is nothing to share. Share failures are only logged.
func (s *Session) Share(ctx context.Context) (string, bool) {
	s.mu.Lock()
	s.touch()
	snapshot := s.state.Snapshot
	unit := s.prefs.Unit
	s.mu.Unlock()

	if snapshot == nil {
		return "", false
	}

	text := ShareText(snapshot, unit)
	if s.sharer == nil {
		return text, true
	}
	if err := s.sharer.Share(ctx, ShareTitle(snapshot), text); err != nil {
		s.logger.Warn("Failed to share weather summary", ports.F("city", snapshot.City), ports.F("error", err))
	}
	return text, true
}

// View returns a consistent copy of the session for rendering
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	view := View{
		State:           s.state,
		Unit:            s.prefs.Unit,
		Theme:           s.prefs.Theme,
		LastCity:        s.prefs.LastCity,
		LocationPending: s.locating > 0,
	}
	switch {
	case s.state.Phase == Failed:
		view.Error = s.state.Message
	case s.geoErr != nil:
		view.Error = errors.UserMessage(s.geoErr)
	}
	return view
}

// LastTouched returns when the session was last used
func (s *Session) LastTouched() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastTouched
}

func (s *Session) locate(ctx context.Context) (weather.Coordinates, bool) {
	s.mu.Lock()
	s.locating++
	s.mu.Unlock()

	coords, err := s.locator.Request(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.locating--
	if err != nil {
		s.setGeoError(err)
		return weather.Coordinates{}, false
	}
	s.coords = &coords
	s.geoErr = nil
	return coords, true
}

// setGeoError must be called with mu held. A stale lookup error would
// otherwise hide the newer geolocation message.
func (s *Session) setGeoError(err error) {
	s.geoErr = err
	if s.state.Phase == Failed {
		s.state = FetchState{Phase: Idle, UpdatedAt: s.now()}
	}
}

func (s *Session) lookup(ctx context.Context, query weather.Query) {
	s.mu.Lock()
	s.issued++
	seq := s.issued
	s.state = FetchState{
		Phase:     Loading,
		Snapshot:  s.state.Snapshot,
		Forecast:  s.state.Forecast,
		UpdatedAt: s.now(),
	}
	s.mu.Unlock()

	result, err := s.fetcher.Fetch(ctx, query)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.issued {
		s.logger.Info("Discarding stale lookup result",
			ports.F("query", query.String()),
			ports.F("sequence", seq),
			ports.F("latest", s.issued))
		s.metrics.RecordLookup(query.Source(), ports.OutcomeStale)
		return
	}

	if err != nil {
		s.state = FetchState{
			Phase:     Failed,
			Message:   errors.UserMessage(err),
			UpdatedAt: s.now(),
		}
		return
	}

	s.geoErr = nil
	s.state = FetchState{
		Phase:     Success,
		Snapshot:  result.Snapshot,
		Forecast:  result.Forecast,
		UpdatedAt: s.now(),
	}
}

// touch must be called with mu held
func (s *Session) touch() {
	s.lastTouched = s.now()
}
