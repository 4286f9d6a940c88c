package lookup

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"weatherlookup.app/internal/ports"
)

// SessionFactory builds a session for the given profile identifier
type SessionFactory func(id string) (*Session, error)

// Registry keeps one session per client identifier
type Registry struct {
	factory SessionFactory
	metrics ports.MetricsRecorder
	logger  ports.Logger

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewRegistry creates an empty registry
func NewRegistry(factory SessionFactory, metrics ports.MetricsRecorder, logger ports.Logger) *Registry {
	return &Registry{
		factory:  factory,
		metrics:  metrics,
		logger:   logger,
		sessions: make(map[string]*Session),
	}
}

// Get returns the session registered under id
func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.sessions[id]
	return session, ok
}

// GetOrCreate returns the session for id. An unknown but well-formed id is
// recreated under the same identifier so its persisted preferences are found
// again; an empty or malformed id gets a fresh identifier.
func (r *Registry) GetOrCreate(id string) (*Session, string, error) {
	if _, err := uuid.Parse(id); err != nil {
		return r.Create()
	}
	if session, ok := r.Get(id); ok {
		return session, id, nil
	}
	return r.create(id)
}

// Create registers a new session under a fresh identifier
func (r *Registry) Create() (*Session, string, error) {
	return r.create(uuid.New().String())
}

func (r *Registry) create(id string) (*Session, string, error) {
	session, err := r.factory(id)
	if err != nil {
		return nil, "", err
	}

	r.mu.Lock()
	if existing, ok := r.sessions[id]; ok {
		r.mu.Unlock()
		return existing, id, nil
	}
	r.sessions[id] = session
	count := len(r.sessions)
	r.mu.Unlock()

	r.metrics.SetActiveSessions(count)
	r.logger.Debug("Session created", ports.F("session_id", id))
	return session, id, nil
}

// Sweep drops sessions idle for longer than ttl and returns how many were removed
func (r *Registry) Sweep(now time.Time, ttl time.Duration) int {
	r.mu.Lock()
	removed := 0
	for id, session := range r.sessions {
		if now.Sub(session.LastTouched()) > ttl {
			delete(r.sessions, id)
			removed++
		}
	}
	count := len(r.sessions)
	r.mu.Unlock()

	if removed > 0 {
		r.metrics.SetActiveSessions(count)
		r.logger.Info("Expired idle sessions", ports.F("removed", removed), ports.F("active", count))
	}
	return removed
}

// Len returns the number of registered sessions
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
