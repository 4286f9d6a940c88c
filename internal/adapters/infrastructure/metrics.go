package infrastructure

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"weatherlookup.app/internal/ports"
)

// PrometheusMetrics implements MetricsRecorder and StatsProvider ports.
// Counters are mirrored in memory for the JSON stats endpoint.
type PrometheusMetrics struct {
	lookups        *prometheus.CounterVec
	apiRequests    *prometheus.CounterVec
	apiLatency     *prometheus.HistogramVec
	activeSessions prometheus.Gauge

	mu           sync.RWMutex
	lookupCounts map[string]int64
	apiCounts    map[string]int64
	stale        int64
	sessions     int
	lastRecorded time.Time
}

// NewPrometheusMetrics registers the collectors on reg
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		lookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weather_lookups_total",
				Help: "The total number of weather lookups by query source and outcome",
			},
			[]string{"source", "outcome"},
		),
		apiRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weather_api_requests_total",
				Help: "The total number of weather provider requests",
			},
			[]string{"endpoint", "outcome"},
		),
		apiLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "weather_api_request_duration_seconds",
				Help:    "Weather provider request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
		activeSessions: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "weather_sessions_active",
				Help: "The number of live lookup sessions",
			},
		),
		lookupCounts: make(map[string]int64),
		apiCounts:    make(map[string]int64),
	}
}

func (m *PrometheusMetrics) RecordLookup(source, outcome string) {
	m.lookups.WithLabelValues(source, outcome).Inc()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.lookupCounts[source+":"+outcome]++
	if outcome == ports.OutcomeStale {
		m.stale++
	}
	m.lastRecorded = time.Now()
}

func (m *PrometheusMetrics) RecordAPIRequest(endpoint, outcome string, duration time.Duration) {
	m.apiRequests.WithLabelValues(endpoint, outcome).Inc()
	m.apiLatency.WithLabelValues(endpoint).Observe(duration.Seconds())

	m.mu.Lock()
	defer m.mu.Unlock()
	m.apiCounts[endpoint+":"+outcome]++
	m.lastRecorded = time.Now()
}

func (m *PrometheusMetrics) SetActiveSessions(count int) {
	m.activeSessions.Set(float64(count))

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions = count
}

// Stats returns a copy of the mirrored counters
func (m *PrometheusMetrics) Stats() ports.LookupStats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stats := ports.LookupStats{
		Lookups:      make(map[string]int64, len(m.lookupCounts)),
		APIRequests:  make(map[string]int64, len(m.apiCounts)),
		Stale:        m.stale,
		Sessions:     m.sessions,
		LastRecorded: m.lastRecorded,
	}
	for k, v := range m.lookupCounts {
		stats.Lookups[k] = v
	}
	for k, v := range m.apiCounts {
		stats.APIRequests[k] = v
	}
	return stats
}
