package ports

import (
	"time"
)

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Lookup outcomes reported to MetricsRecorder
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeStale   = "stale"
)

// MetricsRecorder defines the contract for lookup and provider metrics
type MetricsRecorder interface {
	RecordLookup(source, outcome string)
	RecordAPIRequest(endpoint, outcome string, duration time.Duration)
	SetActiveSessions(count int)
}

// LookupStats is the JSON view of the recorded lookup counters
type LookupStats struct {
	Lookups      map[string]int64 `json:"lookups"`
	APIRequests  map[string]int64 `json:"api_requests"`
	Stale        int64            `json:"stale_discarded"`
	Sessions     int              `json:"active_sessions"`
	LastRecorded time.Time        `json:"last_recorded"`
}

// StatsProvider exposes a snapshot of the recorded metrics
type StatsProvider interface {
	Stats() LookupStats
}
