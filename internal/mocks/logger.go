// Package mocks holds testify doubles for the ports. Everything except the
// recording Logger is generated by mockery from .mockery.yaml.
package mocks

import (
	"sync"

	"weatherlookup.app/internal/ports"
)

// LogEntry is one message captured by Logger
type LogEntry struct {
	Level   string
	Message string
	Fields  map[string]interface{}
}

// Logger records every message it receives
type Logger struct {
	mu      sync.Mutex
	entries []LogEntry
}

// NewLogger creates an empty recording logger
func NewLogger() *Logger {
	return &Logger{}
}

func (l *Logger) Debug(msg string, fields ...ports.Field) { l.record("debug", msg, fields) }
func (l *Logger) Info(msg string, fields ...ports.Field)  { l.record("info", msg, fields) }
func (l *Logger) Warn(msg string, fields ...ports.Field)  { l.record("warn", msg, fields) }
func (l *Logger) Error(msg string, fields ...ports.Field) { l.record("error", msg, fields) }

// Entries returns a copy of the recorded messages
func (l *Logger) Entries() []LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]LogEntry(nil), l.entries...)
}

// HasMessage reports whether msg was logged at level
func (l *Logger) HasMessage(level, msg string) bool {
	for _, entry := range l.Entries() {
		if entry.Level == level && entry.Message == msg {
			return true
		}
	}
	return false
}

func (l *Logger) record(level, msg string, fields []ports.Field) {
	entry := LogEntry{Level: level, Message: msg, Fields: make(map[string]interface{}, len(fields))}
	for _, f := range fields {
		entry.Fields[f.Key] = f.Value
	}
	l.mu.Lock()
	l.entries = append(l.entries, entry)
	l.mu.Unlock()
}
