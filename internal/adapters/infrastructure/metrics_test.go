package infrastructure

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"weatherlookup.app/internal/ports"
)

func TestPrometheusMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewPrometheusMetrics(reg)

	t.Run("InitialState", func(t *testing.T) {
		stats := metrics.Stats()
		assert.Empty(t, stats.Lookups)
		assert.Empty(t, stats.APIRequests)
		assert.Zero(t, stats.Stale)
		assert.True(t, stats.LastRecorded.IsZero())
	})

	t.Run("RecordLookup", func(t *testing.T) {
		metrics.RecordLookup("city", ports.OutcomeSuccess)
		metrics.RecordLookup("city", ports.OutcomeSuccess)
		metrics.RecordLookup("coordinates", ports.OutcomeFailure)
		metrics.RecordLookup("city", ports.OutcomeStale)

		assert.Equal(t, 2.0, testutil.ToFloat64(metrics.lookups.WithLabelValues("city", "success")))
		assert.Equal(t, 1.0, testutil.ToFloat64(metrics.lookups.WithLabelValues("coordinates", "failure")))

		stats := metrics.Stats()
		assert.Equal(t, int64(2), stats.Lookups["city:success"])
		assert.Equal(t, int64(1), stats.Stale)
		assert.False(t, stats.LastRecorded.IsZero())
	})

	t.Run("RecordAPIRequest", func(t *testing.T) {
		metrics.RecordAPIRequest("weather", "success", 120*time.Millisecond)
		metrics.RecordAPIRequest("forecast", "rate_limited", 30*time.Millisecond)

		assert.Equal(t, 1.0, testutil.ToFloat64(metrics.apiRequests.WithLabelValues("forecast", "rate_limited")))
		assert.Equal(t, 2, testutil.CollectAndCount(metrics.apiLatency))
		assert.Equal(t, int64(1), metrics.Stats().APIRequests["weather:success"])
	})

	t.Run("SetActiveSessions", func(t *testing.T) {
		metrics.SetActiveSessions(3)

		assert.Equal(t, 3.0, testutil.ToFloat64(metrics.activeSessions))
		assert.Equal(t, 3, metrics.Stats().Sessions)
	})

	t.Run("StatsAreCopies", func(t *testing.T) {
		stats := metrics.Stats()
		stats.Lookups["city:success"] = 100

		assert.Equal(t, int64(2), metrics.Stats().Lookups["city:success"])
	})
}

func TestPrometheusMetrics_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewPrometheusMetrics(prometheus.NewRegistry())
		NewPrometheusMetrics(prometheus.NewRegistry())
	})
}
