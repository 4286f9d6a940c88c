package infrastructure

import (
	"context"

	"weatherlookup.app/internal/config"
	"weatherlookup.app/internal/ports"
)

// StoreHealthChecker verifies the preference store backend
type StoreHealthChecker struct {
	store     ports.Pinger
	storeType string
}

// NewStoreHealthChecker creates a new store health checker
func NewStoreHealthChecker(store ports.Pinger, storeType string) *StoreHealthChecker {
	return &StoreHealthChecker{store: store, storeType: storeType}
}

// Check pings the store
func (s *StoreHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "preferences",
		Details:   map[string]interface{}{"type": s.storeType},
	}

	if s.store == nil {
		status.Status = ports.StatusUnhealthy
		status.Error = "preference store is not configured"
		return status
	}

	if err := s.store.Ping(ctx); err != nil {
		status.Status = ports.StatusUnhealthy
		status.Error = err.Error()
		return status
	}

	status.Status = ports.StatusHealthy
	status.Details["connected"] = true
	return status
}

// WeatherAPIHealthChecker reports whether the provider client can issue requests.
// It never calls the provider.
type WeatherAPIHealthChecker struct {
	config config.WeatherConfig
}

// NewWeatherAPIHealthChecker creates a new weather API health checker
func NewWeatherAPIHealthChecker(cfg config.WeatherConfig) *WeatherAPIHealthChecker {
	return &WeatherAPIHealthChecker{config: cfg}
}

// Check reports degraded when no API key is configured
func (w *WeatherAPIHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "weatherAPI",
		Status:    ports.StatusHealthy,
		Details: map[string]interface{}{
			"base_url":       w.config.BaseURL,
			"key_configured": w.config.APIKey != "",
		},
	}

	if w.config.APIKey == "" {
		status.Status = ports.StatusDegraded
		status.Error = "OPENWEATHERMAP_API_KEY is not set"
	}

	return status
}

// SystemHealthChecker aggregates all health checks
type SystemHealthChecker struct {
	checkers map[string]ports.HealthChecker
}

// NewSystemHealthChecker creates a system health checker over named component checkers
func NewSystemHealthChecker(checkers map[string]ports.HealthChecker) *SystemHealthChecker {
	return &SystemHealthChecker{checkers: checkers}
}

// CheckAll performs health checks on all components
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	results := make(map[string]ports.HealthStatus, len(s.checkers))
	for name, checker := range s.checkers {
		if checker == nil {
			continue
		}
		results[name] = checker.Check(ctx)
	}
	return results
}
