package ports

import "context"

// HealthChecker defines the contract for component health checking
type HealthChecker interface {
	Check(ctx context.Context) HealthStatus
}

// HealthStatus represents the health status of a component
type HealthStatus struct {
	Component string                 `json:"component"`
	Status    string                 `json:"status"`
	Details   map[string]interface{} `json:"details,omitempty"`
	Error     string                 `json:"error,omitempty"`
}

// Pinger is implemented by stores that can verify their backend connection
type Pinger interface {
	Ping(ctx context.Context) error
}

// SystemHealthChecker aggregates all health checks
type SystemHealthChecker interface {
	CheckAll(ctx context.Context) map[string]HealthStatus
}

// Component health states
const (
	StatusHealthy   = "healthy"
	StatusDegraded  = "degraded"
	StatusUnhealthy = "unhealthy"
)

// Healthy reports whether no component is unhealthy. Degraded components do not fail the check.
func Healthy(results map[string]HealthStatus) bool {
	for _, status := range results {
		if status.Status == StatusUnhealthy {
			return false
		}
	}
	return true
}
