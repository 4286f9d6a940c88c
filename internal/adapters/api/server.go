// Package api provides HTTP adapters for the hexagonal architecture
// These adapters handle incoming HTTP requests and translate them to session operations
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"weatherlookup.app/internal/core/lookup"
	"weatherlookup.app/internal/core/weather"
	"weatherlookup.app/internal/ports"
	"weatherlookup.app/pkg/errors"
)

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	CookieName string
	CookieTTL  time.Duration
	Location   *time.Location
}

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router   *gin.Engine
	config   ServerConfig
	lookup   WeatherLookup
	sessions SessionRegistry
	stats    ports.StatsProvider
	health   ports.SystemHealthChecker
	metrics  http.Handler
	logger   ports.Logger
	now      func() time.Time
}

// WeatherLookup performs a stateless current + forecast lookup
type WeatherLookup interface {
	Fetch(ctx context.Context, query weather.Query) (*lookup.Result, error)
}

// SessionRegistry resolves the session behind a client cookie
type SessionRegistry interface {
	GetOrCreate(id string) (*lookup.Session, string, error)
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config         ServerConfig
	Lookup         WeatherLookup
	Sessions       SessionRegistry
	Stats          ports.StatsProvider
	Health         ports.SystemHealthChecker
	MetricsHandler http.Handler
	Logger         ports.Logger
	Clock          func() time.Time
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	if opts.Config.CookieName == "" {
		opts.Config.CookieName = "weather_session"
	}
	if opts.Config.Location == nil {
		opts.Config.Location = time.Local
	}
	if opts.MetricsHandler == nil {
		opts.MetricsHandler = promhttp.Handler()
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	router := gin.New()
	router.Use(gin.Recovery())

	server := &HTTPServerAdapter{
		router:   router,
		config:   opts.Config,
		lookup:   opts.Lookup,
		sessions: opts.Sessions,
		stats:    opts.Stats,
		health:   opts.Health,
		metrics:  opts.MetricsHandler,
		logger:   opts.Logger,
		now:      opts.Clock,
	}

	server.setupRoutes()
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.Lookup == nil {
		return errors.NewValidationError("weather lookup is required")
	}
	if opts.Sessions == nil {
		return errors.NewValidationError("session registry is required")
	}
	if opts.Stats == nil {
		return errors.NewValidationError("stats provider is required")
	}
	if opts.Health == nil {
		return errors.NewValidationError("health checker is required")
	}
	if opts.Logger == nil {
		return errors.NewValidationError("logger is required")
	}
	return nil
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/weather", s.getWeather)
		api.GET("/metrics", s.getMetrics)

		session := api.Group("/session")
		session.GET("", s.getSession)
		session.POST("/search", s.search)
		session.POST("/location", s.reportLocation)
		session.POST("/locate", s.locate)
		session.POST("/unit", s.setUnit)
		session.POST("/theme", s.setTheme)
		session.POST("/share", s.share)
	}

	s.router.GET("/healthz", s.getHealth)
	s.router.GET("/metrics", gin.WrapH(s.metrics))
}

// GetRouter returns the router for serving and testing
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}

// getMetrics handles GET /api/metrics requests
func (s *HTTPServerAdapter) getMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, s.stats.Stats())
}

// HealthResponse is the body of GET /healthz
type HealthResponse struct {
	Status     string                        `json:"status"`
	Components map[string]ports.HealthStatus `json:"components"`
}

// getHealth handles GET /healthz requests
func (s *HTTPServerAdapter) getHealth(c *gin.Context) {
	results := s.health.CheckAll(c.Request.Context())

	if !ports.Healthy(results) {
		c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: ports.StatusUnhealthy, Components: results})
		return
	}
	c.JSON(http.StatusOK, HealthResponse{Status: ports.StatusHealthy, Components: results})
}
