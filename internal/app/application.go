package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"weatherlookup.app/internal/adapters/api"
	"weatherlookup.app/internal/config"
	"weatherlookup.app/internal/ports"
)

type Application struct {
	config *config.Config
	deps   *DependencyContainer
	logger ports.Logger

	// Adapters
	httpServer *http.Server
	router     *gin.Engine

	stopChan chan struct{}
	stopOnce sync.Once
}

func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	return NewApplicationWithConfig(cfg, DependencyOptions{})
}

// NewApplicationWithConfig wires the application from an already loaded configuration
func NewApplicationWithConfig(cfg *config.Config, opts DependencyOptions) (*Application, error) {
	deps, err := NewDependencyContainer(cfg, opts)
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	app := &Application{
		config:   cfg,
		deps:     deps,
		logger:   deps.Logger(),
		stopChan: make(chan struct{}),
	}

	if err := app.initializeAdapters(); err != nil {
		_ = deps.Cleanup()
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeAdapters() error {
	a.logger.Info("Initializing adapters...")

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := api.RegisterValidators(v); err != nil {
			return fmt.Errorf("register validators: %w", err)
		}
	}

	location, err := a.config.Weather.Location()
	if err != nil {
		return err
	}

	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config: api.ServerConfig{
			CookieName: a.config.Session.CookieName,
			CookieTTL:  a.config.Session.IdleTTL(),
			Location:   location,
		},
		Lookup:         a.deps.Fetcher(),
		Sessions:       a.deps.Sessions(),
		Stats:          a.deps.Metrics(),
		Health:         a.deps.Health(),
		MetricsHandler: promhttp.HandlerFor(a.deps.Registry(), promhttp.HandlerOpts{}),
		Logger:         a.logger,
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}

	a.router = httpAdapter.GetRouter()

	a.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", a.config.Server.Port),
		Handler:      a.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	a.logger.Info("Adapters initialized successfully")
	return nil
}

func (a *Application) Start(ctx context.Context) error {
	a.logger.Info("Starting application...")

	go a.startSessionSweeper(ctx)

	a.logger.Info("Starting HTTP server", ports.F("port", a.config.Server.Port))
	if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	return nil
}

// startSessionSweeper drops idle sessions until the context ends or the
// application shuts down
func (a *Application) startSessionSweeper(ctx context.Context) {
	interval := a.config.Session.SweepInterval()
	a.logger.Info("Starting session sweeper",
		ports.F("interval", interval.String()),
		ports.F("idle_ttl", a.config.Session.IdleTTL().String()))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			a.logger.Info("Session sweeper stopped due to context cancellation")
			return
		case <-a.stopChan:
			a.logger.Info("Session sweeper stopped")
			return
		case now := <-ticker.C:
			a.SweepSessions(now)
		}
	}
}

// SweepSessions removes sessions that have been idle longer than the configured TTL
func (a *Application) SweepSessions(now time.Time) int {
	return a.deps.Sessions().Sweep(now, a.config.Session.IdleTTL())
}

func (a *Application) Shutdown(ctx context.Context) error {
	a.logger.Info("Shutting down application...")

	a.stopOnce.Do(func() { close(a.stopChan) })

	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.logger.Error("Error shutting down HTTP server", ports.F("error", err))
		return fmt.Errorf("shutdown HTTP server: %w", err)
	}

	if err := a.deps.Cleanup(); err != nil {
		slog.Warn("Error releasing resources", "error", err)
	}

	slog.Info("Application shutdown complete")
	return nil
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.router
}

// Dependencies returns the wired adapters for testing
func (a *Application) Dependencies() *DependencyContainer {
	return a.deps
}
