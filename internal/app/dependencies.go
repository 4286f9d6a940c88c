package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"weatherlookup.app/internal/adapters/external"
	"weatherlookup.app/internal/adapters/infrastructure"
	"weatherlookup.app/internal/config"
	"weatherlookup.app/internal/core/geolocation"
	"weatherlookup.app/internal/core/lookup"
	"weatherlookup.app/internal/core/weather"
	"weatherlookup.app/internal/ports"
)

// DependencyOptions overrides parts of the container, mainly for tests
type DependencyOptions struct {
	// LogWriter receives the JSON log stream; defaults to stdout
	LogWriter io.Writer
	// HTTPClient is used for OpenWeatherMap and ip-api requests
	HTTPClient external.HTTPClient
	// Sharer receives shared summaries; sessions return the text only when nil
	Sharer ports.Sharer
}

// DependencyContainer builds and owns every adapter the application uses
type DependencyContainer struct {
	config *config.Config

	logger     ports.Logger
	fileLogger *infrastructure.FileLoggerAdapter
	store      ports.PersistentStore
	registry   *prometheus.Registry
	metrics    *infrastructure.PrometheusMetrics
	client     ports.WeatherClient
	source     ports.PositionSource
	sharer     ports.Sharer
	fetcher    *lookup.Fetcher
	sessions   *lookup.Registry
	health     *infrastructure.SystemHealthChecker
}

func NewDependencyContainer(cfg *config.Config, opts DependencyOptions) (*DependencyContainer, error) {
	container := &DependencyContainer{
		config: cfg,
		sharer: opts.Sharer,
	}

	container.initializeLogger(opts.LogWriter)

	if err := container.initializeStore(); err != nil {
		container.Cleanup()
		return nil, fmt.Errorf("initialize preference store: %w", err)
	}

	container.initializeMetrics()
	container.initializeWeatherClient(opts.HTTPClient)
	container.initializePositionSource(opts.HTTPClient)

	if err := container.initializeLookup(); err != nil {
		container.Cleanup()
		return nil, fmt.Errorf("initialize lookup: %w", err)
	}

	container.initializeHealth()
	return container, nil
}

func (c *DependencyContainer) initializeLogger(w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	var logger ports.Logger = infrastructure.NewSlogLoggerAdapter(w, c.config.Logging.Level)

	if c.config.Logging.FilePath != "" {
		fileLogger, err := infrastructure.NewFileLoggerAdapter(c.config.Logging.FilePath, c.config.Logging.Level)
		if err != nil {
			slog.Warn("Failed to create file logger, falling back to stdout only", "error", err)
		} else {
			c.fileLogger = fileLogger
			logger = infrastructure.NewMultiLogger(logger, fileLogger)
			slog.Info("File logging enabled", "path", c.config.Logging.FilePath)
		}
	}

	c.logger = logger
}

func (c *DependencyContainer) initializeStore() error {
	store, err := external.NewStoreFactory().CreateStore(c.config)
	if err != nil {
		return err
	}
	c.store = store

	c.logger.Info("Preference store initialized",
		ports.F("type", c.config.Preferences.Store.String()),
		ports.F("namespace", c.config.Preferences.Namespace))
	return nil
}

func (c *DependencyContainer) initializeMetrics() {
	c.registry = prometheus.NewRegistry()
	c.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	c.metrics = infrastructure.NewPrometheusMetrics(c.registry)
}

func (c *DependencyContainer) initializeWeatherClient(httpClient external.HTTPClient) {
	var client ports.WeatherClient = external.NewOpenWeatherMapClient(external.OpenWeatherMapClientParams{
		APIKey:     c.config.Weather.APIKey,
		BaseURL:    c.config.Weather.BaseURL,
		HTTPClient: httpClient,
		Logger:     c.logger,
	})
	client = external.NewWeatherClientMetricsDecorator(client, c.metrics)

	if c.config.Weather.EnableLogging {
		client = external.NewWeatherClientLoggingDecorator(client, c.logger)
		c.logger.Info("Weather client logging enabled")
	}

	c.client = client
}

// initializePositionSource leaves source nil for "none"; the locator then
// reports geolocation as unsupported.
func (c *DependencyContainer) initializePositionSource(httpClient external.HTTPClient) {
	switch c.config.Geolocation.Source {
	case config.PositionSourceIPAPI:
		c.source = external.NewIPAPIPositionSource(external.IPAPIPositionSourceParams{
			BaseURL:    c.config.Geolocation.IPAPIURL,
			HTTPClient: httpClient,
			Logger:     c.logger,
		})
	case config.PositionSourceStatic:
		c.source = external.NewStaticPositionSource(weather.Coordinates{
			Latitude:  c.config.Geolocation.Latitude,
			Longitude: c.config.Geolocation.Longitude,
		})
	}

	c.logger.Info("Position source initialized", ports.F("source", c.config.Geolocation.Source.String()))
}

func (c *DependencyContainer) initializeLookup() error {
	fetcher, err := lookup.NewFetcher(lookup.FetcherDependencies{
		Client:  c.client,
		Logger:  c.logger,
		Metrics: c.metrics,
	})
	if err != nil {
		return fmt.Errorf("create fetcher: %w", err)
	}
	c.fetcher = fetcher

	c.sessions = lookup.NewRegistry(c.newSession, c.metrics, c.logger)
	return nil
}

// newSession builds a session whose preferences live under its own namespace
func (c *DependencyContainer) newSession(id string) (*lookup.Session, error) {
	return lookup.NewSession(lookup.SessionDependencies{
		Fetcher:     c.fetcher,
		Preferences: external.NewPreferencesAdapter(c.store, c.config.Preferences.Namespace+":"+id, c.logger),
		Locator:     geolocation.NewLocator(c.source, c.logger),
		Sharer:      c.sharer,
		Logger:      c.logger,
		Metrics:     c.metrics,
	})
}

func (c *DependencyContainer) initializeHealth() {
	c.health = infrastructure.NewSystemHealthChecker(map[string]ports.HealthChecker{
		"preferences": infrastructure.NewStoreHealthChecker(c.store, c.config.Preferences.Store.String()),
		"weatherAPI":  infrastructure.NewWeatherAPIHealthChecker(c.config.Weather),
	})
}

func (c *DependencyContainer) Logger() ports.Logger {
	return c.logger
}

func (c *DependencyContainer) Fetcher() *lookup.Fetcher {
	return c.fetcher
}

func (c *DependencyContainer) Sessions() *lookup.Registry {
	return c.sessions
}

func (c *DependencyContainer) Metrics() *infrastructure.PrometheusMetrics {
	return c.metrics
}

func (c *DependencyContainer) Registry() *prometheus.Registry {
	return c.registry
}

func (c *DependencyContainer) Health() *infrastructure.SystemHealthChecker {
	return c.health
}

// Cleanup closes the preference store and the log file
func (c *DependencyContainer) Cleanup() error {
	var firstErr error
	if c.store != nil {
		if err := c.store.Close(); err != nil {
			firstErr = fmt.Errorf("close preference store: %w", err)
		}
	}
	if c.fileLogger != nil {
		if err := c.fileLogger.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("close log file: %w", err)
		}
	}
	return firstErr
}
