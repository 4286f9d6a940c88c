package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"weatherlookup.app/pkg/errors"
)

const (
	maxRedisDB           = 15
	maxPortNumber        = 65535
	maxSessionTTLMinutes = 10080
)

// Config represents the application configuration structure
type Config struct {
	Server      ServerConfig      `split_words:"true"`
	Weather     WeatherConfig     `split_words:"true"`
	Geolocation GeolocationConfig `split_words:"true"`
	Preferences PreferencesConfig `split_words:"true"`
	Database    DatabaseConfig    `split_words:"true"`
	Redis       RedisConfig       `split_words:"true"`
	Logging     LoggingConfig     `split_words:"true"`
	Session     SessionConfig     `split_words:"true"`
}

type ServerConfig struct {
	Port int `envconfig:"SERVER_PORT" default:"8080"`
}

// WeatherConfig configures the OpenWeatherMap client. An empty API key is
// allowed; every lookup then fails with a missing-credential message.
type WeatherConfig struct {
	APIKey          string `envconfig:"OPENWEATHERMAP_API_KEY"`
	BaseURL         string `envconfig:"OPENWEATHERMAP_API_BASE_URL" default:"https://api.openweathermap.org/data/2.5"`
	EnableLogging   bool   `envconfig:"WEATHER_ENABLE_LOGGING" default:"true"`
	DisplayTimezone string `envconfig:"DISPLAY_TIMEZONE" default:"Local"`
}

// Location resolves DisplayTimezone used for forecast day grouping
func (w WeatherConfig) Location() (*time.Location, error) {
	if w.DisplayTimezone == "" || w.DisplayTimezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(w.DisplayTimezone)
	if err != nil {
		return nil, errors.NewConfigurationError(fmt.Sprintf("invalid DISPLAY_TIMEZONE: %s", w.DisplayTimezone), err)
	}
	return loc, nil
}

// PositionSourceType selects where server-side position requests go
type PositionSourceType int

const (
	PositionSourceUnknown PositionSourceType = iota
	PositionSourceNone
	PositionSourceIPAPI
	PositionSourceStatic
)

// String returns the string representation of the position source type
func (p PositionSourceType) String() string {
	switch p {
	case PositionSourceNone:
		return "none"
	case PositionSourceIPAPI:
		return "ipapi"
	case PositionSourceStatic:
		return "static"
	default:
		return "unknown"
	}
}

// IsValid checks if the position source type is valid
func (p PositionSourceType) IsValid() bool {
	return p == PositionSourceNone || p == PositionSourceIPAPI || p == PositionSourceStatic
}

// PositionSourceTypeFromString converts string to PositionSourceType enum
func PositionSourceTypeFromString(s string) PositionSourceType {
	switch strings.ToLower(s) {
	case "none":
		return PositionSourceNone
	case "ipapi":
		return PositionSourceIPAPI
	case "static":
		return PositionSourceStatic
	default:
		return PositionSourceUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (p *PositionSourceType) UnmarshalText(text []byte) error {
	*p = PositionSourceTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (p PositionSourceType) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

type GeolocationConfig struct {
	Source    PositionSourceType `envconfig:"GEOLOCATION_SOURCE" default:"ipapi"`
	IPAPIURL  string             `envconfig:"GEOLOCATION_IPAPI_URL" default:"http://ip-api.com/json/"`
	Latitude  float64            `envconfig:"GEOLOCATION_STATIC_LAT" default:"0"`
	Longitude float64            `envconfig:"GEOLOCATION_STATIC_LON" default:"0"`
}

// StoreType represents the backend used to persist preferences
type StoreType int

const (
	StoreTypeUnknown StoreType = iota
	StoreTypeMemory
	StoreTypeRedis
	StoreTypeSQLite
	StoreTypePostgres
)

// String returns the string representation of store type
func (s StoreType) String() string {
	switch s {
	case StoreTypeMemory:
		return "memory"
	case StoreTypeRedis:
		return "redis"
	case StoreTypeSQLite:
		return "sqlite"
	case StoreTypePostgres:
		return "postgres"
	default:
		return "unknown"
	}
}

// IsValid checks if the store type is valid
func (s StoreType) IsValid() bool {
	return s >= StoreTypeMemory && s <= StoreTypePostgres
}

// StoreTypeFromString converts string to StoreType enum
func StoreTypeFromString(s string) StoreType {
	switch strings.ToLower(s) {
	case "memory":
		return StoreTypeMemory
	case "redis":
		return StoreTypeRedis
	case "sqlite":
		return StoreTypeSQLite
	case "postgres":
		return StoreTypePostgres
	default:
		return StoreTypeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (s *StoreType) UnmarshalText(text []byte) error {
	*s = StoreTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (s StoreType) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

type PreferencesConfig struct {
	Store      StoreType `envconfig:"PREFERENCES_STORE" default:"memory"`
	SQLitePath string    `envconfig:"PREFERENCES_SQLITE_PATH" default:"weather.db"`
	Namespace  string    `envconfig:"PREFERENCES_NAMESPACE" default:"weather"`
}

type DatabaseConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     int    `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name     string `envconfig:"DB_NAME" default:"weatherlookup"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

func (c DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
}

type LoggingConfig struct {
	Level    string `envconfig:"LOG_LEVEL" default:"info"`
	FilePath string `envconfig:"LOG_FILE_PATH" default:""`
}

type SessionConfig struct {
	IdleTTLMinutes       int    `envconfig:"SESSION_IDLE_TTL_MINUTES" default:"60"`
	SweepIntervalMinutes int    `envconfig:"SESSION_SWEEP_INTERVAL_MINUTES" default:"5"`
	CookieName           string `envconfig:"SESSION_COOKIE_NAME" default:"weather_session"`
}

// IdleTTL returns the idle lifetime of a session
func (s SessionConfig) IdleTTL() time.Duration {
	return time.Duration(s.IdleTTLMinutes) * time.Minute
}

// SweepInterval returns how often idle sessions are expired
func (s SessionConfig) SweepInterval() time.Duration {
	return time.Duration(s.SweepIntervalMinutes) * time.Minute
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Weather.Validate(); err != nil {
		return err
	}
	if err := c.Geolocation.Validate(); err != nil {
		return err
	}
	if err := c.Preferences.Validate(); err != nil {
		return err
	}
	if c.Preferences.Store == StoreTypePostgres {
		if err := c.Database.Validate(); err != nil {
			return err
		}
	}
	if c.Preferences.Store == StoreTypeRedis {
		if err := c.Redis.Validate(); err != nil {
			return err
		}
	}
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	if err := c.Session.Validate(); err != nil {
		return err
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

func (w *WeatherConfig) Validate() error {
	if w.BaseURL == "" {
		return errors.NewConfigurationError("OPENWEATHERMAP_API_BASE_URL cannot be empty", nil)
	}
	if !strings.HasPrefix(w.BaseURL, "http://") && !strings.HasPrefix(w.BaseURL, "https://") {
		return errors.NewConfigurationError("OPENWEATHERMAP_API_BASE_URL must start with http:// or https://", nil)
	}
	if _, err := w.Location(); err != nil {
		return err
	}
	return nil
}

func (g *GeolocationConfig) Validate() error {
	if !g.Source.IsValid() {
		return errors.NewConfigurationError("GEOLOCATION_SOURCE must be one of: none, ipapi, static", nil)
	}
	if g.Source == PositionSourceIPAPI && !strings.HasPrefix(g.IPAPIURL, "http://") && !strings.HasPrefix(g.IPAPIURL, "https://") {
		return errors.NewConfigurationError("GEOLOCATION_IPAPI_URL must start with http:// or https://", nil)
	}
	if g.Source == PositionSourceStatic {
		if g.Latitude < -90 || g.Latitude > 90 {
			return errors.NewConfigurationError("GEOLOCATION_STATIC_LAT must be between -90 and 90", nil)
		}
		if g.Longitude < -180 || g.Longitude > 180 {
			return errors.NewConfigurationError("GEOLOCATION_STATIC_LON must be between -180 and 180", nil)
		}
	}
	return nil
}

func (p *PreferencesConfig) Validate() error {
	if !p.Store.IsValid() {
		return errors.NewConfigurationError("PREFERENCES_STORE must be one of: memory, redis, sqlite, postgres", nil)
	}
	if p.Store == StoreTypeSQLite && p.SQLitePath == "" {
		return errors.NewConfigurationError("PREFERENCES_SQLITE_PATH cannot be empty when using sqlite", nil)
	}
	if strings.TrimSpace(p.Namespace) == "" {
		return errors.NewConfigurationError("PREFERENCES_NAMESPACE cannot be empty", nil)
	}
	return nil
}

func (d *DatabaseConfig) Validate() error {
	if d.Host == "" {
		return errors.NewConfigurationError("DB_HOST cannot be empty", nil)
	}
	if d.Port < 1 || d.Port > maxPortNumber {
		return errors.NewConfigurationError("DB_PORT must be between 1 and 65535", nil)
	}
	if d.User == "" {
		return errors.NewConfigurationError("DB_USER cannot be empty", nil)
	}
	if d.Name == "" {
		return errors.NewConfigurationError("DB_NAME cannot be empty", nil)
	}
	if err := d.ValidateSSLMode(); err != nil {
		return err
	}
	return nil
}

func (d *DatabaseConfig) ValidateSSLMode() error {
	validSSLModes := []string{"disable", "require", "verify-ca", "verify-full"}
	for _, mode := range validSSLModes {
		if d.SSLMode == mode {
			return nil
		}
	}
	return errors.NewConfigurationError(
		fmt.Sprintf("DB_SSL_MODE must be one of: %s", strings.Join(validSSLModes, ", ")), nil)
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using Redis", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if r.DialTimeout < 1 {
		return errors.NewConfigurationError("REDIS_DIAL_TIMEOUT must be at least 1 second", nil)
	}
	if r.ReadTimeout < 1 {
		return errors.NewConfigurationError("REDIS_READ_TIMEOUT must be at least 1 second", nil)
	}
	if r.WriteTimeout < 1 {
		return errors.NewConfigurationError("REDIS_WRITE_TIMEOUT must be at least 1 second", nil)
	}
	return nil
}

func (l *LoggingConfig) Validate() error {
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return errors.NewConfigurationError("LOG_LEVEL must be one of: debug, info, warn, error", nil)
	}
}

func (s *SessionConfig) Validate() error {
	if s.IdleTTLMinutes < 1 || s.IdleTTLMinutes > maxSessionTTLMinutes {
		return errors.NewConfigurationError("SESSION_IDLE_TTL_MINUTES must be between 1 and 10080 minutes", nil)
	}
	if s.SweepIntervalMinutes < 1 {
		return errors.NewConfigurationError("SESSION_SWEEP_INTERVAL_MINUTES must be at least 1 minute", nil)
	}
	if s.CookieName == "" {
		return errors.NewConfigurationError("SESSION_COOKIE_NAME cannot be empty", nil)
	}
	return nil
}
