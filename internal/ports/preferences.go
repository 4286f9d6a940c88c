package ports

import (
	"context"

	"weatherlookup.app/internal/core/conditions"
	"weatherlookup.app/internal/core/units"
)

// Preferences are the user settings that survive restarts
type Preferences struct {
	Unit     units.Unit       `json:"unit"`
	Theme    conditions.Theme `json:"theme"`
	LastCity string           `json:"last_city,omitempty"`
}

// PreferencesStore loads and saves preferences for one profile
type PreferencesStore interface {
	Load(ctx context.Context) (Preferences, error)
	SaveUnit(ctx context.Context, unit units.Unit) error
	SaveTheme(ctx context.Context, theme conditions.Theme) error
	SaveLastCity(ctx context.Context, city string) error
}

// KeyValueStore is the persistent scalar store backing preferences.
// Get returns ("", false, nil) for a missing key.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// PersistentStore is a KeyValueStore backend owned by the application
type PersistentStore interface {
	KeyValueStore
	Pinger
	Close() error
}
