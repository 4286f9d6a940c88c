package external

import (
	"context"
	"fmt"
	"strings"

	"weatherlookup.app/internal/core/conditions"
	"weatherlookup.app/internal/core/units"
	"weatherlookup.app/internal/ports"
)

// Preference keys within a namespace
const (
	KeyTemperatureUnit = "temperatureUnit"
	KeyTheme           = "theme"
	KeyLastCity        = "lastCity"
)

// PreferencesAdapter implements PreferencesStore port on top of a KeyValueStore.
// Every key is prefixed with the profile namespace.
type PreferencesAdapter struct {
	store     ports.KeyValueStore
	namespace string
	logger    ports.Logger
}

// NewPreferencesAdapter creates preferences bound to one profile namespace
func NewPreferencesAdapter(store ports.KeyValueStore, namespace string, logger ports.Logger) *PreferencesAdapter {
	return &PreferencesAdapter{
		store:     store,
		namespace: namespace,
		logger:    logger,
	}
}

// Load reads all preferences. Unparseable values fall back to their defaults.
func (p *PreferencesAdapter) Load(ctx context.Context) (ports.Preferences, error) {
	prefs := ports.Preferences{Unit: units.Celsius, Theme: conditions.Light}

	raw, ok, err := p.store.Get(ctx, p.key(KeyTemperatureUnit))
	if err != nil {
		return prefs, fmt.Errorf("load %s: %w", KeyTemperatureUnit, err)
	}
	if ok {
		if unit, err := units.ParseUnit(raw); err == nil {
			prefs.Unit = unit
		} else {
			p.logger.Warn("Ignoring invalid stored preference",
				ports.F("key", p.key(KeyTemperatureUnit)),
				ports.F("value", raw))
		}
	}

	raw, ok, err = p.store.Get(ctx, p.key(KeyTheme))
	if err != nil {
		return prefs, fmt.Errorf("load %s: %w", KeyTheme, err)
	}
	if ok {
		if theme, err := conditions.ParseTheme(raw); err == nil {
			prefs.Theme = theme
		} else {
			p.logger.Warn("Ignoring invalid stored preference",
				ports.F("key", p.key(KeyTheme)),
				ports.F("value", raw))
		}
	}

	raw, ok, err = p.store.Get(ctx, p.key(KeyLastCity))
	if err != nil {
		return prefs, fmt.Errorf("load %s: %w", KeyLastCity, err)
	}
	if ok {
		prefs.LastCity = strings.TrimSpace(raw)
	}

	return prefs, nil
}

func (p *PreferencesAdapter) SaveUnit(ctx context.Context, unit units.Unit) error {
	return p.store.Set(ctx, p.key(KeyTemperatureUnit), unit.String())
}

func (p *PreferencesAdapter) SaveTheme(ctx context.Context, theme conditions.Theme) error {
	return p.store.Set(ctx, p.key(KeyTheme), theme.String())
}

// SaveLastCity stores city; an empty city removes the key
func (p *PreferencesAdapter) SaveLastCity(ctx context.Context, city string) error {
	city = strings.TrimSpace(city)
	if city == "" {
		return p.store.Delete(ctx, p.key(KeyLastCity))
	}
	return p.store.Set(ctx, p.key(KeyLastCity), city)
}

func (p *PreferencesAdapter) key(name string) string {
	if p.namespace == "" {
		return name
	}
	return p.namespace + ":" + name
}
