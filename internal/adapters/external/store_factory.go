package external

import (
	"fmt"

	"weatherlookup.app/internal/adapters/database"
	"weatherlookup.app/internal/config"
	"weatherlookup.app/internal/ports"
	"weatherlookup.app/pkg/errors"
)

type StoreFactory struct{}

func NewStoreFactory() *StoreFactory {
	return &StoreFactory{}
}

// CreateStore opens the preference backend selected by PREFERENCES_STORE
func (f *StoreFactory) CreateStore(cfg *config.Config) (ports.PersistentStore, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("store config cannot be nil", nil)
	}

	switch cfg.Preferences.Store {
	case config.StoreTypeMemory:
		return NewMemoryStore(), nil
	case config.StoreTypeRedis:
		store, err := NewRedisStore(&cfg.Redis)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.StoreTypeSQLite:
		db, err := database.OpenSQLite(cfg.Preferences.SQLitePath)
		if err != nil {
			return nil, err
		}
		return database.NewPreferenceRepositoryAdapter(db), nil
	case config.StoreTypePostgres:
		db, err := database.OpenPostgres(cfg.Database)
		if err != nil {
			return nil, err
		}
		return database.NewPreferenceRepositoryAdapter(db), nil
	default:
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("unsupported store type: %s", cfg.Preferences.Store.String()), nil)
	}
}
