package database

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"weatherlookup.app/pkg/errors"
)

// PreferenceModel represents one stored preference value
type PreferenceModel struct {
	Key       string `gorm:"primaryKey;size:255"`
	Value     string `gorm:"not null"`
	UpdatedAt time.Time
}

func (PreferenceModel) TableName() string {
	return "preferences"
}

// PreferenceRepositoryAdapter implements the KeyValueStore port using GORM
type PreferenceRepositoryAdapter struct {
	db *gorm.DB
}

// NewPreferenceRepositoryAdapter creates a new preference repository adapter
func NewPreferenceRepositoryAdapter(db *gorm.DB) *PreferenceRepositoryAdapter {
	return &PreferenceRepositoryAdapter{db: db}
}

// Get retrieves a preference value by key
func (r *PreferenceRepositoryAdapter) Get(ctx context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, errors.NewValidationError("preference key cannot be empty")
	}

	var model PreferenceModel
	result := r.db.WithContext(ctx).Where("key = ?", key).First(&model)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return "", false, nil
		}
		return "", false, errors.NewDatabaseError("failed to get preference", result.Error)
	}

	return model.Value, true, nil
}

// Set inserts or updates a preference value
func (r *PreferenceRepositoryAdapter) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return errors.NewValidationError("preference key cannot be empty")
	}

	model := PreferenceModel{Key: key, Value: value, UpdatedAt: time.Now()}
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&model)
	if result.Error != nil {
		return errors.NewDatabaseError("failed to save preference", result.Error)
	}

	return nil
}

// Delete removes a preference; deleting a missing key is not an error
func (r *PreferenceRepositoryAdapter) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.NewValidationError("preference key cannot be empty")
	}

	result := r.db.WithContext(ctx).Where("key = ?", key).Delete(&PreferenceModel{})
	if result.Error != nil {
		return errors.NewDatabaseError("failed to delete preference", result.Error)
	}

	return nil
}

// Ping checks the underlying database connection
func (r *PreferenceRepositoryAdapter) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return errors.NewDatabaseError("failed to get database handle", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return errors.NewDatabaseError("database ping failed", err)
	}
	return nil
}

// Close releases the database connection
func (r *PreferenceRepositoryAdapter) Close() error {
	if err := Close(r.db); err != nil {
		return errors.NewDatabaseError("failed to close database", err)
	}
	return nil
}
