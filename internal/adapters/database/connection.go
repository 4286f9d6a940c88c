// Package database provides the gorm-backed preference store
package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"weatherlookup.app/internal/config"
	"weatherlookup.app/pkg/errors"
)

// OpenPostgres initializes the postgres connection and migrates the schema
func OpenPostgres(cfg config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.GetDSN()), gormConfig())
	if err != nil {
		return nil, errors.NewDatabaseError("connect to postgres", err)
	}
	if err := RunMigrations(db); err != nil {
		_ = Close(db)
		return nil, err
	}
	return db, nil
}

// OpenSQLite opens (or creates) a sqlite database file and migrates the schema
func OpenSQLite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), gormConfig())
	if err != nil {
		return nil, errors.NewDatabaseError("open sqlite database", err)
	}
	if err := RunMigrations(db); err != nil {
		_ = Close(db)
		return nil, err
	}
	return db, nil
}

// RunMigrations executes database schema migrations
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(&PreferenceModel{}); err != nil {
		return errors.NewDatabaseError("migrate preferences", err)
	}
	return nil
}

// Close safely closes the database connection
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func gormConfig() *gorm.Config {
	return &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}
}
