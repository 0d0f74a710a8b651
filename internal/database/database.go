package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/forkwell/mealvault/backend/config"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// New opens the database handle configured in cfg: a local SQLite file (or
// :memory:) by default, PostgreSQL for server deployments.
//
// TranslateError makes both drivers surface constraint violations as GORM's
// structured error kinds; the repository layer depends on that to tell
// duplicate-key conflicts apart from fatal integrity errors.
func New(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.DBDSN)
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.DBPath)
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("error getting database handle: %w", err)
	}

	if cfg.DBDriver == config.DriverSQLite {
		// SQLite serializes writers; a single connection avoids SQLITE_BUSY
		// and keeps :memory: databases on one connection.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(25)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("error connecting to the database: %w", err)
	}

	log.Printf("Connected to %s database", cfg.DBDriver)
	return db, nil
}

// HealthCheck checks if the database is accessible
func HealthCheck(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
