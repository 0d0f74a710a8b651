package config

import (
	"fmt"
	"strconv"
)

// ValidateConfig checks that the configuration is usable before anything
// tries to connect with it.
func ValidateConfig(cfg *Config) error {
	if _, err := strconv.Atoi(cfg.ServerPort); err != nil {
		return fmt.Errorf("SERVER_PORT must be numeric, got %q", cfg.ServerPort)
	}

	switch cfg.DBDriver {
	case DriverSQLite:
		if cfg.DBPath == "" {
			return fmt.Errorf("DB_PATH is required for the sqlite driver")
		}
	case DriverPostgres:
		if cfg.DBDSN == "" {
			return fmt.Errorf("DB_DSN is required for the postgres driver")
		}
	default:
		return fmt.Errorf("DB_DRIVER must be %q or %q, got %q", DriverSQLite, DriverPostgres, cfg.DBDriver)
	}

	if cfg.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must not be empty")
	}
	if IsProduction() && cfg.JWTSecret == "dev-secret" {
		return fmt.Errorf("JWT_SECRET must be set in production")
	}

	return nil
}
