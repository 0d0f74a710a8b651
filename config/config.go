package config

import (
	"fmt"
	"os"
	"strconv"
)

// Supported database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerHost string
	ServerPort string

	// Database configuration
	DBDriver string
	DBPath   string // sqlite file path or :memory:
	DBDSN    string // postgres DSN

	// JWT configuration
	JWTSecret string

	// Redis configuration (optional; empty addr disables session revocation)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// S3 configuration (optional; empty bucket disables image uploads)
	S3Bucket  string
	AWSRegion string
}

// LoadConfig creates a new Config instance from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerHost:    getEnv("SERVER_HOST", "0.0.0.0"),
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		DBDriver:      getEnv("DB_DRIVER", DriverSQLite),
		DBPath:        getEnv("DB_PATH", "mealvault.db"),
		DBDSN:         os.Getenv("DB_DSN"),
		JWTSecret:     getEnv("JWT_SECRET", "dev-secret"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		S3Bucket:      os.Getenv("S3_BUCKET_NAME"),
		AWSRegion:     os.Getenv("AWS_REGION"),
	}

	if v := os.Getenv("REDIS_DB"); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB %q: %w", v, err)
		}
		cfg.RedisDB = db
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
