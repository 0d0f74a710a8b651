package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("DB_PATH", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("JWT_SECRET", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "mealvault.db", cfg.DBPath)
	assert.Equal(t, "8080", cfg.ServerPort)
}

func TestLoadConfigPostgres(t *testing.T) {
	t.Setenv("DB_DRIVER", DriverPostgres)
	t.Setenv("DB_DSN", "host=localhost user=app dbname=app")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
}

func TestLoadConfigPostgresRequiresDSN(t *testing.T) {
	t.Setenv("DB_DRIVER", DriverPostgres)
	t.Setenv("DB_DSN", "")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfigRejectsUnknownDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "oracle")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfigRejectsBadPort(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-port")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfigRejectsBadRedisDB(t *testing.T) {
	t.Setenv("REDIS_DB", "two")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestValidateConfigRejectsDefaultSecretInProduction(t *testing.T) {
	t.Setenv("ENV", "production")

	cfg := &Config{
		ServerPort: "8080",
		DBDriver:   DriverSQLite,
		DBPath:     "app.db",
		JWTSecret:  "dev-secret",
	}
	assert.Error(t, ValidateConfig(cfg))
}
