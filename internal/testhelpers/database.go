package testhelpers

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/forkwell/mealvault/backend/internal/database"
)

// SetupTestDatabase creates an in-memory SQLite database with the full schema
// applied. TranslateError matches the production handle, so duplicate-key
// classification behaves the same in tests.
func SetupTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// An in-memory database exists per connection; one connection keeps every
	// query on the same schema.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.RunMigrations(db))

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return db
}
