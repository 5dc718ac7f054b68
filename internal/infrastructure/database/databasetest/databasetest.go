// Package databasetest provides throwaway databases for tests.
package databasetest

import (
	"fmt"
	"testing"

	"apptracker/internal/infrastructure/database"
	"apptracker/internal/pkg/config"
	"apptracker/internal/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// New returns a migrated in-memory SQLite database private to t.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	cfg := config.DatabaseConfig{
		Driver: config.DriverSQLite,
		DSN:    fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
	}
	db, err := database.Open(cfg, logger.Discard())
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}
