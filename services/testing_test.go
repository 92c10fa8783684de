package services

import (
	"testing"

	"github.com/jewelfoundation/admin-api/database"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points the shared connection at a fresh in-memory SQLite
// database for the duration of one test.
func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	// One connection so every session sees the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	database.DB = db
	t.Cleanup(func() { sqlDB.Close() })
}

func strPtr(s string) *string     { return &s }
func uintPtr(u uint) *uint        { return &u }
func floatPtr(f float64) *float64 { return &f }
