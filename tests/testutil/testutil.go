package testutil

import (
	"os"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/kendall-kelly/kendalls-kitchen/config"
	"github.com/kendall-kelly/kendalls-kitchen/services"
)

// MustOpenTestDB opens a fresh in-memory store with foreign keys enforced,
// migrated and seeded with the sample rows. Every caller gets its own
// database.
func MustOpenTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:?_foreign_keys=on"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	if err := services.Seed(db); err != nil {
		t.Fatalf("Failed to seed test database: %v", err)
	}
	return db
}

// RequireTestEnvironmentOrSkip skips the test unless GO_ENV is set to
// "test". Use it for tests that touch a store file on disk.
func RequireTestEnvironmentOrSkip(t *testing.T) {
	t.Helper()

	env := os.Getenv("GO_ENV")
	if env != "test" {
		t.Skipf("Skipping test: GO_ENV must be 'test' (current: %q)", env)
	}
}
