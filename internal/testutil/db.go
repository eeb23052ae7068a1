package testutil

import (
	"fmt"
	"testing"

	"notekeeper-backend/pkg/database"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// NewDB returns a fresh in-memory sqlite database with the given models
// migrated. It is closed when the test ends.
func NewDB(t testing.TB, models ...interface{}) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := database.NewSQLiteConnection(dsn, zerolog.Nop())
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := database.Migrate(db, models...); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	t.Cleanup(func() {
		_ = database.Close(db)
	})
	return db
}
