package testfixtures

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/example/school-activities/internal/persistence"
	"github.com/example/school-activities/internal/persistence/sqlite"
)

// SQLiteHarness provides repository access backed by a temporary SQLite
// store for integration-style persistence tests.
type SQLiteHarness struct {
	Store        *sqlite.Store
	Activities   persistence.ActivityRepository
	Participants persistence.ParticipantRepository

	cleanup func()
}

// Close releases resources associated with the harness.
func (h *SQLiteHarness) Close() {
	if h != nil && h.cleanup != nil {
		h.cleanup()
		h.cleanup = nil
	}
}

// NewSQLiteHarness constructs a SQLiteHarness using a temporary database
// file with the schema applied. Callers may optionally invoke Close, but the
// helper also registers a cleanup callback with the provided testing.TB.
func NewSQLiteHarness(tb testing.TB) *SQLiteHarness {
	tb.Helper()

	dir := tb.TempDir()
	path := filepath.Join(dir, "activities.db")

	store, err := sqlite.NewStore(path)
	if err != nil {
		tb.Fatalf("failed to open store: %v", err)
	}

	if err := store.EnsureSchema(context.Background()); err != nil {
		_ = store.Close()
		tb.Fatalf("failed to create schema: %v", err)
	}

	harness := &SQLiteHarness{
		Store:        store,
		Activities:   sqlite.NewActivityRepository(store),
		Participants: sqlite.NewParticipantRepository(store),
		cleanup: func() {
			_ = store.Close()
		},
	}

	tb.Cleanup(harness.Close)
	return harness
}
