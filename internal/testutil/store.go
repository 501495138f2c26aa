package testutil

import (
	"context"
	"testing"

	"github.com/finrec/finrec/internal/config"
	"github.com/finrec/finrec/internal/logger"
	"github.com/finrec/finrec/internal/storage"
	"github.com/finrec/finrec/internal/storage/sqlite"
)

// SetupTestStore opens an in-memory sqlite store with migrations applied
// and wraps it with the record feed. Closed automatically on cleanup.
func SetupTestStore(t *testing.T) *storage.NotifyingStore {
	t.Helper()

	store, err := sqlite.New(config.DBConfig{Source: ":memory:"})
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}

	log := NewLogger()

	if err := store.ApplyMigrations(context.Background(), log); err != nil {
		t.Fatalf("Failed to apply migrations: %v", err)
	}

	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("Failed to close test store: %v", err)
		}
	})

	return storage.NewNotifying(store, log)
}

// NewLogger returns a logger that discards all output.
func NewLogger() *logger.Logger {
	return logger.New(logger.Config{Output: "discard"})
}
