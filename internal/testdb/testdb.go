// Package testdb opens migrated in-memory SQLite databases for tests.
package testdb

import (
	"context"
	"io"
	"testing"

	"github.com/ncobase/yatube/core"
	"github.com/ncobase/yatube/data"
	"github.com/ncobase/yatube/data/config"
	"github.com/ncobase/yatube/logging/logger"
	"github.com/ncobase/yatube/nanoid"

	_ "github.com/ncobase/yatube/data/sqlite"
)

// Logger returns a logger that discards its output
func Logger() *logger.Logger {
	l := logger.NewLogger()
	l.SetOutput(io.Discard)
	return l
}

// New returns a fresh, migrated database private to the test
func New(t testing.TB) *data.Data {
	t.Helper()

	cfg := &config.Config{
		Database: &config.Database{
			Driver: "sqlite",
			Source: "file:" + nanoid.String(12) + "?mode=memory&cache=shared",
		},
	}

	d, cleanup, err := data.New(context.Background(), cfg, Logger())
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(cleanup)

	if err := d.Migrate(context.Background(), core.Models()...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return d
}
