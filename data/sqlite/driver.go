// Package sqlite provides the SQLite driver for the data layer.
//
// It uses gorm.io/driver/sqlite, backed by mattn/go-sqlite3 with CGO, and
// registers itself when imported:
//
//	import _ "github.com/ncobase/yatube/data/sqlite"
//
// Example connection strings:
//
//	"file:yatube.db?_foreign_keys=on"                       // file database
//	"file:test?mode=memory&cache=shared&_foreign_keys=on"   // shared in-memory database
//
// Foreign keys are always switched on, post/group/user referential actions
// depend on them.
package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"
	"github.com/ncobase/yatube/data"
	"github.com/ncobase/yatube/data/config"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// minForeignKeyVersion is the first SQLite release enforcing foreign keys
const minForeignKeyVersion = 3006019

// driver implements data.DatabaseDriver for SQLite.
type driver struct{}

// Name returns the driver identifier used in configuration files.
func (d *driver) Name() string {
	return "sqlite"
}

// Dialector returns the GORM dialector for the configured source.
func (d *driver) Dialector(cfg *config.Database) (gorm.Dialector, error) {
	if cfg.Source == "" {
		return nil, fmt.Errorf("sqlite: connection source is empty")
	}
	return sqlite.Open(withForeignKeys(cfg.Source)), nil
}

// Prepare limits the pool to a single writer unless configured otherwise and
// verifies foreign key enforcement.
func (d *driver) Prepare(ctx context.Context, db *gorm.DB, cfg *config.Database) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("sqlite: failed to get sql.DB: %w", err)
	}
	if cfg.MaxOpenConn <= 0 {
		sqlDB.SetMaxOpenConns(1)
	}
	if cfg.MaxIdleConn <= 0 {
		sqlDB.SetMaxIdleConns(2)
	}

	if _, version, _ := sqlite3.Version(); version < minForeignKeyVersion {
		return fmt.Errorf("sqlite: foreign keys need SQLite 3.6.19 or later")
	}
	if err := db.WithContext(ctx).Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return fmt.Errorf("sqlite: failed to enable foreign keys: %w", err)
	}
	return nil
}

// withForeignKeys appends the go-sqlite3 foreign key option to a DSN that
// does not set it.
func withForeignKeys(source string) string {
	if strings.Contains(source, "_foreign_keys=") || strings.Contains(source, "_fk=") {
		return source
	}
	if source == ":memory:" {
		return "file::memory:?_foreign_keys=on"
	}
	if strings.Contains(source, "?") {
		return source + "&_foreign_keys=on"
	}
	return source + "?_foreign_keys=on"
}

func init() {
	data.RegisterDatabaseDriver(&driver{})
}
