// Package mysql provides the MySQL driver for the data layer.
//
// It uses gorm.io/driver/mysql, backed by go-sql-driver/mysql, and registers
// itself when imported:
//
//	import _ "github.com/ncobase/yatube/data/mysql"
//
// Example DSN format:
//
//	user:pass@tcp(localhost:3306)/yatube?charset=utf8mb4&parseTime=True&loc=Local
package mysql

import (
	"context"
	"fmt"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/ncobase/yatube/data"
	"github.com/ncobase/yatube/data/config"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// driver implements data.DatabaseDriver for MySQL.
type driver struct{}

// Name returns the driver identifier used in configuration files.
func (d *driver) Name() string {
	return "mysql"
}

// Dialector returns the GORM dialector for the configured DSN. Time values
// must be parsed into time.Time, so parseTime is forced on.
func (d *driver) Dialector(cfg *config.Database) (gorm.Dialector, error) {
	if cfg.Source == "" {
		return nil, fmt.Errorf("mysql: connection source is empty")
	}
	dsn, err := mysqldriver.ParseDSN(cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("mysql: invalid DSN: %w", err)
	}
	dsn.ParseTime = true
	return mysql.New(mysql.Config{DSNConfig: dsn, DSN: dsn.FormatDSN()}), nil
}

// Prepare verifies the connection works.
func (d *driver) Prepare(ctx context.Context, db *gorm.DB, _ *config.Database) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("mysql: failed to get sql.DB: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("mysql: failed to ping database: %w", err)
	}
	return nil
}

func init() {
	data.RegisterDatabaseDriver(&driver{})
}
