package data

import (
	"context"
	"errors"
	"fmt"

	"github.com/ncobase/yatube/data/config"
	"github.com/ncobase/yatube/logging/logger"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// ErrNoDatabase is returned when the data configuration has no database section.
var ErrNoDatabase = errors.New("data: database is not configured")

// Data represents the data layer: the relational store and the optional
// redis client.
type Data struct {
	DB    *gorm.DB
	Redis *redis.Client

	driver      DatabaseDriver
	cacheDriver CacheDriver
	logger      *logger.Logger
}

// New opens the configured database and, when configured, redis.
// The returned cleanup function closes every opened connection.
func New(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Data, func(), error) {
	if cfg == nil || cfg.Database == nil {
		return nil, nil, ErrNoDatabase
	}

	driver, err := GetDatabaseDriver(cfg.Database.Driver)
	if err != nil {
		return nil, nil, err
	}

	dialector, err := driver.Dialector(cfg.Database)
	if err != nil {
		return nil, nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         NewGormLogger(log, cfg.Database.Logging),
		TranslateError: true,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("data: failed to open %s database: %w", driver.Name(), err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("data: failed to get sql.DB: %w", err)
	}
	if cfg.Database.MaxIdleConn > 0 {
		sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConn)
	}
	if cfg.Database.MaxOpenConn > 0 {
		sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConn)
	}
	if cfg.Database.ConnMaxLifeTime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifeTime)
	}

	if err := driver.Prepare(ctx, db, cfg.Database); err != nil {
		_ = sqlDB.Close()
		return nil, nil, err
	}

	d := &Data{
		DB:     db,
		driver: driver,
		logger: log,
	}

	if cfg.Redis.Enabled() {
		cacheDriver, err := GetCacheDriver("redis")
		if err != nil {
			_ = sqlDB.Close()
			return nil, nil, err
		}
		conn, err := cacheDriver.Connect(ctx, cfg.Redis)
		if err != nil {
			_ = sqlDB.Close()
			return nil, nil, err
		}
		client, ok := conn.(*redis.Client)
		if !ok {
			_ = sqlDB.Close()
			return nil, nil, fmt.Errorf("data: unexpected redis connection type %T", conn)
		}
		d.Redis = client
		d.cacheDriver = cacheDriver
	}

	log.Info(ctx, "data layer initialized", "driver", driver.Name(), "redis", d.Redis != nil)

	cleanup := func() {
		if err := d.Close(); err != nil {
			log.Error(context.Background(), "failed to close data layer", "error", err)
		}
	}

	return d, cleanup, nil
}

// Migrate creates or updates the tables of the given models.
func (d *Data) Migrate(ctx context.Context, models ...any) error {
	if err := d.DB.WithContext(ctx).AutoMigrate(models...); err != nil {
		return fmt.Errorf("data: failed to migrate schema: %w", err)
	}
	d.logger.Info(ctx, "database schema migrated", "models", len(models))
	return nil
}

// Ping verifies every connection of the data layer.
func (d *Data) Ping(ctx context.Context) error {
	if err := d.pingDatabase(ctx); err != nil {
		return err
	}
	return d.pingRedis(ctx)
}

func (d *Data) pingDatabase(ctx context.Context) error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("data: database ping failed: %w", err)
	}
	return nil
}

func (d *Data) pingRedis(ctx context.Context) error {
	if d.Redis == nil || d.cacheDriver == nil {
		return nil
	}
	return d.cacheDriver.Ping(ctx, d.Redis)
}

// Close closes the database and redis connections.
func (d *Data) Close() error {
	var errs []error

	if d.Redis != nil && d.cacheDriver != nil {
		if err := d.cacheDriver.Close(d.Redis); err != nil {
			errs = append(errs, err)
		}
	}

	if sqlDB, err := d.DB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("data: failed to close database: %w", err))
		}
	}

	return errors.Join(errs...)
}
