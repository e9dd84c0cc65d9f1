// Package db opens the shared gorm handle. Postgres is the production
// driver; sqlite (pure-Go) backs local development and tests.
package db

import (
	"database/sql"
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"github.com/warebilllabs/warebill/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormprometheus "gorm.io/plugin/prometheus"
)

var Module = fx.Module("db",
	fx.Provide(NewGorm),
	fx.Provide(NewSQL),
)

func NewGorm(cfg config.Config, log *zap.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Database.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.Database.DSN)
	case "sqlite":
		dialector = sqlite.Open(cfg.Database.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	gdb, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if cfg.Telemetry.TracingEnabled {
		if err := gdb.Use(otelgorm.NewPlugin()); err != nil {
			return nil, err
		}
	}
	if cfg.Telemetry.MetricsEnabled {
		if err := gdb.Use(gormprometheus.New(gormprometheus.Config{
			DBName:          "warebill",
			RefreshInterval: 15,
		})); err != nil {
			return nil, err
		}
	}

	log.Info("database connected", zap.String("driver", cfg.Database.Driver))
	return gdb, nil
}

// NewSQL exposes the raw handle for the migration runner.
func NewSQL(gdb *gorm.DB) (*sql.DB, error) {
	return gdb.DB()
}
