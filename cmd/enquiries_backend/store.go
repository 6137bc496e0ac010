package main

import (
	"context"
	"fmt"
	"log/slog"

	portsrepo "github.com/SscSPs/firm_enquiries_app/internal/core/ports/repositories"
	"github.com/SscSPs/firm_enquiries_app/internal/platform/config"
	"github.com/SscSPs/firm_enquiries_app/internal/repositories/database/gormdb"
	"github.com/SscSPs/firm_enquiries_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/firm_enquiries_app/migrations"
	"github.com/SscSPs/firm_enquiries_app/pkg/database"
)

// openStore connects the configured backend, brings its schema up to date
// and returns the repositories plus a close func.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	switch cfg.DBDriver {
	case config.DriverSQLite:
		db, err := database.NewSQLiteDB(cfg.SQLitePath, logger)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		if cfg.RunMigrations {
			if err := gormdb.AutoMigrate(db); err != nil {
				database.CloseSQLiteDB(db, logger)
				return portsrepo.RepositoryProvider{}, nil, err
			}
		}
		return gormdb.NewRepositoryProvider(db), func() { database.CloseSQLiteDB(db, logger) }, nil

	default:
		if cfg.RunMigrations {
			logger.Info("Running database migrations...")
			if err := migrations.Run(cfg.DatabaseURL, migrations.Up, logger); err != nil {
				return portsrepo.RepositoryProvider{}, nil, err
			}
		}
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck, logger)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("failed to initialize database pool: %w", err)
		}
		logger.Info("Database connection pool established.")
		return pgsql.NewRepositoryProvider(pool), func() { database.ClosePgxPool(pool, logger) }, nil
	}
}
