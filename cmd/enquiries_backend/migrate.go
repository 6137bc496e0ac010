package main

import (
	"fmt"

	"github.com/SscSPs/firm_enquiries_app/internal/platform/config"
	"github.com/SscSPs/firm_enquiries_app/internal/repositories/database/gormdb"
	"github.com/SscSPs/firm_enquiries_app/migrations"
	"github.com/SscSPs/firm_enquiries_app/pkg/database"
	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down]",
		Short:     "Apply or revert the database schema",
		Long:      "Applies (up) or reverts (down) the embedded Postgres migrations. With DB_DRIVER=sqlite only up is supported.",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{string(migrations.Up), string(migrations.Down)},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			logger := newLogger(cfg.LogLevel)
			direction := migrations.Direction(args[0])

			if cfg.DBDriver == config.DriverSQLite {
				if direction != migrations.Up {
					return fmt.Errorf("sqlite schema only migrates up")
				}
				db, err := database.NewSQLiteDB(cfg.SQLitePath, logger)
				if err != nil {
					return err
				}
				defer database.CloseSQLiteDB(db, logger)
				return gormdb.AutoMigrate(db)
			}

			return migrations.Run(cfg.DatabaseURL, direction, logger)
		},
	}
}
