package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	// Pure-Go SQLite driver, registered as "sqlite".
	_ "modernc.org/sqlite"
)

// NewSQLiteDB opens (or creates) the SQLite database at path and wraps it in
// gorm. WAL lets readers proceed during a write; the pool is capped at one
// connection so every transaction, and with it identifier allocation, is
// serialised.
func NewSQLiteDB(path string, logger *slog.Logger) (*gorm.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite path cannot be empty")
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(on)&_pragma=busy_timeout(5000)", path)
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %q: %w", path, err)
	}
	sqlDB.SetMaxOpenConns(1)

	db, err := gorm.Open(sqlite.Dialector{DriverName: "sqlite", DSN: dsn, Conn: sqlDB}, &gorm.Config{
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("sqlite: init gorm: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("sqlite: ping %q: %w", path, err)
	}

	logger.Info("SQLite database opened.", slog.String("path", path))
	return db, nil
}

// CloseSQLiteDB closes the connection underneath a gorm handle.
func CloseSQLiteDB(db *gorm.DB, logger *slog.Logger) {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("Failed to get SQLite handle", slog.String("error", err.Error()))
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("Failed to close SQLite database", slog.String("error", err.Error()))
		return
	}
	logger.Info("SQLite database closed.")
}
