// Package gormdb stores enquiries and payments in SQLite through gorm. It is
// the single-node alternative to the pgsql package.
package gormdb

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/firm_enquiries_app/internal/apperrors"
	"github.com/SscSPs/firm_enquiries_app/internal/metrics"
	"github.com/SscSPs/firm_enquiries_app/internal/models"
	"gorm.io/gorm"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	DB *gorm.DB
}

// AutoMigrate creates or extends the tables, indexes and foreign keys.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.IDSequence{}, &models.Enquiry{}, &models.Payment{}); err != nil {
		return fmt.Errorf("sqlite: auto migrate: %w", err)
	}
	return nil
}

// inTx runs fn in a transaction bound to ctx. Any error rolls back.
func (r *BaseRepository) inTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.DB.WithContext(ctx).Transaction(fn)
}

// observe records the latency and outcome of one repository call.
func (r *BaseRepository) observe(operation string, start time.Time, err error) {
	metrics.RecordDBQuery(operation, time.Since(start), err)
	if sqlDB, dbErr := r.DB.DB(); dbErr == nil {
		stats := sqlDB.Stats()
		metrics.UpdateDBConnections(stats.OpenConnections, stats.Idle)
	}
}

// classifyError translates gorm and SQLite errors into apperrors.
func classifyError(operation string, err error) error {
	if err == nil {
		return nil
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrNotFound
	}

	msg := err.Error()
	if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(msg, "UNIQUE constraint failed") {
		return apperrors.NewConflictError(fmt.Sprintf("%s: %s", operation, msg), apperrors.ErrDuplicate)
	}
	if strings.Contains(msg, "database is locked") || strings.Contains(msg, "SQLITE_BUSY") ||
		errors.Is(err, context.DeadlineExceeded) {
		return apperrors.NewStoreUnavailableError(fmt.Sprintf("%s: store unavailable", operation), err)
	}

	return fmt.Errorf("failed to %s: %w", operation, err)
}
