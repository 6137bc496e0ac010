package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/firm_enquiries_app/internal/apperrors"
	"github.com/SscSPs/firm_enquiries_app/internal/metrics"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SQLSTATE codes classified by classifyError.
const (
	uniqueViolation        = "23505"
	numericValueOutOfRange = "22003"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, classifyError("begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return classifyError("commit transaction", err)
	}
	return nil
}

// Rollback rolls back a transaction
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	err := tx.Rollback(ctx)
	if err != nil && !errors.Is(err, pgx.ErrTxClosed) && !errors.Is(err, sql.ErrTxDone) {
		return apperrors.NewAppError(500, "failed to rollback transaction", err)
	}
	return nil
}

// observe records the latency and outcome of one repository call.
func (r *BaseRepository) observe(operation string, start time.Time, err error) {
	metrics.RecordDBQuery(operation, time.Since(start), err)
	if r.Pool != nil {
		stat := r.Pool.Stat()
		metrics.UpdateDBConnections(int(stat.TotalConns()), int(stat.IdleConns()))
	}
}

// classifyError translates driver errors into apperrors. Unique violations
// become conflicts, numeric overflow a validation error, and
// unreachable-store failures StoreUnavailable.
func classifyError(operation string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			return apperrors.NewConflictError(fmt.Sprintf("%s: %s violates %s", operation, pgErr.TableName, pgErr.ConstraintName), apperrors.ErrDuplicate)
		case numericValueOutOfRange:
			return apperrors.NewValidationError(fmt.Sprintf("%s: amount out of range for the store", operation))
		}
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) || pgconn.Timeout(err) || errors.Is(err, context.DeadlineExceeded) {
		return apperrors.NewStoreUnavailableError(fmt.Sprintf("%s: store unavailable", operation), err)
	}

	return fmt.Errorf("failed to %s: %w", operation, err)
}
