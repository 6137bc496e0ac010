package pgsql

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/firm_enquiries_app/internal/apperrors"
	"github.com/SscSPs/firm_enquiries_app/internal/core/domain"
	"github.com/SscSPs/firm_enquiries_app/migrations"
	"github.com/SscSPs/firm_enquiries_app/pkg/database"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests need a disposable database; they truncate every table.
func setupPostgres(t *testing.T) (context.Context, *PgxEnquiryRepository, *PgxPaymentRepository) {
	t.Helper()
	url := os.Getenv("PGSQL_TEST_URL")
	if url == "" {
		t.Skip("PGSQL_TEST_URL not set")
	}

	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, migrations.Run(url, migrations.Up, logger))

	pool, err := database.NewPgxPool(ctx, url, true, logger)
	require.NoError(t, err)
	t.Cleanup(func() { database.ClosePgxPool(pool, logger) })

	_, err = pool.Exec(ctx, `TRUNCATE payments, enquiries, id_sequences RESTART IDENTITY CASCADE;`)
	require.NoError(t, err)

	repos := NewRepositoryProvider(pool)
	return ctx, repos.EnquiryRepo.(*PgxEnquiryRepository), repos.PaymentRepo.(*PgxPaymentRepository)
}

func sampleEnquiry(client string) domain.Enquiry {
	now := time.Date(2025, 1, 22, 10, 0, 0, 0, time.UTC)
	day, _ := domain.ParseDate("2025-01-15")
	return domain.Enquiry{
		DateOfEnquiry: day,
		ClientName:    client,
		CurrentStatus: domain.StatusPending,
		AuditFields:   domain.AuditFields{CreatedAt: now, CreatedBy: "it", LastUpdatedAt: now, LastUpdatedBy: "it"},
	}
}

func TestPostgres_EnquiryLifecycle(t *testing.T) {
	ctx, enquiries, payments := setupPostgres(t)

	first, err := enquiries.CreateEnquiry(ctx, sampleEnquiry("One"), false)
	require.NoError(t, err)
	second, err := enquiries.CreateEnquiry(ctx, sampleEnquiry("Two"), false)
	require.NoError(t, err)
	assert.Equal(t, "ENQ-0001", first.EnquiryID)
	assert.Equal(t, "ENQ-0002", second.EnquiryID)

	conv, _ := domain.ParseDate("2025-01-20")
	second.CurrentStatus = domain.StatusConverted
	second.ConversionDate = &conv
	updated, err := enquiries.UpdateEnquiry(ctx, *second, true)
	require.NoError(t, err)
	require.NotNil(t, updated.MatterCode)
	assert.Equal(t, "MAT-2025-001", *updated.MatterCode)

	payment := domain.Payment{
		EnquiryID:     updated.ID,
		MatterCode:    *updated.MatterCode,
		TotalAmount:   decimal.RequireFromString("50000.00"),
		PaymentStatus: domain.PaymentNotStarted,
		AuditFields:   updated.AuditFields,
	}
	saved, err := payments.SavePayment(ctx, payment)
	require.NoError(t, err)
	assert.True(t, saved.TotalAmount.Equal(payment.TotalAmount))

	_, err = payments.SavePayment(ctx, payment)
	assert.True(t, errors.Is(err, apperrors.ErrDuplicate))

	missing, err := payments.FindPaymentByEnquiryID(ctx, first.ID)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestPostgres_ConcurrentCreatesAreDistinct(t *testing.T) {
	ctx, enquiries, _ := setupPostgres(t)

	const callers = 10
	var wg sync.WaitGroup
	var mu sync.Mutex
	seen := make(map[string]bool)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			created, err := enquiries.CreateEnquiry(ctx, sampleEnquiry("Concurrent"), false)
			if !assert.NoError(t, err) {
				return
			}
			mu.Lock()
			seen[created.EnquiryID] = true
			mu.Unlock()
		}()
	}
	wg.Wait()
	assert.Len(t, seen, callers)
}

func TestClassifyError(t *testing.T) {
	assert.True(t, errors.Is(classifyError("op", &pgconn.PgError{Code: uniqueViolation}), apperrors.ErrDuplicate))
	outOfRange := classifyError("save payment", fmt.Errorf("insert: %w", &pgconn.PgError{Code: numericValueOutOfRange}))
	assert.True(t, errors.Is(outOfRange, apperrors.ErrValidation))
	assert.Equal(t, 400, apperrors.StatusCode(outOfRange))
	assert.True(t, errors.Is(classifyError("op", context.DeadlineExceeded), apperrors.ErrStoreUnavailable))
	assert.Equal(t, 500, apperrors.StatusCode(classifyError("op", errors.New("boom"))))
}
