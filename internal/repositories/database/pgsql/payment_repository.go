package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/SscSPs/firm_enquiries_app/internal/apperrors"
	"github.com/SscSPs/firm_enquiries_app/internal/core/domain"
	portsrepo "github.com/SscSPs/firm_enquiries_app/internal/core/ports/repositories"
	"github.com/SscSPs/firm_enquiries_app/internal/models"
	"github.com/SscSPs/firm_enquiries_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const paymentColumns = `id, enquiry_id, matter_code, total_amount,
	retainer_amount, retainer_paid_date, mid_payment_amount, mid_payment_date,
	final_payment_amount, final_payment_date, amount_paid, amount_outstanding,
	payment_status, notes, created_at, created_by, last_updated_at, last_updated_by`

type PgxPaymentRepository struct {
	BaseRepository
}

// newPgxPaymentRepository creates a new repository for payment data.
func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

func scanPayment(row pgx.Row) (models.Payment, error) {
	var m models.Payment
	err := row.Scan(
		&m.ID,
		&m.EnquiryID,
		&m.MatterCode,
		&m.TotalAmount,
		&m.RetainerAmount,
		&m.RetainerPaidDate,
		&m.MidPaymentAmount,
		&m.MidPaymentDate,
		&m.FinalPaymentAmount,
		&m.FinalPaymentDate,
		&m.AmountPaid,
		&m.AmountOutstanding,
		&m.PaymentStatus,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SavePayment inserts a payment. A second payment for the same enquiry
// violates the unique index and surfaces as a conflict.
func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) (_ *domain.Payment, err error) {
	defer func(start time.Time) { r.observe("save_payment", start, err) }(time.Now())

	m := mapping.ToModelPayment(payment)
	query := `
		INSERT INTO payments (
			enquiry_id, matter_code, total_amount,
			retainer_amount, retainer_paid_date, mid_payment_amount, mid_payment_date,
			final_payment_amount, final_payment_date, amount_paid, amount_outstanding,
			payment_status, notes, created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING ` + paymentColumns + `;`
	saved, err := scanPayment(r.Pool.QueryRow(ctx, query,
		m.EnquiryID,
		m.MatterCode,
		m.TotalAmount,
		m.RetainerAmount,
		m.RetainerPaidDate,
		m.MidPaymentAmount,
		m.MidPaymentDate,
		m.FinalPaymentAmount,
		m.FinalPaymentDate,
		m.AmountPaid,
		m.AmountOutstanding,
		m.PaymentStatus,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	))
	if err != nil {
		return nil, classifyError("insert payment", err)
	}

	result := mapping.ToDomainPayment(saved)
	return &result, nil
}

// UpdatePayment writes the mutable columns of a payment. enquiry_id and
// matter_code are fixed at creation. Returns nil when the row no longer exists.
func (r *PgxPaymentRepository) UpdatePayment(ctx context.Context, payment domain.Payment) (_ *domain.Payment, err error) {
	defer func(start time.Time) { r.observe("update_payment", start, err) }(time.Now())

	m := mapping.ToModelPayment(payment)
	query := `
		UPDATE payments SET
			total_amount = $2,
			retainer_amount = $3,
			retainer_paid_date = $4,
			mid_payment_amount = $5,
			mid_payment_date = $6,
			final_payment_amount = $7,
			final_payment_date = $8,
			amount_paid = $9,
			amount_outstanding = $10,
			payment_status = $11,
			notes = $12,
			last_updated_at = $13,
			last_updated_by = $14
		WHERE id = $1
		RETURNING ` + paymentColumns + `;`
	saved, err := scanPayment(r.Pool.QueryRow(ctx, query,
		m.ID,
		m.TotalAmount,
		m.RetainerAmount,
		m.RetainerPaidDate,
		m.MidPaymentAmount,
		m.MidPaymentDate,
		m.FinalPaymentAmount,
		m.FinalPaymentDate,
		m.AmountPaid,
		m.AmountOutstanding,
		m.PaymentStatus,
		m.Notes,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, classifyError("update payment", err)
	}

	result := mapping.ToDomainPayment(saved)
	return &result, nil
}

// FindPaymentByID retrieves a payment by its store id.
func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, id int64) (_ *domain.Payment, err error) {
	defer func(start time.Time) { r.observe("find_payment", start, err) }(time.Now())

	m, err := scanPayment(r.Pool.QueryRow(ctx, `SELECT `+paymentColumns+` FROM payments WHERE id = $1;`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, classifyError("find payment", err)
	}

	payment := mapping.ToDomainPayment(m)
	return &payment, nil
}

// FindPaymentByEnquiryID returns the payment of an enquiry, or nil when none exists.
func (r *PgxPaymentRepository) FindPaymentByEnquiryID(ctx context.Context, enquiryID int64) (_ *domain.Payment, err error) {
	defer func(start time.Time) { r.observe("find_payment_by_enquiry", start, err) }(time.Now())

	m, err := scanPayment(r.Pool.QueryRow(ctx, `SELECT `+paymentColumns+` FROM payments WHERE enquiry_id = $1;`, enquiryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, classifyError("find payment by enquiry", err)
	}

	payment := mapping.ToDomainPayment(m)
	return &payment, nil
}

// ListPayments retrieves all payments in insertion order.
func (r *PgxPaymentRepository) ListPayments(ctx context.Context) (_ []domain.Payment, err error) {
	defer func(start time.Time) { r.observe("list_payments", start, err) }(time.Now())

	rows, err := r.Pool.Query(ctx, `SELECT `+paymentColumns+` FROM payments ORDER BY id;`)
	if err != nil {
		return nil, classifyError("query payments", err)
	}
	defer rows.Close()

	modelPayments, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Payment, error) {
		return scanPayment(row)
	})
	if err != nil {
		return nil, classifyError("scan payments", err)
	}

	return mapping.ToDomainPaymentSlice(modelPayments), nil
}
