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

const enquiryColumns = `id, enquiry_id, enquiry_number, date_of_enquiry, client_name, email, phone,
	service_requested, referral_source, assigned_to, notes, urgency_level, current_status,
	estimated_value, conversion_date, matter_code, matter_year, matter_number,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxEnquiryRepository struct {
	BaseRepository
}

// newPgxEnquiryRepository creates a new repository for enquiry data.
func newPgxEnquiryRepository(pool *pgxpool.Pool) portsrepo.EnquiryRepositoryFacade {
	return &PgxEnquiryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.EnquiryRepositoryFacade = (*PgxEnquiryRepository)(nil)

func scanEnquiry(row pgx.Row) (models.Enquiry, error) {
	var m models.Enquiry
	err := row.Scan(
		&m.ID,
		&m.EnquiryID,
		&m.EnquiryNumber,
		&m.DateOfEnquiry,
		&m.ClientName,
		&m.Email,
		&m.Phone,
		&m.ServiceRequested,
		&m.ReferralSource,
		&m.AssignedTo,
		&m.Notes,
		&m.UrgencyLevel,
		&m.CurrentStatus,
		&m.EstimatedValue,
		&m.ConversionDate,
		&m.MatterCode,
		&m.MatterYear,
		&m.MatterNumber,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// issueMatterCode allocates the next matter number of the conversion year
// and stamps it on the enquiry.
func issueMatterCode(ctx context.Context, tx pgx.Tx, enquiry *domain.Enquiry) error {
	year := enquiry.ConversionDate.Year()
	n, err := nextMatterNumber(ctx, tx, year)
	if err != nil {
		return err
	}
	code := domain.FormatMatterCode(year, n)
	enquiry.MatterCode = &code
	enquiry.MatterYear = &year
	enquiry.MatterNumber = &n
	return nil
}

// CreateEnquiry allocates the enquiry number (and a matter code when asked)
// and inserts the row in one transaction.
func (r *PgxEnquiryRepository) CreateEnquiry(ctx context.Context, enquiry domain.Enquiry, withMatterCode bool) (_ *domain.Enquiry, err error) {
	defer func(start time.Time) { r.observe("create_enquiry", start, err) }(time.Now())

	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx) // no-op after commit

	n, err := nextEnquiryNumber(ctx, tx)
	if err != nil {
		return nil, err
	}
	enquiry.EnquiryNumber = n
	enquiry.EnquiryID = domain.FormatEnquiryID(n)
	enquiry.MatterCode, enquiry.MatterYear, enquiry.MatterNumber = nil, nil, nil

	if withMatterCode && enquiry.ConversionDate != nil {
		if err = issueMatterCode(ctx, tx, &enquiry); err != nil {
			return nil, err
		}
	}

	m := mapping.ToModelEnquiry(enquiry)
	query := `
		INSERT INTO enquiries (
			enquiry_id, enquiry_number, date_of_enquiry, client_name, email, phone,
			service_requested, referral_source, assigned_to, notes, urgency_level, current_status,
			estimated_value, conversion_date, matter_code, matter_year, matter_number,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		RETURNING ` + enquiryColumns + `;`
	saved, err := scanEnquiry(tx.QueryRow(ctx, query,
		m.EnquiryID,
		m.EnquiryNumber,
		m.DateOfEnquiry,
		m.ClientName,
		m.Email,
		m.Phone,
		m.ServiceRequested,
		m.ReferralSource,
		m.AssignedTo,
		m.Notes,
		m.UrgencyLevel,
		m.CurrentStatus,
		m.EstimatedValue,
		m.ConversionDate,
		m.MatterCode,
		m.MatterYear,
		m.MatterNumber,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	))
	if err != nil {
		return nil, classifyError("insert enquiry", err)
	}

	if err = r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	result := mapping.ToDomainEnquiry(saved)
	return &result, nil
}

// UpdateEnquiry writes every mutable column of the enquiry. The row is locked
// first; a matter code is only issued when the stored row still has none, and
// a stored code is never overwritten. Returns nil when the row no longer exists.
func (r *PgxEnquiryRepository) UpdateEnquiry(ctx context.Context, enquiry domain.Enquiry, withMatterCode bool) (_ *domain.Enquiry, err error) {
	defer func(start time.Time) { r.observe("update_enquiry", start, err) }(time.Now())

	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	var storedCode *string
	err = tx.QueryRow(ctx, `SELECT matter_code FROM enquiries WHERE id = $1 FOR UPDATE;`, enquiry.ID).Scan(&storedCode)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, classifyError("lock enquiry", err)
	}

	enquiry.MatterCode, enquiry.MatterYear, enquiry.MatterNumber = nil, nil, nil
	if withMatterCode && storedCode == nil && enquiry.ConversionDate != nil {
		if err = issueMatterCode(ctx, tx, &enquiry); err != nil {
			return nil, err
		}
	}

	m := mapping.ToModelEnquiry(enquiry)
	query := `
		UPDATE enquiries SET
			date_of_enquiry = $2,
			client_name = $3,
			email = $4,
			phone = $5,
			service_requested = $6,
			referral_source = $7,
			assigned_to = $8,
			notes = $9,
			urgency_level = $10,
			current_status = $11,
			estimated_value = $12,
			conversion_date = $13,
			matter_code = COALESCE(matter_code, $14),
			matter_year = COALESCE(matter_year, $15),
			matter_number = COALESCE(matter_number, $16),
			last_updated_at = $17,
			last_updated_by = $18
		WHERE id = $1
		RETURNING ` + enquiryColumns + `;`
	saved, err := scanEnquiry(tx.QueryRow(ctx, query,
		m.ID,
		m.DateOfEnquiry,
		m.ClientName,
		m.Email,
		m.Phone,
		m.ServiceRequested,
		m.ReferralSource,
		m.AssignedTo,
		m.Notes,
		m.UrgencyLevel,
		m.CurrentStatus,
		m.EstimatedValue,
		m.ConversionDate,
		m.MatterCode,
		m.MatterYear,
		m.MatterNumber,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, classifyError("update enquiry", err)
	}

	if err = r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	result := mapping.ToDomainEnquiry(saved)
	return &result, nil
}

// FindEnquiryByID retrieves an enquiry by its store id.
func (r *PgxEnquiryRepository) FindEnquiryByID(ctx context.Context, id int64) (_ *domain.Enquiry, err error) {
	defer func(start time.Time) { r.observe("find_enquiry", start, err) }(time.Now())

	m, err := scanEnquiry(r.Pool.QueryRow(ctx, `SELECT `+enquiryColumns+` FROM enquiries WHERE id = $1;`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, classifyError("find enquiry", err)
	}

	enquiry := mapping.ToDomainEnquiry(m)
	return &enquiry, nil
}

// ListEnquiries retrieves all enquiries in insertion order.
func (r *PgxEnquiryRepository) ListEnquiries(ctx context.Context) (_ []domain.Enquiry, err error) {
	defer func(start time.Time) { r.observe("list_enquiries", start, err) }(time.Now())

	rows, err := r.Pool.Query(ctx, `SELECT `+enquiryColumns+` FROM enquiries ORDER BY id;`)
	if err != nil {
		return nil, classifyError("query enquiries", err)
	}
	defer rows.Close()

	modelEnquiries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Enquiry, error) {
		return scanEnquiry(row)
	})
	if err != nil {
		return nil, classifyError("scan enquiries", err)
	}

	return mapping.ToDomainEnquirySlice(modelEnquiries), nil
}
