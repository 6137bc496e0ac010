package pgsql

import (
	"context"

	"github.com/SscSPs/firm_enquiries_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// The counter row is created on first use, seeded from the highest number
// already stored, then incremented under its row lock. Running it inside the
// consuming transaction means a rollback also returns the number.
const (
	nextEnquiryNumberQuery = `
		INSERT INTO id_sequences (namespace, last_value)
		SELECT $1, COALESCE(MAX(enquiry_number), 0) + 1 FROM enquiries
		ON CONFLICT (namespace) DO UPDATE SET last_value = id_sequences.last_value + 1
		RETURNING last_value;
	`
	nextMatterNumberQuery = `
		INSERT INTO id_sequences (namespace, last_value)
		SELECT $1, COALESCE(MAX(matter_number), 0) + 1 FROM enquiries WHERE matter_year = $2
		ON CONFLICT (namespace) DO UPDATE SET last_value = id_sequences.last_value + 1
		RETURNING last_value;
	`
)

func nextEnquiryNumber(ctx context.Context, tx pgx.Tx) (int64, error) {
	var n int64
	if err := tx.QueryRow(ctx, nextEnquiryNumberQuery, domain.EnquirySequenceNamespace).Scan(&n); err != nil {
		return 0, classifyError("allocate enquiry number", err)
	}
	return n, nil
}

func nextMatterNumber(ctx context.Context, tx pgx.Tx, year int) (int, error) {
	var n int64
	if err := tx.QueryRow(ctx, nextMatterNumberQuery, domain.MatterSequenceNamespace(year), year).Scan(&n); err != nil {
		return 0, classifyError("allocate matter number", err)
	}
	return int(n), nil
}
