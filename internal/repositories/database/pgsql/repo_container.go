package pgsql

import (
	portsrepo "github.com/SscSPs/firm_enquiries_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		EnquiryRepo: newPgxEnquiryRepository(dbPool),
		PaymentRepo: newPgxPaymentRepository(dbPool),
	}
}
