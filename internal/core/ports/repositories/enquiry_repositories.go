package repositories

import (
	"context"

	"github.com/SscSPs/firm_enquiries_app/internal/core/domain"
)

// EnquiryReader defines read operations for enquiry data
type EnquiryReader interface {
	// FindEnquiryByID retrieves an enquiry by its store id.
	// Returns apperrors.ErrNotFound when no such enquiry exists.
	FindEnquiryByID(ctx context.Context, id int64) (*domain.Enquiry, error)

	// ListEnquiries retrieves every enquiry in insertion order.
	ListEnquiries(ctx context.Context) ([]domain.Enquiry, error)
}

// EnquiryWriter defines write operations for enquiry data
type EnquiryWriter interface {
	// CreateEnquiry allocates the next enquiry ID and inserts the enquiry in one
	// transaction. When issueMatterCode is set the next matter code for the
	// conversion year is allocated in the same transaction.
	CreateEnquiry(ctx context.Context, enquiry domain.Enquiry, issueMatterCode bool) (*domain.Enquiry, error)

	// UpdateEnquiry writes every mutable column of enquiry. When issueMatterCode
	// is set, a matter code is allocated only if the stored row still has none.
	// Returns (nil, nil) if the row no longer exists.
	UpdateEnquiry(ctx context.Context, enquiry domain.Enquiry, issueMatterCode bool) (*domain.Enquiry, error)
}

// EnquiryRepositoryFacade combines all enquiry-related repository interfaces
// This is a facade for clients that need access to all operations
type EnquiryRepositoryFacade interface {
	EnquiryReader
	EnquiryWriter
}
