package repositories

import (
	"context"

	"github.com/SscSPs/firm_enquiries_app/internal/core/domain"
)

// PaymentReader defines read operations for payment data
type PaymentReader interface {
	// FindPaymentByID returns apperrors.ErrNotFound when absent.
	FindPaymentByID(ctx context.Context, id int64) (*domain.Payment, error)

	// FindPaymentByEnquiryID returns (nil, nil) when the enquiry has no payment.
	FindPaymentByEnquiryID(ctx context.Context, enquiryID int64) (*domain.Payment, error)

	// ListPayments retrieves every payment in insertion order.
	ListPayments(ctx context.Context) ([]domain.Payment, error)
}

// PaymentWriter defines write operations for payment data
type PaymentWriter interface {
	// SavePayment inserts a new payment. A second payment for the same enquiry
	// fails with apperrors.ErrDuplicate.
	SavePayment(ctx context.Context, payment domain.Payment) (*domain.Payment, error)

	// UpdatePayment writes every mutable column. Returns (nil, nil) if the row
	// no longer exists.
	UpdatePayment(ctx context.Context, payment domain.Payment) (*domain.Payment, error)
}

// PaymentRepositoryFacade combines all payment-related repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}
