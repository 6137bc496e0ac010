package services

import (
	"context"

	"github.com/SscSPs/firm_enquiries_app/internal/core/domain"
	"github.com/SscSPs/firm_enquiries_app/internal/dto"
)

// PaymentReaderSvc defines read operations for payments
type PaymentReaderSvc interface {
	// GetPaymentByID retrieves a payment; apperrors.ErrNotFound when absent.
	GetPaymentByID(ctx context.Context, id int64) (*domain.Payment, error)

	// GetPaymentByEnquiry returns the payment of an enquiry, or (nil, nil).
	GetPaymentByEnquiry(ctx context.Context, enquiryID int64) (*domain.Payment, error)

	// ListPayments retrieves all payments in insertion order.
	ListPayments(ctx context.Context) ([]domain.Payment, error)
}

// PaymentWriterSvc defines write operations for payments
type PaymentWriterSvc interface {
	// CreatePayment opens the payment record of a converted enquiry.
	CreatePayment(ctx context.Context, req dto.CreatePaymentRequest, userID string) (*domain.Payment, error)

	// UpdatePayment applies a partial update. It returns (nil, nil) if the
	// payment disappeared between lookup and write.
	UpdatePayment(ctx context.Context, id int64, req dto.UpdatePaymentRequest, userID string) (*domain.Payment, error)
}

// PaymentSvcFacade combines all payment-related service interfaces
type PaymentSvcFacade interface {
	PaymentReaderSvc
	PaymentWriterSvc
}
