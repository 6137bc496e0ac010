package services_test

import (
	"context"

	"github.com/SscSPs/firm_enquiries_app/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock EnquiryRepository ---
type MockEnquiryRepository struct {
	mock.Mock
}

func (m *MockEnquiryRepository) FindEnquiryByID(ctx context.Context, id int64) (*domain.Enquiry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Enquiry), args.Error(1)
}

func (m *MockEnquiryRepository) ListEnquiries(ctx context.Context) ([]domain.Enquiry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Enquiry), args.Error(1)
}

func (m *MockEnquiryRepository) CreateEnquiry(ctx context.Context, enquiry domain.Enquiry, issueMatterCode bool) (*domain.Enquiry, error) {
	args := m.Called(ctx, enquiry, issueMatterCode)
	if fn, ok := args.Get(0).(func(context.Context, domain.Enquiry, bool) *domain.Enquiry); ok {
		return fn(ctx, enquiry, issueMatterCode), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Enquiry), args.Error(1)
}

func (m *MockEnquiryRepository) UpdateEnquiry(ctx context.Context, enquiry domain.Enquiry, issueMatterCode bool) (*domain.Enquiry, error) {
	args := m.Called(ctx, enquiry, issueMatterCode)
	if fn, ok := args.Get(0).(func(context.Context, domain.Enquiry, bool) *domain.Enquiry); ok {
		return fn(ctx, enquiry, issueMatterCode), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Enquiry), args.Error(1)
}

// --- Mock PaymentRepository ---
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) FindPaymentByID(ctx context.Context, id int64) (*domain.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindPaymentByEnquiryID(ctx context.Context, enquiryID int64) (*domain.Payment, error) {
	args := m.Called(ctx, enquiryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) (*domain.Payment, error) {
	args := m.Called(ctx, payment)
	if fn, ok := args.Get(0).(func(context.Context, domain.Payment) *domain.Payment); ok {
		return fn(ctx, payment), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) UpdatePayment(ctx context.Context, payment domain.Payment) (*domain.Payment, error) {
	args := m.Called(ctx, payment)
	if fn, ok := args.Get(0).(func(context.Context, domain.Payment) *domain.Payment); ok {
		return fn(ctx, payment), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func strPtr(s string) *string { return &s }
