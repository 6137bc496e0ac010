package handlers_test

import (
	"context"

	"github.com/SscSPs/firm_enquiries_app/internal/core/domain"
	portssvc "github.com/SscSPs/firm_enquiries_app/internal/core/ports/services"
	"github.com/SscSPs/firm_enquiries_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock EnquiryService ---
type MockEnquiryService struct {
	mock.Mock
}

func (m *MockEnquiryService) GetEnquiryByID(ctx context.Context, id int64) (*domain.Enquiry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Enquiry), args.Error(1)
}

func (m *MockEnquiryService) ListEnquiries(ctx context.Context) ([]domain.Enquiry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Enquiry), args.Error(1)
}

func (m *MockEnquiryService) CreateEnquiry(ctx context.Context, req dto.CreateEnquiryRequest, userID string) (*domain.Enquiry, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Enquiry), args.Error(1)
}

func (m *MockEnquiryService) UpdateEnquiry(ctx context.Context, id int64, req dto.UpdateEnquiryRequest, userID string) (*domain.Enquiry, error) {
	args := m.Called(ctx, id, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Enquiry), args.Error(1)
}

func (m *MockEnquiryService) StatusSummary(ctx context.Context) ([]domain.StatusCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StatusCount), args.Error(1)
}

func (m *MockEnquiryService) KPIMetrics(ctx context.Context) (*domain.KPIMetrics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.KPIMetrics), args.Error(1)
}

func (m *MockEnquiryService) PipelineForecast(ctx context.Context) ([]domain.PipelineStage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PipelineStage), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.EnquirySvcFacade = (*MockEnquiryService)(nil)

// --- Mock PaymentService ---
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) GetPaymentByID(ctx context.Context, id int64) (*domain.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentService) GetPaymentByEnquiry(ctx context.Context, enquiryID int64) (*domain.Payment, error) {
	args := m.Called(ctx, enquiryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentService) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentService) CreatePayment(ctx context.Context, req dto.CreatePaymentRequest, userID string) (*domain.Payment, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentService) UpdatePayment(ctx context.Context, id int64, req dto.UpdatePaymentRequest, userID string) (*domain.Payment, error) {
	args := m.Called(ctx, id, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

var _ portssvc.PaymentSvcFacade = (*MockPaymentService)(nil)
