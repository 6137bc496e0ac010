package services

import (
	"context"

	"github.com/SscSPs/firm_enquiries_app/internal/core/domain"
	"github.com/SscSPs/firm_enquiries_app/internal/dto"
)

// EnquiryReaderSvc defines read operations for enquiries
type EnquiryReaderSvc interface {
	// GetEnquiryByID retrieves an enquiry; apperrors.ErrNotFound when absent.
	GetEnquiryByID(ctx context.Context, id int64) (*domain.Enquiry, error)

	// ListEnquiries retrieves all enquiries in insertion order.
	ListEnquiries(ctx context.Context) ([]domain.Enquiry, error)
}

// EnquiryWriterSvc defines write operations for enquiries
type EnquiryWriterSvc interface {
	// CreateEnquiry records a new enquiry and issues its enquiry ID.
	CreateEnquiry(ctx context.Context, req dto.CreateEnquiryRequest, userID string) (*domain.Enquiry, error)

	// UpdateEnquiry applies a partial update. It returns (nil, nil) if the
	// enquiry disappeared between lookup and write.
	UpdateEnquiry(ctx context.Context, id int64, req dto.UpdateEnquiryRequest, userID string) (*domain.Enquiry, error)
}

// EnquiryAnalyticsSvc defines the derived views over all enquiries
type EnquiryAnalyticsSvc interface {
	StatusSummary(ctx context.Context) ([]domain.StatusCount, error)
	KPIMetrics(ctx context.Context) (*domain.KPIMetrics, error)
	PipelineForecast(ctx context.Context) ([]domain.PipelineStage, error)
}

// EnquirySvcFacade combines all enquiry-related service interfaces
type EnquirySvcFacade interface {
	EnquiryReaderSvc
	EnquiryWriterSvc
	EnquiryAnalyticsSvc
}
