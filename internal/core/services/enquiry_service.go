package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/firm_enquiries_app/internal/apperrors"
	"github.com/SscSPs/firm_enquiries_app/internal/core/domain"
	portsrepo "github.com/SscSPs/firm_enquiries_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/firm_enquiries_app/internal/core/ports/services"
	"github.com/SscSPs/firm_enquiries_app/internal/dto"
	"github.com/SscSPs/firm_enquiries_app/internal/metrics"
)

// enquiryService implements the EnquirySvcFacade interface
type enquiryService struct {
	BaseService
	enquiryRepo portsrepo.EnquiryRepositoryFacade
	paymentRepo portsrepo.PaymentReader
	clock       func() time.Time
}

// EnquiryServiceOption is a functional option for configuring the enquiry service
type EnquiryServiceOption func(*enquiryService)

// WithClock sets the clock used for audit timestamps and "this month" metrics.
func WithClock(clock func() time.Time) EnquiryServiceOption {
	return func(s *enquiryService) {
		s.clock = clock
	}
}

// NewEnquiryService creates a new enquiry service with the provided options.
// The payment reader feeds revenue and pipeline analytics.
func NewEnquiryService(enquiryRepo portsrepo.EnquiryRepositoryFacade, paymentRepo portsrepo.PaymentReader, options ...EnquiryServiceOption) portssvc.EnquirySvcFacade {
	svc := &enquiryService{
		BaseService: newBaseService("enquiry_service"),
		enquiryRepo: enquiryRepo,
		paymentRepo: paymentRepo,
		clock:       time.Now,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.EnquirySvcFacade = (*enquiryService)(nil)

// CreateEnquiry records a new enquiry. The store allocates the enquiry ID, and
// a matter code too when the enquiry arrives already converted.
func (s *enquiryService) CreateEnquiry(ctx context.Context, req dto.CreateEnquiryRequest, userID string) (*domain.Enquiry, error) {
	if err := s.Validate(req); err != nil {
		return nil, err
	}

	clientName, err := requiredValue("clientName", &req.ClientName)
	if err != nil {
		return nil, err
	}
	dateOfEnquiry, err := domain.ParseDate(req.DateOfEnquiry)
	if err != nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("dateOfEnquiry: %v", err))
	}
	estimatedValue, err := optionalAmount("estimatedValue", req.EstimatedValue)
	if err != nil {
		return nil, err
	}
	conversionDate, err := optionalDate("conversionDate", req.ConversionDate)
	if err != nil {
		return nil, err
	}

	status := domain.StatusPending
	if req.CurrentStatus != nil && strings.TrimSpace(*req.CurrentStatus) != "" {
		status = domain.EnquiryStatus(strings.TrimSpace(*req.CurrentStatus))
	}

	now := s.clock()
	enquiry := domain.Enquiry{
		DateOfEnquiry:    dateOfEnquiry,
		ClientName:       clientName,
		Email:            optionalString(req.Email),
		Phone:            optionalString(req.Phone),
		ServiceRequested: optionalString(req.ServiceRequested),
		ReferralSource:   optionalString(req.ReferralSource),
		AssignedTo:       optionalString(req.AssignedTo),
		Notes:            optionalString(req.Notes),
		UrgencyLevel:     optionalUrgency(req.UrgencyLevel),
		CurrentStatus:    status,
		EstimatedValue:   estimatedValue,
		ConversionDate:   conversionDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	issueMatterCode := enquiry.NeedsMatterCode(nil)
	created, err := s.enquiryRepo.CreateEnquiry(ctx, enquiry, issueMatterCode)
	if err != nil {
		s.LogError(ctx, err, "Failed to create enquiry",
			slog.String("client_name", clientName),
			slog.Bool("issue_matter_code", issueMatterCode))
		return nil, err
	}

	metrics.RecordEnquiryCreated()
	if issueMatterCode && created.HasMatterCode() {
		metrics.RecordMatterCodeIssued()
	}

	s.LogInfo(ctx, "Enquiry created successfully",
		slog.Int64("id", created.ID),
		slog.String("enquiry_id", created.EnquiryID))
	return created, nil
}

// UpdateEnquiry applies the provided fields to an existing enquiry. Setting
// conversionDate for the first time issues a matter code; an issued matter
// code never changes.
func (s *enquiryService) UpdateEnquiry(ctx context.Context, id int64, req dto.UpdateEnquiryRequest, userID string) (*domain.Enquiry, error) {
	if err := s.Validate(req); err != nil {
		return nil, err
	}

	existing, err := s.enquiryRepo.FindEnquiryByID(ctx, id)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load enquiry for update", slog.Int64("id", id))
		}
		return nil, err
	}

	updated := *existing
	if err := applyEnquiryUpdate(&updated, req); err != nil {
		return nil, err
	}
	updated.LastUpdatedAt = s.clock()
	updated.LastUpdatedBy = userID

	issueMatterCode := updated.NeedsMatterCode(existing)
	result, err := s.enquiryRepo.UpdateEnquiry(ctx, updated, issueMatterCode)
	if err != nil {
		s.LogError(ctx, err, "Failed to update enquiry",
			slog.Int64("id", id),
			slog.Bool("issue_matter_code", issueMatterCode))
		return nil, err
	}
	if result == nil {
		s.LogWarn(ctx, "Enquiry disappeared before update was written", slog.Int64("id", id))
		return nil, nil
	}

	if issueMatterCode && result.HasMatterCode() && !existing.HasMatterCode() {
		metrics.RecordMatterCodeIssued()
		s.LogInfo(ctx, "Matter code issued",
			slog.String("enquiry_id", result.EnquiryID),
			slog.String("matter_code", *result.MatterCode))
	}

	s.LogInfo(ctx, "Enquiry updated successfully", slog.Int64("id", id))
	return result, nil
}

func applyEnquiryUpdate(e *domain.Enquiry, req dto.UpdateEnquiryRequest) error {
	if req.DateOfEnquiry != nil {
		value, err := requiredValue("dateOfEnquiry", req.DateOfEnquiry)
		if err != nil {
			return err
		}
		date, err := domain.ParseDate(value)
		if err != nil {
			return apperrors.NewValidationError(fmt.Sprintf("dateOfEnquiry: %v", err))
		}
		e.DateOfEnquiry = date
	}
	if req.ClientName != nil {
		name, err := requiredValue("clientName", req.ClientName)
		if err != nil {
			return err
		}
		e.ClientName = name
	}
	if req.CurrentStatus != nil {
		status, err := requiredValue("currentStatus", req.CurrentStatus)
		if err != nil {
			return err
		}
		e.CurrentStatus = domain.EnquiryStatus(status)
	}
	if req.UrgencyLevel != nil {
		e.UrgencyLevel = optionalUrgency(req.UrgencyLevel)
	}

	applyString(&e.Email, req.Email)
	applyString(&e.Phone, req.Phone)
	applyString(&e.ServiceRequested, req.ServiceRequested)
	applyString(&e.ReferralSource, req.ReferralSource)
	applyString(&e.AssignedTo, req.AssignedTo)
	applyString(&e.Notes, req.Notes)

	if err := applyAmount(&e.EstimatedValue, "estimatedValue", req.EstimatedValue); err != nil {
		return err
	}
	return applyDate(&e.ConversionDate, "conversionDate", req.ConversionDate)
}

func optionalUrgency(p *string) *domain.UrgencyLevel {
	s := optionalString(p)
	if s == nil {
		return nil
	}
	u := domain.UrgencyLevel(*s)
	return &u
}

// GetEnquiryByID retrieves an enquiry by its store id.
func (s *enquiryService) GetEnquiryByID(ctx context.Context, id int64) (*domain.Enquiry, error) {
	enquiry, err := s.enquiryRepo.FindEnquiryByID(ctx, id)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find enquiry", slog.Int64("id", id))
		}
		return nil, err
	}
	s.LogDebug(ctx, "Enquiry retrieved", slog.Int64("id", id))
	return enquiry, nil
}

// ListEnquiries retrieves all enquiries.
func (s *enquiryService) ListEnquiries(ctx context.Context) ([]domain.Enquiry, error) {
	enquiries, err := s.enquiryRepo.ListEnquiries(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list enquiries")
		return nil, fmt.Errorf("failed to list enquiries: %w", err)
	}
	if enquiries == nil {
		return []domain.Enquiry{}, nil
	}
	s.LogDebug(ctx, "Enquiries listed", slog.Int("count", len(enquiries)))
	return enquiries, nil
}

// StatusSummary counts enquiries per status.
func (s *enquiryService) StatusSummary(ctx context.Context) ([]domain.StatusCount, error) {
	enquiries, err := s.ListEnquiries(ctx)
	if err != nil {
		return nil, err
	}
	return domain.SummarizeStatuses(enquiries), nil
}

// KPIMetrics computes the headline metrics as of the service clock.
func (s *enquiryService) KPIMetrics(ctx context.Context) (*domain.KPIMetrics, error) {
	enquiries, payments, err := s.loadBook(ctx)
	if err != nil {
		return nil, err
	}
	kpis := domain.ComputeKPIMetrics(enquiries, payments, s.clock())
	s.LogDebug(ctx, "KPI metrics computed",
		slog.Int("total_enquiries", kpis.TotalEnquiries),
		slog.Float64("conversion_rate", kpis.ConversionRate))
	return &kpis, nil
}

// PipelineForecast weights every open enquiry by the probability of its status.
func (s *enquiryService) PipelineForecast(ctx context.Context) ([]domain.PipelineStage, error) {
	enquiries, payments, err := s.loadBook(ctx)
	if err != nil {
		return nil, err
	}
	return domain.ForecastPipeline(enquiries, payments), nil
}

func (s *enquiryService) loadBook(ctx context.Context) ([]domain.Enquiry, []domain.Payment, error) {
	enquiries, err := s.ListEnquiries(ctx)
	if err != nil {
		return nil, nil, err
	}
	payments, err := s.paymentRepo.ListPayments(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payments for analytics")
		return nil, nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return enquiries, payments, nil
}
