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
	"github.com/SscSPs/firm_enquiries_app/internal/utils/validation"
)

// paymentService implements the PaymentSvcFacade interface
type paymentService struct {
	BaseService
	paymentRepo portsrepo.PaymentRepositoryFacade
	enquiryRepo portsrepo.EnquiryReader
	clock       func() time.Time
}

// PaymentServiceOption is a functional option for configuring the payment service
type PaymentServiceOption func(*paymentService)

// WithPaymentClock sets the clock used for audit timestamps.
func WithPaymentClock(clock func() time.Time) PaymentServiceOption {
	return func(s *paymentService) {
		s.clock = clock
	}
}

// NewPaymentService creates a new payment service. Enquiries are read only to
// check the reference of a new payment.
func NewPaymentService(paymentRepo portsrepo.PaymentRepositoryFacade, enquiryRepo portsrepo.EnquiryReader, options ...PaymentServiceOption) portssvc.PaymentSvcFacade {
	svc := &paymentService{
		BaseService: newBaseService("payment_service"),
		paymentRepo: paymentRepo,
		enquiryRepo: enquiryRepo,
		clock:       time.Now,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

// CreatePayment opens the payment record of a converted enquiry. The matter
// code in the request must be the one issued to that enquiry.
func (s *paymentService) CreatePayment(ctx context.Context, req dto.CreatePaymentRequest, userID string) (*domain.Payment, error) {
	if err := s.Validate(req); err != nil {
		return nil, err
	}
	matterCode := strings.TrimSpace(req.MatterCode)
	if _, _, err := domain.ParseMatterCode(matterCode); err != nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("matterCode: %v", err))
	}

	enquiry, err := s.enquiryRepo.FindEnquiryByID(ctx, req.EnquiryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidationError(fmt.Sprintf("enquiry %d does not exist", req.EnquiryID))
		}
		s.LogError(ctx, err, "Failed to load enquiry for payment", slog.Int64("enquiry_id", req.EnquiryID))
		return nil, err
	}
	if enquiry.CurrentStatus != domain.StatusConverted {
		return nil, apperrors.NewValidationError(fmt.Sprintf("enquiry %s is %s, payments require a converted enquiry", enquiry.EnquiryID, enquiry.CurrentStatus))
	}
	if !enquiry.HasMatterCode() || *enquiry.MatterCode != matterCode {
		return nil, apperrors.NewValidationError(fmt.Sprintf("matter code %q does not match enquiry %s", matterCode, enquiry.EnquiryID))
	}

	existing, err := s.paymentRepo.FindPaymentByEnquiryID(ctx, enquiry.ID)
	if err != nil {
		s.LogError(ctx, err, "Failed to check for an existing payment", slog.Int64("enquiry_id", enquiry.ID))
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.NewConflictError(fmt.Sprintf("enquiry %s already has a payment record", enquiry.EnquiryID), apperrors.ErrDuplicate)
	}

	totalAmount, err := validation.ParseAmount(req.TotalAmount)
	if err != nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("totalAmount: %v", err))
	}

	now := s.clock()
	payment := domain.Payment{
		EnquiryID:     enquiry.ID,
		MatterCode:    matterCode,
		TotalAmount:   totalAmount,
		PaymentStatus: domain.PaymentNotStarted,
		Notes:         optionalString(req.Notes),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if req.PaymentStatus != nil && strings.TrimSpace(*req.PaymentStatus) != "" {
		payment.PaymentStatus = domain.PaymentStatus(strings.TrimSpace(*req.PaymentStatus))
	}
	if err := applyPaymentSchedule(&payment, paymentSchedule{
		RetainerAmount:     req.RetainerAmount,
		RetainerPaidDate:   req.RetainerPaidDate,
		MidPaymentAmount:   req.MidPaymentAmount,
		MidPaymentDate:     req.MidPaymentDate,
		FinalPaymentAmount: req.FinalPaymentAmount,
		FinalPaymentDate:   req.FinalPaymentDate,
		AmountPaid:         req.AmountPaid,
		AmountOutstanding:  req.AmountOutstanding,
	}); err != nil {
		return nil, err
	}

	saved, err := s.paymentRepo.SavePayment(ctx, payment)
	if err != nil {
		s.LogError(ctx, err, "Failed to save payment",
			slog.Int64("enquiry_id", enquiry.ID),
			slog.String("matter_code", matterCode))
		return nil, err
	}

	metrics.RecordPaymentCreated(string(saved.PaymentStatus))
	s.LogInfo(ctx, "Payment created successfully",
		slog.Int64("id", saved.ID),
		slog.String("matter_code", saved.MatterCode))
	return saved, nil
}

// UpdatePayment applies the provided fields. Nothing is recomputed:
// amountOutstanding stays whatever the caller last supplied.
func (s *paymentService) UpdatePayment(ctx context.Context, id int64, req dto.UpdatePaymentRequest, userID string) (*domain.Payment, error) {
	if err := s.Validate(req); err != nil {
		return nil, err
	}

	existing, err := s.paymentRepo.FindPaymentByID(ctx, id)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load payment for update", slog.Int64("id", id))
		}
		return nil, err
	}

	updated := *existing
	if req.TotalAmount != nil {
		value, err := requiredValue("totalAmount", req.TotalAmount)
		if err != nil {
			return nil, err
		}
		total, err := validation.ParseAmount(value)
		if err != nil {
			return nil, apperrors.NewValidationError(fmt.Sprintf("totalAmount: %v", err))
		}
		updated.TotalAmount = total
	}
	if req.PaymentStatus != nil {
		status, err := requiredValue("paymentStatus", req.PaymentStatus)
		if err != nil {
			return nil, err
		}
		updated.PaymentStatus = domain.PaymentStatus(status)
	}
	applyString(&updated.Notes, req.Notes)
	if err := applyPaymentSchedule(&updated, paymentSchedule{
		RetainerAmount:     req.RetainerAmount,
		RetainerPaidDate:   req.RetainerPaidDate,
		MidPaymentAmount:   req.MidPaymentAmount,
		MidPaymentDate:     req.MidPaymentDate,
		FinalPaymentAmount: req.FinalPaymentAmount,
		FinalPaymentDate:   req.FinalPaymentDate,
		AmountPaid:         req.AmountPaid,
		AmountOutstanding:  req.AmountOutstanding,
	}); err != nil {
		return nil, err
	}
	updated.LastUpdatedAt = s.clock()
	updated.LastUpdatedBy = userID

	result, err := s.paymentRepo.UpdatePayment(ctx, updated)
	if err != nil {
		s.LogError(ctx, err, "Failed to update payment", slog.Int64("id", id))
		return nil, err
	}
	if result == nil {
		s.LogWarn(ctx, "Payment disappeared before update was written", slog.Int64("id", id))
		return nil, nil
	}

	s.LogInfo(ctx, "Payment updated successfully", slog.Int64("id", id))
	return result, nil
}

// paymentSchedule carries the optional milestone fields shared by create and update.
type paymentSchedule struct {
	RetainerAmount     *string
	RetainerPaidDate   *string
	MidPaymentAmount   *string
	MidPaymentDate     *string
	FinalPaymentAmount *string
	FinalPaymentDate   *string
	AmountPaid         *string
	AmountOutstanding  *string
}

func applyPaymentSchedule(p *domain.Payment, sched paymentSchedule) error {
	if err := applyAmount(&p.RetainerAmount, "retainerAmount", sched.RetainerAmount); err != nil {
		return err
	}
	if err := applyAmount(&p.MidPaymentAmount, "midPaymentAmount", sched.MidPaymentAmount); err != nil {
		return err
	}
	if err := applyAmount(&p.FinalPaymentAmount, "finalPaymentAmount", sched.FinalPaymentAmount); err != nil {
		return err
	}
	if err := applyAmount(&p.AmountPaid, "amountPaid", sched.AmountPaid); err != nil {
		return err
	}
	if err := applyAmount(&p.AmountOutstanding, "amountOutstanding", sched.AmountOutstanding); err != nil {
		return err
	}
	if err := applyDate(&p.RetainerPaidDate, "retainerPaidDate", sched.RetainerPaidDate); err != nil {
		return err
	}
	if err := applyDate(&p.MidPaymentDate, "midPaymentDate", sched.MidPaymentDate); err != nil {
		return err
	}
	return applyDate(&p.FinalPaymentDate, "finalPaymentDate", sched.FinalPaymentDate)
}

// GetPaymentByID retrieves a payment by its store id.
func (s *paymentService) GetPaymentByID(ctx context.Context, id int64) (*domain.Payment, error) {
	payment, err := s.paymentRepo.FindPaymentByID(ctx, id)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find payment", slog.Int64("id", id))
		}
		return nil, err
	}
	return payment, nil
}

// GetPaymentByEnquiry returns the payment of an enquiry, or nil when none exists.
func (s *paymentService) GetPaymentByEnquiry(ctx context.Context, enquiryID int64) (*domain.Payment, error) {
	payment, err := s.paymentRepo.FindPaymentByEnquiryID(ctx, enquiryID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find payment by enquiry", slog.Int64("enquiry_id", enquiryID))
		return nil, err
	}
	if payment == nil {
		s.LogDebug(ctx, "No payment recorded for enquiry", slog.Int64("enquiry_id", enquiryID))
	}
	return payment, nil
}

// ListPayments retrieves all payments.
func (s *paymentService) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	payments, err := s.paymentRepo.ListPayments(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payments")
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	if payments == nil {
		return []domain.Payment{}, nil
	}
	s.LogDebug(ctx, "Payments listed", slog.Int("count", len(payments)))
	return payments, nil
}
