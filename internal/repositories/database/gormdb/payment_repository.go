package gormdb

import (
	"context"
	"errors"
	"time"

	"github.com/SscSPs/firm_enquiries_app/internal/core/domain"
	portsrepo "github.com/SscSPs/firm_enquiries_app/internal/core/ports/repositories"
	"github.com/SscSPs/firm_enquiries_app/internal/models"
	"github.com/SscSPs/firm_enquiries_app/internal/utils/mapping"
	"gorm.io/gorm"
)

type GormPaymentRepository struct {
	BaseRepository
}

func newGormPaymentRepository(db *gorm.DB) portsrepo.PaymentRepositoryFacade {
	return &GormPaymentRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.PaymentRepositoryFacade = (*GormPaymentRepository)(nil)

// SavePayment inserts a payment. A second payment for the same enquiry
// violates the unique index and surfaces as a conflict.
func (r *GormPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) (_ *domain.Payment, err error) {
	defer func(start time.Time) { r.observe("save_payment", start, err) }(time.Now())

	m := mapping.ToModelPayment(payment)
	m.ID = 0
	if err = r.DB.WithContext(ctx).Omit("Enquiry").Create(&m).Error; err != nil {
		return nil, classifyError("insert payment", err)
	}

	result := mapping.ToDomainPayment(m)
	return &result, nil
}

// UpdatePayment writes the mutable columns of a payment. Returns nil when the
// row no longer exists.
func (r *GormPaymentRepository) UpdatePayment(ctx context.Context, payment domain.Payment) (_ *domain.Payment, err error) {
	defer func(start time.Time) { r.observe("update_payment", start, err) }(time.Now())

	m := mapping.ToModelPayment(payment)
	var saved models.Payment
	vanished := false
	err = r.inTx(ctx, func(tx *gorm.DB) error {
		res := tx.Model(&models.Payment{}).Where("id = ?", m.ID).Updates(map[string]any{
			"total_amount":         m.TotalAmount,
			"retainer_amount":      m.RetainerAmount,
			"retainer_paid_date":   m.RetainerPaidDate,
			"mid_payment_amount":   m.MidPaymentAmount,
			"mid_payment_date":     m.MidPaymentDate,
			"final_payment_amount": m.FinalPaymentAmount,
			"final_payment_date":   m.FinalPaymentDate,
			"amount_paid":          m.AmountPaid,
			"amount_outstanding":   m.AmountOutstanding,
			"payment_status":       m.PaymentStatus,
			"notes":                m.Notes,
			"last_updated_at":      m.LastUpdatedAt,
			"last_updated_by":      m.LastUpdatedBy,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			vanished = true
			return nil
		}
		return tx.Take(&saved, m.ID).Error
	})
	if err != nil {
		return nil, classifyError("update payment", err)
	}
	if vanished {
		return nil, nil
	}

	result := mapping.ToDomainPayment(saved)
	return &result, nil
}

// FindPaymentByID retrieves a payment by its store id.
func (r *GormPaymentRepository) FindPaymentByID(ctx context.Context, id int64) (_ *domain.Payment, err error) {
	defer func(start time.Time) { r.observe("find_payment", start, err) }(time.Now())

	var m models.Payment
	if err = r.DB.WithContext(ctx).Take(&m, id).Error; err != nil {
		return nil, classifyError("find payment", err)
	}

	payment := mapping.ToDomainPayment(m)
	return &payment, nil
}

// FindPaymentByEnquiryID returns the payment of an enquiry, or nil when none exists.
func (r *GormPaymentRepository) FindPaymentByEnquiryID(ctx context.Context, enquiryID int64) (_ *domain.Payment, err error) {
	defer func(start time.Time) { r.observe("find_payment_by_enquiry", start, err) }(time.Now())

	var m models.Payment
	err = r.DB.WithContext(ctx).Where("enquiry_id = ?", enquiryID).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, classifyError("find payment by enquiry", err)
	}

	payment := mapping.ToDomainPayment(m)
	return &payment, nil
}

// ListPayments retrieves all payments in insertion order.
func (r *GormPaymentRepository) ListPayments(ctx context.Context) (_ []domain.Payment, err error) {
	defer func(start time.Time) { r.observe("list_payments", start, err) }(time.Now())

	var ms []models.Payment
	if err = r.DB.WithContext(ctx).Order("id").Find(&ms).Error; err != nil {
		return nil, classifyError("list payments", err)
	}
	return mapping.ToDomainPaymentSlice(ms), nil
}
