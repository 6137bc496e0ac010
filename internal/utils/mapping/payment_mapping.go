package mapping

import (
	"github.com/SscSPs/firm_enquiries_app/internal/core/domain"
	"github.com/SscSPs/firm_enquiries_app/internal/models"
)

// ToModelPayment converts a domain Payment to a model Payment
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		ID:                 d.ID,
		EnquiryID:          d.EnquiryID,
		MatterCode:         d.MatterCode,
		TotalAmount:        d.TotalAmount,
		RetainerAmount:     toNullDecimal(d.RetainerAmount),
		RetainerPaidDate:   d.RetainerPaidDate,
		MidPaymentAmount:   toNullDecimal(d.MidPaymentAmount),
		MidPaymentDate:     d.MidPaymentDate,
		FinalPaymentAmount: toNullDecimal(d.FinalPaymentAmount),
		FinalPaymentDate:   d.FinalPaymentDate,
		AmountPaid:         toNullDecimal(d.AmountPaid),
		AmountOutstanding:  toNullDecimal(d.AmountOutstanding),
		PaymentStatus:      string(d.PaymentStatus),
		Notes:              d.Notes,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPayment converts a model Payment to a domain Payment
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		ID:                 m.ID,
		EnquiryID:          m.EnquiryID,
		MatterCode:         m.MatterCode,
		TotalAmount:        m.TotalAmount,
		RetainerAmount:     fromNullDecimal(m.RetainerAmount),
		RetainerPaidDate:   m.RetainerPaidDate,
		MidPaymentAmount:   fromNullDecimal(m.MidPaymentAmount),
		MidPaymentDate:     m.MidPaymentDate,
		FinalPaymentAmount: fromNullDecimal(m.FinalPaymentAmount),
		FinalPaymentDate:   m.FinalPaymentDate,
		AmountPaid:         fromNullDecimal(m.AmountPaid),
		AmountOutstanding:  fromNullDecimal(m.AmountOutstanding),
		PaymentStatus:      domain.PaymentStatus(m.PaymentStatus),
		Notes:              m.Notes,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPaymentSlice converts a slice of model Payments to a slice of domain Payments
func ToDomainPaymentSlice(ms []models.Payment) []domain.Payment {
	ds := make([]domain.Payment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPayment(m)
	}
	return ds
}
