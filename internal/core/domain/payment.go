package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus tracks how far a matter's fee schedule has been paid.
type PaymentStatus string

const (
	PaymentNotStarted    PaymentStatus = "Not Started"
	PaymentRetainerPaid  PaymentStatus = "Retainer Paid"
	PaymentPartiallyPaid PaymentStatus = "Partially Paid"
	PaymentFullyPaid     PaymentStatus = "Fully Paid"
	PaymentOverdue       PaymentStatus = "Overdue"
)

// PaymentStatuses lists the accepted payment statuses.
var PaymentStatuses = []PaymentStatus{
	PaymentNotStarted,
	PaymentRetainerPaid,
	PaymentPartiallyPaid,
	PaymentFullyPaid,
	PaymentOverdue,
}

// Valid reports whether s is one of the known payment statuses.
func (s PaymentStatus) Valid() bool {
	for _, known := range PaymentStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Payment is the fee record of a converted enquiry. Amounts are exact decimals;
// AmountOutstanding is whatever the caller last supplied, never derived.
type Payment struct {
	ID                 int64            `json:"id"`
	EnquiryID          int64            `json:"enquiryId"` // FK -> enquiries.id
	MatterCode         string           `json:"matterCode"`
	TotalAmount        decimal.Decimal  `json:"totalAmount"`
	RetainerAmount     *decimal.Decimal `json:"retainerAmount"`
	RetainerPaidDate   *time.Time       `json:"retainerPaidDate"`
	MidPaymentAmount   *decimal.Decimal `json:"midPaymentAmount"`
	MidPaymentDate     *time.Time       `json:"midPaymentDate"`
	FinalPaymentAmount *decimal.Decimal `json:"finalPaymentAmount"`
	FinalPaymentDate   *time.Time       `json:"finalPaymentDate"`
	AmountPaid         *decimal.Decimal `json:"amountPaid"`
	AmountOutstanding  *decimal.Decimal `json:"amountOutstanding"`
	PaymentStatus      PaymentStatus    `json:"paymentStatus"`
	Notes              *string          `json:"notes"`
	AuditFields
}
