package dto

import (
	"time"

	"github.com/SscSPs/firm_enquiries_app/internal/core/domain"
	"github.com/SscSPs/firm_enquiries_app/internal/utils"
)

// CreatePaymentRequest defines the data needed to open the payment record of a
// converted enquiry. Amounts are non-negative decimal strings, e.g. "50000.00".
type CreatePaymentRequest struct {
	EnquiryID          int64   `json:"enquiryId" binding:"required,gt=0"`
	MatterCode         string  `json:"matterCode" binding:"required"`
	TotalAmount        string  `json:"totalAmount" binding:"required,decimal"`
	RetainerAmount     *string `json:"retainerAmount" binding:"omitempty,decimal"`
	RetainerPaidDate   *string `json:"retainerPaidDate" binding:"omitempty,date"`
	MidPaymentAmount   *string `json:"midPaymentAmount" binding:"omitempty,decimal"`
	MidPaymentDate     *string `json:"midPaymentDate" binding:"omitempty,date"`
	FinalPaymentAmount *string `json:"finalPaymentAmount" binding:"omitempty,decimal"`
	FinalPaymentDate   *string `json:"finalPaymentDate" binding:"omitempty,date"`
	AmountPaid         *string `json:"amountPaid" binding:"omitempty,decimal"`
	AmountOutstanding  *string `json:"amountOutstanding" binding:"omitempty,decimal"`
	PaymentStatus      *string `json:"paymentStatus" binding:"omitempty,payment_status"` // defaults to Not Started
	Notes              *string `json:"notes"`
}

// UpdatePaymentRequest defines the data allowed for updating a payment.
// The enquiry reference and matter code are fixed at creation.
type UpdatePaymentRequest struct {
	TotalAmount        *string `json:"totalAmount" binding:"omitempty,decimal"`
	RetainerAmount     *string `json:"retainerAmount" binding:"omitempty,decimal"`
	RetainerPaidDate   *string `json:"retainerPaidDate" binding:"omitempty,date"`
	MidPaymentAmount   *string `json:"midPaymentAmount" binding:"omitempty,decimal"`
	MidPaymentDate     *string `json:"midPaymentDate" binding:"omitempty,date"`
	FinalPaymentAmount *string `json:"finalPaymentAmount" binding:"omitempty,decimal"`
	FinalPaymentDate   *string `json:"finalPaymentDate" binding:"omitempty,date"`
	AmountPaid         *string `json:"amountPaid" binding:"omitempty,decimal"`
	AmountOutstanding  *string `json:"amountOutstanding" binding:"omitempty,decimal"`
	PaymentStatus      *string `json:"paymentStatus" binding:"omitempty,payment_status"`
	Notes              *string `json:"notes"`
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	ID                 int64     `json:"id"`
	EnquiryID          int64     `json:"enquiryId"`
	MatterCode         string    `json:"matterCode"`
	TotalAmount        string    `json:"totalAmount"`
	RetainerAmount     *string   `json:"retainerAmount"`
	RetainerPaidDate   *string   `json:"retainerPaidDate"`
	MidPaymentAmount   *string   `json:"midPaymentAmount"`
	MidPaymentDate     *string   `json:"midPaymentDate"`
	FinalPaymentAmount *string   `json:"finalPaymentAmount"`
	FinalPaymentDate   *string   `json:"finalPaymentDate"`
	AmountPaid         *string   `json:"amountPaid"`
	AmountOutstanding  *string   `json:"amountOutstanding"`
	PaymentStatus      string    `json:"paymentStatus"`
	Notes              *string   `json:"notes"`
	CreatedAt          time.Time `json:"createdAt"`
	CreatedBy          string    `json:"createdBy"`
	LastUpdatedAt      time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy      string    `json:"lastUpdatedBy"`
}

// ToPaymentResponse converts a domain.Payment to PaymentResponse DTO
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                 p.ID,
		EnquiryID:          p.EnquiryID,
		MatterCode:         p.MatterCode,
		TotalAmount:        utils.FormatMoney(p.TotalAmount),
		RetainerAmount:     utils.FormatOptionalMoney(p.RetainerAmount),
		RetainerPaidDate:   domain.FormatDate(p.RetainerPaidDate),
		MidPaymentAmount:   utils.FormatOptionalMoney(p.MidPaymentAmount),
		MidPaymentDate:     domain.FormatDate(p.MidPaymentDate),
		FinalPaymentAmount: utils.FormatOptionalMoney(p.FinalPaymentAmount),
		FinalPaymentDate:   domain.FormatDate(p.FinalPaymentDate),
		AmountPaid:         utils.FormatOptionalMoney(p.AmountPaid),
		AmountOutstanding:  utils.FormatOptionalMoney(p.AmountOutstanding),
		PaymentStatus:      string(p.PaymentStatus),
		Notes:              p.Notes,
		CreatedAt:          p.CreatedAt,
		CreatedBy:          p.CreatedBy,
		LastUpdatedAt:      p.LastUpdatedAt,
		LastUpdatedBy:      p.LastUpdatedBy,
	}
}

// ToListPaymentResponse converts a slice of domain.Payment to a slice of PaymentResponse DTOs
func ToListPaymentResponse(payments []domain.Payment) []PaymentResponse {
	res := make([]PaymentResponse, len(payments))
	for i := range payments {
		res[i] = ToPaymentResponse(&payments[i])
	}
	return res
}
