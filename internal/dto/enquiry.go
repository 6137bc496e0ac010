package dto

import (
	"time"

	"github.com/SscSPs/firm_enquiries_app/internal/core/domain"
	"github.com/SscSPs/firm_enquiries_app/internal/utils"
)

// CreateEnquiryRequest defines the data needed to record a new enquiry.
// Dates are YYYY-MM-DD; estimatedValue is a decimal string.
type CreateEnquiryRequest struct {
	DateOfEnquiry    string  `json:"dateOfEnquiry" binding:"required,date"`
	ClientName       string  `json:"clientName" binding:"required,max=255"`
	Email            *string `json:"email" binding:"omitempty,optional_email,max=255"`
	Phone            *string `json:"phone" binding:"omitempty,max=50"`
	ServiceRequested *string `json:"serviceRequested" binding:"omitempty,max=255"`
	ReferralSource   *string `json:"referralSource" binding:"omitempty,max=255"`
	AssignedTo       *string `json:"assignedTo" binding:"omitempty,max=255"`
	Notes            *string `json:"notes"`
	UrgencyLevel     *string `json:"urgencyLevel" binding:"omitempty,urgency_level"`
	CurrentStatus    *string `json:"currentStatus" binding:"omitempty,enquiry_status"` // defaults to Pending
	EstimatedValue   *string `json:"estimatedValue" binding:"omitempty,decimal"`
	ConversionDate   *string `json:"conversionDate" binding:"omitempty,date"`
}

// UpdateEnquiryRequest defines the data allowed for updating an enquiry.
// Use pointers to distinguish between fields not provided and fields being cleared;
// an empty string clears an optional field.
type UpdateEnquiryRequest struct {
	DateOfEnquiry    *string `json:"dateOfEnquiry" binding:"omitempty,date"`
	ClientName       *string `json:"clientName" binding:"omitempty,max=255"`
	Email            *string `json:"email" binding:"omitempty,optional_email,max=255"`
	Phone            *string `json:"phone" binding:"omitempty,max=50"`
	ServiceRequested *string `json:"serviceRequested" binding:"omitempty,max=255"`
	ReferralSource   *string `json:"referralSource" binding:"omitempty,max=255"`
	AssignedTo       *string `json:"assignedTo" binding:"omitempty,max=255"`
	Notes            *string `json:"notes"`
	UrgencyLevel     *string `json:"urgencyLevel" binding:"omitempty,urgency_level"`
	CurrentStatus    *string `json:"currentStatus" binding:"omitempty,enquiry_status"`
	EstimatedValue   *string `json:"estimatedValue" binding:"omitempty,decimal"`
	ConversionDate   *string `json:"conversionDate" binding:"omitempty,date"`
}

// EnquiryResponse defines the data returned for an enquiry.
type EnquiryResponse struct {
	ID               int64     `json:"id"`
	EnquiryID        string    `json:"enquiryId"`
	DateOfEnquiry    string    `json:"dateOfEnquiry"`
	ClientName       string    `json:"clientName"`
	Email            *string   `json:"email"`
	Phone            *string   `json:"phone"`
	ServiceRequested *string   `json:"serviceRequested"`
	ReferralSource   *string   `json:"referralSource"`
	AssignedTo       *string   `json:"assignedTo"`
	Notes            *string   `json:"notes"`
	UrgencyLevel     *string   `json:"urgencyLevel"`
	CurrentStatus    string    `json:"currentStatus"`
	EstimatedValue   *string   `json:"estimatedValue"`
	ConversionDate   *string   `json:"conversionDate"`
	MatterCode       *string   `json:"matterCode"`
	CreatedAt        time.Time `json:"createdAt"`
	CreatedBy        string    `json:"createdBy"`
	LastUpdatedAt    time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy    string    `json:"lastUpdatedBy"`
}

// ToEnquiryResponse converts a domain.Enquiry to EnquiryResponse DTO
func ToEnquiryResponse(e *domain.Enquiry) EnquiryResponse {
	var urgency *string
	if e.UrgencyLevel != nil {
		u := string(*e.UrgencyLevel)
		urgency = &u
	}
	return EnquiryResponse{
		ID:               e.ID,
		EnquiryID:        e.EnquiryID,
		DateOfEnquiry:    e.DateOfEnquiry.Format(domain.DateLayout),
		ClientName:       e.ClientName,
		Email:            e.Email,
		Phone:            e.Phone,
		ServiceRequested: e.ServiceRequested,
		ReferralSource:   e.ReferralSource,
		AssignedTo:       e.AssignedTo,
		Notes:            e.Notes,
		UrgencyLevel:     urgency,
		CurrentStatus:    string(e.CurrentStatus),
		EstimatedValue:   utils.FormatOptionalMoney(e.EstimatedValue),
		ConversionDate:   domain.FormatDate(e.ConversionDate),
		MatterCode:       e.MatterCode,
		CreatedAt:        e.CreatedAt,
		CreatedBy:        e.CreatedBy,
		LastUpdatedAt:    e.LastUpdatedAt,
		LastUpdatedBy:    e.LastUpdatedBy,
	}
}

// ToListEnquiryResponse converts a slice of domain.Enquiry to a slice of EnquiryResponse DTOs
func ToListEnquiryResponse(enquiries []domain.Enquiry) []EnquiryResponse {
	res := make([]EnquiryResponse, len(enquiries))
	for i := range enquiries {
		res[i] = ToEnquiryResponse(&enquiries[i])
	}
	return res
}
