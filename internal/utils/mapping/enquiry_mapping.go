package mapping

import (
	"github.com/SscSPs/firm_enquiries_app/internal/core/domain"
	"github.com/SscSPs/firm_enquiries_app/internal/models"
)

// ToModelEnquiry converts a domain Enquiry to a model Enquiry
func ToModelEnquiry(d domain.Enquiry) models.Enquiry {
	var urgency *string
	if d.UrgencyLevel != nil {
		u := string(*d.UrgencyLevel)
		urgency = &u
	}
	return models.Enquiry{
		ID:               d.ID,
		EnquiryID:        d.EnquiryID,
		EnquiryNumber:    d.EnquiryNumber,
		DateOfEnquiry:    d.DateOfEnquiry,
		ClientName:       d.ClientName,
		Email:            d.Email,
		Phone:            d.Phone,
		ServiceRequested: d.ServiceRequested,
		ReferralSource:   d.ReferralSource,
		AssignedTo:       d.AssignedTo,
		Notes:            d.Notes,
		UrgencyLevel:     urgency,
		CurrentStatus:    string(d.CurrentStatus),
		EstimatedValue:   toNullDecimal(d.EstimatedValue),
		ConversionDate:   d.ConversionDate,
		MatterCode:       d.MatterCode,
		MatterYear:       d.MatterYear,
		MatterNumber:     d.MatterNumber,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainEnquiry converts a model Enquiry to a domain Enquiry
func ToDomainEnquiry(m models.Enquiry) domain.Enquiry {
	var urgency *domain.UrgencyLevel
	if m.UrgencyLevel != nil {
		u := domain.UrgencyLevel(*m.UrgencyLevel)
		urgency = &u
	}
	return domain.Enquiry{
		ID:               m.ID,
		EnquiryID:        m.EnquiryID,
		EnquiryNumber:    m.EnquiryNumber,
		DateOfEnquiry:    m.DateOfEnquiry,
		ClientName:       m.ClientName,
		Email:            m.Email,
		Phone:            m.Phone,
		ServiceRequested: m.ServiceRequested,
		ReferralSource:   m.ReferralSource,
		AssignedTo:       m.AssignedTo,
		Notes:            m.Notes,
		UrgencyLevel:     urgency,
		CurrentStatus:    domain.EnquiryStatus(m.CurrentStatus),
		EstimatedValue:   fromNullDecimal(m.EstimatedValue),
		ConversionDate:   m.ConversionDate,
		MatterCode:       m.MatterCode,
		MatterYear:       m.MatterYear,
		MatterNumber:     m.MatterNumber,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainEnquirySlice converts a slice of model Enquiries to a slice of domain Enquiries
func ToDomainEnquirySlice(ms []models.Enquiry) []domain.Enquiry {
	ds := make([]domain.Enquiry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainEnquiry(m)
	}
	return ds
}
