package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EnquiryStatus is the lifecycle state of an enquiry. It drives analytics bucketing.
type EnquiryStatus string

const (
	StatusPending      EnquiryStatus = "Pending"
	StatusContacted    EnquiryStatus = "Contacted"
	StatusProposalSent EnquiryStatus = "Proposal Sent"
	StatusConverted    EnquiryStatus = "Converted"
	StatusLost         EnquiryStatus = "Lost"
)

// EnquiryStatuses lists every status in pipeline order. Analytics output follows this order.
var EnquiryStatuses = []EnquiryStatus{
	StatusPending,
	StatusContacted,
	StatusProposalSent,
	StatusConverted,
	StatusLost,
}

// Valid reports whether s is one of the known statuses.
func (s EnquiryStatus) Valid() bool {
	for _, known := range EnquiryStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the enquiry has left the sales pipeline without converting.
func (s EnquiryStatus) IsTerminal() bool {
	return s == StatusLost
}

// UrgencyLevel grades how quickly a client needs a response.
type UrgencyLevel string

const (
	UrgencyLow      UrgencyLevel = "Low"
	UrgencyMedium   UrgencyLevel = "Medium"
	UrgencyHigh     UrgencyLevel = "High"
	UrgencyCritical UrgencyLevel = "Critical"
)

// UrgencyLevels lists the accepted urgency values.
var UrgencyLevels = []UrgencyLevel{UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyCritical}

// Valid reports whether u is one of the known urgency levels.
func (u UrgencyLevel) Valid() bool {
	for _, known := range UrgencyLevels {
		if u == known {
			return true
		}
	}
	return false
}

// Enquiry is a prospective client's request for services.
//
// EnquiryID and MatterCode are issued by the store; EnquiryNumber, MatterYear
// and MatterNumber are their numeric components.
type Enquiry struct {
	ID               int64            `json:"id"`
	EnquiryID        string           `json:"enquiryId"`
	EnquiryNumber    int64            `json:"-"`
	DateOfEnquiry    time.Time        `json:"dateOfEnquiry"`
	ClientName       string           `json:"clientName"`
	Email            *string          `json:"email"`
	Phone            *string          `json:"phone"`
	ServiceRequested *string          `json:"serviceRequested"`
	ReferralSource   *string          `json:"referralSource"`
	AssignedTo       *string          `json:"assignedTo"`
	Notes            *string          `json:"notes"`
	UrgencyLevel     *UrgencyLevel    `json:"urgencyLevel"`
	CurrentStatus    EnquiryStatus    `json:"currentStatus"`
	EstimatedValue   *decimal.Decimal `json:"estimatedValue"`
	ConversionDate   *time.Time       `json:"conversionDate"`
	MatterCode       *string          `json:"matterCode"`
	MatterYear       *int             `json:"-"`
	MatterNumber     *int             `json:"-"`
	AuditFields
}

// HasMatterCode reports whether a matter code has already been issued.
func (e *Enquiry) HasMatterCode() bool {
	return e.MatterCode != nil && *e.MatterCode != ""
}

// NeedsMatterCode reports whether moving from prev to e is the unset→set
// transition of conversionDate that issues a matter code. A code is never
// issued twice, whatever happens to conversionDate afterwards.
func (e *Enquiry) NeedsMatterCode(prev *Enquiry) bool {
	if e.ConversionDate == nil || e.HasMatterCode() {
		return false
	}
	if prev == nil {
		return true
	}
	return prev.ConversionDate == nil && !prev.HasMatterCode()
}
