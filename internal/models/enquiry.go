package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Enquiry is the enquiries row. Nullable columns are pointers; money is
// NUMERIC in Postgres and TEXT in SQLite so no precision is lost either way.
type Enquiry struct {
	ID               int64               `db:"id" gorm:"primaryKey;autoIncrement"`
	EnquiryID        string              `db:"enquiry_id" gorm:"size:32;not null;uniqueIndex:idx_enquiries_enquiry_id"`
	EnquiryNumber    int64               `db:"enquiry_number" gorm:"not null"`
	DateOfEnquiry    time.Time           `db:"date_of_enquiry" gorm:"type:date;not null"`
	ClientName       string              `db:"client_name" gorm:"size:255;not null"`
	Email            *string             `db:"email" gorm:"size:255"`
	Phone            *string             `db:"phone" gorm:"size:50"`
	ServiceRequested *string             `db:"service_requested" gorm:"size:255"`
	ReferralSource   *string             `db:"referral_source" gorm:"size:255"`
	AssignedTo       *string             `db:"assigned_to" gorm:"size:255"`
	Notes            *string             `db:"notes" gorm:"type:text"`
	UrgencyLevel     *string             `db:"urgency_level" gorm:"size:20"`
	CurrentStatus    string              `db:"current_status" gorm:"size:30;not null;default:Pending;index"`
	EstimatedValue   decimal.NullDecimal `db:"estimated_value" gorm:"type:text"`
	ConversionDate   *time.Time          `db:"conversion_date" gorm:"type:date"`
	MatterCode       *string             `db:"matter_code" gorm:"size:32;uniqueIndex:idx_enquiries_matter_code"`
	MatterYear       *int                `db:"matter_year" gorm:"index:idx_enquiries_matter_year"`
	MatterNumber     *int                `db:"matter_number"`
	AuditFields
}

// TableName pins the table name for gorm.
func (Enquiry) TableName() string { return "enquiries" }
