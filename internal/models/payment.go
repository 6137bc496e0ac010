package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is the payments row. enquiry_id is unique: one payment per enquiry.
type Payment struct {
	ID                 int64               `db:"id" gorm:"primaryKey;autoIncrement"`
	EnquiryID          int64               `db:"enquiry_id" gorm:"not null;uniqueIndex:idx_payments_enquiry_id"`
	Enquiry            *Enquiry            `db:"-" gorm:"foreignKey:EnquiryID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
	MatterCode         string              `db:"matter_code" gorm:"size:32;not null"`
	TotalAmount        decimal.Decimal     `db:"total_amount" gorm:"type:text;not null"`
	RetainerAmount     decimal.NullDecimal `db:"retainer_amount" gorm:"type:text"`
	RetainerPaidDate   *time.Time          `db:"retainer_paid_date" gorm:"type:date"`
	MidPaymentAmount   decimal.NullDecimal `db:"mid_payment_amount" gorm:"type:text"`
	MidPaymentDate     *time.Time          `db:"mid_payment_date" gorm:"type:date"`
	FinalPaymentAmount decimal.NullDecimal `db:"final_payment_amount" gorm:"type:text"`
	FinalPaymentDate   *time.Time          `db:"final_payment_date" gorm:"type:date"`
	AmountPaid         decimal.NullDecimal `db:"amount_paid" gorm:"type:text"`
	AmountOutstanding  decimal.NullDecimal `db:"amount_outstanding" gorm:"type:text"`
	PaymentStatus      string              `db:"payment_status" gorm:"size:30;not null;default:Not Started"`
	Notes              *string             `db:"notes" gorm:"type:text"`
	AuditFields
}

// TableName pins the table name for gorm.
func (Payment) TableName() string { return "payments" }
