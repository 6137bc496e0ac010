package models

import "time"

// AuditFields holds the audit columns shared by every table.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at" gorm:"not null"`
	CreatedBy     string    `db:"created_by" gorm:"size:255;not null"`
	LastUpdatedAt time.Time `db:"last_updated_at" gorm:"not null"`
	LastUpdatedBy string    `db:"last_updated_by" gorm:"size:255;not null"`
}
