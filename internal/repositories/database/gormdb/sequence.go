package gormdb

import (
	"github.com/SscSPs/firm_enquiries_app/internal/core/domain"
	"gorm.io/gorm"
)

// SQLite needs the WHERE clause to tell the upsert's ON CONFLICT apart from a join.
const (
	nextEnquiryNumberQuery = `
		INSERT INTO id_sequences (namespace, last_value)
		SELECT ?, COALESCE(MAX(enquiry_number), 0) + 1 FROM enquiries WHERE true
		ON CONFLICT (namespace) DO UPDATE SET last_value = id_sequences.last_value + 1
		RETURNING last_value`
	nextMatterNumberQuery = `
		INSERT INTO id_sequences (namespace, last_value)
		SELECT ?, COALESCE(MAX(matter_number), 0) + 1 FROM enquiries WHERE matter_year = ?
		ON CONFLICT (namespace) DO UPDATE SET last_value = id_sequences.last_value + 1
		RETURNING last_value`
)

func nextEnquiryNumber(tx *gorm.DB) (int64, error) {
	var n int64
	if err := tx.Raw(nextEnquiryNumberQuery, domain.EnquirySequenceNamespace).Scan(&n).Error; err != nil {
		return 0, classifyError("allocate enquiry number", err)
	}
	return n, nil
}

func nextMatterNumber(tx *gorm.DB, year int) (int, error) {
	var n int64
	if err := tx.Raw(nextMatterNumberQuery, domain.MatterSequenceNamespace(year), year).Scan(&n).Error; err != nil {
		return 0, classifyError("allocate matter number", err)
	}
	return int(n), nil
}
