package gormdb

import (
	portsrepo "github.com/SscSPs/firm_enquiries_app/internal/core/ports/repositories"
	"gorm.io/gorm"
)

func NewRepositoryProvider(db *gorm.DB) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		EnquiryRepo: newGormEnquiryRepository(db),
		PaymentRepo: newGormPaymentRepository(db),
	}
}
