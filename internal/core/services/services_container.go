package services

import (
	portsrepo "github.com/SscSPs/firm_enquiries_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/firm_enquiries_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Enquiry: NewEnquiryService(repos.EnquiryRepo, repos.PaymentRepo),
		Payment: NewPaymentService(repos.PaymentRepo, repos.EnquiryRepo),
	}
}
