package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/firm_enquiries_app/internal/apperrors"
	"github.com/SscSPs/firm_enquiries_app/internal/core/domain"
	portssvc "github.com/SscSPs/firm_enquiries_app/internal/core/ports/services"
	"github.com/SscSPs/firm_enquiries_app/internal/core/services"
	"github.com/SscSPs/firm_enquiries_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type EnquiryServiceTestSuite struct {
	suite.Suite
	enquiryRepo *MockEnquiryRepository
	paymentRepo *MockPaymentRepository
	service     portssvc.EnquirySvcFacade
	now         time.Time
	ctx         context.Context
	userID      string
}

func (suite *EnquiryServiceTestSuite) SetupTest() {
	suite.enquiryRepo = new(MockEnquiryRepository)
	suite.paymentRepo = new(MockPaymentRepository)
	suite.now = time.Date(2025, time.January, 22, 10, 0, 0, 0, time.UTC)
	suite.service = services.NewEnquiryService(suite.enquiryRepo, suite.paymentRepo,
		services.WithClock(func() time.Time { return suite.now }))
	suite.ctx = context.Background()
	suite.userID = uuid.NewString()
}

func (suite *EnquiryServiceTestSuite) storedEnquiry() *domain.Enquiry {
	return &domain.Enquiry{
		ID:            7,
		EnquiryID:     "ENQ-0007",
		EnquiryNumber: 7,
		DateOfEnquiry: time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC),
		ClientName:    "Acme Ltd",
		Email:         strPtr("ops@acme.test"),
		CurrentStatus: domain.StatusPending,
		AuditFields: domain.AuditFields{
			CreatedAt: suite.now.Add(-time.Hour),
			CreatedBy: "creator",
		},
	}
}

// --- Test Cases ---

func (suite *EnquiryServiceTestSuite) TestCreateEnquiry_Success() {
	req := dto.CreateEnquiryRequest{
		DateOfEnquiry:    "2025-01-15",
		ClientName:       "  Test Client  ",
		ServiceRequested: strPtr("Corporate / M&A"),
		UrgencyLevel:     strPtr("High"),
	}

	suite.enquiryRepo.On("CreateEnquiry", suite.ctx, mock.MatchedBy(func(e domain.Enquiry) bool {
		return e.ClientName == "Test Client" &&
			e.CurrentStatus == domain.StatusPending &&
			e.DateOfEnquiry.Equal(time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)) &&
			*e.ServiceRequested == "Corporate / M&A" &&
			*e.UrgencyLevel == domain.UrgencyHigh &&
			e.ConversionDate == nil &&
			e.CreatedBy == suite.userID && e.LastUpdatedBy == suite.userID &&
			e.CreatedAt.Equal(suite.now)
	}), false).Return(func(_ context.Context, e domain.Enquiry, _ bool) *domain.Enquiry {
		e.ID = 1
		e.EnquiryNumber = 1
		e.EnquiryID = domain.FormatEnquiryID(1)
		return &e
	}, nil).Once()

	enquiry, err := suite.service.CreateEnquiry(suite.ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(enquiry)
	suite.Regexp(`^ENQ-\d{4}$`, enquiry.EnquiryID)
	suite.Equal("Test Client", enquiry.ClientName)
	suite.Nil(enquiry.MatterCode)
	suite.enquiryRepo.AssertExpectations(suite.T())
}

func (suite *EnquiryServiceTestSuite) TestCreateEnquiry_WithConversionDateIssuesMatterCode() {
	req := dto.CreateEnquiryRequest{
		DateOfEnquiry:  "2025-01-15",
		ClientName:     "Converted Client",
		CurrentStatus:  strPtr("Converted"),
		ConversionDate: strPtr("2025-01-20"),
		EstimatedValue: strPtr("12500.50"),
	}

	suite.enquiryRepo.On("CreateEnquiry", suite.ctx, mock.MatchedBy(func(e domain.Enquiry) bool {
		return e.ConversionDate != nil && e.EstimatedValue.Equal(decimal.RequireFromString("12500.5"))
	}), true).Return(&domain.Enquiry{ID: 2, EnquiryID: "ENQ-0002", MatterCode: strPtr("MAT-2025-001")}, nil).Once()

	enquiry, err := suite.service.CreateEnquiry(suite.ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("MAT-2025-001", *enquiry.MatterCode)
	suite.enquiryRepo.AssertExpectations(suite.T())
}

func (suite *EnquiryServiceTestSuite) TestCreateEnquiry_ValidationErrors() {
	cases := map[string]dto.CreateEnquiryRequest{
		"missing client":    {DateOfEnquiry: "2025-01-15"},
		"blank client":      {DateOfEnquiry: "2025-01-15", ClientName: "   "},
		"missing date":      {ClientName: "X"},
		"malformed date":    {DateOfEnquiry: "2025-13-45", ClientName: "X"},
		"unknown status":    {DateOfEnquiry: "2025-01-15", ClientName: "X", CurrentStatus: strPtr("Won")},
		"negative estimate": {DateOfEnquiry: "2025-01-15", ClientName: "X", EstimatedValue: strPtr("-5")},
	}

	for name, req := range cases {
		suite.Run(name, func() {
			enquiry, err := suite.service.CreateEnquiry(suite.ctx, req, suite.userID)
			suite.Require().Error(err)
			suite.Nil(enquiry)
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.enquiryRepo.AssertNotCalled(suite.T(), "CreateEnquiry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EnquiryServiceTestSuite) TestCreateEnquiry_RepoError() {
	req := dto.CreateEnquiryRequest{DateOfEnquiry: "2025-01-15", ClientName: "X"}
	storeDown := apperrors.NewStoreUnavailableError("store unreachable", assert.AnError)

	suite.enquiryRepo.On("CreateEnquiry", suite.ctx, mock.AnythingOfType("domain.Enquiry"), false).Return(nil, storeDown).Once()

	enquiry, err := suite.service.CreateEnquiry(suite.ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(enquiry)
	suite.ErrorIs(err, apperrors.ErrStoreUnavailable)
	suite.enquiryRepo.AssertExpectations(suite.T())
}

func (suite *EnquiryServiceTestSuite) TestUpdateEnquiry_NotFound() {
	suite.enquiryRepo.On("FindEnquiryByID", suite.ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	enquiry, err := suite.service.UpdateEnquiry(suite.ctx, 99, dto.UpdateEnquiryRequest{ClientName: strPtr("Y")}, suite.userID)

	suite.Require().Error(err)
	suite.Nil(enquiry)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.enquiryRepo.AssertExpectations(suite.T())
}

func (suite *EnquiryServiceTestSuite) TestUpdateEnquiry_SettingConversionDateIssuesMatterCode() {
	stored := suite.storedEnquiry()
	req := dto.UpdateEnquiryRequest{
		ConversionDate: strPtr("2025-01-20"),
		CurrentStatus:  strPtr("Converted"),
	}

	suite.enquiryRepo.On("FindEnquiryByID", suite.ctx, stored.ID).Return(stored, nil).Once()
	suite.enquiryRepo.On("UpdateEnquiry", suite.ctx, mock.MatchedBy(func(e domain.Enquiry) bool {
		return e.CurrentStatus == domain.StatusConverted &&
			e.ConversionDate != nil && e.ConversionDate.Year() == 2025 &&
			e.ClientName == stored.ClientName &&
			e.LastUpdatedBy == suite.userID && e.CreatedBy == "creator"
	}), true).Return(func(_ context.Context, e domain.Enquiry, _ bool) *domain.Enquiry {
		code := domain.FormatMatterCode(e.ConversionDate.Year(), 1)
		e.MatterCode = &code
		return &e
	}, nil).Once()

	enquiry, err := suite.service.UpdateEnquiry(suite.ctx, stored.ID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(enquiry.MatterCode)
	suite.Regexp(`^MAT-2025-\d{3}$`, *enquiry.MatterCode)
	suite.enquiryRepo.AssertExpectations(suite.T())
}

func (suite *EnquiryServiceTestSuite) TestUpdateEnquiry_ReSettingConversionDateKeepsMatterCode() {
	stored := suite.storedEnquiry()
	conv := time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC)
	stored.ConversionDate = &conv
	stored.CurrentStatus = domain.StatusConverted
	stored.MatterCode = strPtr("MAT-2025-004")

	suite.enquiryRepo.On("FindEnquiryByID", suite.ctx, stored.ID).Return(stored, nil).Once()
	suite.enquiryRepo.On("UpdateEnquiry", suite.ctx, mock.MatchedBy(func(e domain.Enquiry) bool {
		return *e.MatterCode == "MAT-2025-004" && e.ConversionDate.Year() == 2026
	}), false).Return(func(_ context.Context, e domain.Enquiry, _ bool) *domain.Enquiry {
		return &e
	}, nil).Once()

	enquiry, err := suite.service.UpdateEnquiry(suite.ctx, stored.ID, dto.UpdateEnquiryRequest{ConversionDate: strPtr("2026-03-01")}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("MAT-2025-004", *enquiry.MatterCode)
	suite.enquiryRepo.AssertExpectations(suite.T())
}

func (suite *EnquiryServiceTestSuite) TestUpdateEnquiry_AppliesOnlyProvidedFields() {
	stored := suite.storedEnquiry()
	req := dto.UpdateEnquiryRequest{
		ClientName:   strPtr("Updated Name"),
		UrgencyLevel: strPtr("Critical"),
		Email:        strPtr(""),
	}

	suite.enquiryRepo.On("FindEnquiryByID", suite.ctx, stored.ID).Return(stored, nil).Once()
	suite.enquiryRepo.On("UpdateEnquiry", suite.ctx, mock.MatchedBy(func(e domain.Enquiry) bool {
		return e.ClientName == "Updated Name" &&
			*e.UrgencyLevel == domain.UrgencyCritical &&
			e.Email == nil &&
			e.CurrentStatus == domain.StatusPending &&
			e.DateOfEnquiry.Equal(stored.DateOfEnquiry)
	}), false).Return(func(_ context.Context, e domain.Enquiry, _ bool) *domain.Enquiry {
		return &e
	}, nil).Once()

	enquiry, err := suite.service.UpdateEnquiry(suite.ctx, stored.ID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("Updated Name", enquiry.ClientName)
	suite.Nil(enquiry.Email)
	suite.Equal("ops@acme.test", *stored.Email, "stored record must not be mutated")
	suite.enquiryRepo.AssertExpectations(suite.T())
}

func (suite *EnquiryServiceTestSuite) TestUpdateEnquiry_RowVanished() {
	stored := suite.storedEnquiry()

	suite.enquiryRepo.On("FindEnquiryByID", suite.ctx, stored.ID).Return(stored, nil).Once()
	suite.enquiryRepo.On("UpdateEnquiry", suite.ctx, mock.AnythingOfType("domain.Enquiry"), false).Return(nil, nil).Once()

	enquiry, err := suite.service.UpdateEnquiry(suite.ctx, stored.ID, dto.UpdateEnquiryRequest{Notes: strPtr("call back")}, suite.userID)

	suite.NoError(err)
	suite.Nil(enquiry)
	suite.enquiryRepo.AssertExpectations(suite.T())
}

func (suite *EnquiryServiceTestSuite) TestUpdateEnquiry_CannotClearRequiredFields() {
	stored := suite.storedEnquiry()
	suite.enquiryRepo.On("FindEnquiryByID", suite.ctx, stored.ID).Return(stored, nil)

	for name, req := range map[string]dto.UpdateEnquiryRequest{
		"client name": {ClientName: strPtr(" ")},
		"status":      {CurrentStatus: strPtr("")},
		"date":        {DateOfEnquiry: strPtr("")},
	} {
		suite.Run(name, func() {
			_, err := suite.service.UpdateEnquiry(suite.ctx, stored.ID, req, suite.userID)
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.enquiryRepo.AssertNotCalled(suite.T(), "UpdateEnquiry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EnquiryServiceTestSuite) TestGetEnquiryByID() {
	stored := suite.storedEnquiry()
	suite.enquiryRepo.On("FindEnquiryByID", suite.ctx, stored.ID).Return(stored, nil).Once()

	enquiry, err := suite.service.GetEnquiryByID(suite.ctx, stored.ID)

	suite.Require().NoError(err)
	suite.Equal(stored, enquiry)
}

func (suite *EnquiryServiceTestSuite) TestListEnquiries_Empty() {
	suite.enquiryRepo.On("ListEnquiries", suite.ctx).Return(nil, nil).Once()

	enquiries, err := suite.service.ListEnquiries(suite.ctx)

	suite.Require().NoError(err)
	suite.NotNil(enquiries)
	suite.Empty(enquiries)
}

func (suite *EnquiryServiceTestSuite) TestListEnquiries_RepoError() {
	suite.enquiryRepo.On("ListEnquiries", suite.ctx).Return(nil, assert.AnError).Once()

	enquiries, err := suite.service.ListEnquiries(suite.ctx)

	suite.Require().Error(err)
	suite.Nil(enquiries)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *EnquiryServiceTestSuite) analyticsBook() ([]domain.Enquiry, []domain.Payment) {
	jan := func(day int) time.Time { return time.Date(2025, time.January, day, 0, 0, 0, 0, time.UTC) }
	value := decimal.RequireFromString("10000")
	enquiries := []domain.Enquiry{
		{ID: 1, DateOfEnquiry: jan(2), CurrentStatus: domain.StatusPending, EstimatedValue: &value},
		{ID: 2, DateOfEnquiry: jan(3), CurrentStatus: domain.StatusConverted},
		{ID: 3, DateOfEnquiry: time.Date(2024, time.December, 30, 0, 0, 0, 0, time.UTC), CurrentStatus: domain.StatusLost},
		{ID: 4, DateOfEnquiry: jan(10), CurrentStatus: domain.StatusContacted},
	}
	paid := decimal.RequireFromString("25000")
	payments := []domain.Payment{
		{ID: 1, EnquiryID: 2, TotalAmount: decimal.RequireFromString("50000"), AmountPaid: &paid},
	}
	return enquiries, payments
}

func (suite *EnquiryServiceTestSuite) TestKPIMetrics() {
	enquiries, payments := suite.analyticsBook()
	suite.enquiryRepo.On("ListEnquiries", suite.ctx).Return(enquiries, nil).Once()
	suite.paymentRepo.On("ListPayments", suite.ctx).Return(payments, nil).Once()

	kpis, err := suite.service.KPIMetrics(suite.ctx)

	suite.Require().NoError(err)
	suite.Equal(4, kpis.TotalEnquiries)
	suite.Equal(1, kpis.ConvertedEnquiries)
	suite.Equal(25.0, kpis.ConversionRate)
	suite.Equal(3, kpis.ThisMonthEnquiries)
	suite.True(kpis.TotalRevenue.Equal(decimal.RequireFromString("25000")))
}

func (suite *EnquiryServiceTestSuite) TestKPIMetrics_PaymentRepoError() {
	suite.enquiryRepo.On("ListEnquiries", suite.ctx).Return([]domain.Enquiry{}, nil).Once()
	suite.paymentRepo.On("ListPayments", suite.ctx).Return(nil, assert.AnError).Once()

	kpis, err := suite.service.KPIMetrics(suite.ctx)

	suite.Nil(kpis)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *EnquiryServiceTestSuite) TestPipelineForecast() {
	enquiries, payments := suite.analyticsBook()
	suite.enquiryRepo.On("ListEnquiries", suite.ctx).Return(enquiries, nil).Once()
	suite.paymentRepo.On("ListPayments", suite.ctx).Return(payments, nil).Once()

	forecast, err := suite.service.PipelineForecast(suite.ctx)

	suite.Require().NoError(err)
	suite.Require().Len(forecast, 3)
	suite.Equal(domain.StatusPending, forecast[0].Status)
	suite.True(forecast[0].WeightedValue.Equal(decimal.RequireFromString("2000")))
	suite.Equal(domain.StatusContacted, forecast[1].Status)
	suite.True(forecast[1].TotalValue.IsZero())
	suite.Equal(domain.StatusConverted, forecast[2].Status)
	suite.True(forecast[2].TotalValue.Equal(decimal.RequireFromString("50000")))
}

func (suite *EnquiryServiceTestSuite) TestStatusSummary() {
	enquiries, _ := suite.analyticsBook()
	suite.enquiryRepo.On("ListEnquiries", suite.ctx).Return(enquiries, nil).Once()

	summary, err := suite.service.StatusSummary(suite.ctx)

	suite.Require().NoError(err)
	suite.Equal([]domain.StatusCount{
		{Status: domain.StatusPending, Count: 1},
		{Status: domain.StatusContacted, Count: 1},
		{Status: domain.StatusConverted, Count: 1},
		{Status: domain.StatusLost, Count: 1},
	}, summary)
	suite.paymentRepo.AssertNotCalled(suite.T(), "ListPayments", mock.Anything)
}

// --- Run Suite ---
func TestEnquiryService(t *testing.T) {
	suite.Run(t, new(EnquiryServiceTestSuite))
}
