package dto_test

import (
	"testing"

	"github.com/SscSPs/firm_enquiries_app/internal/core/domain"
	"github.com/SscSPs/firm_enquiries_app/internal/dto"
	"github.com/SscSPs/firm_enquiries_app/internal/utils/validation"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToPaymentResponse_KeepsSuppliedDigits(t *testing.T) {
	req := dto.CreatePaymentRequest{EnquiryID: 1, MatterCode: "MAT-2025-001", TotalAmount: "1234.5678"}
	require.NoError(t, validation.Struct(req))
	total, err := validation.ParseAmount(req.TotalAmount)
	require.NoError(t, err)
	paid := decimal.RequireFromString("0.0001")

	resp := dto.ToPaymentResponse(&domain.Payment{TotalAmount: total, AmountPaid: &paid})

	assert.Equal(t, "1234.5678", resp.TotalAmount)
	require.NotNil(t, resp.AmountPaid)
	assert.Equal(t, "0.0001", *resp.AmountPaid)
}

func TestToEnquiryResponse_KeepsEstimateDigits(t *testing.T) {
	estimate := decimal.RequireFromString("99.0075")

	resp := dto.ToEnquiryResponse(&domain.Enquiry{EstimatedValue: &estimate})

	require.NotNil(t, resp.EstimatedValue)
	assert.Equal(t, "99.0075", *resp.EstimatedValue)
}

func TestToPipelineForecastResponse_WeightedValueIsExact(t *testing.T) {
	small := decimal.RequireFromString("0.01")
	odd := decimal.RequireFromString("0.0003")
	contacted := domain.Enquiry{ID: 1, CurrentStatus: domain.StatusContacted, EstimatedValue: &small}
	proposal := domain.Enquiry{ID: 2, CurrentStatus: domain.StatusProposalSent, EstimatedValue: &odd}

	rows := dto.ToPipelineForecastResponse(domain.ForecastPipeline([]domain.Enquiry{contacted, proposal}, nil))

	require.Len(t, rows, 2)
	assert.Equal(t, "0.005", rows[0].WeightedValue)
	assert.Equal(t, "0.000225", rows[1].WeightedValue)
	for _, row := range rows {
		total := decimal.RequireFromString(row.TotalValue)
		weighted := decimal.RequireFromString(row.WeightedValue)
		assert.True(t, total.Mul(decimal.NewFromFloat(row.Probability)).Equal(weighted), row.Status)
	}
}
