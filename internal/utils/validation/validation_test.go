package validation_test

import (
	"testing"

	"github.com/SscSPs/firm_enquiries_app/internal/apperrors"
	"github.com/SscSPs/firm_enquiries_app/internal/dto"
	"github.com/SscSPs/firm_enquiries_app/internal/utils/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestStruct_CreateEnquiryRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.CreateEnquiryRequest
		wantErr string
	}{
		{
			name: "minimal valid",
			req:  dto.CreateEnquiryRequest{DateOfEnquiry: "2025-01-15", ClientName: "X"},
		},
		{
			name:    "missing client name",
			req:     dto.CreateEnquiryRequest{DateOfEnquiry: "2025-01-15"},
			wantErr: "clientName is required",
		},
		{
			name:    "bad date",
			req:     dto.CreateEnquiryRequest{DateOfEnquiry: "15/01/2025", ClientName: "X"},
			wantErr: "dateOfEnquiry must be a date in YYYY-MM-DD format",
		},
		{
			name:    "unknown status",
			req:     dto.CreateEnquiryRequest{DateOfEnquiry: "2025-01-15", ClientName: "X", CurrentStatus: strPtr("Won")},
			wantErr: "currentStatus must be one of Pending, Contacted, Proposal Sent, Converted, Lost",
		},
		{
			name:    "unknown urgency",
			req:     dto.CreateEnquiryRequest{DateOfEnquiry: "2025-01-15", ClientName: "X", UrgencyLevel: strPtr("Urgent")},
			wantErr: "urgencyLevel must be one of",
		},
		{
			name:    "negative estimate",
			req:     dto.CreateEnquiryRequest{DateOfEnquiry: "2025-01-15", ClientName: "X", EstimatedValue: strPtr("-1")},
			wantErr: "estimatedValue must be a non-negative decimal amount",
		},
		{
			name: "empty optional strings are skipped",
			req:  dto.CreateEnquiryRequest{DateOfEnquiry: "2025-01-15", ClientName: "X", Email: strPtr(""), UrgencyLevel: strPtr("")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.Struct(tt.req)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestStruct_CreatePaymentRequest(t *testing.T) {
	valid := dto.CreatePaymentRequest{EnquiryID: 1, MatterCode: "MAT-2025-001", TotalAmount: "50000.00"}
	assert.NoError(t, validation.Struct(valid))

	bad := valid
	bad.TotalAmount = "fifty"
	assert.ErrorIs(t, validation.Struct(bad), apperrors.ErrValidation)

	bad = valid
	bad.PaymentStatus = strPtr("Paid")
	assert.ErrorIs(t, validation.Struct(bad), apperrors.ErrValidation)

	bad = valid
	bad.EnquiryID = 0
	assert.ErrorIs(t, validation.Struct(bad), apperrors.ErrValidation)
}

func TestParseAmount(t *testing.T) {
	d, err := validation.ParseAmount(" 1234.50 ")
	require.NoError(t, err)
	assert.Equal(t, "1234.5", d.String())

	_, err = validation.ParseAmount("-0.01")
	assert.Error(t, err)

	_, err = validation.ParseAmount("1e")
	assert.Error(t, err)
}

func TestParseAmount_StoreLimits(t *testing.T) {
	for _, ok := range []string{"0", "1234.5678", "1.50000", "999999999999999.9999", " 12 "} {
		_, err := validation.ParseAmount(ok)
		assert.NoError(t, err, ok)
	}
	for _, bad := range []string{"0.00005", "1.23456", "1000000000000000", "-0.01", "abc"} {
		_, err := validation.ParseAmount(bad)
		assert.Error(t, err, bad)
	}

	req := dto.CreatePaymentRequest{EnquiryID: 1, MatterCode: "MAT-2025-001", TotalAmount: "0.00005"}
	err := validation.Struct(req)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "at most 4 decimal places")
}
