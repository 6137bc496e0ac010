package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/firm_enquiries_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func datePtr(s string) *time.Time {
	t, err := domain.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return &t
}

func strPtr(s string) *string { return &s }

func TestNeedsMatterCode(t *testing.T) {
	converted := domain.Enquiry{ConversionDate: datePtr("2025-01-20")}
	open := domain.Enquiry{}
	issued := domain.Enquiry{ConversionDate: datePtr("2025-01-20"), MatterCode: strPtr("MAT-2025-001")}

	tests := []struct {
		name string
		next domain.Enquiry
		prev *domain.Enquiry
		want bool
	}{
		{"create without conversion date", open, nil, false},
		{"create with conversion date", converted, nil, true},
		{"update sets conversion date", converted, &open, true},
		{"update keeps conversion date", converted, &converted, false},
		{"update after code issued", converted, &issued, false},
		{"update carrying issued code", issued, &open, false},
		{"update clears conversion date", open, &issued, false},
		{"code issued then date cleared and set again", domain.Enquiry{ConversionDate: datePtr("2025-03-01")},
			&domain.Enquiry{MatterCode: strPtr("MAT-2025-001")}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.next.NeedsMatterCode(tt.prev))
		})
	}
}

func TestStatusEnums(t *testing.T) {
	for _, s := range domain.EnquiryStatuses {
		assert.True(t, s.Valid(), s)
		assert.Contains(t, domain.StageProbability, s, "every status needs a forecast weight")
	}
	assert.False(t, domain.EnquiryStatus("Archived").Valid())
	assert.True(t, domain.StatusLost.IsTerminal())
	assert.False(t, domain.StatusConverted.IsTerminal())

	assert.True(t, domain.UrgencyCritical.Valid())
	assert.False(t, domain.UrgencyLevel("Whenever").Valid())
	assert.True(t, domain.PaymentOverdue.Valid())
	assert.False(t, domain.PaymentStatus("Refunded").Valid())
}

func TestParseDate(t *testing.T) {
	d, err := domain.ParseDate(" 2025-01-15 ")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), d)

	_, err = domain.ParseDate("2025-02-30")
	assert.Error(t, err)
	_, err = domain.ParseDate("15/01/2025")
	assert.Error(t, err)

	assert.Nil(t, domain.FormatDate(nil))
	assert.Equal(t, "2025-01-15", *domain.FormatDate(&d))
}
