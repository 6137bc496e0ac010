package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/firm_enquiries_app/internal/apperrors"
	"github.com/SscSPs/firm_enquiries_app/internal/core/domain"
	"github.com/SscSPs/firm_enquiries_app/internal/utils/validation"
	"github.com/shopspring/decimal"
)

// Request fields are tri-state: nil leaves the stored value alone, "" clears
// it and anything else replaces it.

func optionalString(p *string) *string {
	if p == nil {
		return nil
	}
	s := strings.TrimSpace(*p)
	if s == "" {
		return nil
	}
	return &s
}

func applyString(dst **string, p *string) {
	if p != nil {
		*dst = optionalString(p)
	}
}

func optionalAmount(field string, p *string) (*decimal.Decimal, error) {
	if p == nil || strings.TrimSpace(*p) == "" {
		return nil, nil
	}
	d, err := validation.ParseAmount(*p)
	if err != nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("%s: %v", field, err))
	}
	return &d, nil
}

func applyAmount(dst **decimal.Decimal, field string, p *string) error {
	if p == nil {
		return nil
	}
	d, err := optionalAmount(field, p)
	if err != nil {
		return err
	}
	*dst = d
	return nil
}

func optionalDate(field string, p *string) (*time.Time, error) {
	if p == nil || strings.TrimSpace(*p) == "" {
		return nil, nil
	}
	t, err := domain.ParseDate(*p)
	if err != nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("%s: %v", field, err))
	}
	return &t, nil
}

func applyDate(dst **time.Time, field string, p *string) error {
	if p == nil {
		return nil
	}
	t, err := optionalDate(field, p)
	if err != nil {
		return err
	}
	*dst = t
	return nil
}

// requiredValue returns the trimmed value of a field that may be replaced but
// never cleared.
func requiredValue(field string, p *string) (string, error) {
	s := strings.TrimSpace(*p)
	if s == "" {
		return "", apperrors.NewValidationError(fmt.Sprintf("%s cannot be empty", field))
	}
	return s, nil
}
