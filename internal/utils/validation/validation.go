// Package validation holds the request validators shared by gin binding and the services.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/SscSPs/firm_enquiries_app/internal/apperrors"
	"github.com/SscSPs/firm_enquiries_app/internal/core/domain"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// TagName matches gin's binding tag so DTOs carry a single set of rules.
const TagName = "binding"

var (
	once     sync.Once
	instance *validator.Validate
)

// RegisterCustomValidators adds the domain validators and JSON field naming to v.
func RegisterCustomValidators(v *validator.Validate) error {
	v.RegisterTagNameFunc(jsonFieldName)
	// Optional fields arrive as non-nil pointers to "" when a client clears them,
	// so every custom rule accepts the empty string.
	custom := map[string]validator.Func{
		"date":           isDate,
		"decimal":        isNonNegativeDecimal,
		"enquiry_status": isEnquiryStatus,
		"urgency_level":  isUrgencyLevel,
		"payment_status": isPaymentStatus,
		"optional_email": func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			return s == "" || v.Var(s, "email") == nil
		},
	}
	for tag, fn := range custom {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("failed to register validator %q: %w", tag, err)
		}
	}
	return nil
}

// Default returns the process-wide validator used by the services.
func Default() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.SetTagName(TagName)
		if err := RegisterCustomValidators(v); err != nil {
			panic(err)
		}
		instance = v
	})
	return instance
}

// Struct validates s and converts failures into an apperrors validation error.
func Struct(s any) error {
	if err := Default().Struct(s); err != nil {
		return apperrors.NewValidationError(Describe(err))
	}
	return nil
}

// Describe renders validator errors as a single human-readable message.
func Describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describeField(fe))
	}
	return strings.Join(msgs, "; ")
}

func describeField(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "date":
		return fmt.Sprintf("%s must be a date in YYYY-MM-DD format", fe.Field())
	case "decimal":
		return fmt.Sprintf("%s must be a non-negative decimal amount below 10^15 with at most %d decimal places", fe.Field(), MaxAmountScale)
	case "enquiry_status":
		return fmt.Sprintf("%s must be one of %s", fe.Field(), joinValues(domain.EnquiryStatuses))
	case "urgency_level":
		return fmt.Sprintf("%s must be one of %s", fe.Field(), joinValues(domain.UrgencyLevels))
	case "payment_status":
		return fmt.Sprintf("%s must be one of %s", fe.Field(), joinValues(domain.PaymentStatuses))
	case "optional_email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed on the '%s' rule", fe.Field(), fe.Tag())
	}
}

func joinValues[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" || name == "" {
		return fld.Name
	}
	return name
}

// Amounts are stored as NUMERIC(19,4): at most 15 integer digits and
// MaxAmountScale fractional digits.
const MaxAmountScale = 4

var amountLimit = decimal.New(1, 15)

// ParseAmount parses a non-negative decimal amount that the store can hold
// exactly.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount %q", s)
	}
	if d.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("amount %q must not be negative", s)
	}
	if !d.Round(MaxAmountScale).Equal(d) {
		return decimal.Decimal{}, fmt.Errorf("amount %q has more than %d decimal places", s, MaxAmountScale)
	}
	if d.GreaterThanOrEqual(amountLimit) {
		return decimal.Decimal{}, fmt.Errorf("amount %q must be below 10^15", s)
	}
	return d, nil
}

func isDate(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	_, err := domain.ParseDate(s)
	return err == nil
}

func isNonNegativeDecimal(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	_, err := ParseAmount(s)
	return err == nil
}

func isEnquiryStatus(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return s == "" || domain.EnquiryStatus(s).Valid()
}

func isUrgencyLevel(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return s == "" || domain.UrgencyLevel(s).Valid()
}

func isPaymentStatus(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return s == "" || domain.PaymentStatus(s).Valid()
}
