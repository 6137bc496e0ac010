package apperrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/SscSPs/firm_enquiries_app/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestAppError_IsMatchesSentinel(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"validation", apperrors.NewValidationError("clientName is required"), apperrors.ErrValidation},
		{"not found", apperrors.NewNotFoundError("enquiry 7 not found"), apperrors.ErrNotFound},
		{"conflict", apperrors.NewConflictError("duplicate matter code", errors.New("23505")), apperrors.ErrDuplicate},
		{"store unavailable", apperrors.NewStoreUnavailableError("db down", errors.New("dial tcp")), apperrors.ErrStoreUnavailable},
		{"wrapped", fmt.Errorf("create enquiry: %w", apperrors.NewValidationError("bad")), apperrors.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.sentinel)
		})
	}
}

func TestAppError_UnwrapKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := apperrors.NewStoreUnavailableError("failed to reach store", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to reach store: connection refused", err.Error())
}

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"validation sentinel", apperrors.ErrValidation, http.StatusBadRequest},
		{"not found app error", apperrors.NewNotFoundError("missing"), http.StatusNotFound},
		{"conflict", apperrors.NewConflictError("dup", nil), http.StatusConflict},
		{"store", fmt.Errorf("x: %w", apperrors.ErrStoreUnavailable), http.StatusServiceUnavailable},
		{"custom code", apperrors.NewAppError(http.StatusTeapot, "odd", nil), http.StatusTeapot},
		{"plain", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apperrors.StatusCode(tt.err))
		})
	}
}
