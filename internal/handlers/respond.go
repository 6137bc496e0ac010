package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"sync"

	"github.com/SscSPs/firm_enquiries_app/internal/apperrors"
	"github.com/SscSPs/firm_enquiries_app/internal/utils/validation"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerValidatorsOnce sync.Once

// registerBindingValidators installs the custom rules on gin's validator so
// ShouldBindJSON enforces the same tags the services check.
func registerBindingValidators() {
	registerValidatorsOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			if err := validation.RegisterCustomValidators(v); err != nil {
				slog.Error("Failed to register custom validators", slog.String("error", err.Error()))
			}
		}
	})
}

// respondError writes the status mapped from err. Unexpected failures are
// logged and answered with fallback instead of the internal message.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	status := apperrors.StatusCode(err)
	message := err.Error()
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
	}

	switch {
	case status >= http.StatusInternalServerError && status != http.StatusServiceUnavailable:
		logger.Error(fallback, slog.String("error", err.Error()))
		message = fallback
	case status == http.StatusServiceUnavailable:
		logger.Error("Store unavailable", slog.String("error", err.Error()))
	default:
		logger.Warn("Request rejected", slog.Int("status", status), slog.String("error", err.Error()))
	}
	c.JSON(status, gin.H{"error": message})
}

// bindError answers a request whose body failed to bind or validate.
func bindError(c *gin.Context, logger *slog.Logger, err error) {
	logger.Warn("Failed to bind JSON", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + validation.Describe(err)})
}

// parseID reads a positive integer path parameter.
func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return id, true
}
