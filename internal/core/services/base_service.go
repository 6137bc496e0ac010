package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/firm_enquiries_app/internal/middleware"
	"github.com/SscSPs/firm_enquiries_app/internal/utils/validation"
)

// BaseService carries the logging and validation helpers shared by services.
// Every record is tagged with the owning component.
type BaseService struct {
	component string
}

func newBaseService(component string) BaseService {
	return BaseService{component: component}
}

// GetLogger returns the request logger from ctx, tagged with the component.
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		logger = slog.Default()
	}
	if s.component == "" {
		return logger
	}
	return logger.With(slog.String("component", s.component))
}

// LogError logs err under msg.
func (s *BaseService) LogError(ctx context.Context, err error, msg string, attrs ...any) {
	s.GetLogger(ctx).Error(msg, append([]any{slog.String("error", err.Error())}, attrs...)...)
}

func (s *BaseService) LogWarn(ctx context.Context, msg string, attrs ...any) {
	s.GetLogger(ctx).Warn(msg, attrs...)
}

func (s *BaseService) LogInfo(ctx context.Context, msg string, attrs ...any) {
	s.GetLogger(ctx).Info(msg, attrs...)
}

func (s *BaseService) LogDebug(ctx context.Context, msg string, attrs ...any) {
	s.GetLogger(ctx).Debug(msg, attrs...)
}

// Validate runs the binding rules of a request DTO.
func (s *BaseService) Validate(req any) error {
	return validation.Struct(req)
}
