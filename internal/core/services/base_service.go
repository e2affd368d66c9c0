package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/SscSPs/recon_workbench/internal/apperrors"
	"github.com/SscSPs/recon_workbench/internal/core/domain"
	"github.com/SscSPs/recon_workbench/internal/middleware"
)

// requestValidator checks request DTOs against the same `binding` tags gin uses,
// so callers that bypass HTTP get identical validation.
var requestValidator = func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.SetTagName("binding")
	return v
}()

// BaseService provides common functionality for all services
type BaseService struct {
	now   func() time.Time
	newID func() string
}

// Option is a functional option shared by every service constructor.
type Option func(*BaseService)

// WithClock overrides the time source used for audit timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *BaseService) {
		s.now = now
	}
}

// WithIDGenerator overrides how new entity ids are minted.
func WithIDGenerator(newID func() string) Option {
	return func(s *BaseService) {
		s.newID = newID
	}
}

func newBaseService(opts ...Option) BaseService {
	b := BaseService{
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogWarn logs a warning with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// validateRequest runs tag validation and reports failures as apperrors.ErrValidation.
func (s *BaseService) validateRequest(req any) error {
	if err := requestValidator.Struct(req); err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	return nil
}

// requireMaker rejects actors whose role may not create records.
func (s *BaseService) requireMaker(ctx context.Context, actor domain.Actor, action string) error {
	if actor.Role.CanMake() {
		return nil
	}
	s.LogWarn(ctx, "Actor not permitted to "+action,
		slog.String("actor_id", actor.ID),
		slog.String("role", string(actor.Role)))
	return fmt.Errorf("%w: %s may not %s", apperrors.ErrForbidden, actor.Role, action)
}

// requireChecker rejects actors whose role may not approve or reject records.
func (s *BaseService) requireChecker(ctx context.Context, actor domain.Actor, action string) error {
	if actor.Role.CanCheck() {
		return nil
	}
	s.LogWarn(ctx, "Actor not permitted to "+action,
		slog.String("actor_id", actor.ID),
		slog.String("role", string(actor.Role)))
	return fmt.Errorf("%w: %s may not %s", apperrors.ErrForbidden, actor.Role, action)
}

// requireReason trims reason and rejects it when nothing is left.
func requireReason(reason string) (string, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return "", fmt.Errorf("%w: rejection reason is required", apperrors.ErrValidation)
	}
	return reason, nil
}

// logTransitionError logs expected rejections at warn level and everything else as an error.
func (s *BaseService) logTransitionError(ctx context.Context, err error, msg string, keyvals ...any) {
	if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrInvalidState) || errors.Is(err, apperrors.ErrValidation) {
		s.LogWarn(ctx, msg, append([]any{slog.String("error", err.Error())}, keyvals...)...)
		return
	}
	s.LogError(ctx, err, msg, keyvals...)
}
