package services

import (
	"context"

	"github.com/SscSPs/recon_workbench/internal/core/domain"
)

// ReportingService defines dashboard read models.
type ReportingService interface {
	Summary(ctx context.Context) (*domain.Summary, error)
}
