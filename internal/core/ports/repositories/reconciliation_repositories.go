package repositories

import (
	"context"

	"github.com/SscSPs/recon_workbench/internal/core/domain"
)

// ReconciliationReader defines read operations for reconciliation entries.
type ReconciliationReader interface {
	FindReconciliationByID(ctx context.Context, entryID string) (*domain.ReconciliationEntry, error)

	// ListReconciliations returns entries in insertion order, optionally filtered by status.
	ListReconciliations(ctx context.Context, status domain.ReconciliationStatus) ([]domain.ReconciliationEntry, error)
}

// ReconciliationWriter defines write operations for reconciliation entries.
type ReconciliationWriter interface {
	SaveReconciliation(ctx context.Context, entry domain.ReconciliationEntry) error
	UpdateReconciliation(ctx context.Context, entry domain.ReconciliationEntry) error
}

// ReconciliationRepositoryFacade combines entry read and write operations.
type ReconciliationRepositoryFacade interface {
	ReconciliationReader
	ReconciliationWriter
}
