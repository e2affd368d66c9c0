package services

import (
	"context"

	"github.com/SscSPs/recon_workbench/internal/core/domain"
	"github.com/SscSPs/recon_workbench/internal/dto"
)

// ReconciliationReaderSvc defines read operations for reconciliation entries.
type ReconciliationReaderSvc interface {
	GetReconciliation(ctx context.Context, entryID string) (*domain.ReconciliationEntry, error)

	// ListReconciliations returns entries newest first.
	ListReconciliations(ctx context.Context, params dto.ListReconciliationsParams) ([]domain.ReconciliationEntry, error)
}

// ReconciliationWriterSvc drives the entry state machine.
type ReconciliationWriterSvc interface {
	// CreateReconciliation records a pending_approval entry and moves both lines to pending.
	CreateReconciliation(ctx context.Context, actor domain.Actor, req dto.CreateReconciliationRequest) (*domain.ReconciliationEntry, error)

	// ApproveReconciliation approves a pending entry and marks both lines reconciled.
	ApproveReconciliation(ctx context.Context, actor domain.Actor, entryID string, comments string) (*domain.ReconciliationEntry, error)

	// RejectReconciliation rejects a pending entry and reverts both lines to unreconciled.
	RejectReconciliation(ctx context.Context, actor domain.Actor, entryID string, reason string) (*domain.ReconciliationEntry, error)
}

// ReconciliationSvcFacade combines all reconciliation-related service interfaces.
type ReconciliationSvcFacade interface {
	ReconciliationReaderSvc
	ReconciliationWriterSvc
}
