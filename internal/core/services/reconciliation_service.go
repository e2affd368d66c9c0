package services

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/SscSPs/recon_workbench/internal/apperrors"
	"github.com/SscSPs/recon_workbench/internal/core/domain"
	portsrepo "github.com/SscSPs/recon_workbench/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/recon_workbench/internal/core/ports/services"
	"github.com/SscSPs/recon_workbench/internal/dto"
)

// reconciliationService drives the reconciliation entry state machine.
// Every transition updates the entry and both referenced lines in one unit of work.
type reconciliationService struct {
	BaseService
	store portsrepo.StoreFacade
}

// NewReconciliationService creates a new reconciliation service.
func NewReconciliationService(store portsrepo.StoreFacade, opts ...Option) portssvc.ReconciliationSvcFacade {
	return &reconciliationService{
		BaseService: newBaseService(opts...),
		store:       store,
	}
}

var _ portssvc.ReconciliationSvcFacade = (*reconciliationService)(nil)

// loadPairSide fetches one side of a pairing and checks it is an unreconciled line of the expected ledger.
func loadPairSide(ctx context.Context, repos portsrepo.RepositoryFacade, id string, want domain.Source) (*domain.Transaction, error) {
	txn, err := repos.FindTransactionByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if txn.Source != want {
		return nil, fmt.Errorf("%w: transaction %s belongs to the %s ledger, expected %s", apperrors.ErrValidation, id, txn.Source, want)
	}
	if txn.Status != domain.Unreconciled {
		return nil, fmt.Errorf("%w: transaction %s is %s", apperrors.ErrInvalidState, id, txn.Status)
	}
	return txn, nil
}

func setPairStatus(ctx context.Context, repos portsrepo.RepositoryFacade, entry domain.ReconciliationEntry, status domain.TransactionStatus) error {
	if err := repos.UpdateTransactionStatus(ctx, entry.BankTransactionID, status); err != nil {
		return fmt.Errorf("failed to update bank transaction %s: %w", entry.BankTransactionID, err)
	}
	if err := repos.UpdateTransactionStatus(ctx, entry.SystemTransactionID, status); err != nil {
		return fmt.Errorf("failed to update system transaction %s: %w", entry.SystemTransactionID, err)
	}
	return nil
}

func loadPendingEntry(ctx context.Context, repos portsrepo.RepositoryFacade, entryID string) (*domain.ReconciliationEntry, error) {
	entry, err := repos.FindReconciliationByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry.Status != domain.ReconciliationPendingApproval {
		return nil, fmt.Errorf("%w: reconciliation %s is %s", apperrors.ErrInvalidState, entryID, entry.Status)
	}
	return entry, nil
}

func (s *reconciliationService) CreateReconciliation(ctx context.Context, actor domain.Actor, req dto.CreateReconciliationRequest) (*domain.ReconciliationEntry, error) {
	if err := s.requireMaker(ctx, actor, "create reconciliations"); err != nil {
		return nil, err
	}
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	var entry domain.ReconciliationEntry
	err := s.store.RunInTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryFacade) error {
		if _, err := loadPairSide(ctx, repos, req.BankTransactionID, domain.SourceBank); err != nil {
			return err
		}
		if _, err := loadPairSide(ctx, repos, req.SystemTransactionID, domain.SourceSystem); err != nil {
			return err
		}

		entry = domain.ReconciliationEntry{
			ID:                  s.newID(),
			BankTransactionID:   req.BankTransactionID,
			SystemTransactionID: req.SystemTransactionID,
			CreatedBy:           actor.Name,
			CreatedAt:           s.now(),
			Status:              domain.ReconciliationPendingApproval,
			Comments:            strings.TrimSpace(req.Comments),
		}
		if err := repos.SaveReconciliation(ctx, entry); err != nil {
			return fmt.Errorf("failed to save reconciliation: %w", err)
		}
		return setPairStatus(ctx, repos, entry, domain.Pending)
	})
	if err != nil {
		s.logTransitionError(ctx, err, "Failed to create reconciliation",
			slog.String("bank_transaction_id", req.BankTransactionID),
			slog.String("system_transaction_id", req.SystemTransactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Reconciliation created",
		slog.String("reconciliation_id", entry.ID),
		slog.String("bank_transaction_id", entry.BankTransactionID),
		slog.String("system_transaction_id", entry.SystemTransactionID),
		slog.String("actor_id", actor.ID))
	return &entry, nil
}

func (s *reconciliationService) ApproveReconciliation(ctx context.Context, actor domain.Actor, entryID string, comments string) (*domain.ReconciliationEntry, error) {
	if err := s.requireChecker(ctx, actor, "approve reconciliations"); err != nil {
		return nil, err
	}

	var approved domain.ReconciliationEntry
	err := s.store.RunInTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryFacade) error {
		entry, err := loadPendingEntry(ctx, repos, entryID)
		if err != nil {
			return err
		}

		now := s.now()
		entry.Status = domain.ReconciliationApproved
		entry.ApprovedBy = actor.Name
		entry.ApprovedAt = &now
		if c := strings.TrimSpace(comments); c != "" {
			entry.Comments = c
		}
		if err := repos.UpdateReconciliation(ctx, *entry); err != nil {
			return fmt.Errorf("failed to update reconciliation: %w", err)
		}
		approved = *entry
		return setPairStatus(ctx, repos, *entry, domain.Reconciled)
	})
	if err != nil {
		s.logTransitionError(ctx, err, "Failed to approve reconciliation", slog.String("reconciliation_id", entryID))
		return nil, err
	}

	s.LogInfo(ctx, "Reconciliation approved",
		slog.String("reconciliation_id", entryID),
		slog.String("actor_id", actor.ID))
	return &approved, nil
}

func (s *reconciliationService) RejectReconciliation(ctx context.Context, actor domain.Actor, entryID string, reason string) (*domain.ReconciliationEntry, error) {
	if err := s.requireChecker(ctx, actor, "reject reconciliations"); err != nil {
		return nil, err
	}
	reason, err := requireReason(reason)
	if err != nil {
		return nil, err
	}

	var rejected domain.ReconciliationEntry
	err = s.store.RunInTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryFacade) error {
		entry, err := loadPendingEntry(ctx, repos, entryID)
		if err != nil {
			return err
		}

		now := s.now()
		entry.Status = domain.ReconciliationRejected
		entry.RejectionReason = reason
		entry.ApprovedBy = actor.Name
		entry.ApprovedAt = &now
		if err := repos.UpdateReconciliation(ctx, *entry); err != nil {
			return fmt.Errorf("failed to update reconciliation: %w", err)
		}
		rejected = *entry
		return setPairStatus(ctx, repos, *entry, domain.Unreconciled)
	})
	if err != nil {
		s.logTransitionError(ctx, err, "Failed to reject reconciliation", slog.String("reconciliation_id", entryID))
		return nil, err
	}

	s.LogInfo(ctx, "Reconciliation rejected",
		slog.String("reconciliation_id", entryID),
		slog.String("reason", reason),
		slog.String("actor_id", actor.ID))
	return &rejected, nil
}

func (s *reconciliationService) GetReconciliation(ctx context.Context, entryID string) (*domain.ReconciliationEntry, error) {
	entry, err := s.store.FindReconciliationByID(ctx, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find reconciliation", slog.String("reconciliation_id", entryID))
		}
		return nil, err
	}
	return entry, nil
}

func (s *reconciliationService) ListReconciliations(ctx context.Context, params dto.ListReconciliationsParams) ([]domain.ReconciliationEntry, error) {
	if err := s.validateRequest(params); err != nil {
		return nil, err
	}

	entries, err := s.store.ListReconciliations(ctx, params.Status)
	if err != nil {
		s.LogError(ctx, err, "Failed to list reconciliations")
		return nil, fmt.Errorf("failed to list reconciliations: %w", err)
	}
	if entries == nil {
		return []domain.ReconciliationEntry{}, nil
	}

	slices.SortStableFunc(entries, func(a, b domain.ReconciliationEntry) int {
		return cmp.Compare(b.CreatedAt.UnixNano(), a.CreatedAt.UnixNano())
	})
	return entries, nil
}
