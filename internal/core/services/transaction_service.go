package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/recon_workbench/internal/apperrors"
	"github.com/SscSPs/recon_workbench/internal/core/domain"
	portsrepo "github.com/SscSPs/recon_workbench/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/recon_workbench/internal/core/ports/services"
	"github.com/SscSPs/recon_workbench/internal/dto"
)

// transactionService handles manual entry and lookup of ledger lines.
type transactionService struct {
	BaseService
	txnRepo portsrepo.TransactionRepositoryFacade
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(repo portsrepo.TransactionRepositoryFacade, opts ...Option) portssvc.TransactionSvcFacade {
	return &transactionService{
		BaseService: newBaseService(opts...),
		txnRepo:     repo,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) AddIndividualTransaction(ctx context.Context, actor domain.Actor, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if err := s.requireMaker(ctx, actor, "add transactions"); err != nil {
		return nil, err
	}
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	txn := domain.Transaction{
		ID:          s.newID(),
		Date:        req.Date.UTCDay(),
		Amount:      req.Amount,
		Description: req.Description,
		Type:        req.Type,
		Reference:   req.Reference,
		Status:      domain.Unreconciled,
		Source:      req.Source,
		AccountID:   req.AccountID,
		TransID:     req.TransID,
	}
	if err := txn.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	if err := s.txnRepo.SaveTransactions(ctx, []domain.Transaction{txn}); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("transaction_id", txn.ID))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction added",
		slog.String("transaction_id", txn.ID),
		slog.String("source", string(txn.Source)),
		slog.String("actor_id", actor.ID))
	return &txn, nil
}

func (s *transactionService) GetTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find transaction", slog.String("transaction_id", transactionID))
		}
		return nil, err
	}
	return txn, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, error) {
	if err := s.validateRequest(params); err != nil {
		return nil, err
	}

	txns, err := s.txnRepo.ListTransactions(ctx, portsrepo.TransactionFilter{
		Source: params.Source,
		Status: params.Status,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if txns == nil {
		return []domain.Transaction{}, nil
	}

	s.LogDebug(ctx, "Transactions listed", slog.Int("count", len(txns)))
	return txns, nil
}
