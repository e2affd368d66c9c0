package services

import (
	"context"

	"github.com/SscSPs/recon_workbench/internal/core/domain"
	"github.com/SscSPs/recon_workbench/internal/dto"
)

// TransactionReaderSvc defines read operations for ledger lines.
type TransactionReaderSvc interface {
	GetTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, error)
}

// TransactionWriterSvc defines write operations for ledger lines.
type TransactionWriterSvc interface {
	// AddIndividualTransaction enters one line as unreconciled under a fresh id.
	AddIndividualTransaction(ctx context.Context, actor domain.Actor, req dto.CreateTransactionRequest) (*domain.Transaction, error)
}

// TransactionSvcFacade combines all transaction-related service interfaces.
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
