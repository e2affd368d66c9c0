package repositories

import (
	"context"

	"github.com/SscSPs/recon_workbench/internal/core/domain"
)

// TransactionFilter narrows a transaction listing. Zero values do not filter.
type TransactionFilter struct {
	Source domain.Source
	Status domain.TransactionStatus
}

// TransactionReader defines read operations for ledger lines.
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction by id from either ledger.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions returns transactions in insertion order, bank ledger first.
	ListTransactions(ctx context.Context, filter TransactionFilter) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for ledger lines.
type TransactionWriter interface {
	// SaveTransactions appends new transactions to the ledger matching each one's Source.
	SaveTransactions(ctx context.Context, txns []domain.Transaction) error

	// UpdateTransactionStatus sets the status of an existing transaction.
	UpdateTransactionStatus(ctx context.Context, transactionID string, status domain.TransactionStatus) error
}

// TransactionRepositoryFacade combines transaction read and write operations.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
