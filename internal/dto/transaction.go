package dto

import (
	"github.com/shopspring/decimal"

	"github.com/SscSPs/recon_workbench/internal/core/domain"
)

// CreateTransactionRequest defines the data needed to enter a single ledger line by hand.
type CreateTransactionRequest struct {
	Date        CalendarDate           `json:"date"`
	Amount      decimal.Decimal        `json:"amount"`
	Description string                 `json:"description" binding:"required,max=255"`
	Type        domain.TransactionType `json:"type" binding:"required,oneof=credit debit"`
	Reference   string                 `json:"reference" binding:"max=100"`
	Source      domain.Source          `json:"source" binding:"required,oneof=bank system"`
	AccountID   string                 `json:"accountId" binding:"max=64"`
	TransID     string                 `json:"transId" binding:"max=64"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Source domain.Source            `form:"source" binding:"omitempty,oneof=bank system"`
	Status domain.TransactionStatus `form:"status" binding:"omitempty,oneof=unreconciled pending reconciled"`
}

// ListTransactionsResponse wraps a transaction listing.
type ListTransactionsResponse struct {
	Transactions []domain.Transaction `json:"transactions"`
	Count        int                  `json:"count"`
}
