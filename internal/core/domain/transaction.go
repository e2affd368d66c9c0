package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-date format used on the wire and in exports.
const DateLayout = "2006-01-02"

// TransactionType indicates the direction of money movement on a ledger line.
type TransactionType string

const (
	Credit TransactionType = "credit"
	Debit  TransactionType = "debit"
)

// IsValid reports whether t is a known movement type.
func (t TransactionType) IsValid() bool {
	return t == Credit || t == Debit
}

// TransactionStatus tracks reconciliation progress of a single ledger line.
type TransactionStatus string

const (
	Unreconciled TransactionStatus = "unreconciled"
	Pending      TransactionStatus = "pending"
	Reconciled   TransactionStatus = "reconciled"
)

// IsValid reports whether s is a known transaction status.
func (s TransactionStatus) IsValid() bool {
	switch s {
	case Unreconciled, Pending, Reconciled:
		return true
	}
	return false
}

// Source identifies which ledger a transaction belongs to.
type Source string

const (
	SourceBank   Source = "bank"
	SourceSystem Source = "system"
)

// IsValid reports whether s is a known ledger source.
func (s Source) IsValid() bool {
	return s == SourceBank || s == SourceSystem
}

// AmountScale is the number of fraction digits carried by transaction amounts.
const AmountScale int32 = 2

// Transaction is a single ledger line from either the bank statement or the internal system.
type Transaction struct {
	ID          string            `json:"id"`
	Date        time.Time         `json:"date"`
	Amount      decimal.Decimal   `json:"amount"`
	Description string            `json:"description"`
	Type        TransactionType   `json:"type"`
	Reference   string            `json:"reference"`
	Status      TransactionStatus `json:"status"`
	Source      Source            `json:"source"`
	AccountID   string            `json:"accountId,omitempty"`
	TransID     string            `json:"transId,omitempty"`
}

// Validate checks the attribute invariants of a ledger line. It does not look at Status.
func (t Transaction) Validate() error {
	if !t.Amount.IsPositive() {
		return errors.New("amount must be positive")
	}
	if !t.Amount.Equal(t.Amount.Truncate(AmountScale)) {
		return fmt.Errorf("amount %s has more than %d fraction digits", t.Amount.String(), AmountScale)
	}
	if !t.Type.IsValid() {
		return fmt.Errorf("unknown transaction type %q", t.Type)
	}
	if !t.Source.IsValid() {
		return fmt.Errorf("unknown transaction source %q", t.Source)
	}
	if t.Date.IsZero() {
		return errors.New("date is required")
	}
	return nil
}
