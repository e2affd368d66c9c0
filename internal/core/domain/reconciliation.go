package domain

import "time"

// ReconciliationStatus is the approval state of a reconciliation entry.
type ReconciliationStatus string

const (
	// ReconciliationDraft exists in the model but no operation produces it.
	ReconciliationDraft           ReconciliationStatus = "draft"
	ReconciliationPendingApproval ReconciliationStatus = "pending_approval"
	ReconciliationApproved        ReconciliationStatus = "approved"
	ReconciliationRejected        ReconciliationStatus = "rejected"
)

// IsValid reports whether s is a known entry status.
func (s ReconciliationStatus) IsValid() bool {
	switch s {
	case ReconciliationDraft, ReconciliationPendingApproval, ReconciliationApproved, ReconciliationRejected:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is allowed out of s.
func (s ReconciliationStatus) IsTerminal() bool {
	return s == ReconciliationApproved || s == ReconciliationRejected
}

// ReconciliationEntry pairs one bank transaction with one system transaction.
// Transactions are referenced by id only.
type ReconciliationEntry struct {
	ID                  string               `json:"id"`
	BankTransactionID   string               `json:"bankTransactionId"`
	SystemTransactionID string               `json:"systemTransactionId"`
	CreatedBy           string               `json:"createdBy"`
	CreatedAt           time.Time            `json:"createdAt"`
	Status              ReconciliationStatus `json:"status"`
	ApprovedBy          string               `json:"approvedBy,omitempty"`
	ApprovedAt          *time.Time           `json:"approvedAt,omitempty"`
	Comments            string               `json:"comments,omitempty"`
	RejectionReason     string               `json:"rejectionReason,omitempty"`
}
