package dto

import "github.com/SscSPs/recon_workbench/internal/core/domain"

// CreateReconciliationRequest proposes pairing a bank line with a system line.
type CreateReconciliationRequest struct {
	BankTransactionID   string `json:"bankTransactionId" binding:"required"`
	SystemTransactionID string `json:"systemTransactionId" binding:"required"`
	Comments            string `json:"comments" binding:"max=500"`
}

// ApproveRequest carries optional checker comments.
type ApproveRequest struct {
	Comments string `json:"comments" binding:"max=500"`
}

// RejectRequest carries the mandatory rejection reason.
type RejectRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}

// ListReconciliationsParams defines query parameters for listing reconciliation entries.
type ListReconciliationsParams struct {
	Status domain.ReconciliationStatus `form:"status" binding:"omitempty,oneof=draft pending_approval approved rejected"`
}

// ListReconciliationsResponse wraps an entry listing.
type ListReconciliationsResponse struct {
	Reconciliations []domain.ReconciliationEntry `json:"reconciliations"`
	Count           int                          `json:"count"`
}

// CreateReconciliationResponse returns the id of the new entry.
type CreateReconciliationResponse struct {
	ID    string                     `json:"id"`
	Entry domain.ReconciliationEntry `json:"entry"`
}
