package domain

import "time"

// FileUploadStatus is the approval state of a batch upload.
type FileUploadStatus string

const (
	FilePendingApproval FileUploadStatus = "pending_approval"
	FileApproved        FileUploadStatus = "approved"
	FileRejected        FileUploadStatus = "rejected"
)

// IsValid reports whether s is a known upload status.
func (s FileUploadStatus) IsValid() bool {
	switch s {
	case FilePendingApproval, FileApproved, FileRejected:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is allowed out of s.
func (s FileUploadStatus) IsTerminal() bool {
	return s == FileApproved || s == FileRejected
}

// FileUpload is a batch of transactions awaiting a single approve/reject decision.
type FileUpload struct {
	ID               string           `json:"id"`
	FileName         string           `json:"fileName"`
	UploadedBy       string           `json:"uploadedBy"`
	UploadedAt       time.Time        `json:"uploadedAt"`
	Status           FileUploadStatus `json:"status"`
	ApprovedBy       string           `json:"approvedBy,omitempty"`
	ApprovedAt       *time.Time       `json:"approvedAt,omitempty"`
	RejectionReason  string           `json:"rejectionReason,omitempty"`
	TransactionCount int              `json:"transactionCount"`
	Source           Source           `json:"source"`
	Transactions     []Transaction    `json:"transactions"`
	Organization     string           `json:"organization"`
	Schedule         string           `json:"schedule"`
	Remarks          string           `json:"remarks,omitempty"`
}

// SetTransactions replaces the batch and keeps TransactionCount in step with it.
func (f *FileUpload) SetTransactions(txns []Transaction) {
	f.Transactions = txns
	f.TransactionCount = len(txns)
}
