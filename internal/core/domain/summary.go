package domain

// Summary holds status counts across the workbench collections.
type Summary struct {
	BankTransactions      map[TransactionStatus]int    `json:"bankTransactions"`
	SystemTransactions    map[TransactionStatus]int    `json:"systemTransactions"`
	Reconciliations       map[ReconciliationStatus]int `json:"reconciliations"`
	FileUploads           map[FileUploadStatus]int     `json:"fileUploads"`
	PendingApprovalsTotal int                          `json:"pendingApprovalsTotal"`
}
