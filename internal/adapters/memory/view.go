package memory

import (
	"context"
	"fmt"
	"slices"

	"github.com/SscSPs/recon_workbench/internal/apperrors"
	"github.com/SscSPs/recon_workbench/internal/core/domain"
	portsrepo "github.com/SscSPs/recon_workbench/internal/core/ports/repositories"
)

// view implements the repository interfaces over one state value without locking.
// The Store is responsible for holding the right lock while a view is in use.
type view struct {
	st *state
}

var _ portsrepo.RepositoryFacade = (*view)(nil)

func copyFile(f domain.FileUpload) *domain.FileUpload {
	f.Transactions = slices.Clone(f.Transactions)
	return &f
}

// --- transactions ---

func (v *view) FindTransactionByID(_ context.Context, transactionID string) (*domain.Transaction, error) {
	txn, ok := v.st.transactions[transactionID]
	if !ok {
		return nil, fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
	}
	return &txn, nil
}

func (v *view) ListTransactions(_ context.Context, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
	var orders [][]string
	switch filter.Source {
	case domain.SourceBank:
		orders = [][]string{v.st.bankOrder}
	case domain.SourceSystem:
		orders = [][]string{v.st.systemOrder}
	case "":
		orders = [][]string{v.st.bankOrder, v.st.systemOrder}
	default:
		return nil, fmt.Errorf("%w: unknown source %q", apperrors.ErrValidation, filter.Source)
	}

	result := []domain.Transaction{}
	for _, order := range orders {
		for _, id := range order {
			txn := v.st.transactions[id]
			if filter.Status != "" && txn.Status != filter.Status {
				continue
			}
			result = append(result, txn)
		}
	}
	return result, nil
}

func (v *view) SaveTransactions(_ context.Context, txns []domain.Transaction) error {
	for _, txn := range txns {
		if txn.ID == "" {
			return fmt.Errorf("%w: transaction id is required", apperrors.ErrValidation)
		}
		if _, exists := v.st.transactions[txn.ID]; exists {
			return fmt.Errorf("transaction %s: %w", txn.ID, apperrors.ErrDuplicate)
		}
		switch txn.Source {
		case domain.SourceBank:
			v.st.bankOrder = append(v.st.bankOrder, txn.ID)
		case domain.SourceSystem:
			v.st.systemOrder = append(v.st.systemOrder, txn.ID)
		default:
			return fmt.Errorf("%w: transaction %s has unknown source %q", apperrors.ErrValidation, txn.ID, txn.Source)
		}
		v.st.transactions[txn.ID] = txn
	}
	return nil
}

func (v *view) UpdateTransactionStatus(_ context.Context, transactionID string, status domain.TransactionStatus) error {
	txn, ok := v.st.transactions[transactionID]
	if !ok {
		return fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
	}
	txn.Status = status
	v.st.transactions[transactionID] = txn
	return nil
}

// --- reconciliation entries ---

func (v *view) FindReconciliationByID(_ context.Context, entryID string) (*domain.ReconciliationEntry, error) {
	entry, ok := v.st.entries[entryID]
	if !ok {
		return nil, fmt.Errorf("reconciliation %s: %w", entryID, apperrors.ErrNotFound)
	}
	return &entry, nil
}

func (v *view) ListReconciliations(_ context.Context, status domain.ReconciliationStatus) ([]domain.ReconciliationEntry, error) {
	result := []domain.ReconciliationEntry{}
	for _, id := range v.st.entryOrder {
		entry := v.st.entries[id]
		if status != "" && entry.Status != status {
			continue
		}
		result = append(result, entry)
	}
	return result, nil
}

func (v *view) SaveReconciliation(_ context.Context, entry domain.ReconciliationEntry) error {
	if entry.ID == "" {
		return fmt.Errorf("%w: reconciliation id is required", apperrors.ErrValidation)
	}
	if _, exists := v.st.entries[entry.ID]; exists {
		return fmt.Errorf("reconciliation %s: %w", entry.ID, apperrors.ErrDuplicate)
	}
	v.st.entries[entry.ID] = entry
	v.st.entryOrder = append(v.st.entryOrder, entry.ID)
	return nil
}

func (v *view) UpdateReconciliation(_ context.Context, entry domain.ReconciliationEntry) error {
	if _, exists := v.st.entries[entry.ID]; !exists {
		return fmt.Errorf("reconciliation %s: %w", entry.ID, apperrors.ErrNotFound)
	}
	v.st.entries[entry.ID] = entry
	return nil
}

// --- file uploads ---

func (v *view) FindFileUploadByID(_ context.Context, fileID string) (*domain.FileUpload, error) {
	file, ok := v.st.files[fileID]
	if !ok {
		return nil, fmt.Errorf("file upload %s: %w", fileID, apperrors.ErrNotFound)
	}
	return copyFile(file), nil
}

func (v *view) ListFileUploads(_ context.Context) ([]domain.FileUpload, error) {
	result := make([]domain.FileUpload, 0, len(v.st.fileOrder))
	for _, id := range v.st.fileOrder {
		result = append(result, *copyFile(v.st.files[id]))
	}
	return result, nil
}

func checkFileCount(file domain.FileUpload) error {
	if file.TransactionCount != len(file.Transactions) {
		return fmt.Errorf("%w: file upload %s declares %d transactions but holds %d",
			apperrors.ErrValidation, file.ID, file.TransactionCount, len(file.Transactions))
	}
	return nil
}

func (v *view) SaveFileUpload(_ context.Context, file domain.FileUpload) error {
	if file.ID == "" {
		return fmt.Errorf("%w: file upload id is required", apperrors.ErrValidation)
	}
	if _, exists := v.st.files[file.ID]; exists {
		return fmt.Errorf("file upload %s: %w", file.ID, apperrors.ErrDuplicate)
	}
	if err := checkFileCount(file); err != nil {
		return err
	}
	v.st.files[file.ID] = *copyFile(file)
	v.st.fileOrder = append(v.st.fileOrder, file.ID)
	return nil
}

func (v *view) UpdateFileUpload(_ context.Context, file domain.FileUpload) error {
	if _, exists := v.st.files[file.ID]; !exists {
		return fmt.Errorf("file upload %s: %w", file.ID, apperrors.ErrNotFound)
	}
	if err := checkFileCount(file); err != nil {
		return err
	}
	v.st.files[file.ID] = *copyFile(file)
	return nil
}

// --- actors ---

func (v *view) ListActors(_ context.Context) ([]domain.Actor, error) {
	return append([]domain.Actor{}, v.st.actors...), nil
}

func (v *view) FindActorByID(_ context.Context, actorID string) (*domain.Actor, error) {
	for _, a := range v.st.actors {
		if a.ID == actorID {
			return &a, nil
		}
	}
	return nil, fmt.Errorf("actor %s: %w", actorID, apperrors.ErrNotFound)
}

func (v *view) FindActorByRole(_ context.Context, role domain.Role) (*domain.Actor, error) {
	for _, a := range v.st.actors {
		if a.Role == role {
			return &a, nil
		}
	}
	return nil, fmt.Errorf("actor with role %s: %w", role, apperrors.ErrNotFound)
}

func (v *view) CurrentActor(ctx context.Context) (*domain.Actor, error) {
	if v.st.currentActorID == "" {
		return nil, fmt.Errorf("current actor: %w", apperrors.ErrNotFound)
	}
	return v.FindActorByID(ctx, v.st.currentActorID)
}

func (v *view) SetCurrentActorID(ctx context.Context, actorID string) error {
	if _, err := v.FindActorByID(ctx, actorID); err != nil {
		return err
	}
	v.st.currentActorID = actorID
	return nil
}
