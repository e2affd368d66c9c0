package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/recon_workbench/internal/apperrors"
	"github.com/SscSPs/recon_workbench/internal/core/domain"
	portsrepo "github.com/SscSPs/recon_workbench/internal/core/ports/repositories"
)

// Seed is the initial content of a store.
type Seed struct {
	Actors          []domain.Actor
	CurrentActorID  string
	Transactions    []domain.Transaction
	Reconciliations []domain.ReconciliationEntry
	FileUploads     []domain.FileUpload
}

func (s *Store) load(seed Seed) error {
	return s.RunInTx(context.Background(), func(ctx context.Context, repos portsrepo.RepositoryFacade) error {
		v := repos.(*view)
		seen := make(map[string]bool, len(seed.Actors))
		for _, a := range seed.Actors {
			if a.ID == "" || !a.Role.IsValid() {
				return fmt.Errorf("%w: seed actor %q is incomplete", apperrors.ErrValidation, a.ID)
			}
			if seen[a.ID] {
				return fmt.Errorf("actor %s: %w", a.ID, apperrors.ErrDuplicate)
			}
			seen[a.ID] = true
			v.st.actors = append(v.st.actors, a)
		}
		if seed.CurrentActorID != "" {
			if err := v.SetCurrentActorID(ctx, seed.CurrentActorID); err != nil {
				return err
			}
		}
		if err := v.SaveTransactions(ctx, seed.Transactions); err != nil {
			return err
		}
		for _, e := range seed.Reconciliations {
			if err := v.SaveReconciliation(ctx, e); err != nil {
				return err
			}
		}
		for _, f := range seed.FileUploads {
			if err := v.SaveFileUpload(ctx, f); err != nil {
				return err
			}
		}
		return nil
	})
}

// ActorSeed returns only the three workbench actors, one per role, with the maker current.
func ActorSeed() Seed {
	return Seed{
		Actors: []domain.Actor{
			{ID: "user-1", Name: "John Maker", Role: domain.RoleMaker, Email: "john.maker@example.com"},
			{ID: "user-2", Name: "Jane Checker", Role: domain.RoleChecker, Email: "jane.checker@example.com"},
			{ID: "user-3", Name: "Alex Admin", Role: domain.RoleAdmin, Email: "alex.admin@example.com"},
		},
		CurrentActorID: "user-1",
	}
}

func seedTxn(id string, src domain.Source, date time.Time, amount, desc string, typ domain.TransactionType, ref string) domain.Transaction {
	return domain.Transaction{
		ID:          id,
		Date:        date,
		Amount:      decimal.RequireFromString(amount),
		Description: desc,
		Type:        typ,
		Reference:   ref,
		Status:      domain.Unreconciled,
		Source:      src,
		AccountID:   "ACC-1001",
		TransID:     "T" + id,
	}
}

// DefaultSeed returns the demo data set the workbench starts with: one actor per
// role, five unreconciled lines on each ledger and three uploads (two pending, one approved).
// The approved upload's lines are already part of the system ledger.
func DefaultSeed(now time.Time) Seed {
	day := func(n int) time.Time {
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -n)
	}

	seed := ActorSeed()

	txns := []domain.Transaction{
		seedTxn("bank-1", domain.SourceBank, day(5), "1500.00", "Client payment - Acme Corp", domain.Credit, "INV-2024-001"),
		seedTxn("bank-2", domain.SourceBank, day(4), "250.75", "Office supplies", domain.Debit, "PO-5512"),
		seedTxn("bank-3", domain.SourceBank, day(3), "3200.00", "Quarterly rent", domain.Debit, "RENT-Q1"),
		seedTxn("bank-4", domain.SourceBank, day(2), "980.40", "Client payment - Globex", domain.Credit, "INV-2024-007"),
		seedTxn("bank-5", domain.SourceBank, day(1), "45.00", "Bank service charge", domain.Debit, "FEE-0301"),
		seedTxn("sys-1", domain.SourceSystem, day(5), "1500.00", "Acme Corp receivable", domain.Credit, "INV-2024-001"),
		seedTxn("sys-2", domain.SourceSystem, day(4), "250.70", "Stationery purchase", domain.Debit, "PO-5512"),
		seedTxn("sys-3", domain.SourceSystem, day(3), "3200.00", "Rent expense Q1", domain.Debit, "RENT-Q1"),
		seedTxn("sys-4", domain.SourceSystem, day(2), "980.40", "Globex receivable", domain.Credit, "INV-2024-007"),
		seedTxn("sys-5", domain.SourceSystem, day(1), "45.00", "Bank charges", domain.Debit, "FEE-0301"),
	}

	approvedLines := []domain.Transaction{
		seedTxn("sys-101", domain.SourceSystem, day(20), "720.00", "Payroll adjustment", domain.Debit, "PAY-0215"),
		seedTxn("sys-102", domain.SourceSystem, day(19), "1310.25", "Vendor refund", domain.Credit, "REF-0216"),
	}
	txns = append(txns, approvedLines...)

	approvedAt := now.Add(-18 * 24 * time.Hour)
	files := []domain.FileUpload{
		{
			ID:           "file-1",
			FileName:     "system_export_february.xlsx",
			UploadedBy:   "John Maker",
			UploadedAt:   now.Add(-20 * 24 * time.Hour),
			Status:       domain.FileApproved,
			ApprovedBy:   "Jane Checker",
			ApprovedAt:   &approvedAt,
			Source:       domain.SourceSystem,
			Organization: "Head Office",
			Schedule:     "Monthly",
			Remarks:      "February close",
		},
		{
			ID:           "file-2",
			FileName:     "bank_statement_march.xlsx",
			UploadedBy:   "John Maker",
			UploadedAt:   now.Add(-2 * 24 * time.Hour),
			Status:       domain.FilePendingApproval,
			Source:       domain.SourceBank,
			Organization: "Head Office",
			Schedule:     "Monthly",
			Remarks:      "March statement",
		},
		{
			ID:           "file-3",
			FileName:     "branch_a_daily.xlsx",
			UploadedBy:   "Alex Admin",
			UploadedAt:   now.Add(-6 * time.Hour),
			Status:       domain.FilePendingApproval,
			Source:       domain.SourceBank,
			Organization: "Branch A",
			Schedule:     "Daily",
		},
	}
	files[0].SetTransactions(approvedLines)
	files[1].SetTransactions([]domain.Transaction{
		seedTxn("file-2-1", domain.SourceBank, day(2), "410.00", "Card settlement", domain.Credit, "SET-0310"),
		seedTxn("file-2-2", domain.SourceBank, day(2), "89.99", "Software subscription", domain.Debit, "SUB-0310"),
		seedTxn("file-2-3", domain.SourceBank, day(1), "2000.00", "Transfer to savings", domain.Debit, "TRF-0311"),
	})
	files[2].SetTransactions([]domain.Transaction{
		seedTxn("file-3-1", domain.SourceBank, day(0), "150.00", "Cash deposit", domain.Credit, "DEP-0312"),
	})

	seed.Transactions = txns
	seed.FileUploads = files
	return seed
}
