package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/recon_workbench/internal/core/domain"
	portsrepo "github.com/SscSPs/recon_workbench/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/recon_workbench/internal/core/ports/services"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	store portsrepo.StoreFacade
}

// NewReportingService creates a new reporting service
func NewReportingService(store portsrepo.StoreFacade, opts ...Option) portssvc.ReportingService {
	return &reportingService{
		BaseService: newBaseService(opts...),
		store:       store,
	}
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// Summary counts every collection by status. The counts come from a single
// unit of work so they are mutually consistent.
func (s *reportingService) Summary(ctx context.Context) (*domain.Summary, error) {
	summary := &domain.Summary{
		BankTransactions: map[domain.TransactionStatus]int{
			domain.Unreconciled: 0, domain.Pending: 0, domain.Reconciled: 0,
		},
		SystemTransactions: map[domain.TransactionStatus]int{
			domain.Unreconciled: 0, domain.Pending: 0, domain.Reconciled: 0,
		},
		Reconciliations: map[domain.ReconciliationStatus]int{
			domain.ReconciliationPendingApproval: 0, domain.ReconciliationApproved: 0, domain.ReconciliationRejected: 0,
		},
		FileUploads: map[domain.FileUploadStatus]int{
			domain.FilePendingApproval: 0, domain.FileApproved: 0, domain.FileRejected: 0,
		},
	}

	err := s.store.RunInTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryFacade) error {
		txns, err := repos.ListTransactions(ctx, portsrepo.TransactionFilter{})
		if err != nil {
			return fmt.Errorf("failed to list transactions: %w", err)
		}
		for _, txn := range txns {
			if txn.Source == domain.SourceBank {
				summary.BankTransactions[txn.Status]++
			} else {
				summary.SystemTransactions[txn.Status]++
			}
		}

		entries, err := repos.ListReconciliations(ctx, "")
		if err != nil {
			return fmt.Errorf("failed to list reconciliations: %w", err)
		}
		for _, e := range entries {
			summary.Reconciliations[e.Status]++
		}

		files, err := repos.ListFileUploads(ctx)
		if err != nil {
			return fmt.Errorf("failed to list file uploads: %w", err)
		}
		for _, f := range files {
			summary.FileUploads[f.Status]++
		}
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to build summary")
		return nil, err
	}

	summary.PendingApprovalsTotal = summary.Reconciliations[domain.ReconciliationPendingApproval] +
		summary.FileUploads[domain.FilePendingApproval]
	return summary, nil
}
