package scheduler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/recon_workbench/internal/core/domain"
	portssvc "github.com/SscSPs/recon_workbench/internal/core/ports/services"
)

// PendingDigestJob logs how much work is waiting for a checker.
type PendingDigestJob struct {
	reporting portssvc.ReportingService
	logger    *slog.Logger
}

// NewPendingDigestJob creates the digest job.
func NewPendingDigestJob(reporting portssvc.ReportingService, logger *slog.Logger) *PendingDigestJob {
	return &PendingDigestJob{reporting: reporting, logger: logger}
}

func (j *PendingDigestJob) Name() string { return "pending_approvals_digest" }

func (j *PendingDigestJob) Run(ctx context.Context) error {
	summary, err := j.reporting.Summary(ctx)
	if err != nil {
		return fmt.Errorf("failed to build summary: %w", err)
	}

	j.logger.Info("Pending approvals digest",
		slog.Int("pending_total", summary.PendingApprovalsTotal),
		slog.Int("pending_reconciliations", summary.Reconciliations[domain.ReconciliationPendingApproval]),
		slog.Int("pending_files", summary.FileUploads[domain.FilePendingApproval]),
		slog.Int("unreconciled_bank", summary.BankTransactions[domain.Unreconciled]),
		slog.Int("unreconciled_system", summary.SystemTransactions[domain.Unreconciled]))
	return nil
}
