package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/SscSPs/recon_workbench/internal/apperrors"
	"github.com/SscSPs/recon_workbench/internal/core/domain"
	portsrepo "github.com/SscSPs/recon_workbench/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/recon_workbench/internal/core/ports/services"
	"github.com/SscSPs/recon_workbench/internal/dto"
	"github.com/SscSPs/recon_workbench/internal/utils/export"
)

// fileUploadService drives the batch upload state machine.
type fileUploadService struct {
	BaseService
	store    portsrepo.StoreFacade
	ingestor portssvc.BatchIngestor
}

// FileUploadServiceOption configures a file upload service.
type FileUploadServiceOption func(*fileUploadService)

// WithBatchIngestor sets the strategy used by IngestFile to turn raw files into transactions.
func WithBatchIngestor(ingestor portssvc.BatchIngestor) FileUploadServiceOption {
	return func(s *fileUploadService) {
		s.ingestor = ingestor
	}
}

// WithFileUploadBaseOptions applies shared service options such as the clock.
func WithFileUploadBaseOptions(opts ...Option) FileUploadServiceOption {
	return func(s *fileUploadService) {
		for _, opt := range opts {
			opt(&s.BaseService)
		}
	}
}

// NewFileUploadService creates a new file upload service.
func NewFileUploadService(store portsrepo.StoreFacade, opts ...FileUploadServiceOption) portssvc.FileUploadSvcFacade {
	s := &fileUploadService{
		BaseService: newBaseService(),
		store:       store,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.FileUploadSvcFacade = (*fileUploadService)(nil)

// prepareBatch copies batch into upload-ready lines: ids filled in, source defaulted,
// status forced to unreconciled and every line validated.
func (s *fileUploadService) prepareBatch(batch []domain.Transaction, source domain.Source) ([]domain.Transaction, error) {
	if len(batch) == 0 {
		return nil, fmt.Errorf("%w: upload must contain at least one transaction", apperrors.ErrValidation)
	}

	lines := make([]domain.Transaction, len(batch))
	seen := make(map[string]struct{}, len(batch))
	for i, txn := range batch {
		if txn.ID == "" {
			txn.ID = s.newID()
		}
		if _, dup := seen[txn.ID]; dup {
			return nil, fmt.Errorf("%w: transaction id %s appears more than once in the upload", apperrors.ErrValidation, txn.ID)
		}
		seen[txn.ID] = struct{}{}

		if txn.Source == "" {
			txn.Source = source
		}
		if txn.Source != source {
			return nil, fmt.Errorf("%w: line %d has source %s but the upload is %s", apperrors.ErrValidation, i+1, txn.Source, source)
		}
		txn.Status = domain.Unreconciled

		if err := txn.Validate(); err != nil {
			return nil, fmt.Errorf("%w: line %d: %s", apperrors.ErrValidation, i+1, err.Error())
		}
		lines[i] = txn
	}
	return lines, nil
}

func (s *fileUploadService) UploadFile(ctx context.Context, actor domain.Actor, req dto.UploadFileRequest, batch []domain.Transaction) (*domain.FileUpload, error) {
	if err := s.requireMaker(ctx, actor, "upload files"); err != nil {
		return nil, err
	}
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	lines, err := s.prepareBatch(batch, req.Source)
	if err != nil {
		s.LogWarn(ctx, "Rejected upload batch", slog.String("file_name", req.FileName), slog.String("error", err.Error()))
		return nil, err
	}

	file := domain.FileUpload{
		ID:           s.newID(),
		FileName:     strings.TrimSpace(req.FileName),
		UploadedBy:   actor.Name,
		UploadedAt:   s.now(),
		Status:       domain.FilePendingApproval,
		Source:       req.Source,
		Organization: strings.TrimSpace(req.Organization),
		Schedule:     strings.TrimSpace(req.Schedule),
		Remarks:      strings.TrimSpace(req.Remarks),
	}
	file.SetTransactions(lines)

	err = s.store.RunInTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryFacade) error {
		// Lines must stay insertable into the ledger on approval.
		for _, txn := range lines {
			_, err := repos.FindTransactionByID(ctx, txn.ID)
			if err == nil {
				return fmt.Errorf("transaction %s: %w", txn.ID, apperrors.ErrDuplicate)
			}
			if !errors.Is(err, apperrors.ErrNotFound) {
				return err
			}
		}
		return repos.SaveFileUpload(ctx, file)
	})
	if err != nil {
		s.logTransitionError(ctx, err, "Failed to save file upload", slog.String("file_name", file.FileName))
		return nil, err
	}

	s.LogInfo(ctx, "File uploaded",
		slog.String("file_id", file.ID),
		slog.String("file_name", file.FileName),
		slog.String("source", string(file.Source)),
		slog.Int("transaction_count", file.TransactionCount),
		slog.String("actor_id", actor.ID))
	return &file, nil
}

func (s *fileUploadService) IngestFile(ctx context.Context, actor domain.Actor, req dto.UploadFileRequest, raw dto.RawFile) (*domain.FileUpload, error) {
	if err := s.requireMaker(ctx, actor, "upload files"); err != nil {
		return nil, err
	}
	if s.ingestor == nil {
		err := fmt.Errorf("%w: no batch ingestor configured", apperrors.ErrInternal)
		s.LogError(ctx, err, "Cannot ingest file")
		return nil, err
	}
	if req.FileName == "" {
		req.FileName = raw.Name
	}
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	batch, err := s.ingestor.Ingest(ctx, raw, req.Source)
	if err != nil {
		s.logTransitionError(ctx, err, "Failed to ingest file", slog.String("file_name", raw.Name))
		return nil, fmt.Errorf("failed to ingest %s: %w", raw.Name, err)
	}
	s.LogDebug(ctx, "File ingested", slog.String("file_name", raw.Name), slog.Int("transaction_count", len(batch)))

	return s.UploadFile(ctx, actor, req, batch)
}

func loadPendingFile(ctx context.Context, repos portsrepo.RepositoryFacade, fileID string) (*domain.FileUpload, error) {
	file, err := repos.FindFileUploadByID(ctx, fileID)
	if err != nil {
		return nil, err
	}
	if file.Status != domain.FilePendingApproval {
		return nil, fmt.Errorf("%w: file upload %s is %s", apperrors.ErrInvalidState, fileID, file.Status)
	}
	return file, nil
}

func (s *fileUploadService) ApproveFile(ctx context.Context, actor domain.Actor, fileID string) (*domain.FileUpload, error) {
	if err := s.requireChecker(ctx, actor, "approve files"); err != nil {
		return nil, err
	}

	var approved domain.FileUpload
	err := s.store.RunInTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryFacade) error {
		file, err := loadPendingFile(ctx, repos, fileID)
		if err != nil {
			return err
		}

		if err := repos.SaveTransactions(ctx, file.Transactions); err != nil {
			return fmt.Errorf("failed to merge transactions of file %s: %w", fileID, err)
		}

		now := s.now()
		file.Status = domain.FileApproved
		file.ApprovedBy = actor.Name
		file.ApprovedAt = &now
		if err := repos.UpdateFileUpload(ctx, *file); err != nil {
			return fmt.Errorf("failed to update file upload: %w", err)
		}
		approved = *file
		return nil
	})
	if err != nil {
		s.logTransitionError(ctx, err, "Failed to approve file", slog.String("file_id", fileID))
		return nil, err
	}

	s.LogInfo(ctx, "File approved",
		slog.String("file_id", fileID),
		slog.String("source", string(approved.Source)),
		slog.Int("transaction_count", approved.TransactionCount),
		slog.String("actor_id", actor.ID))
	return &approved, nil
}

func (s *fileUploadService) RejectFile(ctx context.Context, actor domain.Actor, fileID string, reason string) (*domain.FileUpload, error) {
	if err := s.requireChecker(ctx, actor, "reject files"); err != nil {
		return nil, err
	}
	reason, err := requireReason(reason)
	if err != nil {
		return nil, err
	}

	var rejected domain.FileUpload
	err = s.store.RunInTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryFacade) error {
		file, err := loadPendingFile(ctx, repos, fileID)
		if err != nil {
			return err
		}

		now := s.now()
		file.Status = domain.FileRejected
		file.RejectionReason = reason
		file.ApprovedBy = actor.Name
		file.ApprovedAt = &now
		if err := repos.UpdateFileUpload(ctx, *file); err != nil {
			return fmt.Errorf("failed to update file upload: %w", err)
		}
		rejected = *file
		return nil
	})
	if err != nil {
		s.logTransitionError(ctx, err, "Failed to reject file", slog.String("file_id", fileID))
		return nil, err
	}

	s.LogInfo(ctx, "File rejected",
		slog.String("file_id", fileID),
		slog.String("reason", reason),
		slog.String("actor_id", actor.ID))
	return &rejected, nil
}

func (s *fileUploadService) GetFile(ctx context.Context, fileID string) (*domain.FileUpload, error) {
	file, err := s.store.FindFileUploadByID(ctx, fileID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find file upload", slog.String("file_id", fileID))
		}
		return nil, err
	}
	return file, nil
}

func (s *fileUploadService) ExportFile(ctx context.Context, fileID string, w io.Writer) error {
	file, err := s.GetFile(ctx, fileID)
	if err != nil {
		return err
	}

	if err := export.WriteTransactionsCSV(w, file.Transactions); err != nil {
		s.LogError(ctx, err, "Failed to export file", slog.String("file_id", fileID))
		return fmt.Errorf("failed to export file %s: %w", fileID, err)
	}

	s.LogDebug(ctx, "File exported", slog.String("file_id", fileID), slog.Int("rows", len(file.Transactions)))
	return nil
}
