package services

import (
	"context"
	"io"

	"github.com/SscSPs/recon_workbench/internal/core/domain"
	"github.com/SscSPs/recon_workbench/internal/dto"
)

// BatchIngestor turns an uploaded file into the transactions it carries.
type BatchIngestor interface {
	Ingest(ctx context.Context, file dto.RawFile, source domain.Source) ([]domain.Transaction, error)
}

// FileUploadReaderSvc defines read operations for batch uploads.
type FileUploadReaderSvc interface {
	GetFile(ctx context.Context, fileID string) (*domain.FileUpload, error)

	// ExportFile writes the upload's transactions to w as delimited text.
	ExportFile(ctx context.Context, fileID string, w io.Writer) error
}

// FileUploadWriterSvc drives the upload state machine.
type FileUploadWriterSvc interface {
	// UploadFile records a pending_approval upload holding batch.
	UploadFile(ctx context.Context, actor domain.Actor, req dto.UploadFileRequest, batch []domain.Transaction) (*domain.FileUpload, error)

	// IngestFile runs the configured BatchIngestor over raw and uploads the result.
	IngestFile(ctx context.Context, actor domain.Actor, req dto.UploadFileRequest, raw dto.RawFile) (*domain.FileUpload, error)

	// ApproveFile approves a pending upload and appends its lines to the matching ledger.
	ApproveFile(ctx context.Context, actor domain.Actor, fileID string) (*domain.FileUpload, error)

	// RejectFile rejects a pending upload; its lines never reach the ledgers.
	RejectFile(ctx context.Context, actor domain.Actor, fileID string, reason string) (*domain.FileUpload, error)
}

// FileUploadQuerySvc is the read-only search projection over uploads.
type FileUploadQuerySvc interface {
	SearchFileUploads(ctx context.Context, filters domain.FileUploadFilters, pagination domain.Pagination) (*domain.FileUploadPage, error)
}

// FileUploadSvcFacade combines all upload-related service interfaces.
type FileUploadSvcFacade interface {
	FileUploadReaderSvc
	FileUploadWriterSvc
}
