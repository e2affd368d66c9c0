package repositories

import (
	"context"

	"github.com/SscSPs/recon_workbench/internal/core/domain"
)

// FileUploadReader defines read operations for batch uploads.
type FileUploadReader interface {
	FindFileUploadByID(ctx context.Context, fileID string) (*domain.FileUpload, error)

	// ListFileUploads returns every upload in insertion order.
	ListFileUploads(ctx context.Context) ([]domain.FileUpload, error)
}

// FileUploadWriter defines write operations for batch uploads.
type FileUploadWriter interface {
	SaveFileUpload(ctx context.Context, file domain.FileUpload) error
	UpdateFileUpload(ctx context.Context, file domain.FileUpload) error
}

// FileUploadRepositoryFacade combines upload read and write operations.
type FileUploadRepositoryFacade interface {
	FileUploadReader
	FileUploadWriter
}
