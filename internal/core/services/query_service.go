package services

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/SscSPs/recon_workbench/internal/apperrors"
	"github.com/SscSPs/recon_workbench/internal/core/domain"
	portsrepo "github.com/SscSPs/recon_workbench/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/recon_workbench/internal/core/ports/services"
	"github.com/SscSPs/recon_workbench/internal/utils/pagination"
)

// DefaultMaxPageSize caps pageSize when no limit is configured.
const DefaultMaxPageSize = 100

// queryService is a read-only filter, sort and paginate projection over file uploads.
type queryService struct {
	BaseService
	repo        portsrepo.FileUploadReader
	maxPageSize int
}

// QueryServiceOption configures a query service.
type QueryServiceOption func(*queryService)

// WithMaxPageSize bounds the page size a caller may request. Values below 1 are ignored.
func WithMaxPageSize(n int) QueryServiceOption {
	return func(s *queryService) {
		if n > 0 {
			s.maxPageSize = n
		}
	}
}

// NewQueryService creates a new file upload query service.
func NewQueryService(repo portsrepo.FileUploadReader, opts ...QueryServiceOption) portssvc.FileUploadQuerySvc {
	s := &queryService{
		BaseService: newBaseService(),
		repo:        repo,
		maxPageSize: DefaultMaxPageSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.FileUploadQuerySvc = (*queryService)(nil)

func isUnfiltered(v string) bool {
	return v == "" || strings.EqualFold(v, domain.FilterAll)
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), substr)
}

// matchFileUpload reports whether f satisfies every active filter.
// term must already be trimmed and lower-cased.
func matchFileUpload(f domain.FileUpload, filters domain.FileUploadFilters, term string) bool {
	if !isUnfiltered(filters.Organization) && !containsFold(f.Organization, strings.ToLower(filters.Organization)) {
		return false
	}
	if !isUnfiltered(filters.Schedule) && !containsFold(f.Schedule, strings.ToLower(filters.Schedule)) {
		return false
	}
	if !isUnfiltered(filters.Status) && string(f.Status) != filters.Status {
		return false
	}
	if term == "" {
		return true
	}
	return containsFold(f.FileName, term) ||
		containsFold(f.UploadedBy, term) ||
		containsFold(f.Remarks, term) ||
		containsFold(f.Organization, term) ||
		containsFold(f.Schedule, term)
}

func (s *queryService) validatePagination(p domain.Pagination) error {
	if p.Page < 1 {
		return fmt.Errorf("%w: page must be at least 1, got %d", apperrors.ErrValidation, p.Page)
	}
	if p.PageSize < 1 {
		return fmt.Errorf("%w: pageSize must be at least 1, got %d", apperrors.ErrValidation, p.PageSize)
	}
	if p.PageSize > s.maxPageSize {
		return fmt.Errorf("%w: pageSize must be at most %d, got %d", apperrors.ErrValidation, s.maxPageSize, p.PageSize)
	}
	return nil
}

// SearchFileUploads filters uploads, orders them newest first and returns the requested page.
// It never mutates the store, so identical calls on an unchanged store return identical pages.
func (s *queryService) SearchFileUploads(ctx context.Context, filters domain.FileUploadFilters, p domain.Pagination) (*domain.FileUploadPage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.validatePagination(p); err != nil {
		s.LogDebug(ctx, "Rejected file upload search", slog.String("error", err.Error()))
		return nil, err
	}

	files, err := s.repo.ListFileUploads(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list file uploads")
		return nil, fmt.Errorf("failed to list file uploads: %w", err)
	}

	term := strings.ToLower(strings.TrimSpace(filters.SearchTerm))
	matched := make([]domain.FileUpload, 0, len(files))
	for _, f := range files {
		if matchFileUpload(f, filters, term) {
			matched = append(matched, f)
		}
	}

	slices.SortStableFunc(matched, func(a, b domain.FileUpload) int {
		return cmp.Compare(b.UploadedAt.UnixNano(), a.UploadedAt.UnixNano())
	})

	data, info := pagination.Paginate(matched, p.Page, p.PageSize)

	s.LogDebug(ctx, "File upload search",
		slog.Int("page", p.Page),
		slog.Int("page_size", p.PageSize),
		slog.Int("total_items", info.TotalItems))

	return &domain.FileUploadPage{
		Data:       data,
		Pagination: info,
		Filters:    filters,
	}, nil
}
