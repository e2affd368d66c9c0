package dto

import (
	"io"

	"github.com/SscSPs/recon_workbench/internal/core/domain"
)

// UploadFileRequest describes a batch submission. FileName is taken from the
// uploaded part when the request arrives as multipart form data.
type UploadFileRequest struct {
	FileName     string        `form:"fileName" json:"fileName" binding:"required,max=255"`
	Source       domain.Source `form:"source" json:"source" binding:"required,oneof=bank system"`
	Organization string        `form:"organization" json:"organization" binding:"required,max=100"`
	Schedule     string        `form:"schedule" json:"schedule" binding:"required,max=100"`
	Remarks      string        `form:"remarks" json:"remarks" binding:"max=500"`
}

// RawFile is an uploaded file handed to a batch ingestor.
type RawFile struct {
	Name    string
	Size    int64
	Content io.Reader
}

// SearchFileUploadsParams defines query parameters for the file upload search.
// Page and PageSize are filled with defaults by the handler when absent.
type SearchFileUploadsParams struct {
	Page         int    `form:"page"`
	PageSize     int    `form:"pageSize"`
	Organization string `form:"organization"`
	Schedule     string `form:"schedule"`
	Status       string `form:"status"`
	Search       string `form:"search"`
}

// ToFilters splits the params into the filter part of a search.
func (p SearchFileUploadsParams) ToFilters() domain.FileUploadFilters {
	return domain.FileUploadFilters{
		Organization: p.Organization,
		Schedule:     p.Schedule,
		Status:       p.Status,
		SearchTerm:   p.Search,
	}
}

// ToPagination splits the params into the paging part of a search.
func (p SearchFileUploadsParams) ToPagination() domain.Pagination {
	return domain.Pagination{Page: p.Page, PageSize: p.PageSize}
}
