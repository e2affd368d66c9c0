package domain

// FilterAll is the sentinel filter value meaning "do not filter on this attribute".
const FilterAll = "all"

// FileUploadFilters narrows a file upload search. Empty or FilterAll values are ignored.
type FileUploadFilters struct {
	Organization string `json:"organization,omitempty"`
	Schedule     string `json:"schedule,omitempty"`
	Status       string `json:"status,omitempty"`
	SearchTerm   string `json:"searchTerm,omitempty"`
}

// Pagination selects a 1-based page of a result set.
type Pagination struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}

// PageInfo describes where a page sits in the full filtered result set.
type PageInfo struct {
	CurrentPage     int  `json:"currentPage"`
	PageSize        int  `json:"pageSize"`
	TotalItems      int  `json:"totalItems"`
	TotalPages      int  `json:"totalPages"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

// FileUploadPage is one page of file uploads plus the filters that produced it.
type FileUploadPage struct {
	Data       []FileUpload      `json:"data"`
	Pagination PageInfo          `json:"pagination"`
	Filters    FileUploadFilters `json:"filters"`
}
