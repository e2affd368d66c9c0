package pagination

import "github.com/SscSPs/recon_workbench/internal/core/domain"

// TotalPages returns ceil(totalItems / pageSize), and 0 when there are no items.
func TotalPages(totalItems, pageSize int) int {
	if totalItems <= 0 || pageSize <= 0 {
		return 0
	}
	return (totalItems + pageSize - 1) / pageSize
}

// Paginate slices items to the requested 1-based page. A page past the end yields
// an empty, non-nil slice. Callers validate page and pageSize beforehand.
func Paginate[T any](items []T, page, pageSize int) ([]T, domain.PageInfo) {
	total := len(items)
	totalPages := TotalPages(total, pageSize)

	info := domain.PageInfo{
		CurrentPage:     page,
		PageSize:        pageSize,
		TotalItems:      total,
		TotalPages:      totalPages,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1,
	}

	// Compared before multiplying so huge page numbers cannot overflow the offset.
	if page < 1 || page > totalPages {
		return []T{}, info
	}
	start := (page - 1) * pageSize
	end := min(start+pageSize, total)

	out := make([]T, end-start)
	copy(out, items[start:end])
	return out, info
}
