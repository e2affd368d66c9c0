package services_test

import (
	"context"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/recon_workbench/internal/adapters/memory"
	"github.com/SscSPs/recon_workbench/internal/apperrors"
	"github.com/SscSPs/recon_workbench/internal/core/domain"
	portssvc "github.com/SscSPs/recon_workbench/internal/core/ports/services"
	"github.com/SscSPs/recon_workbench/internal/core/services"
)

type QueryServiceTestSuite struct {
	suite.Suite
	service portssvc.FileUploadQuerySvc
	ctx     context.Context
}

func (suite *QueryServiceTestSuite) SetupTest() {
	suite.service = services.NewQueryService(newSeededStore(suite.T()), services.WithMaxPageSize(50))
	suite.ctx = context.Background()
}

func ids(files []domain.FileUpload) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.ID
	}
	return out
}

func (suite *QueryServiceTestSuite) TestStatusFilterScenario() {
	page, err := suite.service.SearchFileUploads(suite.ctx,
		domain.FileUploadFilters{Status: string(domain.FilePendingApproval)},
		domain.Pagination{Page: 1, PageSize: 2})
	suite.Require().NoError(err)

	suite.Len(page.Data, 2)
	suite.Equal(domain.PageInfo{
		CurrentPage: 1, PageSize: 2, TotalItems: 2, TotalPages: 1,
		HasNextPage: false, HasPreviousPage: false,
	}, page.Pagination)
	suite.Equal(string(domain.FilePendingApproval), page.Filters.Status)
}

func (suite *QueryServiceTestSuite) TestSecondPageScenario() {
	page, err := suite.service.SearchFileUploads(suite.ctx, domain.FileUploadFilters{}, domain.Pagination{Page: 2, PageSize: 2})
	suite.Require().NoError(err)

	suite.Equal([]string{"file-1"}, ids(page.Data), "oldest upload sorts last")
	suite.True(page.Pagination.HasPreviousPage)
	suite.False(page.Pagination.HasNextPage)
	suite.Equal(3, page.Pagination.TotalItems)
	suite.Equal(2, page.Pagination.TotalPages)
}

func (suite *QueryServiceTestSuite) TestSortNewestFirst() {
	page, err := suite.service.SearchFileUploads(suite.ctx, domain.FileUploadFilters{}, domain.Pagination{Page: 1, PageSize: 10})
	suite.Require().NoError(err)
	suite.Equal([]string{"file-3", "file-2", "file-1"}, ids(page.Data))
}

func (suite *QueryServiceTestSuite) TestFilters() {
	tests := []struct {
		name    string
		filters domain.FileUploadFilters
		want    []string
	}{
		{"all sentinels", domain.FileUploadFilters{Organization: "all", Schedule: "ALL", Status: "all"}, []string{"file-3", "file-2", "file-1"}},
		{"organization substring is case-insensitive", domain.FileUploadFilters{Organization: "head"}, []string{"file-2", "file-1"}},
		{"schedule", domain.FileUploadFilters{Schedule: "daily"}, []string{"file-3"}},
		{"status exact", domain.FileUploadFilters{Status: "approved"}, []string{"file-1"}},
		{"status is not a substring match", domain.FileUploadFilters{Status: "approv"}, []string{}},
		{"search file name", domain.FileUploadFilters{SearchTerm: "STATEMENT"}, []string{"file-2"}},
		{"search uploader", domain.FileUploadFilters{SearchTerm: "alex"}, []string{"file-3"}},
		{"search remarks", domain.FileUploadFilters{SearchTerm: "february close"}, []string{"file-1"}},
		{"search organization", domain.FileUploadFilters{SearchTerm: "branch"}, []string{"file-3"}},
		{"search term is trimmed", domain.FileUploadFilters{SearchTerm: "  monthly "}, []string{"file-2", "file-1"}},
		{"filters combine with AND", domain.FileUploadFilters{Organization: "Head Office", Status: "pending_approval"}, []string{"file-2"}},
		{"no match", domain.FileUploadFilters{SearchTerm: "nothing like this"}, []string{}},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			page, err := suite.service.SearchFileUploads(suite.ctx, tt.filters, domain.Pagination{Page: 1, PageSize: 10})
			suite.Require().NoError(err)
			suite.Equal(tt.want, ids(page.Data))
			suite.Equal(tt.filters, page.Filters)
		})
	}
}

func (suite *QueryServiceTestSuite) TestEmptyResultHasZeroPages() {
	page, err := suite.service.SearchFileUploads(suite.ctx, domain.FileUploadFilters{Status: "rejected"}, domain.Pagination{Page: 1, PageSize: 5})
	suite.Require().NoError(err)
	suite.NotNil(page.Data)
	suite.Empty(page.Data)
	suite.Equal(0, page.Pagination.TotalPages)
	suite.False(page.Pagination.HasNextPage)
}

func (suite *QueryServiceTestSuite) TestPageBeyondDataIsEmpty() {
	page, err := suite.service.SearchFileUploads(suite.ctx, domain.FileUploadFilters{}, domain.Pagination{Page: 9, PageSize: 2})
	suite.Require().NoError(err)
	suite.Empty(page.Data)
	suite.Equal(9, page.Pagination.CurrentPage)
	suite.True(page.Pagination.HasPreviousPage)
	suite.False(page.Pagination.HasNextPage)
}

func (suite *QueryServiceTestSuite) TestHugePageNumberIsEmpty() {
	for _, n := range []int{92233720368547760, math.MaxInt} {
		var page *domain.FileUploadPage
		var err error
		suite.NotPanics(func() {
			page, err = suite.service.SearchFileUploads(suite.ctx, domain.FileUploadFilters{}, domain.Pagination{Page: n, PageSize: 50})
		})
		suite.Require().NoError(err)
		suite.NotNil(page.Data)
		suite.Empty(page.Data)
		suite.Equal(3, page.Pagination.TotalItems)
		suite.False(page.Pagination.HasNextPage)
	}
}

func (suite *QueryServiceTestSuite) TestInvalidPagination() {
	for _, p := range []domain.Pagination{
		{Page: 0, PageSize: 10},
		{Page: -1, PageSize: 10},
		{Page: 1, PageSize: 0},
		{Page: 1, PageSize: -5},
		{Page: 1, PageSize: 51},
	} {
		_, err := suite.service.SearchFileUploads(suite.ctx, domain.FileUploadFilters{}, p)
		suite.ErrorIs(err, apperrors.ErrValidation, "%+v", p)
	}
}

func (suite *QueryServiceTestSuite) TestIdempotent() {
	filters := domain.FileUploadFilters{Organization: "head"}
	p := domain.Pagination{Page: 1, PageSize: 1}

	first, err := suite.service.SearchFileUploads(suite.ctx, filters, p)
	suite.Require().NoError(err)
	second, err := suite.service.SearchFileUploads(suite.ctx, filters, p)
	suite.Require().NoError(err)
	suite.Equal(first, second)
}

func (suite *QueryServiceTestSuite) TestCancelledContext() {
	ctx, cancel := context.WithCancel(suite.ctx)
	cancel()
	_, err := suite.service.SearchFileUploads(ctx, domain.FileUploadFilters{}, domain.Pagination{Page: 1, PageSize: 1})
	suite.ErrorIs(err, context.Canceled)
}

func TestQueryService(t *testing.T) {
	suite.Run(t, new(QueryServiceTestSuite))
}

// TestPagesPartitionFilteredSet checks that walking every page yields the whole
// filtered set exactly once, in sort order, for a range of page sizes.
func TestPagesPartitionFilteredSet(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var files []domain.FileUpload
	for i := range 23 {
		f := domain.FileUpload{
			ID:           fmt.Sprintf("f-%02d", i),
			FileName:     fmt.Sprintf("batch_%02d.xlsx", i),
			UploadedBy:   "John Maker",
			UploadedAt:   base.Add(time.Duration(i%7) * time.Hour), // repeated timestamps exercise the stable tie-break
			Status:       domain.FilePendingApproval,
			Source:       domain.SourceBank,
			Organization: "Head Office",
			Schedule:     "Daily",
		}
		files = append(files, f)
	}
	store, err := memory.NewStore(memory.WithSeed(memory.Seed{FileUploads: files}))
	require.NoError(t, err)
	svc := services.NewQueryService(store)

	full, err := svc.SearchFileUploads(context.Background(), domain.FileUploadFilters{}, domain.Pagination{Page: 1, PageSize: 100})
	require.NoError(t, err)
	require.Len(t, full.Data, 23)
	for i := 1; i < len(full.Data); i++ {
		prev, cur := full.Data[i-1], full.Data[i]
		require.False(t, cur.UploadedAt.After(prev.UploadedAt))
		if cur.UploadedAt.Equal(prev.UploadedAt) {
			assert.Less(t, prev.ID, cur.ID, "ties keep insertion order")
		}
	}

	for _, size := range []int{1, 2, 3, 5, 7, 10, 23, 50} {
		var walked []string
		for page := 1; ; page++ {
			res, err := svc.SearchFileUploads(context.Background(), domain.FileUploadFilters{}, domain.Pagination{Page: page, PageSize: size})
			require.NoError(t, err)
			if len(res.Data) == 0 {
				assert.Equal(t, page-1, res.Pagination.TotalPages, "size %d", size)
				break
			}
			assert.LessOrEqual(t, len(res.Data), size)
			walked = append(walked, ids(res.Data)...)
		}
		assert.Equal(t, ids(full.Data), walked, "size %d", size)
	}
}
