package services_test

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/recon_workbench/internal/adapters/memory"
	"github.com/SscSPs/recon_workbench/internal/core/domain"
	portssvc "github.com/SscSPs/recon_workbench/internal/core/ports/services"
	"github.com/SscSPs/recon_workbench/internal/core/services"
	"github.com/SscSPs/recon_workbench/internal/dto"
)

var fixedNow = time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)

var (
	maker   = domain.Actor{ID: "user-1", Name: "John Maker", Role: domain.RoleMaker}
	checker = domain.Actor{ID: "user-2", Name: "Jane Checker", Role: domain.RoleChecker}
	admin   = domain.Actor{ID: "user-3", Name: "Alex Admin", Role: domain.RoleAdmin}
)

func newSeededStore(t *testing.T) *memory.Store {
	t.Helper()
	store, err := memory.NewStore(memory.WithSeed(memory.DefaultSeed(fixedNow)))
	require.NoError(t, err)
	return store
}

// sequentialIDs returns a generator yielding prefix-1, prefix-2, ...
func sequentialIDs(prefix string) func() string {
	var n atomic.Int64
	return func() string {
		return fmt.Sprintf("%s-%d", prefix, n.Add(1))
	}
}

// testOptions pins the clock and id generation so results are reproducible.
func testOptions(prefix string) []services.Option {
	return []services.Option{
		services.WithClock(func() time.Time { return fixedNow }),
		services.WithIDGenerator(sequentialIDs(prefix)),
	}
}

// --- Mock BatchIngestor ---
type MockBatchIngestor struct {
	mock.Mock
}

var _ portssvc.BatchIngestor = (*MockBatchIngestor)(nil)

func (m *MockBatchIngestor) Ingest(ctx context.Context, file dto.RawFile, source domain.Source) ([]domain.Transaction, error) {
	args := m.Called(ctx, file, source)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}
