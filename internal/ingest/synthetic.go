// Package ingest holds BatchIngestor strategies that turn uploaded files into ledger lines.
package ingest

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/recon_workbench/internal/apperrors"
	"github.com/SscSPs/recon_workbench/internal/core/domain"
	portssvc "github.com/SscSPs/recon_workbench/internal/core/ports/services"
	"github.com/SscSPs/recon_workbench/internal/dto"
)

var descriptions = []string{
	"Vendor payment",
	"Customer receipt",
	"Payroll transfer",
	"Utility bill",
	"Card settlement",
	"Interest credit",
	"Bank charges",
	"Refund issued",
}

// SyntheticIngestor generates plausible transactions instead of parsing the file.
// It stands in for a real spreadsheet parser behind the BatchIngestor port.
type SyntheticIngestor struct {
	mu    sync.Mutex
	rng   *rand.Rand
	lo    int
	hi    int
	now   func() time.Time
	newID func() string
}

// Option configures a SyntheticIngestor.
type Option func(*SyntheticIngestor)

// WithCountRange sets the inclusive range of lines generated per file.
func WithCountRange(lo, hi int) Option {
	return func(s *SyntheticIngestor) {
		if lo > 0 && hi >= lo {
			s.lo, s.hi = lo, hi
		}
	}
}

// WithRand injects the random source, mainly for deterministic tests.
func WithRand(rng *rand.Rand) Option {
	return func(s *SyntheticIngestor) {
		s.rng = rng
	}
}

// WithClock sets the time source used for transaction dates.
func WithClock(now func() time.Time) Option {
	return func(s *SyntheticIngestor) {
		s.now = now
	}
}

// WithIDGenerator overrides how transaction ids are minted.
func WithIDGenerator(newID func() string) Option {
	return func(s *SyntheticIngestor) {
		s.newID = newID
	}
}

// NewSyntheticIngestor creates an ingestor producing between 5 and 15 lines per file by default.
func NewSyntheticIngestor(opts ...Option) *SyntheticIngestor {
	s := &SyntheticIngestor{
		rng:   rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x9e3779b97f4a7c15)),
		lo:    5,
		hi:    15,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.BatchIngestor = (*SyntheticIngestor)(nil)

// Ingest returns unreconciled lines of the requested source. The file content is ignored.
func (s *SyntheticIngestor) Ingest(ctx context.Context, file dto.RawFile, source domain.Source) ([]domain.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(file.Name) == "" {
		return nil, fmt.Errorf("%w: file name is required", apperrors.ErrValidation)
	}
	if file.Size == 0 {
		return nil, fmt.Errorf("%w: file %s is empty", apperrors.ErrValidation, file.Name)
	}
	if !source.IsValid() {
		return nil, fmt.Errorf("%w: unknown source %q", apperrors.ErrValidation, source)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	count := s.lo + s.rng.IntN(s.hi-s.lo+1)
	today := s.now().Truncate(24 * time.Hour)
	prefix := "BNK"
	if source == domain.SourceSystem {
		prefix = "SYS"
	}

	txns := make([]domain.Transaction, count)
	for i := range txns {
		typ := domain.Credit
		if s.rng.IntN(2) == 0 {
			typ = domain.Debit
		}
		// 10.00 to 5009.99 in cents
		cents := 1000 + s.rng.Int64N(500000)

		txns[i] = domain.Transaction{
			ID:          s.newID(),
			Date:        today.AddDate(0, 0, -s.rng.IntN(30)),
			Amount:      decimal.New(cents, -domain.AmountScale),
			Description: descriptions[s.rng.IntN(len(descriptions))],
			Type:        typ,
			Reference:   fmt.Sprintf("%s-%06d", prefix, s.rng.IntN(1000000)),
			Status:      domain.Unreconciled,
			Source:      source,
			AccountID:   fmt.Sprintf("ACC-%04d", 1000+s.rng.IntN(9000)),
			TransID:     fmt.Sprintf("T%08d", s.rng.IntN(100000000)),
		}
	}
	return txns, nil
}
