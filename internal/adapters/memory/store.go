package memory

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/SscSPs/recon_workbench/internal/core/domain"
	portsrepo "github.com/SscSPs/recon_workbench/internal/core/ports/repositories"
)

// state is the full set of collections. A unit of work mutates a clone and
// the clone replaces the live state only when the work succeeds.
type state struct {
	transactions map[string]domain.Transaction
	bankOrder    []string
	systemOrder  []string

	entries    map[string]domain.ReconciliationEntry
	entryOrder []string

	files     map[string]domain.FileUpload
	fileOrder []string

	actors         []domain.Actor
	currentActorID string
}

func newState() *state {
	return &state{
		transactions: make(map[string]domain.Transaction),
		entries:      make(map[string]domain.ReconciliationEntry),
		files:        make(map[string]domain.FileUpload),
	}
}

// clone copies the collection containers. Entity values are copied by value;
// slices held inside a FileUpload are never mutated in place, so sharing them is safe.
func (st *state) clone() *state {
	return &state{
		transactions:   maps.Clone(st.transactions),
		bankOrder:      slices.Clone(st.bankOrder),
		systemOrder:    slices.Clone(st.systemOrder),
		entries:        maps.Clone(st.entries),
		entryOrder:     slices.Clone(st.entryOrder),
		files:          maps.Clone(st.files),
		fileOrder:      slices.Clone(st.fileOrder),
		actors:         slices.Clone(st.actors),
		currentActorID: st.currentActorID,
	}
}

// Store is an in-memory implementation of portsrepo.StoreFacade.
// It is safe for concurrent use; data is lost when the process exits.
type Store struct {
	mu sync.RWMutex
	st *state
}

// Option configures a Store at construction time.
type Option func(*Store) error

// WithSeed loads seed into the store before it is returned.
func WithSeed(seed Seed) Option {
	return func(s *Store) error {
		return s.load(seed)
	}
}

// NewStore creates an empty store and applies opts in order.
func NewStore(opts ...Option) (*Store, error) {
	s := &Store{st: newState()}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Ensure Store implements the StoreFacade interface.
var _ portsrepo.StoreFacade = (*Store)(nil)

// RunInTx runs fn against a private copy of the state and publishes the copy
// only if fn returns nil. Units of work are serialized.
func (s *Store) RunInTx(ctx context.Context, fn portsrepo.TxFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	draft := s.st.clone()
	if err := fn(ctx, &view{st: draft}); err != nil {
		return err
	}
	s.st = draft
	return nil
}

func (s *Store) reader() *view {
	return &view{st: s.st}
}

// --- reads take the shared lock and delegate to a view of the live state ---

func (s *Store) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reader().FindTransactionByID(ctx, transactionID)
}

func (s *Store) ListTransactions(ctx context.Context, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reader().ListTransactions(ctx, filter)
}

func (s *Store) FindReconciliationByID(ctx context.Context, entryID string) (*domain.ReconciliationEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reader().FindReconciliationByID(ctx, entryID)
}

func (s *Store) ListReconciliations(ctx context.Context, status domain.ReconciliationStatus) ([]domain.ReconciliationEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reader().ListReconciliations(ctx, status)
}

func (s *Store) FindFileUploadByID(ctx context.Context, fileID string) (*domain.FileUpload, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reader().FindFileUploadByID(ctx, fileID)
}

func (s *Store) ListFileUploads(ctx context.Context) ([]domain.FileUpload, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reader().ListFileUploads(ctx)
}

func (s *Store) ListActors(ctx context.Context) ([]domain.Actor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reader().ListActors(ctx)
}

func (s *Store) FindActorByID(ctx context.Context, actorID string) (*domain.Actor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reader().FindActorByID(ctx, actorID)
}

func (s *Store) FindActorByRole(ctx context.Context, role domain.Role) (*domain.Actor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reader().FindActorByRole(ctx, role)
}

func (s *Store) CurrentActor(ctx context.Context) (*domain.Actor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reader().CurrentActor(ctx)
}

// --- single writes outside an explicit unit of work still run atomically ---

func (s *Store) SaveTransactions(ctx context.Context, txns []domain.Transaction) error {
	return s.RunInTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryFacade) error {
		return repos.SaveTransactions(ctx, txns)
	})
}

func (s *Store) UpdateTransactionStatus(ctx context.Context, transactionID string, status domain.TransactionStatus) error {
	return s.RunInTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryFacade) error {
		return repos.UpdateTransactionStatus(ctx, transactionID, status)
	})
}

func (s *Store) SaveReconciliation(ctx context.Context, entry domain.ReconciliationEntry) error {
	return s.RunInTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryFacade) error {
		return repos.SaveReconciliation(ctx, entry)
	})
}

func (s *Store) UpdateReconciliation(ctx context.Context, entry domain.ReconciliationEntry) error {
	return s.RunInTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryFacade) error {
		return repos.UpdateReconciliation(ctx, entry)
	})
}

func (s *Store) SaveFileUpload(ctx context.Context, file domain.FileUpload) error {
	return s.RunInTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryFacade) error {
		return repos.SaveFileUpload(ctx, file)
	})
}

func (s *Store) UpdateFileUpload(ctx context.Context, file domain.FileUpload) error {
	return s.RunInTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryFacade) error {
		return repos.UpdateFileUpload(ctx, file)
	})
}

func (s *Store) SetCurrentActorID(ctx context.Context, actorID string) error {
	return s.RunInTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryFacade) error {
		return repos.SetCurrentActorID(ctx, actorID)
	})
}
