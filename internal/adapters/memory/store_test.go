package memory_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/recon_workbench/internal/adapters/memory"
	"github.com/SscSPs/recon_workbench/internal/apperrors"
	"github.com/SscSPs/recon_workbench/internal/core/domain"
	portsrepo "github.com/SscSPs/recon_workbench/internal/core/ports/repositories"
)

var seedNow = time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)

type StoreTestSuite struct {
	suite.Suite
	store *memory.Store
	ctx   context.Context
}

func (suite *StoreTestSuite) SetupTest() {
	store, err := memory.NewStore(memory.WithSeed(memory.DefaultSeed(seedNow)))
	suite.Require().NoError(err)
	suite.store = store
	suite.ctx = context.Background()
}

func newTxn(id string, src domain.Source) domain.Transaction {
	return domain.Transaction{
		ID:          id,
		Date:        seedNow,
		Amount:      decimal.RequireFromString("10.00"),
		Description: "test line",
		Type:        domain.Debit,
		Status:      domain.Unreconciled,
		Source:      src,
	}
}

func (suite *StoreTestSuite) TestSeedContents() {
	bank, err := suite.store.ListTransactions(suite.ctx, portsrepo.TransactionFilter{Source: domain.SourceBank})
	suite.Require().NoError(err)
	suite.Len(bank, 5)
	suite.Equal("bank-1", bank[0].ID)
	suite.Equal("bank-5", bank[4].ID)

	system, err := suite.store.ListTransactions(suite.ctx, portsrepo.TransactionFilter{Source: domain.SourceSystem})
	suite.Require().NoError(err)
	suite.Len(system, 7, "five seeded lines plus the two from the approved upload")

	files, err := suite.store.ListFileUploads(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(files, 3)
	for _, f := range files {
		suite.Equal(len(f.Transactions), f.TransactionCount)
	}

	current, err := suite.store.CurrentActor(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal(domain.RoleMaker, current.Role)
}

func (suite *StoreTestSuite) TestListTransactionsBankFirstThenSystem() {
	all, err := suite.store.ListTransactions(suite.ctx, portsrepo.TransactionFilter{})
	suite.Require().NoError(err)
	suite.Require().Len(all, 12)
	suite.Equal(domain.SourceBank, all[0].Source)
	suite.Equal(domain.SourceSystem, all[len(all)-1].Source)

	pending, err := suite.store.ListTransactions(suite.ctx, portsrepo.TransactionFilter{Status: domain.Pending})
	suite.Require().NoError(err)
	suite.NotNil(pending)
	suite.Empty(pending)
}

func (suite *StoreTestSuite) TestRunInTxRollsBackOnError() {
	boom := errors.New("boom")
	err := suite.store.RunInTx(suite.ctx, func(ctx context.Context, repos portsrepo.RepositoryFacade) error {
		if err := repos.UpdateTransactionStatus(ctx, "bank-1", domain.Pending); err != nil {
			return err
		}
		if err := repos.SaveTransactions(ctx, []domain.Transaction{newTxn("bank-new", domain.SourceBank)}); err != nil {
			return err
		}
		return boom
	})
	suite.ErrorIs(err, boom)

	txn, err := suite.store.FindTransactionByID(suite.ctx, "bank-1")
	suite.Require().NoError(err)
	suite.Equal(domain.Unreconciled, txn.Status)

	_, err = suite.store.FindTransactionByID(suite.ctx, "bank-new")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *StoreTestSuite) TestRunInTxCommitsOnSuccess() {
	err := suite.store.RunInTx(suite.ctx, func(ctx context.Context, repos portsrepo.RepositoryFacade) error {
		if err := repos.UpdateTransactionStatus(ctx, "bank-1", domain.Pending); err != nil {
			return err
		}
		return repos.UpdateTransactionStatus(ctx, "sys-1", domain.Pending)
	})
	suite.Require().NoError(err)

	for _, id := range []string{"bank-1", "sys-1"} {
		txn, err := suite.store.FindTransactionByID(suite.ctx, id)
		suite.Require().NoError(err)
		suite.Equal(domain.Pending, txn.Status, id)
	}
}

func (suite *StoreTestSuite) TestRunInTxHonoursCancelledContext() {
	ctx, cancel := context.WithCancel(suite.ctx)
	cancel()

	called := false
	err := suite.store.RunInTx(ctx, func(context.Context, portsrepo.RepositoryFacade) error {
		called = true
		return nil
	})
	suite.ErrorIs(err, context.Canceled)
	suite.False(called)
}

func (suite *StoreTestSuite) TestDuplicateIDsRejected() {
	err := suite.store.SaveTransactions(suite.ctx, []domain.Transaction{newTxn("bank-1", domain.SourceBank)})
	suite.ErrorIs(err, apperrors.ErrDuplicate)

	entry := domain.ReconciliationEntry{ID: "rec-1", BankTransactionID: "bank-1", SystemTransactionID: "sys-1", Status: domain.ReconciliationPendingApproval}
	suite.Require().NoError(suite.store.SaveReconciliation(suite.ctx, entry))
	suite.ErrorIs(suite.store.SaveReconciliation(suite.ctx, entry), apperrors.ErrDuplicate)

	file, err := suite.store.FindFileUploadByID(suite.ctx, "file-2")
	suite.Require().NoError(err)
	suite.ErrorIs(suite.store.SaveFileUpload(suite.ctx, *file), apperrors.ErrDuplicate)
}

func (suite *StoreTestSuite) TestFailedBatchInsertLeavesLedgerUntouched() {
	err := suite.store.SaveTransactions(suite.ctx, []domain.Transaction{
		newTxn("bank-new", domain.SourceBank),
		newTxn("bank-1", domain.SourceBank),
	})
	suite.ErrorIs(err, apperrors.ErrDuplicate)

	_, err = suite.store.FindTransactionByID(suite.ctx, "bank-new")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *StoreTestSuite) TestFileCountInvariantEnforced() {
	file := domain.FileUpload{ID: "file-x", Status: domain.FilePendingApproval, Source: domain.SourceBank}
	file.SetTransactions([]domain.Transaction{newTxn("x-1", domain.SourceBank)})
	file.TransactionCount = 5

	suite.ErrorIs(suite.store.SaveFileUpload(suite.ctx, file), apperrors.ErrValidation)
}

func (suite *StoreTestSuite) TestReturnedEntitiesAreCopies() {
	file, err := suite.store.FindFileUploadByID(suite.ctx, "file-2")
	suite.Require().NoError(err)
	file.Transactions[0].Description = "tampered"
	file.Status = domain.FileRejected

	again, err := suite.store.FindFileUploadByID(suite.ctx, "file-2")
	suite.Require().NoError(err)
	suite.NotEqual("tampered", again.Transactions[0].Description)
	suite.Equal(domain.FilePendingApproval, again.Status)
}

func (suite *StoreTestSuite) TestNotFoundErrors() {
	_, err := suite.store.FindTransactionByID(suite.ctx, "missing")
	suite.ErrorIs(err, apperrors.ErrNotFound)
	_, err = suite.store.FindReconciliationByID(suite.ctx, "missing")
	suite.ErrorIs(err, apperrors.ErrNotFound)
	_, err = suite.store.FindFileUploadByID(suite.ctx, "missing")
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.ErrorIs(suite.store.UpdateTransactionStatus(suite.ctx, "missing", domain.Pending), apperrors.ErrNotFound)
	suite.ErrorIs(suite.store.SetCurrentActorID(suite.ctx, "nobody"), apperrors.ErrNotFound)
}

func (suite *StoreTestSuite) TestConcurrentUnitsOfWorkAreSerialized() {
	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := "concurrent-" + string(rune('a'+i))
			_ = suite.store.SaveTransactions(suite.ctx, []domain.Transaction{newTxn(id, domain.SourceSystem)})
		}()
	}
	wg.Wait()

	system, err := suite.store.ListTransactions(suite.ctx, portsrepo.TransactionFilter{Source: domain.SourceSystem})
	suite.Require().NoError(err)
	suite.Len(system, 27)
}

func TestEmptyStoreHasNoCurrentActor(t *testing.T) {
	store, err := memory.NewStore()
	require.NoError(t, err)

	_, err = store.CurrentActor(context.Background())
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestStore(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}
