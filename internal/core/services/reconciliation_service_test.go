package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/recon_workbench/internal/adapters/memory"
	"github.com/SscSPs/recon_workbench/internal/apperrors"
	"github.com/SscSPs/recon_workbench/internal/core/domain"
	portssvc "github.com/SscSPs/recon_workbench/internal/core/ports/services"
	"github.com/SscSPs/recon_workbench/internal/core/services"
	"github.com/SscSPs/recon_workbench/internal/dto"
)

type ReconciliationServiceTestSuite struct {
	suite.Suite
	store   *memory.Store
	service portssvc.ReconciliationSvcFacade
	ctx     context.Context
}

func (suite *ReconciliationServiceTestSuite) SetupTest() {
	suite.store = newSeededStore(suite.T())
	suite.service = services.NewReconciliationService(suite.store, testOptions("rec")...)
	suite.ctx = context.Background()
}

func (suite *ReconciliationServiceTestSuite) statusOf(id string) domain.TransactionStatus {
	txn, err := suite.store.FindTransactionByID(suite.ctx, id)
	suite.Require().NoError(err)
	return txn.Status
}

func (suite *ReconciliationServiceTestSuite) create(bankID, sysID string) *domain.ReconciliationEntry {
	entry, err := suite.service.CreateReconciliation(suite.ctx, maker, dto.CreateReconciliationRequest{
		BankTransactionID:   bankID,
		SystemTransactionID: sysID,
	})
	suite.Require().NoError(err)
	return entry
}

func (suite *ReconciliationServiceTestSuite) TestCreateMovesBothLinesToPending() {
	entry, err := suite.service.CreateReconciliation(suite.ctx, maker, dto.CreateReconciliationRequest{
		BankTransactionID:   "bank-1",
		SystemTransactionID: "sys-1",
		Comments:            "  same invoice  ",
	})
	suite.Require().NoError(err)

	suite.Equal("rec-1", entry.ID)
	suite.Equal(domain.ReconciliationPendingApproval, entry.Status)
	suite.Equal("John Maker", entry.CreatedBy)
	suite.Equal(fixedNow, entry.CreatedAt)
	suite.Equal("same invoice", entry.Comments)
	suite.Nil(entry.ApprovedAt)

	suite.Equal(domain.Pending, suite.statusOf("bank-1"))
	suite.Equal(domain.Pending, suite.statusOf("sys-1"))

	stored, err := suite.service.GetReconciliation(suite.ctx, entry.ID)
	suite.Require().NoError(err)
	suite.Equal(*entry, *stored)
}

func (suite *ReconciliationServiceTestSuite) TestApproveScenario() {
	entry := suite.create("bank-1", "sys-1")

	approved, err := suite.service.ApproveReconciliation(suite.ctx, checker, entry.ID, "")
	suite.Require().NoError(err)

	suite.Equal(domain.ReconciliationApproved, approved.Status)
	suite.Equal("Jane Checker", approved.ApprovedBy)
	suite.Require().NotNil(approved.ApprovedAt)
	suite.Equal(fixedNow, *approved.ApprovedAt)
	suite.Equal(domain.Reconciled, suite.statusOf("bank-1"))
	suite.Equal(domain.Reconciled, suite.statusOf("sys-1"))
}

func (suite *ReconciliationServiceTestSuite) TestApproveKeepsOrReplacesComments() {
	entry, err := suite.service.CreateReconciliation(suite.ctx, maker, dto.CreateReconciliationRequest{
		BankTransactionID: "bank-3", SystemTransactionID: "sys-3", Comments: "maker note",
	})
	suite.Require().NoError(err)

	approved, err := suite.service.ApproveReconciliation(suite.ctx, admin, entry.ID, "checked against rent ledger")
	suite.Require().NoError(err)
	suite.Equal("checked against rent ledger", approved.Comments)
	suite.Equal("Alex Admin", approved.ApprovedBy)
}

func (suite *ReconciliationServiceTestSuite) TestRejectScenario() {
	entry := suite.create("bank-2", "sys-2")

	rejected, err := suite.service.RejectReconciliation(suite.ctx, checker, entry.ID, "mismatch")
	suite.Require().NoError(err)

	suite.Equal(domain.ReconciliationRejected, rejected.Status)
	suite.Equal("mismatch", rejected.RejectionReason)
	suite.Equal("Jane Checker", rejected.ApprovedBy)
	suite.NotNil(rejected.ApprovedAt)
	suite.Equal(domain.Unreconciled, suite.statusOf("bank-2"))
	suite.Equal(domain.Unreconciled, suite.statusOf("sys-2"))
}

func (suite *ReconciliationServiceTestSuite) TestRejectRequiresReason() {
	entry := suite.create("bank-2", "sys-2")

	for _, reason := range []string{"", "   "} {
		_, err := suite.service.RejectReconciliation(suite.ctx, checker, entry.ID, reason)
		suite.ErrorIs(err, apperrors.ErrValidation)
	}

	stored, err := suite.service.GetReconciliation(suite.ctx, entry.ID)
	suite.Require().NoError(err)
	suite.Equal(domain.ReconciliationPendingApproval, stored.Status)
	suite.Equal(domain.Pending, suite.statusOf("bank-2"))
}

func (suite *ReconciliationServiceTestSuite) TestTerminalEntriesCannotTransition() {
	approved := suite.create("bank-1", "sys-1")
	_, err := suite.service.ApproveReconciliation(suite.ctx, checker, approved.ID, "")
	suite.Require().NoError(err)

	_, err = suite.service.ApproveReconciliation(suite.ctx, checker, approved.ID, "")
	suite.ErrorIs(err, apperrors.ErrInvalidState)
	_, err = suite.service.RejectReconciliation(suite.ctx, checker, approved.ID, "late")
	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.Equal(domain.Reconciled, suite.statusOf("bank-1"), "a refused transition must not touch the lines")

	rejected := suite.create("bank-2", "sys-2")
	_, err = suite.service.RejectReconciliation(suite.ctx, checker, rejected.ID, "mismatch")
	suite.Require().NoError(err)
	_, err = suite.service.ApproveReconciliation(suite.ctx, checker, rejected.ID, "")
	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.Equal(domain.Unreconciled, suite.statusOf("sys-2"))
}

func (suite *ReconciliationServiceTestSuite) TestCreateValidation() {
	tests := []struct {
		name    string
		bankID  string
		sysID   string
		wantErr error
	}{
		{"missing bank id", "", "sys-1", apperrors.ErrValidation},
		{"unknown bank line", "bank-404", "sys-1", apperrors.ErrNotFound},
		{"unknown system line", "bank-1", "sys-404", apperrors.ErrNotFound},
		{"bank id points at system ledger", "sys-1", "sys-2", apperrors.ErrValidation},
		{"system id points at bank ledger", "bank-1", "bank-2", apperrors.ErrValidation},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.service.CreateReconciliation(suite.ctx, maker, dto.CreateReconciliationRequest{
				BankTransactionID: tt.bankID, SystemTransactionID: tt.sysID,
			})
			suite.ErrorIs(err, tt.wantErr)
		})
	}

	// Nothing was written by the failed attempts.
	suite.Equal(domain.Unreconciled, suite.statusOf("bank-1"))
	suite.Equal(domain.Unreconciled, suite.statusOf("sys-1"))
	entries, err := suite.service.ListReconciliations(suite.ctx, dto.ListReconciliationsParams{})
	suite.Require().NoError(err)
	suite.Empty(entries)
}

func (suite *ReconciliationServiceTestSuite) TestRePairingPendingOrReconciledLineRejected() {
	suite.create("bank-1", "sys-1")

	_, err := suite.service.CreateReconciliation(suite.ctx, maker, dto.CreateReconciliationRequest{
		BankTransactionID: "bank-1", SystemTransactionID: "sys-2",
	})
	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.Equal(domain.Unreconciled, suite.statusOf("sys-2"), "the other line must stay untouched")

	// After rejection both lines are free again.
	entries, err := suite.service.ListReconciliations(suite.ctx, dto.ListReconciliationsParams{})
	suite.Require().NoError(err)
	suite.Require().Len(entries, 1)
	_, err = suite.service.RejectReconciliation(suite.ctx, checker, entries[0].ID, "wrong pair")
	suite.Require().NoError(err)

	again := suite.create("bank-1", "sys-2")
	suite.Equal(domain.ReconciliationPendingApproval, again.Status)
}

func (suite *ReconciliationServiceTestSuite) TestRolePermissions() {
	_, err := suite.service.CreateReconciliation(suite.ctx, checker, dto.CreateReconciliationRequest{
		BankTransactionID: "bank-1", SystemTransactionID: "sys-1",
	})
	suite.ErrorIs(err, apperrors.ErrForbidden)

	entry := suite.create("bank-1", "sys-1")
	_, err = suite.service.ApproveReconciliation(suite.ctx, maker, entry.ID, "")
	suite.ErrorIs(err, apperrors.ErrForbidden)
	_, err = suite.service.RejectReconciliation(suite.ctx, maker, entry.ID, "no")
	suite.ErrorIs(err, apperrors.ErrForbidden)

	suite.Equal(domain.Pending, suite.statusOf("bank-1"))
}

func (suite *ReconciliationServiceTestSuite) TestUnknownEntry() {
	_, err := suite.service.ApproveReconciliation(suite.ctx, checker, "rec-404", "")
	suite.ErrorIs(err, apperrors.ErrNotFound)
	_, err = suite.service.RejectReconciliation(suite.ctx, checker, "rec-404", "reason")
	suite.ErrorIs(err, apperrors.ErrNotFound)
	_, err = suite.service.GetReconciliation(suite.ctx, "rec-404")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ReconciliationServiceTestSuite) TestListFiltersByStatus() {
	first := suite.create("bank-1", "sys-1")
	suite.create("bank-2", "sys-2")
	_, err := suite.service.ApproveReconciliation(suite.ctx, checker, first.ID, "")
	suite.Require().NoError(err)

	pending, err := suite.service.ListReconciliations(suite.ctx, dto.ListReconciliationsParams{Status: domain.ReconciliationPendingApproval})
	suite.Require().NoError(err)
	suite.Require().Len(pending, 1)
	suite.Equal("bank-2", pending[0].BankTransactionID)

	all, err := suite.service.ListReconciliations(suite.ctx, dto.ListReconciliationsParams{})
	suite.Require().NoError(err)
	suite.Len(all, 2)

	_, err = suite.service.ListReconciliations(suite.ctx, dto.ListReconciliationsParams{Status: "bogus"})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestReconciliationService(t *testing.T) {
	suite.Run(t, new(ReconciliationServiceTestSuite))
}
