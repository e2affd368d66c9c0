package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/recon_workbench/internal/adapters/memory"
	"github.com/SscSPs/recon_workbench/internal/apperrors"
	"github.com/SscSPs/recon_workbench/internal/core/domain"
	portssvc "github.com/SscSPs/recon_workbench/internal/core/ports/services"
	"github.com/SscSPs/recon_workbench/internal/core/services"
	"github.com/SscSPs/recon_workbench/internal/dto"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	store   *memory.Store
	service portssvc.TransactionSvcFacade
	ctx     context.Context
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.store = newSeededStore(suite.T())
	suite.service = services.NewTransactionService(suite.store, testOptions("txn")...)
	suite.ctx = context.Background()
}

func validCreateReq() dto.CreateTransactionRequest {
	return dto.CreateTransactionRequest{
		Date:        dto.CalendarDate{Time: time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC)},
		Amount:      decimal.RequireFromString("512.34"),
		Description: "Manual adjustment",
		Type:        domain.Debit,
		Reference:   "ADJ-1",
		Source:      domain.SourceSystem,
	}
}

func (suite *TransactionServiceTestSuite) TestAddIndividualTransactionKeepsCalendarDay() {
	req := validCreateReq()
	req.Date = dto.CalendarDate{Time: time.Date(2024, 3, 18, 23, 30, 0, 0, time.FixedZone("est", -5*60*60))}

	txn, err := suite.service.AddIndividualTransaction(suite.ctx, maker, req)
	suite.Require().NoError(err)
	suite.Equal(time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC), txn.Date)
}

func (suite *TransactionServiceTestSuite) TestAddIndividualTransaction() {
	txn, err := suite.service.AddIndividualTransaction(suite.ctx, maker, validCreateReq())
	suite.Require().NoError(err)

	suite.Equal("txn-1", txn.ID)
	suite.Equal(domain.Unreconciled, txn.Status)
	suite.Equal(domain.SourceSystem, txn.Source)

	system, err := suite.service.ListTransactions(suite.ctx, dto.ListTransactionsParams{Source: domain.SourceSystem})
	suite.Require().NoError(err)
	suite.Len(system, 8)
	suite.Equal("txn-1", system[len(system)-1].ID, "appended at the end of its ledger")

	got, err := suite.service.GetTransaction(suite.ctx, "txn-1")
	suite.Require().NoError(err)
	suite.True(got.Amount.Equal(decimal.RequireFromString("512.34")))
}

func (suite *TransactionServiceTestSuite) TestAddIndividualTransactionValidation() {
	tests := []struct {
		name    string
		actor   domain.Actor
		mutate  func(*dto.CreateTransactionRequest)
		wantErr error
	}{
		{"checker forbidden", checker, func(*dto.CreateTransactionRequest) {}, apperrors.ErrForbidden},
		{"zero amount", maker, func(r *dto.CreateTransactionRequest) { r.Amount = decimal.Zero }, apperrors.ErrValidation},
		{"negative amount", maker, func(r *dto.CreateTransactionRequest) { r.Amount = decimal.NewFromInt(-3) }, apperrors.ErrValidation},
		{"three decimals", maker, func(r *dto.CreateTransactionRequest) { r.Amount = decimal.RequireFromString("0.125") }, apperrors.ErrValidation},
		{"missing description", maker, func(r *dto.CreateTransactionRequest) { r.Description = "" }, apperrors.ErrValidation},
		{"bad type", maker, func(r *dto.CreateTransactionRequest) { r.Type = "refund" }, apperrors.ErrValidation},
		{"bad source", maker, func(r *dto.CreateTransactionRequest) { r.Source = "cash" }, apperrors.ErrValidation},
		{"missing date", maker, func(r *dto.CreateTransactionRequest) { r.Date = dto.CalendarDate{} }, apperrors.ErrValidation},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			req := validCreateReq()
			tt.mutate(&req)
			_, err := suite.service.AddIndividualTransaction(suite.ctx, tt.actor, req)
			suite.ErrorIs(err, tt.wantErr)
		})
	}
}

func (suite *TransactionServiceTestSuite) TestListAndGet() {
	all, err := suite.service.ListTransactions(suite.ctx, dto.ListTransactionsParams{})
	suite.Require().NoError(err)
	suite.Len(all, 12)

	none, err := suite.service.ListTransactions(suite.ctx, dto.ListTransactionsParams{Status: domain.Reconciled})
	suite.Require().NoError(err)
	suite.NotNil(none)
	suite.Empty(none)

	_, err = suite.service.ListTransactions(suite.ctx, dto.ListTransactionsParams{Status: "lost"})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.GetTransaction(suite.ctx, "nope")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestTransactionService(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
