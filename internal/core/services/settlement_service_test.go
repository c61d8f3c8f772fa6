package services_test

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"testing"

	"github.com/puffpay/puffpay-backend/internal/adapters/memstore"
	"github.com/puffpay/puffpay-backend/internal/apperrors"
	"github.com/puffpay/puffpay-backend/internal/core/domain"
	"github.com/puffpay/puffpay-backend/internal/core/ports/ledger"
	portssvc "github.com/puffpay/puffpay-backend/internal/core/ports/services"
	"github.com/puffpay/puffpay-backend/internal/core/services"
	"github.com/puffpay/puffpay-backend/internal/dto"
	"github.com/puffpay/puffpay-backend/internal/utils/tip20"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const testDestination = "0x1234567890abcdef1234567890abcdef12345678"

type SettlementServiceTestSuite struct {
	suite.Suite
	ctx         context.Context
	store       *memstore.Store
	mockLedger  *MockTokenLedgerClient
	mockBalance *MockBalanceService
	service     portssvc.SettlementSvcFacade
}

func (suite *SettlementServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.store = memstore.NewStore()
	suite.mockLedger = new(MockTokenLedgerClient)
	suite.mockBalance = new(MockBalanceService)
	suite.mockBalance.On("Refresh", mock.Anything).Return(domain.BalanceSnapshot{}, nil).Maybe()
	suite.service = services.NewSettlementService(
		suite.mockLedger,
		memstore.NewTransactionRepository(suite.store),
		suite.mockBalance,
		6,
	)
}

func (suite *SettlementServiceTestSuite) TestSendPayment_WithMemo() {
	wantMemo := tip20.EncodeMemo("Invoice INV-0001")
	suite.mockLedger.On("TransferWithMemo", mock.Anything, testDestination, big.NewInt(1_250_000), wantMemo).
		Return("0xabc123", nil).Once()

	txHash, err := suite.service.SendPayment(suite.ctx, dto.SendPaymentRequest{
		To:     testDestination,
		Amount: "1.25",
		Memo:   "Invoice INV-0001",
	})
	suite.Require().NoError(err)
	suite.Equal("0xabc123", txHash)
	suite.Equal("0xabc123", suite.service.LastTxHash())
	suite.NoError(suite.service.LastError())
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *SettlementServiceTestSuite) TestSendPayment_EmptyMemoSendsZeroBytes() {
	var zeroMemo [tip20.MemoSize]byte
	suite.mockLedger.On("TransferWithMemo", mock.Anything, testDestination, big.NewInt(500_000_000), zeroMemo).
		Return("0xdef456", nil).Once()

	txHash, err := suite.service.SendPayment(suite.ctx, dto.SendPaymentRequest{
		To:     testDestination,
		Amount: "500",
	})
	suite.Require().NoError(err)
	suite.Equal("0xdef456", txHash)
	suite.mockLedger.AssertNotCalled(suite.T(), "Transfer", mock.Anything, mock.Anything, mock.Anything)
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *SettlementServiceTestSuite) TestSendPayment_InvalidAddress() {
	_, err := suite.service.SendPayment(suite.ctx, dto.SendPaymentRequest{
		To:     "not-an-address",
		Amount: "1",
	})
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockLedger.AssertNotCalled(suite.T(), "TransferWithMemo", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SettlementServiceTestSuite) TestSendPayment_TooManyDecimalPlaces() {
	_, err := suite.service.SendPayment(suite.ctx, dto.SendPaymentRequest{
		To:     testDestination,
		Amount: "0.0000001",
	})
	suite.ErrorIs(err, apperrors.ErrPrecision)
	suite.mockLedger.AssertNotCalled(suite.T(), "TransferWithMemo", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SettlementServiceTestSuite) TestSendPayment_LedgerFailureStored() {
	ledgerErr := errors.New("provider unavailable")
	suite.mockLedger.On("TransferWithMemo", mock.Anything, testDestination, mock.Anything, mock.Anything).
		Return("", ledgerErr).Once()

	_, err := suite.service.SendPayment(suite.ctx, dto.SendPaymentRequest{
		To:     testDestination,
		Amount: "1",
	})
	suite.Require().Error(err)
	suite.ErrorIs(suite.service.LastError(), ledgerErr)
	suite.Empty(suite.service.LastTxHash())

	// Nothing written to the feed on failure.
	feed, _ := memstore.NewTransactionRepository(suite.store).ListTransactions(suite.ctx, 10, 0)
	suite.Empty(feed)
}

func (suite *SettlementServiceTestSuite) TestSendPayment_SingleFlight() {
	release := make(chan struct{})
	started := make(chan struct{})
	suite.mockLedger.On("TransferWithMemo", mock.Anything, testDestination, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			close(started)
			<-release
		}).
		Return("0xslow", nil).Once()

	var wg sync.WaitGroup
	wg.Add(1)
	var firstErr error
	go func() {
		defer wg.Done()
		_, firstErr = suite.service.SendPayment(suite.ctx, dto.SendPaymentRequest{To: testDestination, Amount: "1"})
	}()

	<-started
	_, secondErr := suite.service.SendPayment(suite.ctx, dto.SendPaymentRequest{To: testDestination, Amount: "2"})
	suite.ErrorIs(secondErr, apperrors.ErrAlreadyInProgress)

	close(release)
	wg.Wait()
	suite.NoError(firstErr)
	suite.mockLedger.AssertNumberOfCalls(suite.T(), "TransferWithMemo", 1)

	// A later transfer is accepted once the first completes.
	suite.mockLedger.On("TransferWithMemo", mock.Anything, testDestination, mock.Anything, mock.Anything).
		Return("0xnext", nil).Once()
	_, err := suite.service.SendPayment(suite.ctx, dto.SendPaymentRequest{To: testDestination, Amount: "3"})
	suite.NoError(err)
}

func (suite *SettlementServiceTestSuite) TestWithdraw_AppendsExpense() {
	suite.mockLedger.On("TransferWithMemo", mock.Anything, testDestination, big.NewInt(10_000_000), mock.Anything).
		Return("0xw1", nil).Once()

	txn, txHash, err := suite.service.Withdraw(suite.ctx, dto.WithdrawRequest{
		To:     testDestination,
		Amount: "10",
	}, "user-1")
	suite.Require().NoError(err)
	suite.Equal("0xw1", txHash)
	suite.Equal(domain.Expense, txn.Type)
	suite.Equal(domain.CategoryWithdrawal, txn.Category)
	suite.True(txn.Amount.Equal(decimal.NewFromInt(10)))

	feed, _ := memstore.NewTransactionRepository(suite.store).ListTransactions(suite.ctx, 10, 0)
	suite.Require().Len(feed, 1)
	suite.Equal(domain.CategoryWithdrawal, feed[0].Category)
}

func (suite *SettlementServiceTestSuite) TestWithdraw_InvalidAmount() {
	_, _, err := suite.service.Withdraw(suite.ctx, dto.WithdrawRequest{
		To:     testDestination,
		Amount: "not-a-number",
	}, "user-1")
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockLedger.AssertNotCalled(suite.T(), "TransferWithMemo", mock.Anything, mock.Anything, mock.Anything, mock.Anything)

	feed, _ := memstore.NewTransactionRepository(suite.store).ListTransactions(suite.ctx, 10, 0)
	suite.Empty(feed)
}

func (suite *SettlementServiceTestSuite) TestRecordDeposit() {
	txn, err := suite.service.RecordDeposit(suite.ctx, dto.RecordDepositRequest{
		Amount: decimal.RequireFromString("42.50"),
		Note:   "Bank transfer",
	}, "user-1")
	suite.Require().NoError(err)
	suite.Equal(domain.Income, txn.Type)
	suite.Equal(domain.CategoryDeposit, txn.Category)

	_, err = suite.service.RecordDeposit(suite.ctx, dto.RecordDepositRequest{
		Amount: decimal.Zero,
	}, "user-1")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestSettlementServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SettlementServiceTestSuite))
}

var _ ledger.TokenLedgerClient = (*MockTokenLedgerClient)(nil)
