package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/puffpay/puffpay-backend/internal/adapters/memstore"
	"github.com/puffpay/puffpay-backend/internal/apperrors"
	"github.com/puffpay/puffpay-backend/internal/core/domain"
	portsrepo "github.com/puffpay/puffpay-backend/internal/core/ports/repositories"
	portssvc "github.com/puffpay/puffpay-backend/internal/core/ports/services"
	"github.com/puffpay/puffpay-backend/internal/core/services"
	"github.com/puffpay/puffpay-backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReconciliationServiceTestSuite struct {
	suite.Suite
	ctx         context.Context
	repos       *portsrepo.RepositoryProvider
	mockBalance *MockBalanceService
	service     portssvc.ReconciliationSvcFacade

	userID  string
	client  domain.Client
	invoice domain.Invoice
}

func (suite *ReconciliationServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.repos = memstore.NewRepositoryProvider(memstore.NewStore())
	suite.mockBalance = new(MockBalanceService)
	suite.service = services.NewReconciliationService(
		suite.repos.InvoiceRepo,
		suite.repos.ClientRepo,
		suite.repos.SettlementRepo,
		suite.mockBalance,
	)

	suite.userID = uuid.NewString()

	clientSvc := services.NewClientService(suite.repos.ClientRepo)
	created, err := clientSvc.CreateClient(suite.ctx, dto.CreateClientRequest{
		Name:  "Acme Corp",
		Email: "billing@acme.test",
	}, suite.userID)
	suite.Require().NoError(err)
	suite.client = *created

	invoiceSvc := services.NewInvoiceService(suite.repos.InvoiceRepo, suite.repos.ClientRepo)
	inv, err := invoiceSvc.CreateInvoice(suite.ctx, dto.CreateInvoiceRequest{
		ClientID: suite.client.ClientID,
		Amount:   decimal.RequireFromString("500.00"),
		DueDate:  time.Now().Add(14 * 24 * time.Hour),
	}, suite.userID)
	suite.Require().NoError(err)
	suite.invoice = *inv
}

func (suite *ReconciliationServiceTestSuite) TestSettleInvoice_Success() {
	amount := suite.invoice.Amount
	suite.mockBalance.On("ApplyProvisionalCredit", mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(amount)
	})).Return(domain.BalanceSnapshot{Amount: amount}).Once()

	outcome, err := suite.service.SettleInvoice(suite.ctx, suite.invoice.InvoiceID, "", suite.userID)
	suite.Require().NoError(err)
	suite.Require().NotNil(outcome)

	suite.Equal(domain.InvoicePaid, outcome.Invoice.Status)
	suite.True(outcome.Client.TotalPaid.Equal(amount))
	suite.True(outcome.Balance.Amount.Equal(amount))

	payment, err := suite.repos.PaymentRepo.FindPaymentByInvoiceID(suite.ctx, suite.invoice.InvoiceID)
	suite.Require().NoError(err)
	suite.Equal(suite.invoice.Number, payment.InvoiceNumber)
	suite.True(payment.Amount.Equal(amount))
	suite.Equal(domain.PaymentPaid, payment.Status)

	feed, err := suite.repos.TransactionRepo.ListTransactions(suite.ctx, 10, 0)
	suite.Require().NoError(err)
	suite.Require().Len(feed, 1)
	suite.Equal(domain.Income, feed[0].Type)
	suite.Equal(domain.CategoryInvoice, feed[0].Category)
	suite.Equal("Invoice "+suite.invoice.Number, feed[0].Title)
	suite.Equal(suite.client.Name, feed[0].Subtitle)

	suite.mockBalance.AssertExpectations(suite.T())
}

func (suite *ReconciliationServiceTestSuite) TestSettleInvoice_RecordsTxHash() {
	const txHash = "0x9f2c4e8a1b7d3f6c0e5a8d2b4f7c1e9a3d6b0f8c2e5a7d1b4f6c9e3a8d2b5f7c"
	suite.mockBalance.On("ApplyProvisionalCredit", mock.Anything).Return(domain.BalanceSnapshot{}).Once()

	outcome, err := suite.service.SettleInvoice(suite.ctx, suite.invoice.InvoiceID, txHash, suite.userID)
	suite.Require().NoError(err)
	suite.Equal(txHash, outcome.Invoice.SettlementTxHash)

	// The stored invoice carries the hash too, not just the returned view.
	stored, err := suite.repos.InvoiceRepo.FindInvoiceByID(suite.ctx, suite.invoice.InvoiceID)
	suite.Require().NoError(err)
	suite.Equal(txHash, stored.SettlementTxHash)
	suite.Equal(domain.InvoicePaid, stored.Status)
}

func (suite *ReconciliationServiceTestSuite) TestSettleInvoice_MalformedTxHashRejected() {
	_, err := suite.service.SettleInvoice(suite.ctx, suite.invoice.InvoiceID, "0xnothex", suite.userID)
	suite.ErrorIs(err, apperrors.ErrValidation)

	// The invoice is untouched by the rejected attempt.
	stored, err := suite.repos.InvoiceRepo.FindInvoiceByID(suite.ctx, suite.invoice.InvoiceID)
	suite.Require().NoError(err)
	suite.Equal(domain.InvoiceSent, stored.Status)
}

func (suite *ReconciliationServiceTestSuite) TestSettleInvoice_AlreadyPaid() {
	suite.mockBalance.On("ApplyProvisionalCredit", mock.Anything).Return(domain.BalanceSnapshot{}).Once()
	_, err := suite.service.SettleInvoice(suite.ctx, suite.invoice.InvoiceID, "", suite.userID)
	suite.Require().NoError(err)

	_, err = suite.service.SettleInvoice(suite.ctx, suite.invoice.InvoiceID, "", suite.userID)
	suite.ErrorIs(err, apperrors.ErrInvalidTransition)

	// Totals unchanged by the rejected attempt.
	client, err := suite.repos.ClientRepo.FindClientByID(suite.ctx, suite.client.ClientID)
	suite.Require().NoError(err)
	suite.True(client.TotalPaid.Equal(suite.invoice.Amount))
	feed, _ := suite.repos.TransactionRepo.ListTransactions(suite.ctx, 10, 0)
	suite.Len(feed, 1)
}

func (suite *ReconciliationServiceTestSuite) TestSettleInvoice_DraftRejected() {
	invoiceSvc := services.NewInvoiceService(suite.repos.InvoiceRepo, suite.repos.ClientRepo)
	draft, err := invoiceSvc.CreateInvoice(suite.ctx, dto.CreateInvoiceRequest{
		ClientID: suite.client.ClientID,
		Amount:   decimal.RequireFromString("100.00"),
		DueDate:  time.Now().Add(24 * time.Hour),
		AsDraft:  true,
	}, suite.userID)
	suite.Require().NoError(err)

	_, err = suite.service.SettleInvoice(suite.ctx, draft.InvoiceID, "", suite.userID)
	suite.ErrorIs(err, apperrors.ErrInvalidTransition)
}

func (suite *ReconciliationServiceTestSuite) TestSettleInvoice_NotFound() {
	_, err := suite.service.SettleInvoice(suite.ctx, uuid.NewString(), "", suite.userID)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ReconciliationServiceTestSuite) TestSettleInvoice_ConcurrentOneWinner() {
	suite.mockBalance.On("ApplyProvisionalCredit", mock.Anything).Return(domain.BalanceSnapshot{}).Once()

	const attempts = 8
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = suite.service.SettleInvoice(suite.ctx, suite.invoice.InvoiceID, "", suite.userID)
		}(i)
	}
	wg.Wait()

	var winners int
	for _, err := range errs {
		if err == nil {
			winners++
		} else {
			suite.ErrorIs(err, apperrors.ErrInvalidTransition)
		}
	}
	suite.Equal(1, winners)

	client, err := suite.repos.ClientRepo.FindClientByID(suite.ctx, suite.client.ClientID)
	suite.Require().NoError(err)
	suite.True(client.TotalPaid.Equal(suite.invoice.Amount))
	suite.mockBalance.AssertExpectations(suite.T())
}

func (suite *ReconciliationServiceTestSuite) TestSettleInvoice_TotalPaidMatchesPayments() {
	suite.mockBalance.On("ApplyProvisionalCredit", mock.Anything).Return(domain.BalanceSnapshot{}).Twice()

	invoiceSvc := services.NewInvoiceService(suite.repos.InvoiceRepo, suite.repos.ClientRepo)
	second, err := invoiceSvc.CreateInvoice(suite.ctx, dto.CreateInvoiceRequest{
		ClientID: suite.client.ClientID,
		Amount:   decimal.RequireFromString("250.50"),
		DueDate:  time.Now().Add(24 * time.Hour),
	}, suite.userID)
	suite.Require().NoError(err)

	_, err = suite.service.SettleInvoice(suite.ctx, suite.invoice.InvoiceID, "", suite.userID)
	suite.Require().NoError(err)
	_, err = suite.service.SettleInvoice(suite.ctx, second.InvoiceID, "", suite.userID)
	suite.Require().NoError(err)

	payments, err := suite.repos.PaymentRepo.ListPaymentsByClientID(suite.ctx, suite.client.ClientID)
	suite.Require().NoError(err)
	sum := decimal.Zero
	for _, p := range payments {
		sum = sum.Add(p.Amount)
	}

	client, err := suite.repos.ClientRepo.FindClientByID(suite.ctx, suite.client.ClientID)
	suite.Require().NoError(err)
	suite.True(client.TotalPaid.Equal(sum))
}

func TestReconciliationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReconciliationServiceTestSuite))
}
