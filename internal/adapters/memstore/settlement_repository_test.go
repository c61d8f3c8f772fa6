package memstore

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/puffpay/puffpay-backend/internal/apperrors"
	"github.com/puffpay/puffpay-backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type SettlementRepositoryTestSuite struct {
	suite.Suite
	store   *Store
	repo    *SettlementRepository
	invoice domain.Invoice
	client  domain.Client
	ctx     context.Context
}

func (s *SettlementRepositoryTestSuite) SetupTest() {
	s.store = NewStore()
	s.repo = NewSettlementRepository(s.store)
	s.ctx = context.Background()

	s.client = domain.Client{
		ClientID:  uuid.NewString(),
		Name:      "Acme Corp",
		Email:     "billing@acme.test",
		TotalPaid: decimal.Zero,
	}
	require.NoError(s.T(), NewClientRepository(s.store).SaveClient(s.ctx, s.client))

	s.invoice = domain.Invoice{
		InvoiceID: uuid.NewString(),
		ClientID:  s.client.ClientID,
		Number:    "INV-0001",
		Amount:    decimal.RequireFromString("500.00"),
		Status:    domain.InvoiceSent,
		DueDate:   time.Now().Add(7 * 24 * time.Hour),
	}
	require.NoError(s.T(), NewInvoiceRepository(s.store).SaveInvoice(s.ctx, s.invoice))
}

func (s *SettlementRepositoryTestSuite) settlementRecords() (domain.Invoice, domain.PaymentRecord, domain.Transaction) {
	paid := s.invoice
	paid.Status = domain.InvoicePaid
	payment := domain.PaymentRecord{
		PaymentID:     uuid.NewString(),
		ClientID:      s.client.ClientID,
		InvoiceID:     s.invoice.InvoiceID,
		InvoiceNumber: s.invoice.Number,
		Date:          time.Now(),
		Amount:        s.invoice.Amount,
		Status:        domain.PaymentPaid,
	}
	feedTxn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Title:         "Invoice INV-0001",
		Amount:        s.invoice.Amount,
		Type:          domain.Income,
		Category:      domain.CategoryInvoice,
	}
	return paid, payment, feedTxn
}

func (s *SettlementRepositoryTestSuite) TestSaveSettlement_Success() {
	paid, payment, feedTxn := s.settlementRecords()

	err := s.repo.SaveSettlement(s.ctx, paid, payment, feedTxn)
	require.NoError(s.T(), err)

	gotInv, err := NewInvoiceRepository(s.store).FindInvoiceByID(s.ctx, s.invoice.InvoiceID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), domain.InvoicePaid, gotInv.Status)

	gotPay, err := NewPaymentRepository(s.store).FindPaymentByInvoiceID(s.ctx, s.invoice.InvoiceID)
	require.NoError(s.T(), err)
	assert.True(s.T(), gotPay.Amount.Equal(s.invoice.Amount))

	gotClient, err := NewClientRepository(s.store).FindClientByID(s.ctx, s.client.ClientID)
	require.NoError(s.T(), err)
	assert.True(s.T(), gotClient.TotalPaid.Equal(s.invoice.Amount))

	feed, err := NewTransactionRepository(s.store).ListTransactions(s.ctx, 10, 0)
	require.NoError(s.T(), err)
	require.Len(s.T(), feed, 1)
	assert.Equal(s.T(), domain.CategoryInvoice, feed[0].Category)
}

func (s *SettlementRepositoryTestSuite) TestSaveSettlement_AlreadyPaid() {
	paid, payment, feedTxn := s.settlementRecords()
	require.NoError(s.T(), s.repo.SaveSettlement(s.ctx, paid, payment, feedTxn))

	_, payment2, feedTxn2 := s.settlementRecords()
	err := s.repo.SaveSettlement(s.ctx, paid, payment2, feedTxn2)
	assert.ErrorIs(s.T(), err, apperrors.ErrInvalidTransition)

	// No partial writes from the rejected attempt.
	gotClient, err := NewClientRepository(s.store).FindClientByID(s.ctx, s.client.ClientID)
	require.NoError(s.T(), err)
	assert.True(s.T(), gotClient.TotalPaid.Equal(s.invoice.Amount))
	feed, _ := NewTransactionRepository(s.store).ListTransactions(s.ctx, 10, 0)
	assert.Len(s.T(), feed, 1)
}

func (s *SettlementRepositoryTestSuite) TestSaveSettlement_UnknownClientWritesNothing() {
	paid, payment, feedTxn := s.settlementRecords()
	paid.ClientID = uuid.NewString()

	err := s.repo.SaveSettlement(s.ctx, paid, payment, feedTxn)
	assert.ErrorIs(s.T(), err, apperrors.ErrNotFound)

	gotInv, err := NewInvoiceRepository(s.store).FindInvoiceByID(s.ctx, s.invoice.InvoiceID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), domain.InvoiceSent, gotInv.Status)
	feed, _ := NewTransactionRepository(s.store).ListTransactions(s.ctx, 10, 0)
	assert.Empty(s.T(), feed)
}

func (s *SettlementRepositoryTestSuite) TestSaveSettlement_ConcurrentOneWinner() {
	const attempts = 16
	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		paid, payment, feedTxn := s.settlementRecords()
		wg.Add(1)
		go func(i int, inv domain.Invoice, pay domain.PaymentRecord, txn domain.Transaction) {
			defer wg.Done()
			errs[i] = s.repo.SaveSettlement(s.ctx, inv, pay, txn)
		}(i, paid, payment, feedTxn)
	}
	wg.Wait()

	var winners int
	for _, err := range errs {
		if err == nil {
			winners++
		} else {
			assert.ErrorIs(s.T(), err, apperrors.ErrInvalidTransition)
		}
	}
	assert.Equal(s.T(), 1, winners)

	gotClient, err := NewClientRepository(s.store).FindClientByID(s.ctx, s.client.ClientID)
	require.NoError(s.T(), err)
	assert.True(s.T(), gotClient.TotalPaid.Equal(s.invoice.Amount))
}

func TestSettlementRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SettlementRepositoryTestSuite))
}
