package services

import (
	"context"

	"github.com/puffpay/puffpay-backend/internal/core/domain"
	"github.com/puffpay/puffpay-backend/internal/dto"
)

// PaymentReaderSvc defines read operations for the payment ledger
type PaymentReaderSvc interface {
	// ListPayments retrieves a paginated list of payment records.
	ListPayments(ctx context.Context, params dto.ListPaymentsParams) ([]domain.PaymentRecord, error)
}

// TransactionReaderSvc defines read operations for the activity feed
type TransactionReaderSvc interface {
	// ListTransactions retrieves a paginated list of feed entries.
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, error)
}

// ActivitySvcFacade combines the read-only history interfaces
type ActivitySvcFacade interface {
	PaymentReaderSvc
	TransactionReaderSvc
}
