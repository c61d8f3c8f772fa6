package repositories

import (
	"context"

	"github.com/puffpay/puffpay-backend/internal/core/domain"
)

// PaymentReader defines read operations for the append-only payment ledger.
// Payment records are created only through the settlement write; there is no
// standalone writer interface.
type PaymentReader interface {
	// FindPaymentByInvoiceID retrieves the payment record for an invoice, if any.
	FindPaymentByInvoiceID(ctx context.Context, invoiceID string) (*domain.PaymentRecord, error)

	// ListPayments retrieves a paginated list of payment records, newest first.
	ListPayments(ctx context.Context, limit int, offset int) ([]domain.PaymentRecord, error)

	// ListPaymentsByClientID retrieves all payment records referencing a client.
	ListPaymentsByClientID(ctx context.Context, clientID string) ([]domain.PaymentRecord, error)
}

// PaymentRepositoryFacade combines all payment-related repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
}
