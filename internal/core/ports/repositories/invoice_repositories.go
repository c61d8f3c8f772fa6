package repositories

import (
	"context"

	"github.com/puffpay/puffpay-backend/internal/core/domain"
)

// InvoiceReader defines read operations for invoice data
type InvoiceReader interface {
	// FindInvoiceByID retrieves a specific invoice by its unique identifier.
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoices retrieves a paginated list of invoices, newest first.
	ListInvoices(ctx context.Context, limit int, offset int) ([]domain.Invoice, error)
}

// InvoiceWriter defines write operations for invoice data
type InvoiceWriter interface {
	// SaveInvoice persists a new invoice.
	SaveInvoice(ctx context.Context, invoice domain.Invoice) error

	// UpdateInvoice updates an existing invoice's details.
	UpdateInvoice(ctx context.Context, invoice domain.Invoice) error

	// DeleteInvoice removes an invoice. Hard removal; the invoice number is
	// never reused.
	DeleteInvoice(ctx context.Context, invoiceID string) error

	// NextInvoiceNumber returns the next value of the strictly increasing
	// invoice number sequence. The sequence survives deletions.
	NextInvoiceNumber(ctx context.Context) (int64, error)
}

// InvoiceRepositoryFacade combines all invoice-related repository interfaces
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}
