package services

import (
	"context"

	"github.com/puffpay/puffpay-backend/internal/core/domain"
	"github.com/puffpay/puffpay-backend/internal/dto"
)

// InvoiceReaderSvc defines read operations for invoice data
type InvoiceReaderSvc interface {
	// GetInvoiceByID retrieves a specific invoice by its unique identifier.
	GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoices retrieves invoices, optionally filtered by display status
	// (including the derived OVERDUE).
	ListInvoices(ctx context.Context, params dto.ListInvoicesParams) ([]domain.Invoice, error)
}

// InvoiceWriterSvc defines lifecycle operations for invoices
type InvoiceWriterSvc interface {
	// CreateInvoice creates a new invoice in DRAFT, or directly SENT.
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, creatorUserID string) (*domain.Invoice, error)

	// SendInvoice transitions a DRAFT invoice to SENT.
	SendInvoice(ctx context.Context, invoiceID string, userID string) (*domain.Invoice, error)

	// DeleteInvoice hard-removes an invoice. Deleting a PAID invoice is
	// refused; its payment record and totals stay intact.
	DeleteInvoice(ctx context.Context, invoiceID string, userID string) error
}

// InvoiceSvcFacade combines all invoice-related service interfaces
type InvoiceSvcFacade interface {
	InvoiceReaderSvc
	InvoiceWriterSvc
}
