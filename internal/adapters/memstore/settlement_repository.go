package memstore

import (
	"context"
	"fmt"

	"github.com/puffpay/puffpay-backend/internal/apperrors"
	"github.com/puffpay/puffpay-backend/internal/core/domain"
	"github.com/puffpay/puffpay-backend/internal/core/ports/repositories"
)

// SettlementRepository implements repositories.SettlementWriter over the
// shared store. The whole settlement is validated and applied under one
// write lock, so it either fully commits or leaves the store untouched.
type SettlementRepository struct {
	store *Store
}

// NewSettlementRepository creates a new settlement writer over the store.
func NewSettlementRepository(store *Store) *SettlementRepository {
	return &SettlementRepository{store: store}
}

var _ repositories.SettlementWriter = (*SettlementRepository)(nil)

func (r *SettlementRepository) SaveSettlement(_ context.Context, invoice domain.Invoice, payment domain.PaymentRecord, feedTxn domain.Transaction) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	// Validate everything first; nothing is written until all checks pass.
	current, exists := r.store.invoices[invoice.InvoiceID]
	if !exists {
		return fmt.Errorf("invoice %s: %w", invoice.InvoiceID, apperrors.ErrNotFound)
	}
	if current.Status == domain.InvoicePaid {
		return fmt.Errorf("invoice %s is already paid: %w", invoice.InvoiceID, apperrors.ErrInvalidTransition)
	}
	client, exists := r.store.clients[invoice.ClientID]
	if !exists {
		return fmt.Errorf("client %s: %w", invoice.ClientID, apperrors.ErrNotFound)
	}
	if _, exists := r.store.paymentByInvoice[invoice.InvoiceID]; exists {
		return fmt.Errorf("invoice %s already has a payment record: %w", invoice.InvoiceID, apperrors.ErrDuplicate)
	}

	r.store.invoices[invoice.InvoiceID] = invoice

	r.store.payments[payment.PaymentID] = payment
	r.store.paymentOrder = append(r.store.paymentOrder, payment.PaymentID)
	r.store.paymentByInvoice[payment.InvoiceID] = payment.PaymentID

	r.store.transactions = append(r.store.transactions, feedTxn)

	client.TotalPaid = client.TotalPaid.Add(payment.Amount)
	client.LastUpdatedAt = invoice.LastUpdatedAt
	client.LastUpdatedBy = invoice.LastUpdatedBy
	r.store.clients[invoice.ClientID] = client

	return nil
}
