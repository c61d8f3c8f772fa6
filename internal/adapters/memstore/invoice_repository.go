package memstore

import (
	"context"
	"fmt"

	"github.com/puffpay/puffpay-backend/internal/apperrors"
	"github.com/puffpay/puffpay-backend/internal/core/domain"
	"github.com/puffpay/puffpay-backend/internal/core/ports/repositories"
)

// InvoiceRepository implements repositories.InvoiceRepositoryFacade over the
// shared store.
type InvoiceRepository struct {
	store *Store
}

// NewInvoiceRepository creates a new invoice repository view.
func NewInvoiceRepository(store *Store) *InvoiceRepository {
	return &InvoiceRepository{store: store}
}

var _ repositories.InvoiceRepositoryFacade = (*InvoiceRepository)(nil)

func (r *InvoiceRepository) FindInvoiceByID(_ context.Context, invoiceID string) (*domain.Invoice, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	inv, ok := r.store.invoices[invoiceID]
	if !ok {
		return nil, fmt.Errorf("invoice %s: %w", invoiceID, apperrors.ErrNotFound)
	}
	return &inv, nil
}

func (r *InvoiceRepository) ListInvoices(_ context.Context, limit int, offset int) ([]domain.Invoice, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	ids := pageReversed(r.store.invoiceOrder, limit, offset)
	out := make([]domain.Invoice, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.store.invoices[id])
	}
	return out, nil
}

func (r *InvoiceRepository) SaveInvoice(_ context.Context, invoice domain.Invoice) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.invoices[invoice.InvoiceID]; exists {
		return fmt.Errorf("invoice %s: %w", invoice.InvoiceID, apperrors.ErrDuplicate)
	}
	r.store.invoices[invoice.InvoiceID] = invoice
	r.store.invoiceOrder = append(r.store.invoiceOrder, invoice.InvoiceID)
	return nil
}

func (r *InvoiceRepository) UpdateInvoice(_ context.Context, invoice domain.Invoice) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.invoices[invoice.InvoiceID]; !exists {
		return fmt.Errorf("invoice %s: %w", invoice.InvoiceID, apperrors.ErrNotFound)
	}
	r.store.invoices[invoice.InvoiceID] = invoice
	return nil
}

func (r *InvoiceRepository) DeleteInvoice(_ context.Context, invoiceID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.invoices[invoiceID]; !exists {
		return fmt.Errorf("invoice %s: %w", invoiceID, apperrors.ErrNotFound)
	}
	delete(r.store.invoices, invoiceID)
	for i, id := range r.store.invoiceOrder {
		if id == invoiceID {
			r.store.invoiceOrder = append(r.store.invoiceOrder[:i], r.store.invoiceOrder[i+1:]...)
			break
		}
	}
	return nil
}

// NextInvoiceNumber advances the sequence even if the caller later fails to
// save; gaps are acceptable, reuse is not.
func (r *InvoiceRepository) NextInvoiceNumber(_ context.Context) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.invoiceSeq++
	return r.store.invoiceSeq, nil
}
