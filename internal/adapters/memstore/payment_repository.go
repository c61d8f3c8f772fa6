package memstore

import (
	"context"
	"fmt"

	"github.com/puffpay/puffpay-backend/internal/apperrors"
	"github.com/puffpay/puffpay-backend/internal/core/domain"
	"github.com/puffpay/puffpay-backend/internal/core/ports/repositories"
)

// PaymentRepository implements repositories.PaymentRepositoryFacade over the
// shared store. Writes happen only through the settlement repository.
type PaymentRepository struct {
	store *Store
}

// NewPaymentRepository creates a new payment repository view.
func NewPaymentRepository(store *Store) *PaymentRepository {
	return &PaymentRepository{store: store}
}

var _ repositories.PaymentRepositoryFacade = (*PaymentRepository)(nil)

func (r *PaymentRepository) FindPaymentByInvoiceID(_ context.Context, invoiceID string) (*domain.PaymentRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	paymentID, ok := r.store.paymentByInvoice[invoiceID]
	if !ok {
		return nil, fmt.Errorf("payment for invoice %s: %w", invoiceID, apperrors.ErrNotFound)
	}
	payment := r.store.payments[paymentID]
	return &payment, nil
}

func (r *PaymentRepository) ListPayments(_ context.Context, limit int, offset int) ([]domain.PaymentRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	ids := pageReversed(r.store.paymentOrder, limit, offset)
	out := make([]domain.PaymentRecord, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.store.payments[id])
	}
	return out, nil
}

func (r *PaymentRepository) ListPaymentsByClientID(_ context.Context, clientID string) ([]domain.PaymentRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var out []domain.PaymentRecord
	for i := len(r.store.paymentOrder) - 1; i >= 0; i-- {
		payment := r.store.payments[r.store.paymentOrder[i]]
		if payment.ClientID == clientID {
			out = append(out, payment)
		}
	}
	return out, nil
}
