package memstore

import (
	"context"

	"github.com/puffpay/puffpay-backend/internal/core/domain"
	"github.com/puffpay/puffpay-backend/internal/core/ports/repositories"
)

// TransactionRepository implements repositories.TransactionRepositoryFacade
// over the shared store.
type TransactionRepository struct {
	store *Store
}

// NewTransactionRepository creates a new activity feed repository view.
func NewTransactionRepository(store *Store) *TransactionRepository {
	return &TransactionRepository{store: store}
}

var _ repositories.TransactionRepositoryFacade = (*TransactionRepository)(nil)

func (r *TransactionRepository) ListTransactions(_ context.Context, limit int, offset int) ([]domain.Transaction, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	n := len(r.store.transactions)
	if offset >= n {
		return nil, nil
	}
	capHint := limit
	if capHint > n-offset {
		capHint = n - offset
	}
	out := make([]domain.Transaction, 0, capHint)
	for i := n - 1 - offset; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.store.transactions[i])
	}
	return out, nil
}

func (r *TransactionRepository) SaveTransaction(_ context.Context, txn domain.Transaction) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.transactions = append(r.store.transactions, txn)
	return nil
}
