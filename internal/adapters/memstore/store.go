// Package memstore provides the in-memory authoritative store for business
// records. All entity maps share a single mutex so the settlement write can
// update the invoice, payment ledger, activity feed and client totals as one
// atomic unit.
package memstore

import (
	"sync"

	"github.com/puffpay/puffpay-backend/internal/core/domain"
	"github.com/puffpay/puffpay-backend/internal/core/ports/repositories"
)

// Store holds every entity map behind one lock. Repositories are thin views
// over the same Store instance.
type Store struct {
	mu sync.RWMutex

	invoices     map[string]domain.Invoice
	invoiceOrder []string
	invoiceSeq   int64

	clients     map[string]domain.Client
	clientOrder []string

	payments         map[string]domain.PaymentRecord
	paymentOrder     []string
	paymentByInvoice map[string]string

	transactions []domain.Transaction

	users       map[string]domain.User
	userByEmail map[string]string
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		invoices:         make(map[string]domain.Invoice),
		clients:          make(map[string]domain.Client),
		payments:         make(map[string]domain.PaymentRecord),
		paymentByInvoice: make(map[string]string),
		users:            make(map[string]domain.User),
		userByEmail:      make(map[string]string),
	}
}

// NewRepositoryProvider wires every repository view over a single store.
func NewRepositoryProvider(store *Store) *repositories.RepositoryProvider {
	return &repositories.RepositoryProvider{
		InvoiceRepo:     NewInvoiceRepository(store),
		ClientRepo:      NewClientRepository(store),
		PaymentRepo:     NewPaymentRepository(store),
		TransactionRepo: NewTransactionRepository(store),
		UserRepo:        NewUserRepository(store),
		SettlementRepo:  NewSettlementRepository(store),
	}
}

// pageReversed returns a limit/offset window over ids walked newest first.
func pageReversed(ids []string, limit, offset int) []string {
	n := len(ids)
	if offset >= n {
		return nil
	}
	capHint := limit
	if capHint > n-offset {
		capHint = n - offset
	}
	out := make([]string, 0, capHint)
	for i := n - 1 - offset; i >= 0 && len(out) < limit; i-- {
		out = append(out, ids[i])
	}
	return out
}
