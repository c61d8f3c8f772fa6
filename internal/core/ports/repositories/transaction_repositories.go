package repositories

import (
	"context"

	"github.com/puffpay/puffpay-backend/internal/core/domain"
)

// TransactionReader defines read operations for the activity feed
type TransactionReader interface {
	// ListTransactions retrieves a paginated list of feed entries, newest first.
	ListTransactions(ctx context.Context, limit int, offset int) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for the activity feed.
// The feed is append-only; entries are never updated or deleted.
type TransactionWriter interface {
	// SaveTransaction appends a feed entry (used for withdrawals and deposits;
	// invoice settlements append through the settlement write).
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
}

// TransactionRepositoryFacade combines all feed-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
