package services

import (
	"context"

	"github.com/puffpay/puffpay-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceSvcFacade is the Balance Oracle: a background poller that caches
// the active account's token balance and serves it to readers without
// blocking on the network.
type BalanceSvcFacade interface {
	// Start launches the poll loop. It returns immediately; polling stops
	// when Stop is called or the passed context is cancelled.
	Start(ctx context.Context)

	// Stop cancels the poll loop and waits for it to exit.
	Stop()

	// Snapshot returns the cached balance view. Never blocks on the network.
	Snapshot() domain.BalanceSnapshot

	// Refresh forces an immediate poll outside the interval. Concurrent
	// refreshes collapse into the in-flight request.
	Refresh(ctx context.Context) (domain.BalanceSnapshot, error)

	// ApplyProvisionalCredit adjusts the cached amount after a local
	// settlement. The next successful poll reconciles it against the
	// ledger's authoritative value. Used only by the Reconciliation Engine.
	ApplyProvisionalCredit(amount decimal.Decimal) domain.BalanceSnapshot
}
