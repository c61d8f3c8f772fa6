package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/puffpay/puffpay-backend/internal/core/domain"
	"github.com/puffpay/puffpay-backend/internal/core/ports/ledger"
	portssvc "github.com/puffpay/puffpay-backend/internal/core/ports/services"
	"github.com/puffpay/puffpay-backend/internal/utils/tip20"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

type balanceOracle struct {
	BaseService
	ledger   ledger.TokenLedgerClient
	account  string
	decimals uint8
	interval time.Duration

	mu       sync.RWMutex
	snapshot domain.BalanceSnapshot

	sf     singleflight.Group
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewBalanceOracle creates the background balance poller for the given
// account. It does not poll until Start is called.
func NewBalanceOracle(ledgerClient ledger.TokenLedgerClient, account string, decimals uint8, interval time.Duration) portssvc.BalanceSvcFacade {
	return &balanceOracle{
		ledger:   ledgerClient,
		account:  account,
		decimals: decimals,
		interval: interval,
		snapshot: domain.BalanceSnapshot{Amount: decimal.Zero, Stale: true},
	}
}

func (o *balanceOracle) Start(ctx context.Context) {
	ctx, o.cancel = context.WithCancel(ctx)
	o.wg.Add(1)
	go o.loop(ctx)
}

func (o *balanceOracle) Stop() {
	if o.cancel != nil {
		o.cancel()
	}
	o.wg.Wait()
}

func (o *balanceOracle) loop(ctx context.Context) {
	defer o.wg.Done()

	if _, err := o.Refresh(ctx); err != nil {
		o.LogError(ctx, err, "initial balance poll failed")
	}

	ticker := time.NewTicker(o.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := o.Refresh(ctx); err != nil {
				o.LogError(ctx, err, "balance poll failed, serving stale value")
			}
		}
	}
}

func (o *balanceOracle) Snapshot() domain.BalanceSnapshot {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.snapshot
}

// Refresh polls the ledger once. Concurrent callers collapse into the
// in-flight poll and share its result. A failed poll marks the cached value
// stale but never clears it.
func (o *balanceOracle) Refresh(ctx context.Context) (domain.BalanceSnapshot, error) {
	v, err, _ := o.sf.Do("balance", func() (interface{}, error) {
		raw, err := o.ledger.BalanceOf(ctx, o.account)
		if err != nil {
			o.mu.Lock()
			o.snapshot.Stale = true
			snap := o.snapshot
			o.mu.Unlock()
			return snap, err
		}

		o.mu.Lock()
		o.snapshot = domain.BalanceSnapshot{
			Amount: tip20.FromBaseUnits(raw, o.decimals),
			AsOf:   time.Now(),
			Stale:  false,
		}
		snap := o.snapshot
		o.mu.Unlock()

		o.LogDebug(ctx, "balance refreshed", slog.String("amount", snap.Amount.String()))
		return snap, nil
	})
	return v.(domain.BalanceSnapshot), err
}

func (o *balanceOracle) ApplyProvisionalCredit(amount decimal.Decimal) domain.BalanceSnapshot {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.snapshot.Amount = o.snapshot.Amount.Add(amount)
	return o.snapshot
}
