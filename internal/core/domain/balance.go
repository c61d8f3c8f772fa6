package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceSnapshot is the cached view of the active account's token balance.
// Written only by the Balance Oracle on poll/refresh, plus the provisional
// credit applied by the Reconciliation Engine on settlement.
type BalanceSnapshot struct {
	Amount decimal.Decimal `json:"amount"` // Display precision decimal
	AsOf   time.Time       `json:"asOf"`   // Time of the last successful read
	Stale  bool            `json:"stale"`  // True when the last poll failed and this is a prior value
}
