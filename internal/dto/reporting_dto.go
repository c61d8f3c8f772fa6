package dto

import "github.com/shopspring/decimal"

// DashboardSummary carries the stat cards shown on the home screen.
type DashboardSummary struct {
	Outstanding    decimal.Decimal `json:"outstanding"`    // Sum of non-PAID invoice amounts
	TotalCollected decimal.Decimal `json:"totalCollected"` // Sum over all payment records
	TotalClients   int             `json:"totalClients"`
	WalletBalance  BalanceResponse `json:"walletBalance"`
}
