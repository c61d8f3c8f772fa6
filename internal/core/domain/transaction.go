package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates the direction of a feed transaction.
type TransactionType string

const (
	Income  TransactionType = "INCOME"
	Expense TransactionType = "EXPENSE"
)

// TransactionCategory tags what kind of event produced a feed transaction.
type TransactionCategory string

const (
	CategoryInvoice    TransactionCategory = "INVOICE"
	CategoryWithdrawal TransactionCategory = "WITHDRAWAL"
	CategoryDeposit    TransactionCategory = "DEPOSIT"
)

// Transaction is an entry in the append-only activity feed shown on the
// wallet screen. Immutable once created.
type Transaction struct {
	TransactionID string              `json:"transactionID"` // Primary Key (e.g., UUID)
	Title         string              `json:"title"`
	Subtitle      string              `json:"subtitle"`
	Amount        decimal.Decimal     `json:"amount"`
	Date          time.Time           `json:"date"`
	Type          TransactionType     `json:"type"`     // INCOME or EXPENSE
	Category      TransactionCategory `json:"category"` // INVOICE, WITHDRAWAL or DEPOSIT
	AuditFields
}
