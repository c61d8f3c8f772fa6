package dto

import (
	"time"

	"github.com/puffpay/puffpay-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionResponse defines the data returned for an activity feed entry.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	Title         string          `json:"title"`
	Subtitle      string          `json:"subtitle"`
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date"`
	Type          string          `json:"type"`     // INCOME or EXPENSE
	Category      string          `json:"category"` // INVOICE, WITHDRAWAL or DEPOSIT
}

// ListTransactionsParams defines query parameters for listing feed entries.
type ListTransactionsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListTransactionsResponse wraps the list of feed entries.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		Title:         txn.Title,
		Subtitle:      txn.Subtitle,
		Amount:        txn.Amount,
		Date:          txn.Date,
		Type:          string(txn.Type),
		Category:      string(txn.Category),
	}
}

// ToListTransactionsResponse converts a slice of domain.Transaction to ListTransactionsResponse.
func ToListTransactionsResponse(txns []domain.Transaction) ListTransactionsResponse {
	res := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		res[i] = ToTransactionResponse(&txn)
	}
	return ListTransactionsResponse{Transactions: res}
}
