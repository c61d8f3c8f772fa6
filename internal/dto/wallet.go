package dto

import (
	"time"

	"github.com/puffpay/puffpay-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SendPaymentRequest defines the data needed to submit an outbound transfer.
// Amount is a positive decimal string; it must be exactly representable at
// the token's fixed-point precision.
type SendPaymentRequest struct {
	To     string `json:"to" binding:"required,tokenaddr"`
	Amount string `json:"amount" binding:"required"`
	Memo   string `json:"memo"` // Optional, encoded into a fixed 32-byte field
}

// SendPaymentResponse carries the transaction handle of a submitted transfer.
type SendPaymentResponse struct {
	TxHash string `json:"txHash"`
}

// WithdrawRequest defines the data needed to withdraw funds to an external address.
type WithdrawRequest struct {
	To     string `json:"to" binding:"required,tokenaddr"`
	Amount string `json:"amount" binding:"required"`
}

// WithdrawResponse carries the recorded feed entry and transaction handle of
// a completed withdrawal.
type WithdrawResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	TxHash      string              `json:"txHash"`
}

// RecordDepositRequest defines the data needed to record an incoming deposit
// in the activity feed.
type RecordDepositRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Note   string          `json:"note"` // Optional
}

// BalanceResponse defines the cached balance view returned to wallet readers.
type BalanceResponse struct {
	Amount decimal.Decimal `json:"amount"`
	AsOf   time.Time       `json:"asOf"`
	Stale  bool            `json:"stale"`
}

// ToBalanceResponse converts a domain.BalanceSnapshot to BalanceResponse DTO.
func ToBalanceResponse(snap domain.BalanceSnapshot) BalanceResponse {
	return BalanceResponse{
		Amount: snap.Amount,
		AsOf:   snap.AsOf,
		Stale:  snap.Stale,
	}
}
