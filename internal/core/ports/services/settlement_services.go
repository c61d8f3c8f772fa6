package services

import (
	"context"

	"github.com/puffpay/puffpay-backend/internal/core/domain"
	"github.com/puffpay/puffpay-backend/internal/dto"
)

// PaymentSenderSvc submits outbound transfers to the external token ledger.
// One transfer may be outstanding per instance; concurrent callers are
// rejected with apperrors.ErrAlreadyInProgress.
type PaymentSenderSvc interface {
	// SendPayment validates the destination and amount, encodes the memo and
	// submits the transfer. Returns the transaction hash.
	SendPayment(ctx context.Context, req dto.SendPaymentRequest) (string, error)

	// LastTxHash returns the hash of the most recent successful transfer, if any.
	LastTxHash() string

	// LastError returns the stored failure of the most recent attempt.
	// Cleared by the next successful transfer.
	LastError() error
}

// WalletWriterSvc covers the wallet screen actions built on top of transfers.
type WalletWriterSvc interface {
	// Withdraw sends funds to an external address and appends an EXPENSE
	// withdrawal entry to the activity feed on success.
	Withdraw(ctx context.Context, req dto.WithdrawRequest, userID string) (*domain.Transaction, string, error)

	// RecordDeposit appends an INCOME deposit entry to the activity feed.
	RecordDeposit(ctx context.Context, req dto.RecordDepositRequest, userID string) (*domain.Transaction, error)
}

// SettlementSvcFacade combines the transfer and wallet action interfaces
type SettlementSvcFacade interface {
	PaymentSenderSvc
	WalletWriterSvc
}
