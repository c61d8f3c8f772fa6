package services

import (
	"context"

	"github.com/puffpay/puffpay-backend/internal/core/domain"
)

// SettlementOutcome is the aggregate view returned after an invoice is
// marked paid: the updated invoice, the updated client, and the cached
// balance including the provisional credit.
type SettlementOutcome struct {
	Invoice domain.Invoice
	Client  domain.Client
	Balance domain.BalanceSnapshot
}

// ReconciliationSvcFacade orchestrates the mark-invoice-paid operation as
// one logically atomic update across the invoice store, payment ledger,
// activity feed, client totals and the cached balance.
type ReconciliationSvcFacade interface {
	// SettleInvoice marks an invoice PAID and applies the dependent record
	// updates atomically. txHash, when non-empty, is the ledger transaction
	// that paid the invoice and is recorded on it. Fails with
	// apperrors.ErrNotFound if the invoice does not resolve and
	// apperrors.ErrInvalidTransition if it is already PAID (including losing
	// a concurrent settlement race).
	SettleInvoice(ctx context.Context, invoiceID string, txHash string, userID string) (*SettlementOutcome, error)
}
