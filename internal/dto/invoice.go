package dto

import (
	"time"

	"github.com/puffpay/puffpay-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest defines the data needed to create a new invoice.
// An invoice is created in DRAFT unless asDraft is false, in which case it
// is issued directly as SENT.
type CreateInvoiceRequest struct {
	ClientID      string          `json:"clientID" binding:"required"`
	Amount        decimal.Decimal `json:"amount"` // May be zero only for drafts; checked in the service
	DueDate       time.Time       `json:"dueDate" binding:"required"`
	Description   string          `json:"description"`                         // Optional line description
	WalletAddress string          `json:"walletAddress" binding:"omitempty,tokenaddr"` // Optional settlement destination
	AsDraft       bool            `json:"asDraft"`
}

// InvoiceResponse defines the data returned for an invoice. Status carries
// the derived display state (OVERDUE for a SENT invoice past its due date).
type InvoiceResponse struct {
	InvoiceID        string               `json:"invoiceID"`
	ClientID         string               `json:"clientID"`
	Number           string               `json:"number"`
	Amount           decimal.Decimal      `json:"amount"`
	Status           domain.InvoiceStatus `json:"status"`
	DueDate          time.Time            `json:"dueDate"`
	Description      string               `json:"description,omitempty"`
	WalletAddress    string               `json:"walletAddress,omitempty"`
	SettlementTxHash string               `json:"settlementTxHash,omitempty"`
	CreatedAt        time.Time            `json:"createdAt"`
}

// ListInvoicesParams defines query parameters for listing invoices.
// Status may be any persisted status or the derived OVERDUE.
type ListInvoicesParams struct {
	Status string `form:"status" binding:"omitempty,oneof=DRAFT SENT PAID OVERDUE"`
	Limit  int    `form:"limit,default=20"`
	Offset int    `form:"offset,default=0"`
}

// ListInvoicesResponse wraps the list of invoices.
type ListInvoicesResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
}

// ToInvoiceResponse converts a domain.Invoice to InvoiceResponse, deriving
// the display status as of now.
func ToInvoiceResponse(inv *domain.Invoice, now time.Time) InvoiceResponse {
	return InvoiceResponse{
		InvoiceID:        inv.InvoiceID,
		ClientID:         inv.ClientID,
		Number:           inv.Number,
		Amount:           inv.Amount,
		Status:           inv.EffectiveStatus(now),
		DueDate:          inv.DueDate,
		Description:      inv.Description,
		WalletAddress:    inv.WalletAddress,
		SettlementTxHash: inv.SettlementTxHash,
		CreatedAt:        inv.CreatedAt,
	}
}

// SettleInvoiceRequest defines the optional data accepted when marking an
// invoice paid. TxHash, when present, is the ledger transaction that paid
// the invoice.
type SettleInvoiceRequest struct {
	TxHash string `json:"txHash"`
}

// SettlementOutcomeResponse is the aggregate returned after an invoice is
// marked paid: the updated invoice, the credited client and the cached
// balance including the provisional credit.
type SettlementOutcomeResponse struct {
	Invoice InvoiceResponse `json:"invoice"`
	Client  ClientResponse  `json:"client"`
	Balance BalanceResponse `json:"balance"`
}

// ToListInvoicesResponse converts a slice of domain.Invoice to ListInvoicesResponse.
func ToListInvoicesResponse(invoices []domain.Invoice, now time.Time) ListInvoicesResponse {
	res := make([]InvoiceResponse, len(invoices))
	for i, inv := range invoices {
		res[i] = ToInvoiceResponse(&inv, now)
	}
	return ListInvoicesResponse{Invoices: res}
}
