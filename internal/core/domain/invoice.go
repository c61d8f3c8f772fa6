package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus indicates the lifecycle state of an invoice.
type InvoiceStatus string

const (
	InvoiceDraft InvoiceStatus = "DRAFT"
	InvoiceSent  InvoiceStatus = "SENT"
	InvoicePaid  InvoiceStatus = "PAID" // Terminal

	// InvoiceOverdue is a derived display state only: a SENT invoice whose due
	// date has passed. It is never stored on the invoice record.
	InvoiceOverdue InvoiceStatus = "OVERDUE"
)

// Invoice represents a bill issued to a client.
// Only DRAFT, SENT and PAID are ever persisted in Status.
type Invoice struct {
	InvoiceID        string          `json:"invoiceID"`        // Primary Key (e.g., UUID)
	ClientID         string          `json:"clientID"`         // FK -> Client.clientID (Not Null)
	Number           string          `json:"number"`           // Human-readable sequence number, e.g. INV-0001
	Amount           decimal.Decimal `json:"amount"`           // Positive for non-DRAFT; 6 decimal place ledger precision
	Status           InvoiceStatus   `json:"status"`           // DRAFT, SENT or PAID
	DueDate          time.Time       `json:"dueDate"`          // Date payment is expected by
	Description      string          `json:"description"`      // Nullable line description
	WalletAddress    string          `json:"walletAddress"`    // Nullable destination address for on-chain settlement
	SettlementTxHash string          `json:"settlementTxHash"` // Nullable, set when settled against the ledger
	AuditFields
}

// EffectiveStatus returns the status to display at read time. A SENT invoice
// past its due date reads as OVERDUE; the stored status is unchanged.
func (i Invoice) EffectiveStatus(now time.Time) InvoiceStatus {
	if i.Status == InvoiceSent && now.After(i.DueDate) {
		return InvoiceOverdue
	}
	return i.Status
}
