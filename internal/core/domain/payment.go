package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the status of a payment record. Records are only ever
// created for settled invoices, so the value is fixed at PAID.
type PaymentStatus string

const PaymentPaid PaymentStatus = "PAID"

// PaymentRecord is the append-only record of an invoice settlement.
// Immutable once created.
type PaymentRecord struct {
	PaymentID     string          `json:"paymentID"`     // Primary Key (e.g., UUID)
	ClientID      string          `json:"clientID"`      // FK -> Client.clientID (Not Null)
	InvoiceID     string          `json:"invoiceID"`     // FK -> Invoice.invoiceID; at most one record per invoice
	InvoiceNumber string          `json:"invoiceNumber"` // Denormalised for display
	Date          time.Time       `json:"date"`          // Settlement date
	Amount        decimal.Decimal `json:"amount"`
	Status        PaymentStatus   `json:"status"` // Always PAID
	AuditFields
}
