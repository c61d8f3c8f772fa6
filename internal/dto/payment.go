package dto

import (
	"time"

	"github.com/puffpay/puffpay-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PaymentResponse defines the data returned for a payment record.
type PaymentResponse struct {
	PaymentID     string          `json:"paymentID"`
	ClientID      string          `json:"clientID"`
	InvoiceID     string          `json:"invoiceID"`
	InvoiceNumber string          `json:"invoiceNumber"`
	Date          time.Time       `json:"date"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
}

// ListPaymentsParams defines query parameters for listing payment records.
type ListPaymentsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListPaymentsResponse wraps the list of payment records.
type ListPaymentsResponse struct {
	Payments []PaymentResponse `json:"payments"`
}

// ToPaymentResponse converts a domain.PaymentRecord to PaymentResponse DTO.
func ToPaymentResponse(p *domain.PaymentRecord) PaymentResponse {
	return PaymentResponse{
		PaymentID:     p.PaymentID,
		ClientID:      p.ClientID,
		InvoiceID:     p.InvoiceID,
		InvoiceNumber: p.InvoiceNumber,
		Date:          p.Date,
		Amount:        p.Amount,
		Status:        string(p.Status),
	}
}

// ToListPaymentsResponse converts a slice of domain.PaymentRecord to ListPaymentsResponse.
func ToListPaymentsResponse(payments []domain.PaymentRecord) ListPaymentsResponse {
	res := make([]PaymentResponse, len(payments))
	for i, p := range payments {
		res[i] = ToPaymentResponse(&p)
	}
	return ListPaymentsResponse{Payments: res}
}
