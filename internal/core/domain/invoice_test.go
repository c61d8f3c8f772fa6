package domain_test

import (
	"testing"
	"time"

	"github.com/puffpay/puffpay-backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestInvoice_EffectiveStatus(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		invoice domain.Invoice
		want    domain.InvoiceStatus
	}{
		{
			name:    "sent invoice before due date stays SENT",
			invoice: domain.Invoice{Status: domain.InvoiceSent, DueDate: now.Add(24 * time.Hour)},
			want:    domain.InvoiceSent,
		},
		{
			name:    "sent invoice past due date reads as OVERDUE",
			invoice: domain.Invoice{Status: domain.InvoiceSent, DueDate: now.Add(-24 * time.Hour)},
			want:    domain.InvoiceOverdue,
		},
		{
			name:    "paid invoice past due date stays PAID",
			invoice: domain.Invoice{Status: domain.InvoicePaid, DueDate: now.Add(-24 * time.Hour)},
			want:    domain.InvoicePaid,
		},
		{
			name:    "draft invoice past due date stays DRAFT",
			invoice: domain.Invoice{Status: domain.InvoiceDraft, DueDate: now.Add(-24 * time.Hour)},
			want:    domain.InvoiceDraft,
		},
		{
			name:    "due date exactly now is not overdue",
			invoice: domain.Invoice{Status: domain.InvoiceSent, DueDate: now},
			want:    domain.InvoiceSent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.invoice.EffectiveStatus(now))
		})
	}
}
