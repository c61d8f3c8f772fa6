package repositories

import (
	"context"

	"github.com/puffpay/puffpay-backend/internal/core/domain"
)

// SettlementWriter applies the multi-record settlement update as one atomic
// unit behind a single transaction boundary: invoice status to PAID, payment
// record append, feed transaction append, and the client's TotalPaid
// increment. No concurrent reader of the same invoice/client pair may
// observe a partial write.
//
// Implementations must re-validate under their own lock: the invoice must
// exist and not be PAID (apperrors.ErrInvalidTransition), the client must
// resolve (apperrors.ErrNotFound), and no payment record may already
// reference the invoice. On any validation failure nothing is written.
type SettlementWriter interface {
	SaveSettlement(ctx context.Context, invoice domain.Invoice, payment domain.PaymentRecord, feedTxn domain.Transaction) error
}
