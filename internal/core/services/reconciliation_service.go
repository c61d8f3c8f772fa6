package services

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/puffpay/puffpay-backend/internal/apperrors"
	"github.com/puffpay/puffpay-backend/internal/core/domain"
	portsrepo "github.com/puffpay/puffpay-backend/internal/core/ports/repositories"
	portssvc "github.com/puffpay/puffpay-backend/internal/core/ports/services"
)

var txHashPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)

type reconciliationService struct {
	BaseService
	invoiceRepo    portsrepo.InvoiceReader
	clientRepo     portsrepo.ClientReader
	settlementRepo portsrepo.SettlementWriter
	balance        portssvc.BalanceSvcFacade
}

// NewReconciliationService creates the mark-invoice-paid orchestrator.
func NewReconciliationService(
	invoiceRepo portsrepo.InvoiceReader,
	clientRepo portsrepo.ClientReader,
	settlementRepo portsrepo.SettlementWriter,
	balance portssvc.BalanceSvcFacade,
) portssvc.ReconciliationSvcFacade {
	return &reconciliationService{
		invoiceRepo:    invoiceRepo,
		clientRepo:     clientRepo,
		settlementRepo: settlementRepo,
		balance:        balance,
	}
}

// SettleInvoice marks an invoice PAID and applies the dependent updates.
// The status check here is advisory; the settlement writer re-validates
// under its own lock, so a concurrent duplicate loses there, not here.
func (s *reconciliationService) SettleInvoice(ctx context.Context, invoiceID string, txHash string, userID string) (*portssvc.SettlementOutcome, error) {
	if txHash != "" && !txHashPattern.MatchString(txHash) {
		return nil, fmt.Errorf("%w: txHash must be a 0x-prefixed 64 hex char transaction hash", apperrors.ErrValidation)
	}

	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice.Status != domain.InvoiceSent {
		return nil, fmt.Errorf("cannot settle invoice in status %s: %w", invoice.Status, apperrors.ErrInvalidTransition)
	}

	client, err := s.clientRepo.FindClientByID(ctx, invoice.ClientID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	paid := *invoice
	paid.Status = domain.InvoicePaid
	paid.SettlementTxHash = txHash
	paid.LastUpdatedAt = now
	paid.LastUpdatedBy = userID

	payment := domain.PaymentRecord{
		PaymentID:     uuid.NewString(),
		ClientID:      invoice.ClientID,
		InvoiceID:     invoice.InvoiceID,
		InvoiceNumber: invoice.Number,
		Date:          now,
		Amount:        invoice.Amount,
		Status:        domain.PaymentPaid,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	feedTxn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Title:         fmt.Sprintf("Invoice %s", invoice.Number),
		Subtitle:      client.Name,
		Amount:        invoice.Amount,
		Date:          now,
		Type:          domain.Income,
		Category:      domain.CategoryInvoice,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.settlementRepo.SaveSettlement(ctx, paid, payment, feedTxn); err != nil {
		s.LogError(ctx, err, "settlement write rejected", slog.String("invoice_id", invoiceID))
		return nil, err
	}

	// The provisional credit keeps the wallet view consistent until the next
	// poll reconciles against the ledger.
	snapshot := s.balance.ApplyProvisionalCredit(invoice.Amount)

	updatedClient, err := s.clientRepo.FindClientByID(ctx, invoice.ClientID)
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "invoice settled",
		slog.String("invoice_id", invoiceID),
		slog.String("invoice_number", invoice.Number),
		slog.String("amount", invoice.Amount.String()),
	)

	return &portssvc.SettlementOutcome{
		Invoice: paid,
		Client:  *updatedClient,
		Balance: snapshot,
	}, nil
}
