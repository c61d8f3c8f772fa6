package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/puffpay/puffpay-backend/internal/apperrors"
	"github.com/puffpay/puffpay-backend/internal/core/domain"
	portsrepo "github.com/puffpay/puffpay-backend/internal/core/ports/repositories"
	portssvc "github.com/puffpay/puffpay-backend/internal/core/ports/services"
	"github.com/puffpay/puffpay-backend/internal/dto"
	"log/slog"
)

type invoiceService struct {
	BaseService
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	clientRepo  portsrepo.ClientReader
}

// NewInvoiceService creates a new invoice lifecycle service.
func NewInvoiceService(invoiceRepo portsrepo.InvoiceRepositoryFacade, clientRepo portsrepo.ClientReader) portssvc.InvoiceSvcFacade {
	return &invoiceService{invoiceRepo: invoiceRepo, clientRepo: clientRepo}
}

func (s *invoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, creatorUserID string) (*domain.Invoice, error) {
	status := domain.InvoiceSent
	if req.AsDraft {
		status = domain.InvoiceDraft
	}
	if status != domain.InvoiceDraft && !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive to issue an invoice", apperrors.ErrValidation)
	}
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
	}

	if _, err := s.clientRepo.FindClientByID(ctx, req.ClientID); err != nil {
		return nil, fmt.Errorf("failed to resolve client for invoice: %w", err)
	}

	seq, err := s.invoiceRepo.NextInvoiceNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate invoice number: %w", err)
	}

	now := time.Now()
	invoice := domain.Invoice{
		InvoiceID:     uuid.NewString(),
		ClientID:      req.ClientID,
		Number:        fmt.Sprintf("INV-%04d", seq),
		Amount:        req.Amount,
		Status:        status,
		DueDate:       req.DueDate,
		Description:   req.Description,
		WalletAddress: req.WalletAddress,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, invoice); err != nil {
		s.LogError(ctx, err, "failed to save invoice", slog.String("invoice_number", invoice.Number))
		return nil, fmt.Errorf("failed to save invoice: %w", err)
	}

	s.LogInfo(ctx, "invoice created", slog.String("invoice_id", invoice.InvoiceID), slog.String("invoice_number", invoice.Number), slog.String("status", string(status)))
	return &invoice, nil
}

func (s *invoiceService) SendInvoice(ctx context.Context, invoiceID string, userID string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice.Status != domain.InvoiceDraft {
		return nil, fmt.Errorf("cannot send invoice in status %s: %w", invoice.Status, apperrors.ErrInvalidTransition)
	}
	if !invoice.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: draft amount must be positive before sending", apperrors.ErrValidation)
	}

	invoice.Status = domain.InvoiceSent
	invoice.LastUpdatedAt = time.Now()
	invoice.LastUpdatedBy = userID

	if err := s.invoiceRepo.UpdateInvoice(ctx, *invoice); err != nil {
		return nil, fmt.Errorf("failed to update invoice: %w", err)
	}
	s.LogInfo(ctx, "invoice sent", slog.String("invoice_id", invoiceID))
	return invoice, nil
}

func (s *invoiceService) DeleteInvoice(ctx context.Context, invoiceID string, userID string) error {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return err
	}
	if invoice.Status == domain.InvoicePaid {
		return fmt.Errorf("paid invoices cannot be deleted: %w", apperrors.ErrConflict)
	}
	if err := s.invoiceRepo.DeleteInvoice(ctx, invoiceID); err != nil {
		return fmt.Errorf("failed to delete invoice: %w", err)
	}
	s.LogInfo(ctx, "invoice deleted", slog.String("invoice_id", invoiceID), slog.String("deleted_by", userID))
	return nil
}

func (s *invoiceService) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	return s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
}

func (s *invoiceService) ListInvoices(ctx context.Context, params dto.ListInvoicesParams) ([]domain.Invoice, error) {
	if params.Status == "" {
		return s.invoiceRepo.ListInvoices(ctx, params.Limit, params.Offset)
	}

	// Status filtering works on the derived display status, so OVERDUE
	// selects SENT invoices past due and SENT excludes them.
	all, err := s.invoiceRepo.ListInvoices(ctx, math.MaxInt32, 0)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	want := domain.InvoiceStatus(params.Status)
	filtered := make([]domain.Invoice, 0, len(all))
	for _, inv := range all {
		if inv.EffectiveStatus(now) == want {
			filtered = append(filtered, inv)
		}
	}
	if params.Offset >= len(filtered) {
		return nil, nil
	}
	end := params.Offset + params.Limit
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[params.Offset:end], nil
}
