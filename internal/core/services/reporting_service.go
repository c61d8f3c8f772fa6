package services

import (
	"context"
	"math"

	"github.com/puffpay/puffpay-backend/internal/core/domain"
	portsrepo "github.com/puffpay/puffpay-backend/internal/core/ports/repositories"
	portssvc "github.com/puffpay/puffpay-backend/internal/core/ports/services"
	"github.com/puffpay/puffpay-backend/internal/dto"
	"github.com/shopspring/decimal"
)

type reportingService struct {
	BaseService
	invoiceRepo portsrepo.InvoiceReader
	paymentRepo portsrepo.PaymentReader
	clientRepo  portsrepo.ClientReader
	balance     portssvc.BalanceSvcFacade
}

// NewReportingService creates the dashboard aggregation service.
func NewReportingService(
	invoiceRepo portsrepo.InvoiceReader,
	paymentRepo portsrepo.PaymentReader,
	clientRepo portsrepo.ClientReader,
	balance portssvc.BalanceSvcFacade,
) portssvc.ReportingSvcFacade {
	return &reportingService{
		invoiceRepo: invoiceRepo,
		paymentRepo: paymentRepo,
		clientRepo:  clientRepo,
		balance:     balance,
	}
}

func (s *reportingService) Summary(ctx context.Context) (*dto.DashboardSummary, error) {
	invoices, err := s.invoiceRepo.ListInvoices(ctx, math.MaxInt32, 0)
	if err != nil {
		return nil, err
	}
	outstanding := decimal.Zero
	for _, inv := range invoices {
		if inv.Status != domain.InvoicePaid {
			outstanding = outstanding.Add(inv.Amount)
		}
	}

	payments, err := s.paymentRepo.ListPayments(ctx, math.MaxInt32, 0)
	if err != nil {
		return nil, err
	}
	collected := decimal.Zero
	for _, p := range payments {
		collected = collected.Add(p.Amount)
	}

	clientCount, err := s.clientRepo.CountClients(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardSummary{
		Outstanding:    outstanding,
		TotalCollected: collected,
		TotalClients:   clientCount,
		WalletBalance:  dto.ToBalanceResponse(s.balance.Snapshot()),
	}, nil
}
