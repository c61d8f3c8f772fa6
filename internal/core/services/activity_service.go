package services

import (
	"context"

	"github.com/puffpay/puffpay-backend/internal/core/domain"
	portsrepo "github.com/puffpay/puffpay-backend/internal/core/ports/repositories"
	portssvc "github.com/puffpay/puffpay-backend/internal/core/ports/services"
	"github.com/puffpay/puffpay-backend/internal/dto"
)

type activityService struct {
	BaseService
	paymentRepo     portsrepo.PaymentReader
	transactionRepo portsrepo.TransactionReader
}

// NewActivityService creates the read-only history service over the payment
// ledger and the activity feed.
func NewActivityService(paymentRepo portsrepo.PaymentReader, transactionRepo portsrepo.TransactionReader) portssvc.ActivitySvcFacade {
	return &activityService{paymentRepo: paymentRepo, transactionRepo: transactionRepo}
}

func (s *activityService) ListPayments(ctx context.Context, params dto.ListPaymentsParams) ([]domain.PaymentRecord, error) {
	return s.paymentRepo.ListPayments(ctx, params.Limit, params.Offset)
}

func (s *activityService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, error) {
	return s.transactionRepo.ListTransactions(ctx, params.Limit, params.Offset)
}
