package services

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"regexp"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/puffpay/puffpay-backend/internal/apperrors"
	"github.com/puffpay/puffpay-backend/internal/core/domain"
	"github.com/puffpay/puffpay-backend/internal/core/ports/ledger"
	portsrepo "github.com/puffpay/puffpay-backend/internal/core/ports/repositories"
	portssvc "github.com/puffpay/puffpay-backend/internal/core/ports/services"
	"github.com/puffpay/puffpay-backend/internal/dto"
	"github.com/puffpay/puffpay-backend/internal/utils/tip20"
	"github.com/shopspring/decimal"
)

var addressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

type settlementService struct {
	BaseService
	ledger          ledger.TokenLedgerClient
	transactionRepo portsrepo.TransactionWriter
	balance         portssvc.BalanceSvcFacade
	decimals        uint8

	inFlight atomic.Bool

	mu         sync.Mutex
	lastTxHash string
	lastErr    error
}

// NewSettlementService creates the outbound transfer client. decimals is the
// token's fixed-point precision, confirmed against the ledger at startup.
func NewSettlementService(
	ledgerClient ledger.TokenLedgerClient,
	transactionRepo portsrepo.TransactionWriter,
	balance portssvc.BalanceSvcFacade,
	decimals uint8,
) portssvc.SettlementSvcFacade {
	return &settlementService{
		ledger:          ledgerClient,
		transactionRepo: transactionRepo,
		balance:         balance,
		decimals:        decimals,
	}
}

// SendPayment submits one transfer. At most one may be outstanding; a second
// caller is rejected with apperrors.ErrAlreadyInProgress rather than queued.
func (s *settlementService) SendPayment(ctx context.Context, req dto.SendPaymentRequest) (string, error) {
	baseUnits, err := s.validateTransfer(req.To, req.Amount)
	if err != nil {
		return "", err
	}

	if !s.inFlight.CompareAndSwap(false, true) {
		return "", apperrors.ErrAlreadyInProgress
	}
	defer s.inFlight.Store(false)

	// An absent memo is sent as 32 zero bytes; payments always go through
	// the memo variant so receivers see one call shape.
	txHash, err := s.ledger.TransferWithMemo(ctx, req.To, baseUnits, tip20.EncodeMemo(req.Memo))

	s.mu.Lock()
	if err != nil {
		s.lastErr = err
	} else {
		s.lastTxHash = txHash
		s.lastErr = nil
	}
	s.mu.Unlock()

	if err != nil {
		s.LogError(ctx, err, "transfer failed", slog.String("to", req.To), slog.String("amount", req.Amount))
		return "", err
	}

	s.LogInfo(ctx, "transfer submitted", slog.String("tx_hash", txHash), slog.String("amount", req.Amount))
	s.kickBalanceRefresh()
	return txHash, nil
}

func (s *settlementService) LastTxHash() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastTxHash
}

func (s *settlementService) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Withdraw transfers funds out and appends the expense to the activity feed.
// The feed entry is written only after the ledger accepts the transfer.
func (s *settlementService) Withdraw(ctx context.Context, req dto.WithdrawRequest, userID string) (*domain.Transaction, string, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, "", fmt.Errorf("%w: amount is not a valid decimal", apperrors.ErrValidation)
	}

	txHash, err := s.SendPayment(ctx, dto.SendPaymentRequest{To: req.To, Amount: req.Amount})
	if err != nil {
		return nil, "", err
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Title:         "Withdrawal",
		Subtitle:      shortAddress(req.To),
		Amount:        amount,
		Date:          now,
		Type:          domain.Expense,
		Category:      domain.CategoryWithdrawal,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		return nil, txHash, fmt.Errorf("failed to record withdrawal: %w", err)
	}
	return &txn, txHash, nil
}

func (s *settlementService) RecordDeposit(ctx context.Context, req dto.RecordDepositRequest, userID string) (*domain.Transaction, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: deposit amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Title:         "Deposit",
		Subtitle:      req.Note,
		Amount:        req.Amount,
		Date:          now,
		Type:          domain.Income,
		Category:      domain.CategoryDeposit,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to record deposit: %w", err)
	}
	return &txn, nil
}

func (s *settlementService) validateTransfer(to string, amount string) (*big.Int, error) {
	if !addressPattern.MatchString(to) {
		return nil, fmt.Errorf("%w: destination must be a 0x-prefixed 40 hex char address", apperrors.ErrValidation)
	}
	amt, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("%w: amount is not a valid decimal", apperrors.ErrValidation)
	}
	if !amt.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	return tip20.ToBaseUnits(amt, s.decimals)
}

// kickBalanceRefresh nudges the oracle after a submitted transfer so the
// wallet view converges without waiting for the next poll tick.
func (s *settlementService) kickBalanceRefresh() {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_, _ = s.balance.Refresh(ctx)
	}()
}

func shortAddress(addr string) string {
	if len(addr) <= 12 {
		return addr
	}
	return addr[:8] + "..." + addr[len(addr)-4:]
}
