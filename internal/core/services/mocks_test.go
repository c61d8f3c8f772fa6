package services_test

import (
	"context"
	"math/big"

	"github.com/puffpay/puffpay-backend/internal/core/domain"
	"github.com/puffpay/puffpay-backend/internal/core/ports/ledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockTokenLedgerClient is a mock type for the TokenLedgerClient interface
type MockTokenLedgerClient struct {
	mock.Mock
}

func (m *MockTokenLedgerClient) BalanceOf(ctx context.Context, account string) (*big.Int, error) {
	args := m.Called(ctx, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

func (m *MockTokenLedgerClient) Decimals(ctx context.Context) (uint8, error) {
	args := m.Called(ctx)
	return args.Get(0).(uint8), args.Error(1)
}

func (m *MockTokenLedgerClient) Transfer(ctx context.Context, to string, amount *big.Int) (string, error) {
	args := m.Called(ctx, to, amount)
	return args.String(0), args.Error(1)
}

func (m *MockTokenLedgerClient) TransferWithMemo(ctx context.Context, to string, amount *big.Int, memo [ledger.MemoLength]byte) (string, error) {
	args := m.Called(ctx, to, amount, memo)
	return args.String(0), args.Error(1)
}

// MockBalanceService is a mock type for the BalanceSvcFacade interface
type MockBalanceService struct {
	mock.Mock
}

func (m *MockBalanceService) Start(ctx context.Context) {
	m.Called(ctx)
}

func (m *MockBalanceService) Stop() {
	m.Called()
}

func (m *MockBalanceService) Snapshot() domain.BalanceSnapshot {
	args := m.Called()
	return args.Get(0).(domain.BalanceSnapshot)
}

func (m *MockBalanceService) Refresh(ctx context.Context) (domain.BalanceSnapshot, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.BalanceSnapshot), args.Error(1)
}

func (m *MockBalanceService) ApplyProvisionalCredit(amount decimal.Decimal) domain.BalanceSnapshot {
	args := m.Called(amount)
	return args.Get(0).(domain.BalanceSnapshot)
}
