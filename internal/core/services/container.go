package services

import (
	"time"

	"github.com/puffpay/puffpay-backend/internal/core/ports/ledger"
	portsrepo "github.com/puffpay/puffpay-backend/internal/core/ports/repositories"
	portssvc "github.com/puffpay/puffpay-backend/internal/core/ports/services"
)

// ContainerOptions carries the ledger parameters the services need beyond
// their repositories.
type ContainerOptions struct {
	AccountAddress string
	TokenDecimals  uint8
	PollInterval   time.Duration
}

// NewServiceContainer wires all services over the repository provider and
// the ledger client. The balance oracle is created but not started; the
// caller owns its lifecycle.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, ledgerClient ledger.TokenLedgerClient, opts ContainerOptions) *portssvc.ServiceContainer {
	balance := NewBalanceOracle(ledgerClient, opts.AccountAddress, opts.TokenDecimals, opts.PollInterval)

	return &portssvc.ServiceContainer{
		User:           NewUserService(repos.UserRepo),
		Client:         NewClientService(repos.ClientRepo),
		Invoice:        NewInvoiceService(repos.InvoiceRepo, repos.ClientRepo),
		Activity:       NewActivityService(repos.PaymentRepo, repos.TransactionRepo),
		Reconciliation: NewReconciliationService(repos.InvoiceRepo, repos.ClientRepo, repos.SettlementRepo, balance),
		Settlement:     NewSettlementService(ledgerClient, repos.TransactionRepo, balance, opts.TokenDecimals),
		Balance:        balance,
		Reporting:      NewReportingService(repos.InvoiceRepo, repos.PaymentRepo, repos.ClientRepo, balance),
	}
}
