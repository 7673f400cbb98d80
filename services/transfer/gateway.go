package transfer

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/greatadamu/ledgerlink/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/greatadamu/ledgerlink/services/transfer LedgerClient,TransferGW

// LedgerClient defines the synchronous RPC surface of the ledger service as
// consumed by the orchestrator. Every call carries its own deadline; a
// deadline overrun is reported as a Timeout error, not silently retried.
type LedgerClient interface {
	ValidateAccount(ctx context.Context, accountID string) (*models.AccountValidation, error)
	GetBalance(ctx context.Context, accountID string) (*models.BalanceInfo, error)
	UpdateBalance(ctx context.Context, accountID string, amount decimal.Decimal, operation models.BalanceOperation, description string) (*models.UpdateBalanceResponse, error)
}

// TransferGW defines the interface for transfer gateway operations
type TransferGW interface {
	PublishTransactionEvent(ctx context.Context, event *models.TransactionEvent) error
}
