package ledger

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/greatadamu/ledgerlink/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/greatadamu/ledgerlink/services/ledger LedgerRepo

// LedgerRepo defines the interface for ledger repository operations
type LedgerRepo interface {
	CreateAccount(ctx context.Context, account *models.Account) error
	GetAccount(ctx context.Context, id string) (*models.Account, error)
	GetAccountByNumber(ctx context.Context, accountNumber string) (*models.Account, error)
	UpdateAccountDetails(ctx context.Context, id string, name string, accountType models.AccountType) (*models.Account, error)
	SetAccountStatus(ctx context.Context, id string, status models.AccountStatus) error

	// UpdateBalance performs the guarded read-modify-write for one account.
	// The row stays locked for the duration of the mutation, so concurrent
	// writers on the same account are strictly ordered.
	UpdateBalance(ctx context.Context, id string, amount decimal.Decimal, operation models.BalanceOperation) (decimal.Decimal, error)
}
