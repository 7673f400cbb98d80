package ledger

import (
	"context"

	"github.com/greatadamu/ledgerlink/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/greatadamu/ledgerlink/services/ledger LedgerUseCase

// LedgerUseCase defines the interface for ledger use cases
type LedgerUseCase interface {
	CreateAccount(ctx context.Context, req models.CreateAccountRequest) (*models.Account, error)
	GetAccount(ctx context.Context, id string) (*models.Account, error)
	GetAccountByNumber(ctx context.Context, accountNumber string) (*models.Account, error)
	UpdateAccount(ctx context.Context, id string, req models.UpdateAccountRequest) (*models.Account, error)
	DeactivateAccount(ctx context.Context, id string) error

	ValidateAccount(ctx context.Context, id string) (*models.AccountValidation, error)
	GetBalance(ctx context.Context, id string) (*models.BalanceInfo, error)
	UpdateBalance(ctx context.Context, id string, req models.UpdateBalanceRequest) (*models.UpdateBalanceResponse, error)
}
