package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/greatadamu/ledgerlink/internal/pkg/apperr"
	"github.com/greatadamu/ledgerlink/internal/pkg/logger"
	"github.com/greatadamu/ledgerlink/internal/pkg/models"
)

// CreateAccount opens a new account. The account starts ACTIVE with the
// requested initial balance (zero when omitted).
func (uc *LedgerUC) CreateAccount(ctx context.Context, req models.CreateAccountRequest) (*models.Account, error) {
	initialBalance := decimal.Zero
	if req.InitialBalance != "" {
		parsed, err := decimal.NewFromString(req.InitialBalance)
		if err != nil {
			return nil, apperr.Wrap(apperr.KindValidation, "invalid initial balance", err)
		}
		if parsed.IsNegative() {
			return nil, apperr.New(apperr.KindValidation, "initial balance must not be negative")
		}
		initialBalance = parsed
	}

	now := time.Now().UTC()
	account := &models.Account{
		ID:            uuid.New().String(),
		CustomerID:    req.CustomerID,
		AccountNumber: generateAccountNumber(),
		AccountName:   req.AccountName,
		AccountType:   req.AccountType,
		Status:        models.AccountStatusActive,
		Balance:       initialBalance,
		Version:       1,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := uc.repo.CreateAccount(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	// Fire-and-forget notification
	go func() {
		pubCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := uc.gw.PublishAccountCreated(pubCtx, account); err != nil {
			logger.Warn("Failed to publish account created event",
				logger.String("account_id", account.ID),
				logger.Err(err))
		}
	}()

	return account, nil
}

// GetAccount returns an account by ID
func (uc *LedgerUC) GetAccount(ctx context.Context, id string) (*models.Account, error) {
	return uc.repo.GetAccount(ctx, id)
}

// GetAccountByNumber returns an account by its account number
func (uc *LedgerUC) GetAccountByNumber(ctx context.Context, accountNumber string) (*models.Account, error) {
	return uc.repo.GetAccountByNumber(ctx, accountNumber)
}

// UpdateAccount updates only the fields that are allowed to change
func (uc *LedgerUC) UpdateAccount(ctx context.Context, id string, req models.UpdateAccountRequest) (*models.Account, error) {
	return uc.repo.UpdateAccountDetails(ctx, id, req.AccountName, req.AccountType)
}

// DeactivateAccount marks an account INACTIVE. Inactive accounts reject all
// balance mutations; the record itself stays behind.
func (uc *LedgerUC) DeactivateAccount(ctx context.Context, id string) error {
	return uc.repo.SetAccountStatus(ctx, id, models.AccountStatusInactive)
}

func generateAccountNumber() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "ACC" + strings.ToUpper(raw[:12])
}
