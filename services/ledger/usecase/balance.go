package usecase

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/greatadamu/ledgerlink/internal/pkg/apperr"
	"github.com/greatadamu/ledgerlink/internal/pkg/logger"
	"github.com/greatadamu/ledgerlink/internal/pkg/models"
)

// ValidateAccount reports whether an account exists and is active.
// A missing account is a valid answer here, not an error.
func (uc *LedgerUC) ValidateAccount(ctx context.Context, id string) (*models.AccountValidation, error) {
	account, err := uc.repo.GetAccount(ctx, id)
	if err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			return &models.AccountValidation{
				Exists:   false,
				IsActive: false,
				Message:  "Account not found",
			}, nil
		}
		return nil, err
	}

	if !account.IsActive() {
		return &models.AccountValidation{
			Exists:   true,
			IsActive: false,
			Message:  "Account is not active",
		}, nil
	}

	return &models.AccountValidation{
		Exists:   true,
		IsActive: true,
		Message:  "Account is active",
	}, nil
}

// GetBalance returns the current balance of an account
func (uc *LedgerUC) GetBalance(ctx context.Context, id string) (*models.BalanceInfo, error) {
	account, err := uc.repo.GetAccount(ctx, id)
	if err != nil {
		return nil, err
	}

	return &models.BalanceInfo{
		AccountID: account.ID,
		Balance:   account.Balance.String(),
		Currency:  uc.cfg.Transfer.DefaultCurrency,
	}, nil
}

// UpdateBalance applies a debit or credit to an account. The amount must be a
// positive decimal string; the repository enforces the concurrency guard and
// the non-negative balance invariant.
func (uc *LedgerUC) UpdateBalance(ctx context.Context, id string, req models.UpdateBalanceRequest) (*models.UpdateBalanceResponse, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, "malformed amount", err)
	}
	if !amount.IsPositive() {
		return nil, apperr.New(apperr.KindValidation, "amount must be greater than zero")
	}
	if req.Operation != models.OperationDebit && req.Operation != models.OperationCredit {
		return nil, apperr.Newf(apperr.KindValidation, "unknown operation %q", req.Operation)
	}

	newBalance, err := uc.repo.UpdateBalance(ctx, id, amount, req.Operation)
	if err != nil {
		var appErr *apperr.Error
		if !errors.As(err, &appErr) {
			logger.Error("Unexpected error updating balance",
				logger.String("account_id", id),
				logger.String("operation", string(req.Operation)),
				logger.Err(err))
		}
		return nil, err
	}

	logger.Info("Balance updated",
		logger.String("account_id", id),
		logger.String("operation", string(req.Operation)),
		logger.String("amount", amount.String()),
		logger.String("new_balance", newBalance.String()))

	return &models.UpdateBalanceResponse{
		Success:    true,
		NewBalance: newBalance.String(),
		Message:    "Balance updated successfully",
	}, nil
}
