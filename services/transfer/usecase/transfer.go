package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/greatadamu/ledgerlink/internal/pkg/apperr"
	"github.com/greatadamu/ledgerlink/internal/pkg/logger"
	"github.com/greatadamu/ledgerlink/internal/pkg/models"
)

// CreateTransfer executes the two-step transfer saga: debit the source
// account, credit the destination account, with a compensating credit back
// to the source if the credit step fails. There is no distributed
// transaction; the PENDING record persisted before the first remote
// mutation is what makes partial progress visible to reconciliation.
func (uc *TransferUC) CreateTransfer(ctx context.Context, req models.CreateTransferRequest) (*models.Transaction, bool, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, false, apperr.New(apperr.KindValidation, "amount must be a decimal string")
	}
	if !amount.IsPositive() {
		return nil, false, apperr.New(apperr.KindValidation, "amount must be positive")
	}
	if req.FromAccountID == req.ToAccountID {
		return nil, false, apperr.New(apperr.KindValidation, "source and destination accounts must differ")
	}

	// Idempotency short-circuit: a key that was ever persisted is settled
	// by its existing record, regardless of that record's outcome.
	existing, err := uc.repo.GetTransactionByIdempotencyKey(ctx, req.IdempotencyKey)
	if err == nil {
		logger.Info("Idempotency key matched existing transaction",
			logger.String("transaction_id", existing.ID),
			logger.String("idempotency_key", req.IdempotencyKey))
		return existing, false, nil
	}
	if !apperr.IsKind(err, apperr.KindNotFound) {
		return nil, false, fmt.Errorf("failed to check idempotency key: %w", err)
	}

	if err := uc.validateAccounts(ctx, req.FromAccountID, req.ToAccountID); err != nil {
		return nil, false, err
	}

	now := time.Now()
	transaction := &models.Transaction{
		ID:             uuid.New().String(),
		IdempotencyKey: req.IdempotencyKey,
		CustomerID:     req.CustomerID,
		FromAccountID:  req.FromAccountID,
		ToAccountID:    req.ToAccountID,
		Amount:         amount,
		Type:           req.Type,
		Status:         models.TransactionStatusPending,
		Description:    req.Description,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := uc.repo.CreateTransaction(ctx, transaction); err != nil {
		if apperr.IsKind(err, apperr.KindConflict) {
			// Lost the insert race; the winner's record settles this key.
			winner, readErr := uc.repo.GetTransactionByIdempotencyKey(ctx, req.IdempotencyKey)
			if readErr != nil {
				return nil, false, fmt.Errorf("failed to read winning transaction: %w", readErr)
			}
			return winner, false, nil
		}
		return nil, false, err
	}

	result, err := uc.executeSaga(ctx, transaction)
	if err != nil {
		return nil, false, err
	}

	return result, true, nil
}

// validateAccounts checks both accounts before any record is persisted or
// any balance is touched
func (uc *TransferUC) validateAccounts(ctx context.Context, fromID, toID string) error {
	source, err := uc.ledger.ValidateAccount(ctx, fromID)
	if err != nil {
		return fmt.Errorf("failed to validate source account: %w", err)
	}
	if !source.Exists {
		return apperr.Newf(apperr.KindNotFound, "source account %s not found", fromID)
	}
	if !source.IsActive {
		return apperr.Newf(apperr.KindPrecondition, "source account %s is not active", fromID)
	}

	dest, err := uc.ledger.ValidateAccount(ctx, toID)
	if err != nil {
		return fmt.Errorf("failed to validate destination account: %w", err)
	}
	if !dest.Exists {
		return apperr.Newf(apperr.KindNotFound, "destination account %s not found", toID)
	}
	if !dest.IsActive {
		return apperr.Newf(apperr.KindPrecondition, "destination account %s is not active", toID)
	}

	return nil
}

// executeSaga runs debit then credit against an already-persisted PENDING
// transaction and drives it to a terminal state
func (uc *TransferUC) executeSaga(ctx context.Context, transaction *models.Transaction) (*models.Transaction, error) {
	description := transaction.Description
	if description == "" {
		description = fmt.Sprintf("Transfer %s", transaction.ID)
	}

	// Step 1: debit the source. A failure here, including a timeout, leaves
	// both balances untouched from this saga's point of view, so the
	// transaction fails without compensation.
	_, err := uc.ledger.UpdateBalance(ctx, transaction.FromAccountID, transaction.Amount, models.OperationDebit, description)
	if err != nil {
		logger.Warn("Debit failed",
			logger.String("transaction_id", transaction.ID),
			logger.String("from_account_id", transaction.FromAccountID),
			logger.Err(err))
		return nil, uc.fail(ctx, transaction, fmt.Sprintf("debit failed: %v", err), err)
	}

	// Step 2: credit the destination. Any failure here means the source has
	// already been debited, so the debit must be compensated.
	_, err = uc.ledger.UpdateBalance(ctx, transaction.ToAccountID, transaction.Amount, models.OperationCredit, description)
	if err != nil {
		logger.Warn("Credit failed, compensating debit",
			logger.String("transaction_id", transaction.ID),
			logger.String("to_account_id", transaction.ToAccountID),
			logger.Err(err))

		if compErr := uc.compensateDebit(ctx, transaction, description); compErr != nil {
			return nil, uc.fail(ctx, transaction,
				fmt.Sprintf("credit failed: %v; compensation failed: %v", err, compErr),
				apperr.Wrap(apperr.KindInternal, "transfer left in inconsistent state, manual reconciliation required", compErr))
		}

		return nil, uc.fail(ctx, transaction, fmt.Sprintf("credit failed: %v", err), err)
	}

	completed, err := uc.repo.MarkCompleted(ctx, transaction.ID)
	if err != nil {
		// Both balances moved; the record must not be reported as failed.
		return nil, fmt.Errorf("transfer applied but completion not recorded: %w", err)
	}

	uc.publishEvent(completed)

	logger.Info("Transfer completed",
		logger.String("transaction_id", completed.ID),
		logger.String("amount", completed.Amount.String()))

	return completed, nil
}

// compensateDebit credits the debited amount back to the source account
func (uc *TransferUC) compensateDebit(ctx context.Context, transaction *models.Transaction, description string) error {
	_, err := uc.ledger.UpdateBalance(ctx, transaction.FromAccountID, transaction.Amount, models.OperationCredit, "Reversal: "+description)
	if err != nil {
		logger.Error("Compensating credit failed",
			logger.String("transaction_id", transaction.ID),
			logger.String("from_account_id", transaction.FromAccountID),
			logger.Err(err))
		return err
	}

	logger.Info("Debit compensated",
		logger.String("transaction_id", transaction.ID),
		logger.String("from_account_id", transaction.FromAccountID))
	return nil
}

// fail drives the transaction to FAILED and returns cause; the persistence
// of the terminal state is best-effort relative to the cause being reported
func (uc *TransferUC) fail(ctx context.Context, transaction *models.Transaction, reason string, cause error) error {
	failed, err := uc.repo.MarkFailed(ctx, transaction.ID, reason)
	if err != nil {
		logger.Error("Failed to record transaction failure",
			logger.String("transaction_id", transaction.ID),
			logger.Err(err))
		return cause
	}

	uc.publishEvent(failed)
	return cause
}

// publishEvent emits the terminal transaction event without coupling the
// saga result to the broker being reachable
func (uc *TransferUC) publishEvent(transaction *models.Transaction) {
	event := &models.TransactionEvent{
		TransactionID: transaction.ID,
		CustomerID:    transaction.CustomerID,
		Amount:        transaction.Amount.String(),
		Type:          transaction.Type,
		Status:        transaction.Status,
		Timestamp:     time.Now(),
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := uc.gw.PublishTransactionEvent(ctx, event); err != nil {
			logger.Error("Failed to publish transaction event",
				logger.String("transaction_id", event.TransactionID),
				logger.String("status", string(event.Status)),
				logger.Err(err))
		}
	}()
}

// GetTransaction retrieves a transaction by ID
func (uc *TransferUC) GetTransaction(ctx context.Context, id string) (*models.Transaction, error) {
	return uc.repo.GetTransactionByID(ctx, id)
}

// GetTransactionsByCustomer retrieves all transactions for a customer
func (uc *TransferUC) GetTransactionsByCustomer(ctx context.Context, customerID string) ([]*models.Transaction, error) {
	return uc.repo.GetTransactionsByCustomerID(ctx, customerID)
}

// ListTransactions retrieves all transactions
func (uc *TransferUC) ListTransactions(ctx context.Context) ([]*models.Transaction, error) {
	return uc.repo.ListTransactions(ctx)
}
