package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/greatadamu/ledgerlink/internal/pkg/apperr"
	"github.com/greatadamu/ledgerlink/internal/pkg/constants"
	"github.com/greatadamu/ledgerlink/internal/pkg/database"
	"github.com/greatadamu/ledgerlink/internal/pkg/logger"
	"github.com/greatadamu/ledgerlink/internal/pkg/models"
	"github.com/greatadamu/ledgerlink/services/transfer"

	"github.com/shopspring/decimal"
)

// pgUniqueViolation is the Postgres error code for unique constraint violations
const pgUniqueViolation = "23505"

// PostgresTransferRepo implements the transfer.TransferRepo interface.
// Postgres is authoritative; Redis only caches terminal records by
// idempotency key for the cheap repeat-submission short-circuit.
type PostgresTransferRepo struct {
	db       *sqlx.DB
	cache    *database.RedisClient
	cacheTTL time.Duration
}

// NewTransferRepository creates a new transfer repository
func NewTransferRepository(db *sqlx.DB, cache *database.RedisClient, cacheTTL time.Duration) transfer.TransferRepo {
	return &PostgresTransferRepo{
		db:       db,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

// CreateTransaction inserts a new PENDING transaction. The unique constraint
// on idempotency_key is the arbiter under races: the loser gets a Conflict
// error and must fall back to the winner's record.
func (r *PostgresTransferRepo) CreateTransaction(ctx context.Context, transaction *models.Transaction) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO transactions (
			id, idempotency_key, customer_id, from_account_id, to_account_id,
			amount, type, status, description, failure_reason, created_at, updated_at
		) VALUES (
			:id, :idempotency_key, :customer_id, :from_account_id, :to_account_id,
			:amount, :type, :status, :description, :failure_reason, :created_at, :updated_at
		)
	`, map[string]interface{}{
		"id":              transaction.ID,
		"idempotency_key": transaction.IdempotencyKey,
		"customer_id":     transaction.CustomerID,
		"from_account_id": transaction.FromAccountID,
		"to_account_id":   transaction.ToAccountID,
		"amount":          transaction.Amount.String(),
		"type":            transaction.Type,
		"status":          transaction.Status,
		"description":     transaction.Description,
		"failure_reason":  transaction.FailureReason,
		"created_at":      transaction.CreatedAt,
		"updated_at":      transaction.UpdatedAt,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperr.Wrap(apperr.KindConflict, "idempotency key already used", err)
		}
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	return nil
}

// GetTransactionByID retrieves a transaction by ID
func (r *PostgresTransferRepo) GetTransactionByID(ctx context.Context, id string) (*models.Transaction, error) {
	return r.getTransactionBy(ctx, "id", id)
}

// GetTransactionByIdempotencyKey retrieves a transaction by its idempotency
// key, consulting the Redis cache first
func (r *PostgresTransferRepo) GetTransactionByIdempotencyKey(ctx context.Context, key string) (*models.Transaction, error) {
	if cached := r.getCached(ctx, key); cached != nil {
		return cached, nil
	}

	transaction, err := r.getTransactionBy(ctx, "idempotency_key", key)
	if err != nil {
		return nil, err
	}

	if transaction.IsTerminal() {
		r.setCached(ctx, transaction)
	}

	return transaction, nil
}

// GetTransactionsByCustomerID retrieves all transactions for a customer,
// newest first
func (r *PostgresTransferRepo) GetTransactionsByCustomerID(ctx context.Context, customerID string) ([]*models.Transaction, error) {
	return r.listTransactions(ctx, `
		SELECT id, idempotency_key, customer_id, from_account_id, to_account_id,
		       amount, type, status, description, failure_reason, created_at, updated_at
		FROM transactions
		WHERE customer_id = $1
		ORDER BY created_at DESC
	`, customerID)
}

// ListTransactions retrieves all transactions, newest first
func (r *PostgresTransferRepo) ListTransactions(ctx context.Context) ([]*models.Transaction, error) {
	return r.listTransactions(ctx, `
		SELECT id, idempotency_key, customer_id, from_account_id, to_account_id,
		       amount, type, status, description, failure_reason, created_at, updated_at
		FROM transactions
		ORDER BY created_at DESC
	`)
}

// MarkCompleted transitions a PENDING transaction to COMPLETED. The status
// predicate keeps terminal records frozen.
func (r *PostgresTransferRepo) MarkCompleted(ctx context.Context, id string) (*models.Transaction, error) {
	return r.transition(ctx, id, models.TransactionStatusCompleted, "")
}

// MarkFailed transitions a PENDING transaction to FAILED with a reason
func (r *PostgresTransferRepo) MarkFailed(ctx context.Context, id string, reason string) (*models.Transaction, error) {
	return r.transition(ctx, id, models.TransactionStatusFailed, reason)
}

func (r *PostgresTransferRepo) transition(ctx context.Context, id string, status models.TransactionStatus, reason string) (*models.Transaction, error) {
	result, err := r.db.ExecContext(ctx, `
		UPDATE transactions
		SET status = $1, failure_reason = $2, updated_at = NOW()
		WHERE id = $3 AND status = $4
	`, status, reason, id, models.TransactionStatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to transition transaction: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return nil, apperr.Newf(apperr.KindConflict, "transaction %s is not pending", id)
	}

	transaction, err := r.GetTransactionByID(ctx, id)
	if err != nil {
		return nil, err
	}

	r.setCached(ctx, transaction)
	return transaction, nil
}

func (r *PostgresTransferRepo) getTransactionBy(ctx context.Context, column, value string) (*models.Transaction, error) {
	query := fmt.Sprintf(`
		SELECT id, idempotency_key, customer_id, from_account_id, to_account_id,
		       amount, type, status, description, failure_reason, created_at, updated_at
		FROM transactions
		WHERE %s = $1
	`, column)

	transaction, err := scanTransaction(r.db.QueryRowxContext(ctx, query, value))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.New(apperr.KindNotFound, "transaction not found")
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	return transaction, nil
}

func (r *PostgresTransferRepo) listTransactions(ctx context.Context, query string, args ...interface{}) ([]*models.Transaction, error) {
	rows, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var transactions []*models.Transaction
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, transaction)
	}

	return transactions, rows.Err()
}

func (r *PostgresTransferRepo) getCached(ctx context.Context, key string) *models.Transaction {
	if r.cache == nil {
		return nil
	}

	raw, err := r.cache.Get(ctx, constants.KeyTransferIdempotency+key)
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Warn("Idempotency cache read failed", logger.Err(err))
		}
		return nil
	}

	var transaction models.Transaction
	if err := json.Unmarshal([]byte(raw), &transaction); err != nil {
		logger.Warn("Idempotency cache entry malformed", logger.Err(err))
		return nil
	}

	return &transaction
}

func (r *PostgresTransferRepo) setCached(ctx context.Context, transaction *models.Transaction) {
	if r.cache == nil || !transaction.IsTerminal() {
		return
	}

	raw, err := json.Marshal(transaction)
	if err != nil {
		return
	}

	if err := r.cache.Set(ctx, constants.KeyTransferIdempotency+transaction.IdempotencyKey, raw, r.cacheTTL); err != nil {
		logger.Warn("Idempotency cache write failed",
			logger.String("transaction_id", transaction.ID),
			logger.Err(err))
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTransaction(s rowScanner) (*models.Transaction, error) {
	transaction := &models.Transaction{}
	var amountStr string

	err := s.Scan(
		&transaction.ID,
		&transaction.IdempotencyKey,
		&transaction.CustomerID,
		&transaction.FromAccountID,
		&transaction.ToAccountID,
		&amountStr,
		&transaction.Type,
		&transaction.Status,
		&transaction.Description,
		&transaction.FailureReason,
		&transaction.CreatedAt,
		&transaction.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stored amount: %w", err)
	}
	transaction.Amount = amount

	return transaction, nil
}
