package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/greatadamu/ledgerlink/internal/pkg/apperr"
	"github.com/greatadamu/ledgerlink/internal/pkg/models"
	"github.com/greatadamu/ledgerlink/services/ledger"
)

// PostgresLedgerRepo implements the ledger.LedgerRepo interface
type PostgresLedgerRepo struct {
	db *sqlx.DB
}

// NewLedgerRepository creates a new ledger repository
func NewLedgerRepository(db *sqlx.DB) ledger.LedgerRepo {
	return &PostgresLedgerRepo{
		db: db,
	}
}

// CreateAccount creates a new account record
func (r *PostgresLedgerRepo) CreateAccount(ctx context.Context, account *models.Account) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO accounts (
			id, customer_id, account_number, account_name, account_type,
			status, balance, version, created_at, updated_at
		) VALUES (
			:id, :customer_id, :account_number, :account_name, :account_type,
			:status, :balance, :version, :created_at, :updated_at
		)
	`, map[string]interface{}{
		"id":             account.ID,
		"customer_id":    account.CustomerID,
		"account_number": account.AccountNumber,
		"account_name":   account.AccountName,
		"account_type":   account.AccountType,
		"status":         account.Status,
		"balance":        account.Balance.String(),
		"version":        account.Version,
		"created_at":     account.CreatedAt,
		"updated_at":     account.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	return nil
}

// GetAccount retrieves an account by ID
func (r *PostgresLedgerRepo) GetAccount(ctx context.Context, id string) (*models.Account, error) {
	return r.getAccountBy(ctx, "id", id)
}

// GetAccountByNumber retrieves an account by its account number
func (r *PostgresLedgerRepo) GetAccountByNumber(ctx context.Context, accountNumber string) (*models.Account, error) {
	return r.getAccountBy(ctx, "account_number", accountNumber)
}

func (r *PostgresLedgerRepo) getAccountBy(ctx context.Context, column, value string) (*models.Account, error) {
	query := fmt.Sprintf(`
		SELECT id, customer_id, account_number, account_name, account_type,
		       status, balance, version, created_at, updated_at
		FROM accounts
		WHERE %s = $1
	`, column)

	account, err := scanAccount(r.db.QueryRowxContext(ctx, query, value))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.New(apperr.KindNotFound, "account not found")
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return account, nil
}

// UpdateAccountDetails updates the mutable account fields and returns the
// refreshed record
func (r *PostgresLedgerRepo) UpdateAccountDetails(ctx context.Context, id string, name string, accountType models.AccountType) (*models.Account, error) {
	result, err := r.db.ExecContext(ctx, `
		UPDATE accounts
		SET account_name = $1, account_type = $2, updated_at = NOW()
		WHERE id = $3
	`, name, accountType, id)
	if err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return nil, apperr.New(apperr.KindNotFound, "account not found")
	}

	return r.GetAccount(ctx, id)
}

// SetAccountStatus activates or deactivates an account
func (r *PostgresLedgerRepo) SetAccountStatus(ctx context.Context, id string, status models.AccountStatus) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE accounts
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`, status, id)
	if err != nil {
		return fmt.Errorf("failed to set account status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperr.New(apperr.KindNotFound, "account not found")
	}

	return nil
}

// UpdateBalance applies a debit or credit under an exclusive row lock. The
// SELECT ... FOR UPDATE scopes the lock to exactly one read-modify-write, so
// mutations on the same account are strictly ordered while distinct accounts
// proceed in parallel. The version column is bumped on every successful write.
func (r *PostgresLedgerRepo) UpdateBalance(ctx context.Context, id string, amount decimal.Decimal, operation models.BalanceOperation) (decimal.Decimal, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var balanceStr string
	var status models.AccountStatus
	var version int64
	err = tx.QueryRowxContext(ctx, `
		SELECT balance, status, version
		FROM accounts
		WHERE id = $1
		FOR UPDATE
	`, id).Scan(&balanceStr, &status, &version)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Zero, apperr.New(apperr.KindNotFound, "account not found")
		}
		return decimal.Zero, fmt.Errorf("failed to lock account row: %w", err)
	}

	if status != models.AccountStatusActive {
		return decimal.Zero, apperr.New(apperr.KindPrecondition, "account is not active")
	}

	currentBalance, err := decimal.NewFromString(balanceStr)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse stored balance: %w", err)
	}

	var newBalance decimal.Decimal
	switch operation {
	case models.OperationDebit:
		if currentBalance.LessThan(amount) {
			return decimal.Zero, apperr.Newf(apperr.KindPrecondition,
				"insufficient funds: balance %s, required %s", currentBalance.String(), amount.String())
		}
		newBalance = currentBalance.Sub(amount)
	case models.OperationCredit:
		newBalance = currentBalance.Add(amount)
	default:
		return decimal.Zero, apperr.Newf(apperr.KindValidation, "unknown operation %q", operation)
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE accounts
		SET balance = $1, version = version + 1, updated_at = NOW()
		WHERE id = $2 AND version = $3
	`, newBalance.String(), id, version)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to update balance: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return decimal.Zero, fmt.Errorf("failed to commit balance update: %w", err)
	}

	return newBalance, nil
}

func scanAccount(row *sqlx.Row) (*models.Account, error) {
	account := &models.Account{}
	var balanceStr string

	err := row.Scan(
		&account.ID,
		&account.CustomerID,
		&account.AccountNumber,
		&account.AccountName,
		&account.AccountType,
		&account.Status,
		&balanceStr,
		&account.Version,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	balance, err := decimal.NewFromString(balanceStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stored balance: %w", err)
	}
	account.Balance = balance

	return account, nil
}
