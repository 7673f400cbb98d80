package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus represents the saga state of a transfer.
// A transaction starts PENDING and moves exactly once to COMPLETED or FAILED.
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "PENDING"
	TransactionStatusCompleted TransactionStatus = "COMPLETED"
	TransactionStatusFailed    TransactionStatus = "FAILED"
)

// TransactionType categorizes a transfer
type TransactionType string

const (
	TransactionTypeTransfer TransactionType = "TRANSFER"
	TransactionTypePayment  TransactionType = "PAYMENT"
	TransactionTypeRefund   TransactionType = "REFUND"
)

// Transaction represents one attempted transfer. Records are never deleted;
// failed attempts stay behind as the audit trail.
type Transaction struct {
	ID             string            `json:"id" db:"id"`
	IdempotencyKey string            `json:"idempotency_key" db:"idempotency_key"`
	CustomerID     string            `json:"customer_id" db:"customer_id"`
	FromAccountID  string            `json:"from_account_id" db:"from_account_id"`
	ToAccountID    string            `json:"to_account_id" db:"to_account_id"`
	Amount         decimal.Decimal   `json:"amount" db:"amount"`
	Type           TransactionType   `json:"type" db:"type"`
	Status         TransactionStatus `json:"status" db:"status"`
	Description    string            `json:"description" db:"description"`
	FailureReason  string            `json:"failure_reason,omitempty" db:"failure_reason"`
	CreatedAt      time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at" db:"updated_at"`
}

// IsTerminal reports whether the transaction reached a final state
func (t *Transaction) IsTerminal() bool {
	return t.Status == TransactionStatusCompleted || t.Status == TransactionStatusFailed
}

// CreateTransferRequest is the public request to start a transfer
type CreateTransferRequest struct {
	IdempotencyKey string          `json:"idempotency_key" validate:"required"`
	CustomerID     string          `json:"customer_id" validate:"required"`
	FromAccountID  string          `json:"from_account_id" validate:"required"`
	ToAccountID    string          `json:"to_account_id" validate:"required"`
	Amount         string          `json:"amount" validate:"required"`
	Type           TransactionType `json:"type" validate:"required,oneof=TRANSFER PAYMENT REFUND"`
	Description    string          `json:"description"`
}
