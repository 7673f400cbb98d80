package transfer

import (
	"context"

	"github.com/greatadamu/ledgerlink/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/greatadamu/ledgerlink/services/transfer TransferRepo

// TransferRepo defines the interface for transfer repository operations.
// Each write is an independent operation on the pool: the PENDING insert is
// durable before any remote mutation is attempted, and the terminal
// transition is persisted on its own even if later steps fail.
type TransferRepo interface {
	// CreateTransaction inserts a PENDING record. A duplicate idempotency
	// key yields a Conflict error; the caller re-reads the winner's record.
	CreateTransaction(ctx context.Context, transaction *models.Transaction) error

	GetTransactionByID(ctx context.Context, id string) (*models.Transaction, error)
	GetTransactionByIdempotencyKey(ctx context.Context, key string) (*models.Transaction, error)
	GetTransactionsByCustomerID(ctx context.Context, customerID string) ([]*models.Transaction, error)
	ListTransactions(ctx context.Context) ([]*models.Transaction, error)

	// MarkCompleted and MarkFailed transition a PENDING record to its
	// terminal state. Terminal records are never modified again.
	MarkCompleted(ctx context.Context, id string) (*models.Transaction, error)
	MarkFailed(ctx context.Context, id string, reason string) (*models.Transaction, error)
}
