package transfer

import (
	"context"

	"github.com/greatadamu/ledgerlink/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/greatadamu/ledgerlink/services/transfer TransferUseCase

// TransferUseCase defines the interface for transfer use cases
type TransferUseCase interface {
	// CreateTransfer runs the transfer saga. The returned bool is false when
	// the idempotency key matched a previously persisted transaction and the
	// existing record was returned unchanged.
	CreateTransfer(ctx context.Context, req models.CreateTransferRequest) (*models.Transaction, bool, error)

	GetTransaction(ctx context.Context, id string) (*models.Transaction, error)
	GetTransactionsByCustomer(ctx context.Context, customerID string) ([]*models.Transaction, error)
	ListTransactions(ctx context.Context) ([]*models.Transaction, error)
}
