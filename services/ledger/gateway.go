package ledger

import (
	"context"

	"github.com/greatadamu/ledgerlink/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/greatadamu/ledgerlink/services/ledger LedgerGW

// LedgerGW defines the interface for ledger gateway operations
type LedgerGW interface {
	PublishAccountCreated(ctx context.Context, account *models.Account) error
}
