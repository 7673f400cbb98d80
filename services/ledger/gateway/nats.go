package gateway

import (
	"context"
	"time"

	"github.com/greatadamu/ledgerlink/internal/pkg/constants"
	natspkg "github.com/greatadamu/ledgerlink/internal/pkg/nats"
	"github.com/greatadamu/ledgerlink/services/ledger"

	"github.com/greatadamu/ledgerlink/internal/pkg/models"
)

// LedgerGW implements the ledger.LedgerGW interface
type LedgerGW struct {
	producer *natspkg.Producer
}

// NewLedgerGW creates a new ledger gateway
func NewLedgerGW(client *natspkg.Client) ledger.LedgerGW {
	return &LedgerGW{
		producer: natspkg.NewProducer(client),
	}
}

type accountCreatedEvent struct {
	AccountID     string    `json:"account_id"`
	CustomerID    string    `json:"customer_id"`
	AccountNumber string    `json:"account_number"`
	AccountType   string    `json:"account_type"`
	Timestamp     time.Time `json:"timestamp"`
}

// PublishAccountCreated publishes an account creation notification
func (gw *LedgerGW) PublishAccountCreated(_ context.Context, account *models.Account) error {
	event := accountCreatedEvent{
		AccountID:     account.ID,
		CustomerID:    account.CustomerID,
		AccountNumber: account.AccountNumber,
		AccountType:   string(account.AccountType),
		Timestamp:     time.Now().UTC(),
	}
	return gw.producer.Publish(constants.SubjectAccountCreated, event)
}
