package gateway

import (
	"context"

	"github.com/greatadamu/ledgerlink/internal/pkg/constants"
	"github.com/greatadamu/ledgerlink/internal/pkg/logger"
	"github.com/greatadamu/ledgerlink/internal/pkg/models"
	"github.com/greatadamu/ledgerlink/internal/pkg/nats"
	"github.com/greatadamu/ledgerlink/internal/pkg/retry"
	"github.com/greatadamu/ledgerlink/services/transfer"
)

// TransferGW implements the transfer.TransferGW interface
type TransferGW struct {
	producer *nats.Producer
	retrier  *retry.Retrier
}

// NewTransferGW creates a new transfer gateway
func NewTransferGW(client *nats.Client, l *logger.ZapLogger) transfer.TransferGW {
	return &TransferGW{
		producer: nats.NewProducer(client),
		retrier:  retry.NewWithDefaults(l),
	}
}

// PublishTransactionEvent publishes a terminal transaction event. The
// subject follows the transaction status so consumers can subscribe to
// completions and failures independently.
func (g *TransferGW) PublishTransactionEvent(ctx context.Context, event *models.TransactionEvent) error {
	subject := constants.SubjectTransactionCompleted
	if event.Status == models.TransactionStatusFailed {
		subject = constants.SubjectTransactionFailed
	}

	return g.retrier.Execute(ctx, func(ctx context.Context) error {
		return g.producer.Publish(subject, event)
	})
}
