package usecase

import (
	"github.com/greatadamu/ledgerlink/internal/pkg/models"
	"github.com/greatadamu/ledgerlink/services/transfer"
)

// TransferUC implements the transfer.TransferUseCase interface
type TransferUC struct {
	cfg    *models.Config
	repo   transfer.TransferRepo
	ledger transfer.LedgerClient
	gw     transfer.TransferGW
}

// NewTransferUC creates a new transfer use case
func NewTransferUC(cfg *models.Config, repo transfer.TransferRepo, ledger transfer.LedgerClient, gw transfer.TransferGW) transfer.TransferUseCase {
	return &TransferUC{
		cfg:    cfg,
		repo:   repo,
		ledger: ledger,
		gw:     gw,
	}
}
