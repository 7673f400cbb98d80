package usecase

import (
	"github.com/greatadamu/ledgerlink/internal/pkg/models"
	"github.com/greatadamu/ledgerlink/services/ledger"
)

// LedgerUC implements the ledger.LedgerUseCase interface
type LedgerUC struct {
	cfg  *models.Config
	repo ledger.LedgerRepo
	gw   ledger.LedgerGW
}

// NewLedgerUC creates a new ledger use case
func NewLedgerUC(cfg *models.Config, repo ledger.LedgerRepo, gw ledger.LedgerGW) ledger.LedgerUseCase {
	return &LedgerUC{
		cfg:  cfg,
		repo: repo,
		gw:   gw,
	}
}
