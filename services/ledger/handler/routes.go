package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/greatadamu/ledgerlink/internal/pkg/middleware"
	"github.com/greatadamu/ledgerlink/internal/pkg/models"
	"github.com/greatadamu/ledgerlink/services/ledger"
)

// LedgerHandler handles HTTP requests for ledger operations
type LedgerHandler struct {
	ledgerUC ledger.LedgerUseCase
	cfg      *models.Config
}

// NewLedgerHandler creates a new ledger handler
func NewLedgerHandler(ledgerUC ledger.LedgerUseCase, cfg *models.Config) *LedgerHandler {
	return &LedgerHandler{
		ledgerUC: ledgerUC,
		cfg:      cfg,
	}
}

// RegisterRoutes registers the ledger routes
func (h *LedgerHandler) RegisterRoutes(e *echo.Echo, apiKeyMW *middleware.APIKeyMiddleware) {
	// Public account API
	accounts := e.Group("/api/v1/accounts")
	accounts.Use(middleware.JWTAuthMiddleware(h.cfg.JWT))
	accounts.POST("", h.CreateAccount)
	accounts.GET("/:id", h.GetAccount)
	accounts.GET("/number/:accountNumber", h.GetAccountByNumber)
	accounts.PUT("/:id", h.UpdateAccount)
	accounts.DELETE("/:id", h.DeactivateAccount)

	// Internal RPC surface, consumed by the transfer orchestrator
	internal := e.Group("/internal/accounts")
	internal.Use(apiKeyMW.Validate(h.cfg.APIKey.TransferService))
	internal.GET("/:id/validate", h.ValidateAccountInternal)
	internal.GET("/:id/balance", h.GetBalanceInternal)
	internal.POST("/:id/balance", h.UpdateBalanceInternal)
}
