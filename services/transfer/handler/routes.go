package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/greatadamu/ledgerlink/internal/pkg/middleware"
	"github.com/greatadamu/ledgerlink/internal/pkg/models"
	"github.com/greatadamu/ledgerlink/services/transfer"
)

// TransferHandler handles HTTP requests for transfer operations
type TransferHandler struct {
	transferUC transfer.TransferUseCase
	cfg        *models.Config
}

// NewTransferHandler creates a new transfer handler
func NewTransferHandler(transferUC transfer.TransferUseCase, cfg *models.Config) *TransferHandler {
	return &TransferHandler{
		transferUC: transferUC,
		cfg:        cfg,
	}
}

// RegisterRoutes registers the transfer routes
func (h *TransferHandler) RegisterRoutes(e *echo.Echo) {
	transfers := e.Group("/api/v1/transfers")
	transfers.Use(middleware.JWTAuthMiddleware(h.cfg.JWT))
	transfers.POST("", h.CreateTransfer)
	transfers.GET("", h.ListTransactions)
	transfers.GET("/:id", h.GetTransaction)
}
