package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/greatadamu/ledgerlink/internal/pkg/models"
	"github.com/greatadamu/ledgerlink/internal/utils"
)

var (
	transfersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "transfer_requests_total",
		Help: "Total transfer requests by outcome",
	}, []string{"outcome"})

	transferDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "transfer_duration_seconds",
		Help:    "End-to-end duration of transfer requests",
		Buckets: prometheus.DefBuckets,
	})
)

// CreateTransfer handles a transfer submission. A fresh execution returns
// 201; a repeat of an already-settled idempotency key returns 200 with the
// original record.
func (h *TransferHandler) CreateTransfer(c echo.Context) error {
	var req models.CreateTransferRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	// The caller may only move money under their own identity; the customer
	// ID must be in place before validation since the body never carries it.
	customerID, ok := c.Get("customer_id").(string)
	if !ok || customerID == "" {
		return utils.UnauthorizedResponse(c, "")
	}
	req.CustomerID = customerID

	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	timer := prometheus.NewTimer(transferDuration)
	defer timer.ObserveDuration()

	transaction, created, err := h.transferUC.CreateTransfer(c.Request().Context(), req)
	if err != nil {
		transfersTotal.WithLabelValues("error").Inc()
		return utils.AppErrorResponse(c, err)
	}

	if !created {
		transfersTotal.WithLabelValues("replay").Inc()
		return utils.SuccessResponse(c, http.StatusOK, "Transfer already processed", transaction)
	}

	transfersTotal.WithLabelValues("success").Inc()
	return utils.SuccessResponse(c, http.StatusCreated, "Transfer completed", transaction)
}

// GetTransaction handles a transaction read by ID
func (h *TransferHandler) GetTransaction(c echo.Context) error {
	transaction, err := h.transferUC.GetTransaction(c.Request().Context(), c.Param("id"))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transaction retrieved", transaction)
}

// ListTransactions lists transactions, optionally filtered by customer
func (h *TransferHandler) ListTransactions(c echo.Context) error {
	var (
		transactions []*models.Transaction
		err          error
	)

	if customerID := c.QueryParam("customer_id"); customerID != "" {
		transactions, err = h.transferUC.GetTransactionsByCustomer(c.Request().Context(), customerID)
	} else {
		transactions, err = h.transferUC.ListTransactions(c.Request().Context())
	}
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transactions retrieved", transactions)
}
