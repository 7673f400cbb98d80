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
	balanceMutationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ledger_balance_mutations_total",
		Help: "Total balance mutations by operation and outcome",
	}, []string{"operation", "outcome"})

	balanceMutationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ledger_balance_mutation_duration_seconds",
		Help:    "Duration of balance mutations",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
)

// ValidateAccountInternal answers existence/activity checks from the
// transfer orchestrator. Pure read, no side effects.
func (h *LedgerHandler) ValidateAccountInternal(c echo.Context) error {
	validation, err := h.ledgerUC.ValidateAccount(c.Request().Context(), c.Param("id"))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, validation)
}

// GetBalanceInternal answers balance reads from the transfer orchestrator
func (h *LedgerHandler) GetBalanceInternal(c echo.Context) error {
	balance, err := h.ledgerUC.GetBalance(c.Request().Context(), c.Param("id"))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, balance)
}

// UpdateBalanceInternal applies a debit or credit on behalf of the transfer
// orchestrator. Errors carry the stable taxonomy code so the caller can map
// them without parsing messages.
func (h *LedgerHandler) UpdateBalanceInternal(c echo.Context) error {
	var req models.UpdateBalanceRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	timer := prometheus.NewTimer(balanceMutationDuration.WithLabelValues(string(req.Operation)))
	defer timer.ObserveDuration()

	resp, err := h.ledgerUC.UpdateBalance(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		balanceMutationsTotal.WithLabelValues(string(req.Operation), "error").Inc()
		return utils.AppErrorResponse(c, err)
	}

	balanceMutationsTotal.WithLabelValues(string(req.Operation), "success").Inc()
	return c.JSON(http.StatusOK, resp)
}
