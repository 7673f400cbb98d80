package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/greatadamu/ledgerlink/internal/pkg/models"
	"github.com/greatadamu/ledgerlink/internal/utils"
)

// CreateAccount handles account opening requests
func (h *LedgerHandler) CreateAccount(c echo.Context) error {
	var req models.CreateAccountRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	account, err := h.ledgerUC.CreateAccount(c.Request().Context(), req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Account created", account)
}

// GetAccount handles account lookups by ID
func (h *LedgerHandler) GetAccount(c echo.Context) error {
	account, err := h.ledgerUC.GetAccount(c.Request().Context(), c.Param("id"))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", account)
}

// GetAccountByNumber handles account lookups by account number
func (h *LedgerHandler) GetAccountByNumber(c echo.Context) error {
	account, err := h.ledgerUC.GetAccountByNumber(c.Request().Context(), c.Param("accountNumber"))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", account)
}

// UpdateAccount handles updates to the mutable account fields
func (h *LedgerHandler) UpdateAccount(c echo.Context) error {
	var req models.UpdateAccountRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	account, err := h.ledgerUC.UpdateAccount(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Account updated", account)
}

// DeactivateAccount handles account deactivation
func (h *LedgerHandler) DeactivateAccount(c echo.Context) error {
	if err := h.ledgerUC.DeactivateAccount(c.Request().Context(), c.Param("id")); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Account deactivated", nil)
}
