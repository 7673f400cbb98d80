package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greatadamu/ledgerlink/internal/pkg/apperr"
	jwtpkg "github.com/greatadamu/ledgerlink/internal/pkg/jwt"
	"github.com/greatadamu/ledgerlink/internal/pkg/middleware"
	"github.com/greatadamu/ledgerlink/internal/pkg/models"
	"github.com/greatadamu/ledgerlink/internal/utils"
	"github.com/greatadamu/ledgerlink/services/transfer/mocks"
)

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = middleware.NewRequestValidator()
	return e
}

const transferBody = `{
	"idempotency_key": "idem-key-1",
	"from_account_id": "account-a",
	"to_account_id": "account-b",
	"amount": "30.00",
	"type": "TRANSFER",
	"description": "rent share"
}`

func TestCreateTransfer_Created(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTransferUseCase(ctrl)
	h := NewTransferHandler(mockUC, &models.Config{})

	e := newEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transfers", strings.NewReader(transferBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("customer_id", "customer-1")

	mockUC.EXPECT().
		CreateTransfer(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, r models.CreateTransferRequest) (*models.Transaction, bool, error) {
			// Identity comes from the token, never from the body.
			assert.Equal(t, "customer-1", r.CustomerID)
			assert.Equal(t, "idem-key-1", r.IdempotencyKey)
			return &models.Transaction{
				ID:     "txn-1",
				Status: models.TransactionStatusCompleted,
				Amount: decimal.RequireFromString("30.00"),
			}, true, nil
		})

	require.NoError(t, h.CreateTransfer(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestCreateTransfer_ReplayReturns200(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTransferUseCase(ctrl)
	h := NewTransferHandler(mockUC, &models.Config{})

	e := newEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transfers", strings.NewReader(transferBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("customer_id", "customer-1")

	mockUC.EXPECT().
		CreateTransfer(gomock.Any(), gomock.Any()).
		Return(&models.Transaction{
			ID:     "txn-1",
			Status: models.TransactionStatusCompleted,
			Amount: decimal.RequireFromString("30.00"),
		}, false, nil)

	require.NoError(t, h.CreateTransfer(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateTransfer_MissingFieldsRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTransferUseCase(ctrl)
	h := NewTransferHandler(mockUC, &models.Config{})

	e := newEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transfers", strings.NewReader(`{"amount": "30.00"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("customer_id", "customer-1")

	require.NoError(t, h.CreateTransfer(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateTransfer_MissingIdentityRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTransferUseCase(ctrl)
	h := NewTransferHandler(mockUC, &models.Config{})

	e := newEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transfers", strings.NewReader(transferBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.CreateTransfer(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateTransfer_PreconditionMapsTo422(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTransferUseCase(ctrl)
	h := NewTransferHandler(mockUC, &models.Config{})

	e := newEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transfers", strings.NewReader(transferBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("customer_id", "customer-1")

	mockUC.EXPECT().
		CreateTransfer(gomock.Any(), gomock.Any()).
		Return(nil, false, apperr.New(apperr.KindPrecondition, "insufficient funds: balance 10, required 30"))

	require.NoError(t, h.CreateTransfer(c))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp utils.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, string(apperr.KindPrecondition), resp.Code)
}

func TestGetTransaction_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTransferUseCase(ctrl)
	h := NewTransferHandler(mockUC, &models.Config{})

	e := newEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/transfers/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	mockUC.EXPECT().
		GetTransaction(gomock.Any(), "missing").
		Return(nil, apperr.New(apperr.KindNotFound, "transaction not found"))

	require.NoError(t, h.GetTransaction(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListTransactions_FilterByCustomer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockTransferUseCase(ctrl)
	h := NewTransferHandler(mockUC, &models.Config{})

	e := newEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/transfers?customer_id=customer-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockUC.EXPECT().
		GetTransactionsByCustomer(gomock.Any(), "customer-1").
		Return([]*models.Transaction{{ID: "txn-1"}}, nil)

	require.NoError(t, h.ListTransactions(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

// Drives the request through RegisterRoutes and the real JWT middleware so
// the identity reaches the handler the same way it does in production.
func TestCreateTransfer_ThroughJWTMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := &models.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.Expiration = 60
	cfg.JWT.Issuer = "ledgerlink"

	mockUC := mocks.NewMockTransferUseCase(ctrl)
	h := NewTransferHandler(mockUC, cfg)

	e := newEcho()
	h.RegisterRoutes(e)

	token, _, err := jwtpkg.GenerateToken("customer-1", "customer", cfg.JWT)
	require.NoError(t, err)

	mockUC.EXPECT().
		CreateTransfer(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, r models.CreateTransferRequest) (*models.Transaction, bool, error) {
			assert.Equal(t, "customer-1", r.CustomerID)
			return &models.Transaction{
				ID:     "txn-1",
				Status: models.TransactionStatusCompleted,
				Amount: decimal.RequireFromString("30.00"),
			}, true, nil
		})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/transfers", strings.NewReader(transferBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateTransfer_BadTokenRejectedByMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := &models.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.Expiration = 60

	mockUC := mocks.NewMockTransferUseCase(ctrl)
	h := NewTransferHandler(mockUC, cfg)

	e := newEcho()
	h.RegisterRoutes(e)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/transfers", strings.NewReader(transferBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer not-a-token")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
