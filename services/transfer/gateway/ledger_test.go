package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greatadamu/ledgerlink/internal/pkg/apperr"
	pkghttp "github.com/greatadamu/ledgerlink/internal/pkg/http"
	"github.com/greatadamu/ledgerlink/internal/pkg/middleware"
	"github.com/greatadamu/ledgerlink/internal/pkg/models"
	"github.com/greatadamu/ledgerlink/internal/utils"
)

func newTestClient(baseURL string, timeout time.Duration) *LedgerHTTPClient {
	return &LedgerHTTPClient{
		client:      pkghttp.NewAPIKeyClient("test-key", baseURL),
		callTimeout: timeout,
	}
}

func TestValidateAccount(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/internal/accounts/account-1/validate", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get(pkghttp.APIKeyHeader))

		json.NewEncoder(w).Encode(models.AccountValidation{Exists: true, IsActive: true})
	}))
	defer server.Close()

	client := newTestClient(server.URL, 2*time.Second)

	validation, err := client.ValidateAccount(context.Background(), "account-1")

	require.NoError(t, err)
	assert.True(t, validation.Exists)
	assert.True(t, validation.IsActive)
}

func TestGetBalance(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/internal/accounts/account-1/balance", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)

		json.NewEncoder(w).Encode(models.BalanceInfo{
			AccountID: "account-1",
			Balance:   "100.00",
			Currency:  "USD",
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL, 2*time.Second)

	balance, err := client.GetBalance(context.Background(), "account-1")

	require.NoError(t, err)
	assert.Equal(t, "100.00", balance.Balance)
}

func TestUpdateBalance(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/internal/accounts/account-1/balance", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var req models.UpdateBalanceRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "30", req.Amount)
		assert.Equal(t, models.OperationDebit, req.Operation)

		json.NewEncoder(w).Encode(models.UpdateBalanceResponse{
			Success:    true,
			NewBalance: "70",
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL, 2*time.Second)

	resp, err := client.UpdateBalance(context.Background(), "account-1",
		decimal.RequireFromString("30"), models.OperationDebit, "rent share")

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "70", resp.NewBalance)
}

func TestUpdateBalance_ErrorCodeMapsToKind(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(utils.ErrorResponse{
			Success: false,
			Code:    string(apperr.KindPrecondition),
			Error:   "insufficient funds: balance 10, required 30",
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL, 2*time.Second)

	_, err := client.UpdateBalance(context.Background(), "account-1",
		decimal.RequireFromString("30"), models.OperationDebit, "rent share")

	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindPrecondition))
	assert.Contains(t, err.Error(), "insufficient funds")
}

func TestValidateAccount_NotFoundCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(utils.ErrorResponse{
			Success: false,
			Code:    string(apperr.KindNotFound),
			Error:   "account not found",
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL, 2*time.Second)

	_, err := client.ValidateAccount(context.Background(), "missing")

	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestUpdateBalance_DeadlineBecomesTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		json.NewEncoder(w).Encode(models.UpdateBalanceResponse{Success: true})
	}))
	defer server.Close()

	client := newTestClient(server.URL, 20*time.Millisecond)

	_, err := client.UpdateBalance(context.Background(), "account-1",
		decimal.RequireFromString("30"), models.OperationDebit, "rent share")

	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindTimeout))
}

func TestGetBalance_ConnectionRefusedBecomesUnavailable(t *testing.T) {
	// Grab a port that nothing is listening on.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	deadURL := server.URL
	server.Close()

	client := newTestClient(deadURL, 2*time.Second)

	_, err := client.GetBalance(context.Background(), "account-1")

	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindUnavailable))
}

func TestUpdateBalance_MalformedErrorBodyIsInternal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := newTestClient(server.URL, 2*time.Second)

	_, err := client.UpdateBalance(context.Background(), "account-1",
		decimal.RequireFromString("30"), models.OperationDebit, "rent share")

	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindInternal))
}

// Pairs the client with the ledger's own API-key middleware from a single
// config, the way the two services are deployed together.
func TestNewLedgerHTTPClient_AuthenticatesWithServiceKey(t *testing.T) {
	cfg := &models.Config{}
	cfg.APIKey.LedgerService = "local-ledger-key"
	cfg.APIKey.TransferService = "local-transfer-key"
	cfg.Transfer.LedgerCallTimeoutMs = 2000

	e := echo.New()
	apiKeyMW := middleware.NewAPIKeyMiddleware(&cfg.APIKey)
	internal := e.Group("/internal/accounts")
	internal.Use(apiKeyMW.Validate(cfg.APIKey.TransferService))
	internal.GET("/:id/validate", func(c echo.Context) error {
		return c.JSON(http.StatusOK, models.AccountValidation{Exists: true, IsActive: true})
	})

	server := httptest.NewServer(e)
	defer server.Close()
	cfg.Services.LedgerServiceURL = server.URL

	client := NewLedgerHTTPClient(cfg)

	validation, err := client.ValidateAccount(context.Background(), "account-1")

	require.NoError(t, err)
	assert.True(t, validation.Exists)
	assert.True(t, validation.IsActive)
}
