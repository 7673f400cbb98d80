package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	nethttp "net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/greatadamu/ledgerlink/internal/pkg/apperr"
	pkghttp "github.com/greatadamu/ledgerlink/internal/pkg/http"
	"github.com/greatadamu/ledgerlink/internal/pkg/models"
	"github.com/greatadamu/ledgerlink/internal/utils"
	"github.com/greatadamu/ledgerlink/services/transfer"
)

// LedgerHTTPClient implements the transfer.LedgerClient interface over the
// ledger service's internal HTTP surface. Each call gets its own deadline so
// a wedged ledger call surfaces as a Timeout instead of hanging the saga.
type LedgerHTTPClient struct {
	client      *pkghttp.APIKeyClient
	callTimeout time.Duration
}

// NewLedgerHTTPClient creates a new ledger service client. The client
// authenticates with the transfer service's own key, which the ledger's
// internal routes allow.
func NewLedgerHTTPClient(cfg *models.Config) transfer.LedgerClient {
	client := pkghttp.NewAPIKeyClient(cfg.APIKey.TransferService, cfg.Services.LedgerServiceURL)

	return &LedgerHTTPClient{
		client:      client,
		callTimeout: time.Duration(cfg.Transfer.LedgerCallTimeoutMs) * time.Millisecond,
	}
}

// ValidateAccount checks whether an account exists and is active
func (g *LedgerHTTPClient) ValidateAccount(ctx context.Context, accountID string) (*models.AccountValidation, error) {
	ctx, cancel := context.WithTimeout(ctx, g.callTimeout)
	defer cancel()

	resp, err := g.client.Get(ctx, "/internal/accounts/"+accountID+"/validate")
	if err != nil {
		return nil, classifyTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != nethttp.StatusOK {
		return nil, decodeErrorResponse(resp)
	}

	var validation models.AccountValidation
	if err := json.NewDecoder(resp.Body).Decode(&validation); err != nil {
		return nil, fmt.Errorf("failed to decode validation response: %w", err)
	}

	return &validation, nil
}

// GetBalance retrieves the current balance of an account
func (g *LedgerHTTPClient) GetBalance(ctx context.Context, accountID string) (*models.BalanceInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, g.callTimeout)
	defer cancel()

	resp, err := g.client.Get(ctx, "/internal/accounts/"+accountID+"/balance")
	if err != nil {
		return nil, classifyTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != nethttp.StatusOK {
		return nil, decodeErrorResponse(resp)
	}

	var balance models.BalanceInfo
	if err := json.NewDecoder(resp.Body).Decode(&balance); err != nil {
		return nil, fmt.Errorf("failed to decode balance response: %w", err)
	}

	return &balance, nil
}

// UpdateBalance applies a debit or credit to an account
func (g *LedgerHTTPClient) UpdateBalance(ctx context.Context, accountID string, amount decimal.Decimal, operation models.BalanceOperation, description string) (*models.UpdateBalanceResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, g.callTimeout)
	defer cancel()

	req := models.UpdateBalanceRequest{
		Amount:      amount.String(),
		Operation:   operation,
		Description: description,
	}

	resp, err := g.client.Post(ctx, "/internal/accounts/"+accountID+"/balance", req)
	if err != nil {
		return nil, classifyTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != nethttp.StatusOK {
		return nil, decodeErrorResponse(resp)
	}

	var result models.UpdateBalanceResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode balance update response: %w", err)
	}

	return &result, nil
}

// classifyTransportError maps transport-level failures to the error
// taxonomy. A deadline overrun is a Timeout; anything else that prevented a
// response is Unavailable.
func classifyTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return apperr.Wrap(apperr.KindTimeout, "ledger call deadline exceeded", err)
	}
	return apperr.Wrap(apperr.KindUnavailable, "ledger service unreachable", err)
}

// decodeErrorResponse converts a non-200 ledger response back into a
// classified error using the stable code carried in the error envelope
func decodeErrorResponse(resp *nethttp.Response) error {
	var errResp utils.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil || errResp.Error == "" {
		return apperr.Newf(apperr.KindInternal, "ledger call failed with status %d", resp.StatusCode)
	}

	kind := apperr.KindInternal
	switch apperr.Kind(errResp.Code) {
	case apperr.KindValidation, apperr.KindNotFound, apperr.KindConflict,
		apperr.KindPrecondition, apperr.KindTimeout, apperr.KindUnavailable:
		kind = apperr.Kind(errResp.Code)
	}

	return apperr.New(kind, errResp.Error)
}
