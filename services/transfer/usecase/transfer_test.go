package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greatadamu/ledgerlink/internal/pkg/apperr"
	"github.com/greatadamu/ledgerlink/internal/pkg/models"
	"github.com/greatadamu/ledgerlink/services/transfer/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		Transfer: models.TransferConfig{
			LedgerCallTimeoutMs: 2000,
			DefaultCurrency:     "USD",
		},
	}
}

func validRequest() models.CreateTransferRequest {
	return models.CreateTransferRequest{
		IdempotencyKey: "idem-key-1",
		CustomerID:     "customer-1",
		FromAccountID:  "account-a",
		ToAccountID:    "account-b",
		Amount:         "30.00",
		Type:           models.TransactionTypeTransfer,
		Description:    "rent share",
	}
}

func activeValidation() *models.AccountValidation {
	return &models.AccountValidation{Exists: true, IsActive: true}
}

func expectEventPublished(t *testing.T, mockGW *mocks.MockTransferGW, status models.TransactionStatus) chan struct{} {
	t.Helper()
	published := make(chan struct{}, 1)
	mockGW.EXPECT().
		PublishTransactionEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, event *models.TransactionEvent) error {
			assert.Equal(t, status, event.Status)
			published <- struct{}{}
			return nil
		}).
		AnyTimes()
	return published
}

func waitForEvent(t *testing.T, published chan struct{}) {
	t.Helper()
	select {
	case <-published:
	case <-time.After(2 * time.Second):
		t.Fatal("expected transaction event to be published")
	}
}

func TestCreateTransfer_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransferRepo(ctrl)
	mockLedger := mocks.NewMockLedgerClient(ctrl)
	mockGW := mocks.NewMockTransferGW(ctrl)
	uc := NewTransferUC(testConfig(), mockRepo, mockLedger, mockGW)

	req := validRequest()
	amount := decimal.RequireFromString(req.Amount)

	mockRepo.EXPECT().
		GetTransactionByIdempotencyKey(gomock.Any(), req.IdempotencyKey).
		Return(nil, apperr.New(apperr.KindNotFound, "transaction not found"))

	mockLedger.EXPECT().
		ValidateAccount(gomock.Any(), req.FromAccountID).
		Return(activeValidation(), nil)
	mockLedger.EXPECT().
		ValidateAccount(gomock.Any(), req.ToAccountID).
		Return(activeValidation(), nil)

	var persisted *models.Transaction
	mockRepo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, transaction *models.Transaction) error {
			persisted = transaction
			assert.Equal(t, models.TransactionStatusPending, transaction.Status)
			assert.True(t, amount.Equal(transaction.Amount))
			return nil
		})

	mockLedger.EXPECT().
		UpdateBalance(gomock.Any(), req.FromAccountID, gomock.Any(), models.OperationDebit, req.Description).
		Return(&models.UpdateBalanceResponse{Success: true, NewBalance: "70.00"}, nil)
	mockLedger.EXPECT().
		UpdateBalance(gomock.Any(), req.ToAccountID, gomock.Any(), models.OperationCredit, req.Description).
		Return(&models.UpdateBalanceResponse{Success: true, NewBalance: "80.00"}, nil)

	mockRepo.EXPECT().
		MarkCompleted(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, id string) (*models.Transaction, error) {
			require.NotNil(t, persisted)
			assert.Equal(t, persisted.ID, id)
			completed := *persisted
			completed.Status = models.TransactionStatusCompleted
			return &completed, nil
		})

	published := expectEventPublished(t, mockGW, models.TransactionStatusCompleted)

	result, created, err := uc.CreateTransfer(context.Background(), req)

	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, models.TransactionStatusCompleted, result.Status)
	assert.True(t, amount.Equal(result.Amount))
	waitForEvent(t, published)
}

func TestCreateTransfer_IdempotentReplay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransferRepo(ctrl)
	mockLedger := mocks.NewMockLedgerClient(ctrl)
	mockGW := mocks.NewMockTransferGW(ctrl)
	uc := NewTransferUC(testConfig(), mockRepo, mockLedger, mockGW)

	req := validRequest()
	existing := &models.Transaction{
		ID:             "txn-1",
		IdempotencyKey: req.IdempotencyKey,
		Status:         models.TransactionStatusCompleted,
		Amount:         decimal.RequireFromString(req.Amount),
	}

	// No ledger calls, no new record: the settled record answers the replay.
	mockRepo.EXPECT().
		GetTransactionByIdempotencyKey(gomock.Any(), req.IdempotencyKey).
		Return(existing, nil)

	result, created, err := uc.CreateTransfer(context.Background(), req)

	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "txn-1", result.ID)
}

func TestCreateTransfer_ReplayOfFailedTransaction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransferRepo(ctrl)
	mockLedger := mocks.NewMockLedgerClient(ctrl)
	mockGW := mocks.NewMockTransferGW(ctrl)
	uc := NewTransferUC(testConfig(), mockRepo, mockLedger, mockGW)

	req := validRequest()
	existing := &models.Transaction{
		ID:             "txn-failed",
		IdempotencyKey: req.IdempotencyKey,
		Status:         models.TransactionStatusFailed,
		FailureReason:  "debit failed: insufficient funds",
		Amount:         decimal.RequireFromString(req.Amount),
	}

	// A FAILED record settles the key too; the saga is never re-run.
	mockRepo.EXPECT().
		GetTransactionByIdempotencyKey(gomock.Any(), req.IdempotencyKey).
		Return(existing, nil)

	result, created, err := uc.CreateTransfer(context.Background(), req)

	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, models.TransactionStatusFailed, result.Status)
}

func TestCreateTransfer_InsertRaceLoserReturnsWinner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransferRepo(ctrl)
	mockLedger := mocks.NewMockLedgerClient(ctrl)
	mockGW := mocks.NewMockTransferGW(ctrl)
	uc := NewTransferUC(testConfig(), mockRepo, mockLedger, mockGW)

	req := validRequest()
	winner := &models.Transaction{
		ID:             "txn-winner",
		IdempotencyKey: req.IdempotencyKey,
		Status:         models.TransactionStatusPending,
		Amount:         decimal.RequireFromString(req.Amount),
	}

	mockRepo.EXPECT().
		GetTransactionByIdempotencyKey(gomock.Any(), req.IdempotencyKey).
		Return(nil, apperr.New(apperr.KindNotFound, "transaction not found"))
	mockLedger.EXPECT().
		ValidateAccount(gomock.Any(), req.FromAccountID).
		Return(activeValidation(), nil)
	mockLedger.EXPECT().
		ValidateAccount(gomock.Any(), req.ToAccountID).
		Return(activeValidation(), nil)
	mockRepo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		Return(apperr.New(apperr.KindConflict, "idempotency key already used"))
	mockRepo.EXPECT().
		GetTransactionByIdempotencyKey(gomock.Any(), req.IdempotencyKey).
		Return(winner, nil)

	result, created, err := uc.CreateTransfer(context.Background(), req)

	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "txn-winner", result.ID)
}

func TestCreateTransfer_InsufficientFunds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransferRepo(ctrl)
	mockLedger := mocks.NewMockLedgerClient(ctrl)
	mockGW := mocks.NewMockTransferGW(ctrl)
	uc := NewTransferUC(testConfig(), mockRepo, mockLedger, mockGW)

	req := validRequest()

	mockRepo.EXPECT().
		GetTransactionByIdempotencyKey(gomock.Any(), req.IdempotencyKey).
		Return(nil, apperr.New(apperr.KindNotFound, "transaction not found"))
	mockLedger.EXPECT().
		ValidateAccount(gomock.Any(), req.FromAccountID).
		Return(activeValidation(), nil)
	mockLedger.EXPECT().
		ValidateAccount(gomock.Any(), req.ToAccountID).
		Return(activeValidation(), nil)
	mockRepo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		Return(nil)

	// Debit fails; no credit and no compensation may follow.
	mockLedger.EXPECT().
		UpdateBalance(gomock.Any(), req.FromAccountID, gomock.Any(), models.OperationDebit, req.Description).
		Return(nil, apperr.New(apperr.KindPrecondition, "insufficient funds: balance 10.00, required 30.00"))

	mockRepo.EXPECT().
		MarkFailed(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, id, reason string) (*models.Transaction, error) {
			assert.Contains(t, reason, "insufficient funds")
			return &models.Transaction{
				ID:            id,
				Status:        models.TransactionStatusFailed,
				FailureReason: reason,
				Amount:        decimal.RequireFromString(req.Amount),
			}, nil
		})

	published := expectEventPublished(t, mockGW, models.TransactionStatusFailed)

	_, _, err := uc.CreateTransfer(context.Background(), req)

	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindPrecondition))
	waitForEvent(t, published)
}

func TestCreateTransfer_DebitTimeoutFailsWithoutCompensation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransferRepo(ctrl)
	mockLedger := mocks.NewMockLedgerClient(ctrl)
	mockGW := mocks.NewMockTransferGW(ctrl)
	uc := NewTransferUC(testConfig(), mockRepo, mockLedger, mockGW)

	req := validRequest()

	mockRepo.EXPECT().
		GetTransactionByIdempotencyKey(gomock.Any(), req.IdempotencyKey).
		Return(nil, apperr.New(apperr.KindNotFound, "transaction not found"))
	mockLedger.EXPECT().
		ValidateAccount(gomock.Any(), req.FromAccountID).
		Return(activeValidation(), nil)
	mockLedger.EXPECT().
		ValidateAccount(gomock.Any(), req.ToAccountID).
		Return(activeValidation(), nil)
	mockRepo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		Return(nil)

	mockLedger.EXPECT().
		UpdateBalance(gomock.Any(), req.FromAccountID, gomock.Any(), models.OperationDebit, req.Description).
		Return(nil, apperr.New(apperr.KindTimeout, "ledger call deadline exceeded"))

	mockRepo.EXPECT().
		MarkFailed(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.Transaction{
			Status: models.TransactionStatusFailed,
			Amount: decimal.RequireFromString(req.Amount),
		}, nil)

	published := expectEventPublished(t, mockGW, models.TransactionStatusFailed)

	_, _, err := uc.CreateTransfer(context.Background(), req)

	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindTimeout))
	waitForEvent(t, published)
}

func TestCreateTransfer_CreditFailureCompensatesDebit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransferRepo(ctrl)
	mockLedger := mocks.NewMockLedgerClient(ctrl)
	mockGW := mocks.NewMockTransferGW(ctrl)
	uc := NewTransferUC(testConfig(), mockRepo, mockLedger, mockGW)

	req := validRequest()

	mockRepo.EXPECT().
		GetTransactionByIdempotencyKey(gomock.Any(), req.IdempotencyKey).
		Return(nil, apperr.New(apperr.KindNotFound, "transaction not found"))
	mockLedger.EXPECT().
		ValidateAccount(gomock.Any(), req.FromAccountID).
		Return(activeValidation(), nil)
	mockLedger.EXPECT().
		ValidateAccount(gomock.Any(), req.ToAccountID).
		Return(activeValidation(), nil)
	mockRepo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		Return(nil)

	gomock.InOrder(
		mockLedger.EXPECT().
			UpdateBalance(gomock.Any(), req.FromAccountID, gomock.Any(), models.OperationDebit, req.Description).
			Return(&models.UpdateBalanceResponse{Success: true, NewBalance: "70.00"}, nil),
		mockLedger.EXPECT().
			UpdateBalance(gomock.Any(), req.ToAccountID, gomock.Any(), models.OperationCredit, req.Description).
			Return(nil, apperr.New(apperr.KindUnavailable, "ledger service unreachable")),
		// Compensating credit back to the source, description prefixed.
		mockLedger.EXPECT().
			UpdateBalance(gomock.Any(), req.FromAccountID, gomock.Any(), models.OperationCredit, "Reversal: "+req.Description).
			Return(&models.UpdateBalanceResponse{Success: true, NewBalance: "100.00"}, nil),
	)

	mockRepo.EXPECT().
		MarkFailed(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, id, reason string) (*models.Transaction, error) {
			assert.Contains(t, reason, "credit failed")
			return &models.Transaction{
				ID:            id,
				Status:        models.TransactionStatusFailed,
				FailureReason: reason,
				Amount:        decimal.RequireFromString(req.Amount),
			}, nil
		})

	published := expectEventPublished(t, mockGW, models.TransactionStatusFailed)

	_, _, err := uc.CreateTransfer(context.Background(), req)

	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindUnavailable))
	waitForEvent(t, published)
}

func TestCreateTransfer_CompensationFailureIsInternal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransferRepo(ctrl)
	mockLedger := mocks.NewMockLedgerClient(ctrl)
	mockGW := mocks.NewMockTransferGW(ctrl)
	uc := NewTransferUC(testConfig(), mockRepo, mockLedger, mockGW)

	req := validRequest()

	mockRepo.EXPECT().
		GetTransactionByIdempotencyKey(gomock.Any(), req.IdempotencyKey).
		Return(nil, apperr.New(apperr.KindNotFound, "transaction not found"))
	mockLedger.EXPECT().
		ValidateAccount(gomock.Any(), req.FromAccountID).
		Return(activeValidation(), nil)
	mockLedger.EXPECT().
		ValidateAccount(gomock.Any(), req.ToAccountID).
		Return(activeValidation(), nil)
	mockRepo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		Return(nil)

	gomock.InOrder(
		mockLedger.EXPECT().
			UpdateBalance(gomock.Any(), req.FromAccountID, gomock.Any(), models.OperationDebit, req.Description).
			Return(&models.UpdateBalanceResponse{Success: true}, nil),
		mockLedger.EXPECT().
			UpdateBalance(gomock.Any(), req.ToAccountID, gomock.Any(), models.OperationCredit, req.Description).
			Return(nil, apperr.New(apperr.KindUnavailable, "ledger service unreachable")),
		mockLedger.EXPECT().
			UpdateBalance(gomock.Any(), req.FromAccountID, gomock.Any(), models.OperationCredit, "Reversal: "+req.Description).
			Return(nil, apperr.New(apperr.KindUnavailable, "ledger service unreachable")),
	)

	mockRepo.EXPECT().
		MarkFailed(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, id, reason string) (*models.Transaction, error) {
			assert.Contains(t, reason, "compensation failed")
			return &models.Transaction{
				ID:            id,
				Status:        models.TransactionStatusFailed,
				FailureReason: reason,
				Amount:        decimal.RequireFromString(req.Amount),
			}, nil
		})

	published := expectEventPublished(t, mockGW, models.TransactionStatusFailed)

	_, _, err := uc.CreateTransfer(context.Background(), req)

	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindInternal))
	waitForEvent(t, published)
}

func TestCreateTransfer_SourceAccountInactive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransferRepo(ctrl)
	mockLedger := mocks.NewMockLedgerClient(ctrl)
	mockGW := mocks.NewMockTransferGW(ctrl)
	uc := NewTransferUC(testConfig(), mockRepo, mockLedger, mockGW)

	req := validRequest()

	mockRepo.EXPECT().
		GetTransactionByIdempotencyKey(gomock.Any(), req.IdempotencyKey).
		Return(nil, apperr.New(apperr.KindNotFound, "transaction not found"))
	mockLedger.EXPECT().
		ValidateAccount(gomock.Any(), req.FromAccountID).
		Return(&models.AccountValidation{Exists: true, IsActive: false}, nil)

	_, _, err := uc.CreateTransfer(context.Background(), req)

	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindPrecondition))
}

func TestCreateTransfer_DestinationNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransferRepo(ctrl)
	mockLedger := mocks.NewMockLedgerClient(ctrl)
	mockGW := mocks.NewMockTransferGW(ctrl)
	uc := NewTransferUC(testConfig(), mockRepo, mockLedger, mockGW)

	req := validRequest()

	mockRepo.EXPECT().
		GetTransactionByIdempotencyKey(gomock.Any(), req.IdempotencyKey).
		Return(nil, apperr.New(apperr.KindNotFound, "transaction not found"))
	mockLedger.EXPECT().
		ValidateAccount(gomock.Any(), req.FromAccountID).
		Return(activeValidation(), nil)
	mockLedger.EXPECT().
		ValidateAccount(gomock.Any(), req.ToAccountID).
		Return(&models.AccountValidation{Exists: false}, nil)

	_, _, err := uc.CreateTransfer(context.Background(), req)

	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestCreateTransfer_InvalidRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransferRepo(ctrl)
	mockLedger := mocks.NewMockLedgerClient(ctrl)
	mockGW := mocks.NewMockTransferGW(ctrl)
	uc := NewTransferUC(testConfig(), mockRepo, mockLedger, mockGW)

	cases := []struct {
		name   string
		mutate func(*models.CreateTransferRequest)
	}{
		{"non-decimal amount", func(r *models.CreateTransferRequest) { r.Amount = "abc" }},
		{"zero amount", func(r *models.CreateTransferRequest) { r.Amount = "0" }},
		{"negative amount", func(r *models.CreateTransferRequest) { r.Amount = "-5.00" }},
		{"same account", func(r *models.CreateTransferRequest) { r.ToAccountID = r.FromAccountID }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)

			_, _, err := uc.CreateTransfer(context.Background(), req)

			require.Error(t, err)
			assert.True(t, apperr.IsKind(err, apperr.KindValidation))
		})
	}
}

func TestGetTransaction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransferRepo(ctrl)
	mockLedger := mocks.NewMockLedgerClient(ctrl)
	mockGW := mocks.NewMockTransferGW(ctrl)
	uc := NewTransferUC(testConfig(), mockRepo, mockLedger, mockGW)

	expected := &models.Transaction{ID: "txn-1", Status: models.TransactionStatusCompleted}
	mockRepo.EXPECT().
		GetTransactionByID(gomock.Any(), "txn-1").
		Return(expected, nil)

	result, err := uc.GetTransaction(context.Background(), "txn-1")

	require.NoError(t, err)
	assert.Equal(t, expected, result)
}

func TestGetTransactionsByCustomer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransferRepo(ctrl)
	mockLedger := mocks.NewMockLedgerClient(ctrl)
	mockGW := mocks.NewMockTransferGW(ctrl)
	uc := NewTransferUC(testConfig(), mockRepo, mockLedger, mockGW)

	expected := []*models.Transaction{{ID: "txn-1"}, {ID: "txn-2"}}
	mockRepo.EXPECT().
		GetTransactionsByCustomerID(gomock.Any(), "customer-1").
		Return(expected, nil)

	result, err := uc.GetTransactionsByCustomer(context.Background(), "customer-1")

	require.NoError(t, err)
	assert.Len(t, result, 2)
}
