package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greatadamu/ledgerlink/internal/pkg/apperr"
	"github.com/greatadamu/ledgerlink/internal/pkg/models"
	"github.com/greatadamu/ledgerlink/services/ledger/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		Transfer: models.TransferConfig{
			DefaultCurrency: "USD",
		},
	}
}

func TestValidateAccount_Active(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLedgerRepo(ctrl)
	mockGW := mocks.NewMockLedgerGW(ctrl)
	uc := NewLedgerUC(testConfig(), mockRepo, mockGW)

	mockRepo.EXPECT().
		GetAccount(gomock.Any(), "account-1").
		Return(&models.Account{
			ID:     "account-1",
			Status: models.AccountStatusActive,
		}, nil)

	validation, err := uc.ValidateAccount(context.Background(), "account-1")

	require.NoError(t, err)
	assert.True(t, validation.Exists)
	assert.True(t, validation.IsActive)
}

func TestValidateAccount_NotFoundIsAnAnswer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLedgerRepo(ctrl)
	mockGW := mocks.NewMockLedgerGW(ctrl)
	uc := NewLedgerUC(testConfig(), mockRepo, mockGW)

	mockRepo.EXPECT().
		GetAccount(gomock.Any(), "missing").
		Return(nil, apperr.New(apperr.KindNotFound, "account not found"))

	validation, err := uc.ValidateAccount(context.Background(), "missing")

	require.NoError(t, err)
	assert.False(t, validation.Exists)
	assert.False(t, validation.IsActive)
}

func TestValidateAccount_Inactive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLedgerRepo(ctrl)
	mockGW := mocks.NewMockLedgerGW(ctrl)
	uc := NewLedgerUC(testConfig(), mockRepo, mockGW)

	mockRepo.EXPECT().
		GetAccount(gomock.Any(), "account-1").
		Return(&models.Account{
			ID:     "account-1",
			Status: models.AccountStatusInactive,
		}, nil)

	validation, err := uc.ValidateAccount(context.Background(), "account-1")

	require.NoError(t, err)
	assert.True(t, validation.Exists)
	assert.False(t, validation.IsActive)
}

func TestGetBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLedgerRepo(ctrl)
	mockGW := mocks.NewMockLedgerGW(ctrl)
	uc := NewLedgerUC(testConfig(), mockRepo, mockGW)

	mockRepo.EXPECT().
		GetAccount(gomock.Any(), "account-1").
		Return(&models.Account{
			ID:      "account-1",
			Balance: decimal.RequireFromString("100.50"),
		}, nil)

	balance, err := uc.GetBalance(context.Background(), "account-1")

	require.NoError(t, err)
	assert.Equal(t, "account-1", balance.AccountID)
	assert.Equal(t, "100.5", balance.Balance)
	assert.Equal(t, "USD", balance.Currency)
}

func TestUpdateBalance_Debit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLedgerRepo(ctrl)
	mockGW := mocks.NewMockLedgerGW(ctrl)
	uc := NewLedgerUC(testConfig(), mockRepo, mockGW)

	mockRepo.EXPECT().
		UpdateBalance(gomock.Any(), "account-1", gomock.Any(), models.OperationDebit).
		DoAndReturn(func(ctx context.Context, id string, amount decimal.Decimal, op models.BalanceOperation) (decimal.Decimal, error) {
			assert.True(t, amount.Equal(decimal.RequireFromString("30.00")))
			return decimal.RequireFromString("70.00"), nil
		})

	resp, err := uc.UpdateBalance(context.Background(), "account-1", models.UpdateBalanceRequest{
		Amount:    "30.00",
		Operation: models.OperationDebit,
	})

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "70", resp.NewBalance)
}

func TestUpdateBalance_InsufficientFundsPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLedgerRepo(ctrl)
	mockGW := mocks.NewMockLedgerGW(ctrl)
	uc := NewLedgerUC(testConfig(), mockRepo, mockGW)

	mockRepo.EXPECT().
		UpdateBalance(gomock.Any(), "account-1", gomock.Any(), models.OperationDebit).
		Return(decimal.Zero, apperr.New(apperr.KindPrecondition, "insufficient funds: balance 10, required 30"))

	_, err := uc.UpdateBalance(context.Background(), "account-1", models.UpdateBalanceRequest{
		Amount:    "30.00",
		Operation: models.OperationDebit,
	})

	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindPrecondition))
}

func TestUpdateBalance_RejectsInvalidInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockLedgerRepo(ctrl)
	mockGW := mocks.NewMockLedgerGW(ctrl)
	uc := NewLedgerUC(testConfig(), mockRepo, mockGW)

	cases := []struct {
		name string
		req  models.UpdateBalanceRequest
	}{
		{"malformed amount", models.UpdateBalanceRequest{Amount: "not-a-number", Operation: models.OperationDebit}},
		{"zero amount", models.UpdateBalanceRequest{Amount: "0", Operation: models.OperationCredit}},
		{"negative amount", models.UpdateBalanceRequest{Amount: "-1.00", Operation: models.OperationCredit}},
		{"unknown operation", models.UpdateBalanceRequest{Amount: "1.00", Operation: "TRANSFER"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.UpdateBalance(context.Background(), "account-1", tc.req)
			require.Error(t, err)
			assert.True(t, apperr.IsKind(err, apperr.KindValidation))
		})
	}
}
