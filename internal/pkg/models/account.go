package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountStatus represents the lifecycle state of an account
type AccountStatus string

const (
	AccountStatusActive   AccountStatus = "ACTIVE"
	AccountStatusInactive AccountStatus = "INACTIVE"
)

// AccountType represents the product category of an account
type AccountType string

const (
	AccountTypeSavings  AccountType = "SAVINGS"
	AccountTypeChecking AccountType = "CHECKING"
)

// BalanceOperation identifies the direction of a balance mutation
type BalanceOperation string

const (
	OperationDebit  BalanceOperation = "DEBIT"
	OperationCredit BalanceOperation = "CREDIT"
)

// Account represents a balance-holding account owned by the ledger service.
// Version is the concurrency token: it is bumped on every successful balance
// mutation and never goes backwards.
type Account struct {
	ID            string          `json:"id" db:"id"`
	CustomerID    string          `json:"customer_id" db:"customer_id"`
	AccountNumber string          `json:"account_number" db:"account_number"`
	AccountName   string          `json:"account_name" db:"account_name"`
	AccountType   AccountType     `json:"account_type" db:"account_type"`
	Status        AccountStatus   `json:"status" db:"status"`
	Balance       decimal.Decimal `json:"balance" db:"balance"`
	Version       int64           `json:"version" db:"version"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at" db:"updated_at"`
}

// IsActive reports whether the account accepts balance mutations
func (a *Account) IsActive() bool {
	return a.Status == AccountStatusActive
}

// AccountValidation is the result of an account validation read
type AccountValidation struct {
	Exists   bool   `json:"exists"`
	IsActive bool   `json:"is_active"`
	Message  string `json:"message,omitempty"`
}

// BalanceInfo is the result of a balance read
type BalanceInfo struct {
	AccountID string `json:"account_id"`
	Balance   string `json:"balance"`
	Currency  string `json:"currency"`
}

// UpdateBalanceRequest is the wire request for a balance mutation.
// Amount travels as an exact base-10 decimal string.
type UpdateBalanceRequest struct {
	Amount      string           `json:"amount" validate:"required"`
	Operation   BalanceOperation `json:"operation" validate:"required,oneof=DEBIT CREDIT"`
	Description string           `json:"description"`
}

// UpdateBalanceResponse is the wire response for a balance mutation
type UpdateBalanceResponse struct {
	Success    bool   `json:"success"`
	NewBalance string `json:"new_balance"`
	Message    string `json:"message,omitempty"`
}

// CreateAccountRequest is the public request to open an account
type CreateAccountRequest struct {
	CustomerID     string      `json:"customer_id" validate:"required"`
	AccountName    string      `json:"account_name" validate:"required"`
	AccountType    AccountType `json:"account_type" validate:"required,oneof=SAVINGS CHECKING"`
	InitialBalance string      `json:"initial_balance"`
}

// UpdateAccountRequest is the public request to rename or retype an account
type UpdateAccountRequest struct {
	AccountName string      `json:"account_name" validate:"required"`
	AccountType AccountType `json:"account_type" validate:"required,oneof=SAVINGS CHECKING"`
}
