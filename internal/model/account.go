package model

import "errors"

// ErrNoCards is returned when an account carries no cards.
var ErrNoCards = errors.New("account has no cards")

// AccountType represents the product an account was opened for.
type AccountType string

const (
	AccountTypeDeposit    AccountType = "DEPOSIT"
	AccountTypeSavings    AccountType = "SAVINGS"
	AccountTypeDebitCard  AccountType = "DEBIT_CARD"
	AccountTypeCreditCard AccountType = "CREDIT_CARD"
)

// IsValid checks if the account type is known.
func (t AccountType) IsValid() bool {
	switch t {
	case AccountTypeDeposit, AccountTypeSavings, AccountTypeDebitCard, AccountTypeCreditCard:
		return true
	}
	return false
}

// AccountStatus represents the lifecycle state reported by the gateway.
type AccountStatus string

const (
	AccountStatusActive         AccountStatus = "ACTIVE"
	AccountStatusPendingClosure AccountStatus = "PENDING_CLOSURE"
	AccountStatusClosed         AccountStatus = "CLOSED"
)

// IsValid checks if the account status is known.
func (s AccountStatus) IsValid() bool {
	switch s {
	case AccountStatusActive, AccountStatusPendingClosure, AccountStatusClosed:
		return true
	}
	return false
}

// Account represents a user account with its nested cards.
type Account struct {
	ID      string        `json:"id"`
	Type    AccountType   `json:"type"`
	Cards   []Card        `json:"cards"`
	Status  AccountStatus `json:"status"`
	Balance float64       `json:"balance"`
}

// FirstCard returns the first card issued with the account.
// Card accounts are opened with one card; deposit and savings accounts have none.
func (a *Account) FirstCard() (*Card, error) {
	if len(a.Cards) == 0 {
		return nil, ErrNoCards
	}
	return &a.Cards[0], nil
}
