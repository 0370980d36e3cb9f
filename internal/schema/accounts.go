package schema

import (
	"net/url"

	"github.com/gatewayperf/gatewayperf/internal/model"
)

// Account is the account shape returned by /api/v1/accounts.
type Account struct {
	ID      string  `json:"id" validate:"required"`
	Type    string  `json:"type" validate:"oneof=DEPOSIT SAVINGS DEBIT_CARD CREDIT_CARD"`
	Cards   []Card  `json:"cards" validate:"dive"`
	Status  string  `json:"status" validate:"oneof=ACTIVE PENDING_CLOSURE CLOSED"`
	Balance float64 `json:"balance"`
}

// ToModel converts the payload to the domain entity.
func (a Account) ToModel() model.Account {
	cards := make([]model.Card, 0, len(a.Cards))
	for _, c := range a.Cards {
		cards = append(cards, c.ToModel())
	}
	return model.Account{
		ID:      a.ID,
		Type:    model.AccountType(a.Type),
		Cards:   cards,
		Status:  model.AccountStatus(a.Status),
		Balance: a.Balance,
	}
}

// GetAccountsQuery is the query of GET /api/v1/accounts.
type GetAccountsQuery struct {
	UserID string `json:"userId"`
}

// Values encodes the query string.
func (q GetAccountsQuery) Values() url.Values {
	return url.Values{"userId": []string{q.UserID}}
}

// GetAccountsResponse is the body returned by GET /api/v1/accounts.
type GetAccountsResponse struct {
	Accounts []Account `json:"accounts" validate:"dive"`
}

// OpenAccountRequest is the body of every open-*-account endpoint.
type OpenAccountRequest struct {
	UserID string `json:"userId"`
}

// OpenAccountResponse is the body returned by every open-*-account endpoint.
type OpenAccountResponse struct {
	Account Account `json:"account"`
}

// Per-endpoint names for the shared shapes.
type (
	OpenDepositAccountRequest     = OpenAccountRequest
	OpenSavingsAccountRequest     = OpenAccountRequest
	OpenDebitCardAccountRequest   = OpenAccountRequest
	OpenCreditCardAccountRequest  = OpenAccountRequest
	OpenDepositAccountResponse    = OpenAccountResponse
	OpenSavingsAccountResponse    = OpenAccountResponse
	OpenDebitCardAccountResponse  = OpenAccountResponse
	OpenCreditCardAccountResponse = OpenAccountResponse
)

// AccountFromModel converts a domain account to its payload.
func AccountFromModel(a model.Account) Account {
	cards := make([]Card, 0, len(a.Cards))
	for _, c := range a.Cards {
		cards = append(cards, CardFromModel(c))
	}
	return Account{
		ID:      a.ID,
		Type:    string(a.Type),
		Cards:   cards,
		Status:  string(a.Status),
		Balance: a.Balance,
	}
}
