package httpgw

import (
	"context"
	"net/http"

	"github.com/gatewayperf/gatewayperf/internal/schema"
)

const (
	accountsPath              = "/api/v1/accounts"
	openDepositAccountPath    = "/api/v1/accounts/open-deposit-account"
	openSavingsAccountPath    = "/api/v1/accounts/open-savings-account"
	openDebitCardAccountPath  = "/api/v1/accounts/open-debit-card-account"
	openCreditCardAccountPath = "/api/v1/accounts/open-credit-card-account"
)

// AccountsClient calls /api/v1/accounts.
type AccountsClient struct {
	client *Client
}

// NewAccountsClient binds an AccountsClient to c.
func NewAccountsClient(c *Client) *AccountsClient {
	return &AccountsClient{client: c}
}

// GetAccountsAPI sends GET /api/v1/accounts?userId=.
func (c *AccountsClient) GetAccountsAPI(ctx context.Context, query schema.GetAccountsQuery) (*http.Response, error) {
	return c.client.Get(ctx, accountsPath, query.Values(), Extensions{Route: accountsPath})
}

// OpenDepositAccountAPI sends POST /api/v1/accounts/open-deposit-account.
func (c *AccountsClient) OpenDepositAccountAPI(ctx context.Context, req schema.OpenDepositAccountRequest) (*http.Response, error) {
	return c.client.Post(ctx, openDepositAccountPath, req, Extensions{Route: openDepositAccountPath})
}

// OpenSavingsAccountAPI sends POST /api/v1/accounts/open-savings-account.
func (c *AccountsClient) OpenSavingsAccountAPI(ctx context.Context, req schema.OpenSavingsAccountRequest) (*http.Response, error) {
	return c.client.Post(ctx, openSavingsAccountPath, req, Extensions{Route: openSavingsAccountPath})
}

// OpenDebitCardAccountAPI sends POST /api/v1/accounts/open-debit-card-account.
func (c *AccountsClient) OpenDebitCardAccountAPI(ctx context.Context, req schema.OpenDebitCardAccountRequest) (*http.Response, error) {
	return c.client.Post(ctx, openDebitCardAccountPath, req, Extensions{Route: openDebitCardAccountPath})
}

// OpenCreditCardAccountAPI sends POST /api/v1/accounts/open-credit-card-account.
func (c *AccountsClient) OpenCreditCardAccountAPI(ctx context.Context, req schema.OpenCreditCardAccountRequest) (*http.Response, error) {
	return c.client.Post(ctx, openCreditCardAccountPath, req, Extensions{Route: openCreditCardAccountPath})
}

// GetAccounts lists the accounts of a user.
func (c *AccountsClient) GetAccounts(ctx context.Context, userID string) (*schema.GetAccountsResponse, error) {
	return call[schema.GetAccountsResponse](http.MethodGet, accountsPath)(
		c.GetAccountsAPI(ctx, schema.GetAccountsQuery{UserID: userID}))
}

// OpenDepositAccount opens a deposit account for a user.
func (c *AccountsClient) OpenDepositAccount(ctx context.Context, userID string) (*schema.OpenDepositAccountResponse, error) {
	return call[schema.OpenAccountResponse](http.MethodPost, openDepositAccountPath)(
		c.OpenDepositAccountAPI(ctx, schema.OpenAccountRequest{UserID: userID}))
}

// OpenSavingsAccount opens a savings account for a user.
func (c *AccountsClient) OpenSavingsAccount(ctx context.Context, userID string) (*schema.OpenSavingsAccountResponse, error) {
	return call[schema.OpenAccountResponse](http.MethodPost, openSavingsAccountPath)(
		c.OpenSavingsAccountAPI(ctx, schema.OpenAccountRequest{UserID: userID}))
}

// OpenDebitCardAccount opens a debit card account, issued with one card.
func (c *AccountsClient) OpenDebitCardAccount(ctx context.Context, userID string) (*schema.OpenDebitCardAccountResponse, error) {
	return call[schema.OpenAccountResponse](http.MethodPost, openDebitCardAccountPath)(
		c.OpenDebitCardAccountAPI(ctx, schema.OpenAccountRequest{UserID: userID}))
}

// OpenCreditCardAccount opens a credit card account, issued with one card.
func (c *AccountsClient) OpenCreditCardAccount(ctx context.Context, userID string) (*schema.OpenCreditCardAccountResponse, error) {
	return call[schema.OpenAccountResponse](http.MethodPost, openCreditCardAccountPath)(
		c.OpenCreditCardAccountAPI(ctx, schema.OpenAccountRequest{UserID: userID}))
}
