package grpcgw

import (
	"context"

	"github.com/gatewayperf/gatewayperf/internal/contracts"
	"github.com/gatewayperf/gatewayperf/internal/fakers"
)

// UsersClient wraps UsersGatewayService.
type UsersClient struct {
	stub contracts.UsersGatewayServiceClient
	fake *fakers.Fake
}

// NewUsersClient binds a UsersClient to c.
func NewUsersClient(c *Client) *UsersClient {
	return &UsersClient{stub: contracts.NewUsersGatewayServiceClient(c.conn), fake: c.fake}
}

func (c *UsersClient) GetUser(ctx context.Context, userID string) (*contracts.GetUserResponse, error) {
	return c.stub.GetUser(ctx, &contracts.GetUserRequest{ID: userID})
}

// CreateUser registers a user with fake personal data.
func (c *UsersClient) CreateUser(ctx context.Context) (*contracts.CreateUserResponse, error) {
	return c.stub.CreateUser(ctx, &contracts.CreateUserRequest{
		Email:       c.fake.Email(),
		LastName:    c.fake.LastName(),
		FirstName:   c.fake.FirstName(),
		MiddleName:  c.fake.MiddleName(),
		PhoneNumber: c.fake.PhoneNumber(),
	})
}

// AccountsClient wraps AccountsGatewayService.
type AccountsClient struct {
	stub contracts.AccountsGatewayServiceClient
}

// NewAccountsClient binds an AccountsClient to c.
func NewAccountsClient(c *Client) *AccountsClient {
	return &AccountsClient{stub: contracts.NewAccountsGatewayServiceClient(c.conn)}
}

func (c *AccountsClient) GetAccounts(ctx context.Context, userID string) (*contracts.GetAccountsResponse, error) {
	return c.stub.GetAccounts(ctx, &contracts.GetAccountsRequest{UserID: userID})
}

func (c *AccountsClient) OpenDepositAccount(ctx context.Context, userID string) (*contracts.OpenDepositAccountResponse, error) {
	return c.stub.OpenDepositAccount(ctx, &contracts.OpenAccountRequest{UserID: userID})
}

func (c *AccountsClient) OpenSavingsAccount(ctx context.Context, userID string) (*contracts.OpenSavingsAccountResponse, error) {
	return c.stub.OpenSavingsAccount(ctx, &contracts.OpenAccountRequest{UserID: userID})
}

func (c *AccountsClient) OpenDebitCardAccount(ctx context.Context, userID string) (*contracts.OpenDebitCardAccountResponse, error) {
	return c.stub.OpenDebitCardAccount(ctx, &contracts.OpenAccountRequest{UserID: userID})
}

func (c *AccountsClient) OpenCreditCardAccount(ctx context.Context, userID string) (*contracts.OpenCreditCardAccountResponse, error) {
	return c.stub.OpenCreditCardAccount(ctx, &contracts.OpenAccountRequest{UserID: userID})
}

// CardsClient wraps CardsGatewayService.
type CardsClient struct {
	stub contracts.CardsGatewayServiceClient
}

// NewCardsClient binds a CardsClient to c.
func NewCardsClient(c *Client) *CardsClient {
	return &CardsClient{stub: contracts.NewCardsGatewayServiceClient(c.conn)}
}

func (c *CardsClient) IssueVirtualCard(ctx context.Context, userID, accountID string) (*contracts.IssueVirtualCardResponse, error) {
	return c.stub.IssueVirtualCard(ctx, &contracts.IssueCardRequest{UserID: userID, AccountID: accountID})
}

func (c *CardsClient) IssuePhysicalCard(ctx context.Context, userID, accountID string) (*contracts.IssuePhysicalCardResponse, error) {
	return c.stub.IssuePhysicalCard(ctx, &contracts.IssueCardRequest{UserID: userID, AccountID: accountID})
}

// OperationsClient wraps OperationsGatewayService.
// Make* methods fill status and amount with fake data.
type OperationsClient struct {
	stub contracts.OperationsGatewayServiceClient
	fake *fakers.Fake
}

// NewOperationsClient binds an OperationsClient to c.
func NewOperationsClient(c *Client) *OperationsClient {
	return &OperationsClient{stub: contracts.NewOperationsGatewayServiceClient(c.conn), fake: c.fake}
}

func (c *OperationsClient) GetOperation(ctx context.Context, operationID string) (*contracts.GetOperationResponse, error) {
	return c.stub.GetOperation(ctx, &contracts.OperationIDRequest{OperationID: operationID})
}

func (c *OperationsClient) GetOperationReceipt(ctx context.Context, operationID string) (*contracts.GetOperationReceiptResponse, error) {
	return c.stub.GetOperationReceipt(ctx, &contracts.OperationIDRequest{OperationID: operationID})
}

func (c *OperationsClient) GetOperations(ctx context.Context, accountID string) (*contracts.GetOperationsResponse, error) {
	return c.stub.GetOperations(ctx, &contracts.AccountOperationsRequest{AccountID: accountID})
}

func (c *OperationsClient) GetOperationsSummary(ctx context.Context, accountID string) (*contracts.GetOperationsSummaryResponse, error) {
	return c.stub.GetOperationsSummary(ctx, &contracts.AccountOperationsRequest{AccountID: accountID})
}

func (c *OperationsClient) request(cardID, accountID string) *contracts.MakeOperationRequest {
	return &contracts.MakeOperationRequest{
		Status:    contracts.OperationStatusFromModel(c.fake.OperationStatus()),
		Amount:    c.fake.Amount(),
		CardID:    cardID,
		AccountID: accountID,
	}
}

func (c *OperationsClient) MakeFeeOperation(ctx context.Context, cardID, accountID string) (*contracts.MakeFeeOperationResponse, error) {
	return c.stub.MakeFeeOperation(ctx, c.request(cardID, accountID))
}

func (c *OperationsClient) MakeTopUpOperation(ctx context.Context, cardID, accountID string) (*contracts.MakeTopUpOperationResponse, error) {
	return c.stub.MakeTopUpOperation(ctx, c.request(cardID, accountID))
}

func (c *OperationsClient) MakeCashbackOperation(ctx context.Context, cardID, accountID string) (*contracts.MakeCashbackOperationResponse, error) {
	return c.stub.MakeCashbackOperation(ctx, c.request(cardID, accountID))
}

func (c *OperationsClient) MakeTransferOperation(ctx context.Context, cardID, accountID string) (*contracts.MakeTransferOperationResponse, error) {
	return c.stub.MakeTransferOperation(ctx, c.request(cardID, accountID))
}

// MakePurchaseOperation also picks a fake category.
func (c *OperationsClient) MakePurchaseOperation(ctx context.Context, cardID, accountID string) (*contracts.MakePurchaseOperationResponse, error) {
	return c.stub.MakePurchaseOperation(ctx, &contracts.MakePurchaseOperationRequest{
		MakeOperationRequest: *c.request(cardID, accountID),
		Category:             c.fake.Category(),
	})
}

func (c *OperationsClient) MakeBillPaymentOperation(ctx context.Context, cardID, accountID string) (*contracts.MakeBillPaymentOperationResponse, error) {
	return c.stub.MakeBillPaymentOperation(ctx, c.request(cardID, accountID))
}

func (c *OperationsClient) MakeCashWithdrawalOperation(ctx context.Context, cardID, accountID string) (*contracts.MakeCashWithdrawalOperationResponse, error) {
	return c.stub.MakeCashWithdrawalOperation(ctx, c.request(cardID, accountID))
}

// DocumentsClient wraps DocumentsGatewayService.
type DocumentsClient struct {
	stub contracts.DocumentsGatewayServiceClient
}

// NewDocumentsClient binds a DocumentsClient to c.
func NewDocumentsClient(c *Client) *DocumentsClient {
	return &DocumentsClient{stub: contracts.NewDocumentsGatewayServiceClient(c.conn)}
}

func (c *DocumentsClient) GetTariffDocument(ctx context.Context, accountID string) (*contracts.GetTariffDocumentResponse, error) {
	return c.stub.GetTariffDocument(ctx, &contracts.GetDocumentRequest{AccountID: accountID})
}

func (c *DocumentsClient) GetContractDocument(ctx context.Context, accountID string) (*contracts.GetContractDocumentResponse, error) {
	return c.stub.GetContractDocument(ctx, &contracts.GetDocumentRequest{AccountID: accountID})
}
