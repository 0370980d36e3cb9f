package httpgw

import (
	"context"

	"github.com/gatewayperf/gatewayperf/internal/gateway"
	"github.com/gatewayperf/gatewayperf/internal/model"
	"github.com/gatewayperf/gatewayperf/internal/schema"
)

// Gateway groups the per-service clients and implements gateway.Gateway.
type Gateway struct {
	Users      *UsersClient
	Accounts   *AccountsClient
	Cards      *CardsClient
	Operations *OperationsClient
	Documents  *DocumentsClient

	client *Client
}

var _ gateway.Gateway = (*Gateway)(nil)

// NewGateway builds every service client on top of c.
func NewGateway(c *Client) *Gateway {
	return &Gateway{
		Users:      NewUsersClient(c),
		Accounts:   NewAccountsClient(c),
		Cards:      NewCardsClient(c),
		Operations: NewOperationsClient(c),
		Documents:  NewDocumentsClient(c),
		client:     c,
	}
}

func (g *Gateway) Protocol() gateway.Protocol { return gateway.ProtocolHTTP }

func (g *Gateway) Close() error { return g.client.Close() }

func (g *Gateway) GetUser(ctx context.Context, userID string) (model.User, error) {
	resp, err := g.Users.GetUser(ctx, userID)
	if err != nil {
		return model.User{}, err
	}
	return resp.User.ToModel(), nil
}

func (g *Gateway) CreateUser(ctx context.Context) (model.User, error) {
	resp, err := g.Users.CreateUser(ctx)
	if err != nil {
		return model.User{}, err
	}
	return resp.User.ToModel(), nil
}

func (g *Gateway) GetAccounts(ctx context.Context, userID string) ([]model.Account, error) {
	resp, err := g.Accounts.GetAccounts(ctx, userID)
	if err != nil {
		return nil, err
	}
	accounts := make([]model.Account, 0, len(resp.Accounts))
	for _, a := range resp.Accounts {
		accounts = append(accounts, a.ToModel())
	}
	return accounts, nil
}

func account(resp *schema.OpenAccountResponse, err error) (model.Account, error) {
	if err != nil {
		return model.Account{}, err
	}
	return resp.Account.ToModel(), nil
}

func (g *Gateway) OpenDepositAccount(ctx context.Context, userID string) (model.Account, error) {
	return account(g.Accounts.OpenDepositAccount(ctx, userID))
}

func (g *Gateway) OpenSavingsAccount(ctx context.Context, userID string) (model.Account, error) {
	return account(g.Accounts.OpenSavingsAccount(ctx, userID))
}

func (g *Gateway) OpenDebitCardAccount(ctx context.Context, userID string) (model.Account, error) {
	return account(g.Accounts.OpenDebitCardAccount(ctx, userID))
}

func (g *Gateway) OpenCreditCardAccount(ctx context.Context, userID string) (model.Account, error) {
	return account(g.Accounts.OpenCreditCardAccount(ctx, userID))
}

func card(resp *schema.IssueCardResponse, err error) (model.Card, error) {
	if err != nil {
		return model.Card{}, err
	}
	return resp.Card.ToModel(), nil
}

func (g *Gateway) IssueVirtualCard(ctx context.Context, userID, accountID string) (model.Card, error) {
	return card(g.Cards.IssueVirtualCard(ctx, userID, accountID))
}

func (g *Gateway) IssuePhysicalCard(ctx context.Context, userID, accountID string) (model.Card, error) {
	return card(g.Cards.IssuePhysicalCard(ctx, userID, accountID))
}

func operation(resp *schema.OperationResponse, err error) (model.Operation, error) {
	if err != nil {
		return model.Operation{}, err
	}
	return resp.Operation.ToModel(), nil
}

func (g *Gateway) GetOperation(ctx context.Context, operationID string) (model.Operation, error) {
	return operation(g.Operations.GetOperation(ctx, operationID))
}

func (g *Gateway) GetOperationReceipt(ctx context.Context, operationID string) (model.Receipt, error) {
	resp, err := g.Operations.GetOperationReceipt(ctx, operationID)
	if err != nil {
		return model.Receipt{}, err
	}
	return resp.Receipt.ToModel(), nil
}

func (g *Gateway) GetOperations(ctx context.Context, accountID string) ([]model.Operation, error) {
	resp, err := g.Operations.GetOperations(ctx, accountID)
	if err != nil {
		return nil, err
	}
	ops := make([]model.Operation, 0, len(resp.Operations))
	for _, op := range resp.Operations {
		ops = append(ops, op.ToModel())
	}
	return ops, nil
}

func (g *Gateway) GetOperationsSummary(ctx context.Context, accountID string) (model.OperationsSummary, error) {
	resp, err := g.Operations.GetOperationsSummary(ctx, accountID)
	if err != nil {
		return model.OperationsSummary{}, err
	}
	return resp.Summary.ToModel(), nil
}

func (g *Gateway) MakeFeeOperation(ctx context.Context, cardID, accountID string) (model.Operation, error) {
	return operation(g.Operations.MakeFeeOperation(ctx, cardID, accountID))
}

func (g *Gateway) MakeTopUpOperation(ctx context.Context, cardID, accountID string) (model.Operation, error) {
	return operation(g.Operations.MakeTopUpOperation(ctx, cardID, accountID))
}

func (g *Gateway) MakeCashbackOperation(ctx context.Context, cardID, accountID string) (model.Operation, error) {
	return operation(g.Operations.MakeCashbackOperation(ctx, cardID, accountID))
}

func (g *Gateway) MakeTransferOperation(ctx context.Context, cardID, accountID string) (model.Operation, error) {
	return operation(g.Operations.MakeTransferOperation(ctx, cardID, accountID))
}

func (g *Gateway) MakePurchaseOperation(ctx context.Context, cardID, accountID string) (model.Operation, error) {
	return operation(g.Operations.MakePurchaseOperation(ctx, cardID, accountID))
}

func (g *Gateway) MakeBillPaymentOperation(ctx context.Context, cardID, accountID string) (model.Operation, error) {
	return operation(g.Operations.MakeBillPaymentOperation(ctx, cardID, accountID))
}

func (g *Gateway) MakeCashWithdrawalOperation(ctx context.Context, cardID, accountID string) (model.Operation, error) {
	return operation(g.Operations.MakeCashWithdrawalOperation(ctx, cardID, accountID))
}

func (g *Gateway) GetTariffDocument(ctx context.Context, accountID string) (model.Document, error) {
	resp, err := g.Documents.GetTariffDocument(ctx, accountID)
	if err != nil {
		return model.Document{}, err
	}
	return resp.Tariff.ToModel(), nil
}

func (g *Gateway) GetContractDocument(ctx context.Context, accountID string) (model.Document, error) {
	resp, err := g.Documents.GetContractDocument(ctx, accountID)
	if err != nil {
		return model.Document{}, err
	}
	return resp.Contract.ToModel(), nil
}
