package httpgw

import (
	"context"
	"net/http"
	"net/url"

	"github.com/gatewayperf/gatewayperf/internal/schema"
)

const (
	operationsPath                  = "/api/v1/operations"
	operationRoute                  = "/api/v1/operations/{operation_id}"
	operationReceiptPath            = "/api/v1/operations/operation-receipt"
	operationReceiptRoute           = operationReceiptPath + "/{operation_id}"
	operationsSummaryPath           = "/api/v1/operations/operations-summary"
	makeFeeOperationPath            = "/api/v1/operations/make-fee-operation"
	makeTopUpOperationPath          = "/api/v1/operations/make-top-up-operation"
	makeCashbackOperationPath       = "/api/v1/operations/make-cashback-operation"
	makeTransferOperationPath       = "/api/v1/operations/make-transfer-operation"
	makePurchaseOperationPath       = "/api/v1/operations/make-purchase-operation"
	makeBillPaymentOperationPath    = "/api/v1/operations/make-bill-payment-operation"
	makeCashWithdrawalOperationPath = "/api/v1/operations/make-cash-withdrawal-operation"
)

// OperationsClient calls /api/v1/operations.
type OperationsClient struct {
	client *Client
}

// NewOperationsClient binds an OperationsClient to c.
func NewOperationsClient(c *Client) *OperationsClient {
	return &OperationsClient{client: c}
}

// GetOperationAPI sends GET /api/v1/operations/{operation_id}.
func (c *OperationsClient) GetOperationAPI(ctx context.Context, operationID string) (*http.Response, error) {
	return c.client.Get(ctx, operationsPath+"/"+url.PathEscape(operationID), nil, Extensions{Route: operationRoute})
}

// GetOperationReceiptAPI sends GET /api/v1/operations/operation-receipt/{operation_id}.
func (c *OperationsClient) GetOperationReceiptAPI(ctx context.Context, operationID string) (*http.Response, error) {
	return c.client.Get(ctx, operationReceiptPath+"/"+url.PathEscape(operationID), nil, Extensions{Route: operationReceiptRoute})
}

// GetOperationsAPI sends GET /api/v1/operations?accountId=.
func (c *OperationsClient) GetOperationsAPI(ctx context.Context, query schema.GetOperationsQuery) (*http.Response, error) {
	return c.client.Get(ctx, operationsPath, query.Values(), Extensions{Route: operationsPath})
}

// GetOperationsSummaryAPI sends GET /api/v1/operations/operations-summary?accountId=.
func (c *OperationsClient) GetOperationsSummaryAPI(ctx context.Context, query schema.GetOperationsSummaryQuery) (*http.Response, error) {
	return c.client.Get(ctx, operationsSummaryPath, query.Values(), Extensions{Route: operationsSummaryPath})
}

// MakeFeeOperationAPI sends POST /api/v1/operations/make-fee-operation.
func (c *OperationsClient) MakeFeeOperationAPI(ctx context.Context, req schema.MakeFeeOperationRequest) (*http.Response, error) {
	return c.client.Post(ctx, makeFeeOperationPath, req, Extensions{Route: makeFeeOperationPath})
}

// MakeTopUpOperationAPI sends POST /api/v1/operations/make-top-up-operation.
func (c *OperationsClient) MakeTopUpOperationAPI(ctx context.Context, req schema.MakeTopUpOperationRequest) (*http.Response, error) {
	return c.client.Post(ctx, makeTopUpOperationPath, req, Extensions{Route: makeTopUpOperationPath})
}

// MakeCashbackOperationAPI sends POST /api/v1/operations/make-cashback-operation.
func (c *OperationsClient) MakeCashbackOperationAPI(ctx context.Context, req schema.MakeCashbackOperationRequest) (*http.Response, error) {
	return c.client.Post(ctx, makeCashbackOperationPath, req, Extensions{Route: makeCashbackOperationPath})
}

// MakeTransferOperationAPI sends POST /api/v1/operations/make-transfer-operation.
func (c *OperationsClient) MakeTransferOperationAPI(ctx context.Context, req schema.MakeTransferOperationRequest) (*http.Response, error) {
	return c.client.Post(ctx, makeTransferOperationPath, req, Extensions{Route: makeTransferOperationPath})
}

// MakePurchaseOperationAPI sends POST /api/v1/operations/make-purchase-operation.
func (c *OperationsClient) MakePurchaseOperationAPI(ctx context.Context, req schema.MakePurchaseOperationRequest) (*http.Response, error) {
	return c.client.Post(ctx, makePurchaseOperationPath, req, Extensions{Route: makePurchaseOperationPath})
}

// MakeBillPaymentOperationAPI sends POST /api/v1/operations/make-bill-payment-operation.
func (c *OperationsClient) MakeBillPaymentOperationAPI(ctx context.Context, req schema.MakeBillPaymentOperationRequest) (*http.Response, error) {
	return c.client.Post(ctx, makeBillPaymentOperationPath, req, Extensions{Route: makeBillPaymentOperationPath})
}

// MakeCashWithdrawalOperationAPI sends POST /api/v1/operations/make-cash-withdrawal-operation.
func (c *OperationsClient) MakeCashWithdrawalOperationAPI(ctx context.Context, req schema.MakeCashWithdrawalOperationRequest) (*http.Response, error) {
	return c.client.Post(ctx, makeCashWithdrawalOperationPath, req, Extensions{Route: makeCashWithdrawalOperationPath})
}

// GetOperation fetches one operation.
func (c *OperationsClient) GetOperation(ctx context.Context, operationID string) (*schema.GetOperationResponse, error) {
	return call[schema.OperationResponse](http.MethodGet, operationRoute)(c.GetOperationAPI(ctx, operationID))
}

// GetOperationReceipt fetches the receipt of an operation.
func (c *OperationsClient) GetOperationReceipt(ctx context.Context, operationID string) (*schema.GetOperationReceiptResponse, error) {
	return call[schema.GetOperationReceiptResponse](http.MethodGet, operationReceiptRoute)(
		c.GetOperationReceiptAPI(ctx, operationID))
}

// GetOperations lists the operations of an account.
func (c *OperationsClient) GetOperations(ctx context.Context, accountID string) (*schema.GetOperationsResponse, error) {
	return call[schema.GetOperationsResponse](http.MethodGet, operationsPath)(
		c.GetOperationsAPI(ctx, schema.GetOperationsQuery{AccountID: accountID}))
}

// GetOperationsSummary aggregates the operations of an account.
func (c *OperationsClient) GetOperationsSummary(ctx context.Context, accountID string) (*schema.GetOperationsSummaryResponse, error) {
	return call[schema.GetOperationsSummaryResponse](http.MethodGet, operationsSummaryPath)(
		c.GetOperationsSummaryAPI(ctx, schema.GetOperationsSummaryQuery{AccountID: accountID}))
}

func (c *OperationsClient) request(cardID, accountID string) schema.MakeOperationRequest {
	return schema.NewMakeOperationRequest(c.client.fake, cardID, accountID)
}

// MakeFeeOperation charges a fee with a fake amount and status.
func (c *OperationsClient) MakeFeeOperation(ctx context.Context, cardID, accountID string) (*schema.MakeFeeOperationResponse, error) {
	return call[schema.OperationResponse](http.MethodPost, makeFeeOperationPath)(
		c.MakeFeeOperationAPI(ctx, c.request(cardID, accountID)))
}

// MakeTopUpOperation tops up an account with a fake amount and status.
func (c *OperationsClient) MakeTopUpOperation(ctx context.Context, cardID, accountID string) (*schema.MakeTopUpOperationResponse, error) {
	return call[schema.OperationResponse](http.MethodPost, makeTopUpOperationPath)(
		c.MakeTopUpOperationAPI(ctx, c.request(cardID, accountID)))
}

// MakeCashbackOperation credits cashback with a fake amount and status.
func (c *OperationsClient) MakeCashbackOperation(ctx context.Context, cardID, accountID string) (*schema.MakeCashbackOperationResponse, error) {
	return call[schema.OperationResponse](http.MethodPost, makeCashbackOperationPath)(
		c.MakeCashbackOperationAPI(ctx, c.request(cardID, accountID)))
}

// MakeTransferOperation transfers a fake amount.
func (c *OperationsClient) MakeTransferOperation(ctx context.Context, cardID, accountID string) (*schema.MakeTransferOperationResponse, error) {
	return call[schema.OperationResponse](http.MethodPost, makeTransferOperationPath)(
		c.MakeTransferOperationAPI(ctx, c.request(cardID, accountID)))
}

// MakePurchaseOperation buys something in a fake category.
func (c *OperationsClient) MakePurchaseOperation(ctx context.Context, cardID, accountID string) (*schema.MakePurchaseOperationResponse, error) {
	return call[schema.OperationResponse](http.MethodPost, makePurchaseOperationPath)(
		c.MakePurchaseOperationAPI(ctx, schema.NewMakePurchaseOperationRequest(c.client.fake, cardID, accountID)))
}

// MakeBillPaymentOperation pays a bill with a fake amount and status.
func (c *OperationsClient) MakeBillPaymentOperation(ctx context.Context, cardID, accountID string) (*schema.MakeBillPaymentOperationResponse, error) {
	return call[schema.OperationResponse](http.MethodPost, makeBillPaymentOperationPath)(
		c.MakeBillPaymentOperationAPI(ctx, c.request(cardID, accountID)))
}

// MakeCashWithdrawalOperation withdraws a fake amount of cash.
func (c *OperationsClient) MakeCashWithdrawalOperation(ctx context.Context, cardID, accountID string) (*schema.MakeCashWithdrawalOperationResponse, error) {
	return call[schema.OperationResponse](http.MethodPost, makeCashWithdrawalOperationPath)(
		c.MakeCashWithdrawalOperationAPI(ctx, c.request(cardID, accountID)))
}
