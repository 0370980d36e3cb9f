package httpgw

import (
	"context"
	"net/http"
	"net/url"

	"github.com/gatewayperf/gatewayperf/internal/schema"
)

const (
	tariffDocumentPath    = "/api/v1/documents/tariff-document"
	contractDocumentPath  = "/api/v1/documents/contract-document"
	tariffDocumentRoute   = tariffDocumentPath + "/{account_id}"
	contractDocumentRoute = contractDocumentPath + "/{account_id}"
)

// DocumentsClient calls /api/v1/documents.
type DocumentsClient struct {
	client *Client
}

// NewDocumentsClient binds a DocumentsClient to c.
func NewDocumentsClient(c *Client) *DocumentsClient {
	return &DocumentsClient{client: c}
}

// GetTariffDocumentAPI sends GET /api/v1/documents/tariff-document/{account_id}.
func (c *DocumentsClient) GetTariffDocumentAPI(ctx context.Context, accountID string) (*http.Response, error) {
	return c.client.Get(ctx, tariffDocumentPath+"/"+url.PathEscape(accountID), nil, Extensions{Route: tariffDocumentRoute})
}

// GetContractDocumentAPI sends GET /api/v1/documents/contract-document/{account_id}.
func (c *DocumentsClient) GetContractDocumentAPI(ctx context.Context, accountID string) (*http.Response, error) {
	return c.client.Get(ctx, contractDocumentPath+"/"+url.PathEscape(accountID), nil, Extensions{Route: contractDocumentRoute})
}

// GetTariffDocument fetches the tariff of an account.
func (c *DocumentsClient) GetTariffDocument(ctx context.Context, accountID string) (*schema.GetTariffDocumentResponse, error) {
	return call[schema.GetTariffDocumentResponse](http.MethodGet, tariffDocumentRoute)(c.GetTariffDocumentAPI(ctx, accountID))
}

// GetContractDocument fetches the contract of an account.
func (c *DocumentsClient) GetContractDocument(ctx context.Context, accountID string) (*schema.GetContractDocumentResponse, error) {
	return call[schema.GetContractDocumentResponse](http.MethodGet, contractDocumentRoute)(c.GetContractDocumentAPI(ctx, accountID))
}
