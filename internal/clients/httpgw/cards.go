package httpgw

import (
	"context"
	"net/http"

	"github.com/gatewayperf/gatewayperf/internal/schema"
)

const (
	issueVirtualCardPath  = "/api/v1/cards/issue-virtual-card"
	issuePhysicalCardPath = "/api/v1/cards/issue-physical-card"
)

// CardsClient calls /api/v1/cards.
type CardsClient struct {
	client *Client
}

// NewCardsClient binds a CardsClient to c.
func NewCardsClient(c *Client) *CardsClient {
	return &CardsClient{client: c}
}

// IssueVirtualCardAPI sends POST /api/v1/cards/issue-virtual-card.
func (c *CardsClient) IssueVirtualCardAPI(ctx context.Context, req schema.IssueVirtualCardRequest) (*http.Response, error) {
	return c.client.Post(ctx, issueVirtualCardPath, req, Extensions{Route: issueVirtualCardPath})
}

// IssuePhysicalCardAPI sends POST /api/v1/cards/issue-physical-card.
func (c *CardsClient) IssuePhysicalCardAPI(ctx context.Context, req schema.IssuePhysicalCardRequest) (*http.Response, error) {
	return c.client.Post(ctx, issuePhysicalCardPath, req, Extensions{Route: issuePhysicalCardPath})
}

// IssueVirtualCard issues a virtual card on an account.
func (c *CardsClient) IssueVirtualCard(ctx context.Context, userID, accountID string) (*schema.IssueVirtualCardResponse, error) {
	return call[schema.IssueCardResponse](http.MethodPost, issueVirtualCardPath)(
		c.IssueVirtualCardAPI(ctx, schema.IssueCardRequest{UserID: userID, AccountID: accountID}))
}

// IssuePhysicalCard issues a physical card on an account.
func (c *CardsClient) IssuePhysicalCard(ctx context.Context, userID, accountID string) (*schema.IssuePhysicalCardResponse, error) {
	return call[schema.IssueCardResponse](http.MethodPost, issuePhysicalCardPath)(
		c.IssuePhysicalCardAPI(ctx, schema.IssueCardRequest{UserID: userID, AccountID: accountID}))
}
