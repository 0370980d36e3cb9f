package httpgw

import (
	"context"
	"net/http"
	"net/url"

	"github.com/gatewayperf/gatewayperf/internal/schema"
)

const (
	usersPath = "/api/v1/users"
	userRoute = "/api/v1/users/{user_id}"
)

// UsersClient calls /api/v1/users.
type UsersClient struct {
	client *Client
}

// NewUsersClient binds a UsersClient to c.
func NewUsersClient(c *Client) *UsersClient {
	return &UsersClient{client: c}
}

// GetUserAPI sends GET /api/v1/users/{user_id}.
func (c *UsersClient) GetUserAPI(ctx context.Context, userID string) (*http.Response, error) {
	return c.client.Get(ctx, usersPath+"/"+url.PathEscape(userID), nil, Extensions{Route: userRoute})
}

// CreateUserAPI sends POST /api/v1/users.
func (c *UsersClient) CreateUserAPI(ctx context.Context, req schema.CreateUserRequest) (*http.Response, error) {
	return c.client.Post(ctx, usersPath, req, Extensions{Route: usersPath})
}

// GetUser fetches a user by id.
func (c *UsersClient) GetUser(ctx context.Context, userID string) (*schema.GetUserResponse, error) {
	return call[schema.GetUserResponse](http.MethodGet, userRoute)(c.GetUserAPI(ctx, userID))
}

// CreateUser registers a user with fake personal data.
func (c *UsersClient) CreateUser(ctx context.Context) (*schema.CreateUserResponse, error) {
	return c.CreateUserWith(ctx, schema.NewCreateUserRequest(c.client.fake))
}

// CreateUserWith registers a user from an explicit request.
func (c *UsersClient) CreateUserWith(ctx context.Context, req schema.CreateUserRequest) (*schema.CreateUserResponse, error) {
	return call[schema.CreateUserResponse](http.MethodPost, usersPath)(c.CreateUserAPI(ctx, req))
}
