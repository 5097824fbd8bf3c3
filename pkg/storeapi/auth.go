package storeapi

import (
	"context"
	"net/http"
)

// Login exchanges credentials for a customer profile and a bearer token.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	ctx = c.requestContext(ctx)
	c.log(ctx, "request", "login", map[string]any{"email": req.Email})

	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", nil, req, &resp); err != nil {
		c.log(ctx, "error", "login", map[string]any{"error": err.Error()})
		return nil, err
	}

	c.log(ctx, "response", "login", map[string]any{"customer_id": resp.Customer.ID})
	return &resp, nil
}

// Register creates an account. The backend returns the same payload as
// Login, but callers re-authenticate explicitly to keep the flows merged.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	ctx = c.requestContext(ctx)
	c.log(ctx, "request", "register", map[string]any{"email": req.Email})

	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", "", nil, req, &resp); err != nil {
		c.log(ctx, "error", "register", map[string]any{"error": err.Error()})
		return nil, err
	}

	c.log(ctx, "response", "register", map[string]any{"customer_id": resp.Customer.ID})
	return &resp, nil
}
