package storeapi

import (
	"context"
	"net/http"
)

// GetProfile reads the authenticated customer's profile.
func (c *Client) GetProfile(ctx context.Context, token string) (*Customer, error) {
	ctx = c.requestContext(ctx)
	c.log(ctx, "request", "get_profile", nil)

	var resp ProfileResponse
	if err := c.do(ctx, http.MethodGet, "/customers/profile", token, nil, nil, &resp); err != nil {
		c.log(ctx, "error", "get_profile", map[string]any{"error": err.Error()})
		return nil, err
	}
	return &resp.Customer, nil
}

// UpdateProfile applies a partial profile change and returns the updated
// customer as the server sees it.
func (c *Client) UpdateProfile(ctx context.Context, token string, update ProfileUpdate) (*Customer, error) {
	ctx = c.requestContext(ctx)
	c.log(ctx, "request", "update_profile", nil)

	var resp ProfileResponse
	if err := c.do(ctx, http.MethodPut, "/customers/profile", token, nil, update, &resp); err != nil {
		c.log(ctx, "error", "update_profile", map[string]any{"error": err.Error()})
		return nil, err
	}

	c.log(ctx, "response", "update_profile", map[string]any{"customer_id": resp.Customer.ID})
	return &resp.Customer, nil
}
