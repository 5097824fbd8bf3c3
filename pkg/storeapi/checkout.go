package storeapi

import (
	"context"
	"net/http"
	"net/url"
)

// CreateCheckout initializes a payment attempt for an order and returns the
// checkout whose session id correlates the completion call.
func (c *Client) CreateCheckout(ctx context.Context, token string, req CreateCheckoutRequest) (*Checkout, error) {
	ctx = c.requestContext(ctx)
	c.log(ctx, "request", "create_checkout", map[string]any{
		"order_id":       req.OrderID,
		"payment_method": req.PaymentMethod.String(),
	})

	var checkout Checkout
	if err := c.do(ctx, http.MethodPost, "/checkout", token, nil, req, &checkout); err != nil {
		c.log(ctx, "error", "create_checkout", map[string]any{"error": err.Error()})
		return nil, err
	}

	c.log(ctx, "response", "create_checkout", map[string]any{
		"checkout_id":    checkout.ID,
		"payment_status": checkout.PaymentStatus.String(),
	})
	return &checkout, nil
}

// CompleteCheckout finalizes the payment attempt.
func (c *Client) CompleteCheckout(ctx context.Context, token, checkoutID string, req CompleteCheckoutRequest) (*Checkout, error) {
	ctx = c.requestContext(ctx)
	c.log(ctx, "request", "complete_checkout", map[string]any{
		"checkout_id": checkoutID,
		"gateway":     req.PaymentGateway,
	})

	var checkout Checkout
	path := "/checkout/" + url.PathEscape(checkoutID) + "/complete"
	if err := c.do(ctx, http.MethodPost, path, token, nil, req, &checkout); err != nil {
		c.log(ctx, "error", "complete_checkout", map[string]any{"error": err.Error()})
		return nil, err
	}

	c.log(ctx, "response", "complete_checkout", map[string]any{
		"checkout_id":    checkout.ID,
		"payment_status": checkout.PaymentStatus.String(),
	})
	return &checkout, nil
}
