package storeapi

import (
	"context"
	"net/http"
	"net/url"
)

// CreateOrder places an order from the given lines and shipping address.
// The backend prices the lines; no amounts are sent.
func (c *Client) CreateOrder(ctx context.Context, token string, req CreateOrderRequest) (*Order, error) {
	ctx = c.requestContext(ctx)
	c.log(ctx, "request", "create_order", map[string]any{"items": len(req.Items)})

	var order Order
	if err := c.do(ctx, http.MethodPost, "/orders", token, nil, req, &order); err != nil {
		c.log(ctx, "error", "create_order", map[string]any{"error": err.Error()})
		return nil, err
	}

	c.log(ctx, "response", "create_order", map[string]any{
		"order_id":     order.ID,
		"order_number": order.OrderNumber,
	})
	return &order, nil
}

// ListOrders fetches the customer's order history, newest first.
func (c *Client) ListOrders(ctx context.Context, token string) ([]Order, error) {
	ctx = c.requestContext(ctx)
	c.log(ctx, "request", "list_orders", nil)

	var resp OrdersResponse
	if err := c.do(ctx, http.MethodGet, "/orders", token, nil, nil, &resp); err != nil {
		c.log(ctx, "error", "list_orders", map[string]any{"error": err.Error()})
		return nil, err
	}
	return resp.Orders, nil
}

// GetOrder fetches one order by id.
func (c *Client) GetOrder(ctx context.Context, token, id string) (*Order, error) {
	ctx = c.requestContext(ctx)
	c.log(ctx, "request", "get_order", map[string]any{"order_id": id})

	var order Order
	if err := c.do(ctx, http.MethodGet, "/orders/"+url.PathEscape(id), token, nil, nil, &order); err != nil {
		c.log(ctx, "error", "get_order", map[string]any{"error": err.Error(), "order_id": id})
		return nil, err
	}
	return &order, nil
}

type cancelOrderRequest struct {
	Action       string `json:"action"`
	CancelReason string `json:"cancelReason"`
}

// CancelOrder requests a status transition to CANCELLED and returns the
// updated order.
func (c *Client) CancelOrder(ctx context.Context, token, id, reason string) (*Order, error) {
	ctx = c.requestContext(ctx)
	c.log(ctx, "request", "cancel_order", map[string]any{"order_id": id})

	body := cancelOrderRequest{Action: "cancel", CancelReason: reason}
	var order Order
	if err := c.do(ctx, http.MethodPut, "/orders/"+url.PathEscape(id), token, nil, body, &order); err != nil {
		c.log(ctx, "error", "cancel_order", map[string]any{"error": err.Error(), "order_id": id})
		return nil, err
	}

	c.log(ctx, "response", "cancel_order", map[string]any{
		"order_id": order.ID,
		"status":   order.Status.String(),
	})
	return &order, nil
}
