package storeapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// ListProducts fetches a catalog page, optionally filtered by category or a
// free-text search.
func (c *Client) ListProducts(ctx context.Context, params ListProductsParams) (*ProductsResponse, error) {
	ctx = c.requestContext(ctx)
	query := url.Values{}
	if params.Category != "" {
		query.Set("category", params.Category)
	}
	if params.Search != "" {
		query.Set("search", params.Search)
	}
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Offset > 0 {
		query.Set("offset", strconv.Itoa(params.Offset))
	}

	c.log(ctx, "request", "list_products", map[string]any{
		"category": params.Category,
		"search":   params.Search,
	})

	var resp ProductsResponse
	if err := c.do(ctx, http.MethodGet, "/products", "", query, nil, &resp); err != nil {
		c.log(ctx, "error", "list_products", map[string]any{"error": err.Error()})
		return nil, err
	}

	c.log(ctx, "response", "list_products", map[string]any{
		"count": len(resp.Products),
		"total": resp.Pagination.Total,
	})
	return &resp, nil
}

// GetProduct fetches one product by id.
func (c *Client) GetProduct(ctx context.Context, id string) (*Product, error) {
	ctx = c.requestContext(ctx)
	c.log(ctx, "request", "get_product", map[string]any{"product_id": id})

	var product Product
	if err := c.do(ctx, http.MethodGet, "/products/"+url.PathEscape(id), "", nil, nil, &product); err != nil {
		c.log(ctx, "error", "get_product", map[string]any{"error": err.Error(), "product_id": id})
		return nil, err
	}
	return &product, nil
}
