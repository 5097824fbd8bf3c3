// Package catalog layers the short revalidation window over the store API's
// read endpoints, so repeated page visits within the window reuse the last
// fetched payload.
package catalog

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/mashood007/fp-store-front/pkg/storeapi"
)

type catalogAPI interface {
	ListProducts(ctx context.Context, params storeapi.ListProductsParams) (*storeapi.ProductsResponse, error)
	GetProduct(ctx context.Context, id string) (*storeapi.Product, error)
}

type cachedList struct {
	response  storeapi.ProductsResponse
	fetchedAt time.Time
}

type cachedProduct struct {
	product   storeapi.Product
	fetchedAt time.Time
}

// Service serves catalog reads with time-based revalidation. Failures are
// never cached; a stale entry is simply refetched.
type Service struct {
	api catalogAPI
	ttl time.Duration
	now func() time.Time

	mu       sync.Mutex
	lists    map[string]cachedList
	products map[string]cachedProduct
}

// NewService builds the catalog service.
func NewService(api catalogAPI, ttl time.Duration) (*Service, error) {
	if api == nil {
		return nil, fmt.Errorf("api client is required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("revalidation ttl must be positive")
	}
	return &Service{
		api:      api,
		ttl:      ttl,
		now:      time.Now,
		lists:    map[string]cachedList{},
		products: map[string]cachedProduct{},
	}, nil
}

// List fetches a catalog page, serving a cached copy while it is fresh.
func (s *Service) List(ctx context.Context, params storeapi.ListProductsParams) (*storeapi.ProductsResponse, error) {
	key := listKey(params)

	s.mu.Lock()
	if entry, ok := s.lists[key]; ok && s.now().Sub(entry.fetchedAt) < s.ttl {
		resp := entry.response
		s.mu.Unlock()
		return &resp, nil
	}
	s.mu.Unlock()

	resp, err := s.api.ListProducts(ctx, params)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.lists[key] = cachedList{response: *resp, fetchedAt: s.now()}
	s.mu.Unlock()
	return resp, nil
}

// Get fetches one product, serving a cached copy while it is fresh.
func (s *Service) Get(ctx context.Context, id string) (*storeapi.Product, error) {
	s.mu.Lock()
	if entry, ok := s.products[id]; ok && s.now().Sub(entry.fetchedAt) < s.ttl {
		product := entry.product
		s.mu.Unlock()
		return &product, nil
	}
	s.mu.Unlock()

	product, err := s.api.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.products[id] = cachedProduct{product: *product, fetchedAt: s.now()}
	s.mu.Unlock()
	return product, nil
}

// Search is a listing filtered by a free-text query.
func (s *Service) Search(ctx context.Context, query string) (*storeapi.ProductsResponse, error) {
	return s.List(ctx, storeapi.ListProductsParams{Search: query})
}

func listKey(params storeapi.ListProductsParams) string {
	return strings.Join([]string{
		params.Category,
		params.Search,
		strconv.Itoa(params.Limit),
		strconv.Itoa(params.Offset),
	}, "|")
}
