package catalog

import (
	"context"
	"testing"
	"time"

	pkgerrors "github.com/mashood007/fp-store-front/pkg/errors"
	"github.com/mashood007/fp-store-front/pkg/storeapi"
)

type stubAPI struct {
	listCalls int
	getCalls  int
	listErr   error
	getErr    error
}

func (s *stubAPI) ListProducts(_ context.Context, params storeapi.ListProductsParams) (*storeapi.ProductsResponse, error) {
	s.listCalls++
	if s.listErr != nil {
		return nil, s.listErr
	}
	return &storeapi.ProductsResponse{
		Products:   []storeapi.Product{{ID: "p1", Name: "Amber Noir"}},
		Pagination: storeapi.Pagination{Total: 1, Limit: params.Limit},
	}, nil
}

func (s *stubAPI) GetProduct(_ context.Context, id string) (*storeapi.Product, error) {
	s.getCalls++
	if s.getErr != nil {
		return nil, s.getErr
	}
	return &storeapi.Product{ID: id, Name: "Amber Noir"}, nil
}

func newService(t *testing.T, api *stubAPI) (*Service, *time.Time) {
	t.Helper()
	svc, err := NewService(api, time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	current := time.Now()
	svc.now = func() time.Time { return current }
	return svc, &current
}

func TestListServedFromCacheWithinWindow(t *testing.T) {
	api := &stubAPI{}
	svc, _ := newService(t, api)

	params := storeapi.ListProductsParams{Category: "perfume"}
	if _, err := svc.List(context.Background(), params); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.List(context.Background(), params); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if api.listCalls != 1 {
		t.Fatalf("expected one upstream call, got %d", api.listCalls)
	}
}

func TestListRefetchedAfterWindow(t *testing.T) {
	api := &stubAPI{}
	svc, current := newService(t, api)

	params := storeapi.ListProductsParams{}
	_, _ = svc.List(context.Background(), params)
	*current = current.Add(2 * time.Minute)
	_, _ = svc.List(context.Background(), params)

	if api.listCalls != 2 {
		t.Fatalf("expected refetch after window, got %d calls", api.listCalls)
	}
}

func TestDistinctParamsMissCache(t *testing.T) {
	api := &stubAPI{}
	svc, _ := newService(t, api)

	_, _ = svc.List(context.Background(), storeapi.ListProductsParams{Category: "perfume"})
	_, _ = svc.List(context.Background(), storeapi.ListProductsParams{Category: "decor"})

	if api.listCalls != 2 {
		t.Fatalf("expected two upstream calls, got %d", api.listCalls)
	}
}

func TestErrorsAreNotCached(t *testing.T) {
	api := &stubAPI{listErr: pkgerrors.New(pkgerrors.CodeNetwork, "network error occurred")}
	svc, _ := newService(t, api)

	if _, err := svc.List(context.Background(), storeapi.ListProductsParams{}); err == nil {
		t.Fatal("expected error")
	}

	api.listErr = nil
	if _, err := svc.List(context.Background(), storeapi.ListProductsParams{}); err != nil {
		t.Fatalf("unexpected error after recovery: %v", err)
	}
	if api.listCalls != 2 {
		t.Fatalf("expected retry to hit upstream, got %d calls", api.listCalls)
	}
}

func TestGetCached(t *testing.T) {
	api := &stubAPI{}
	svc, current := newService(t, api)

	_, _ = svc.Get(context.Background(), "p1")
	_, _ = svc.Get(context.Background(), "p1")
	if api.getCalls != 1 {
		t.Fatalf("expected one upstream call, got %d", api.getCalls)
	}

	*current = current.Add(90 * time.Second)
	_, _ = svc.Get(context.Background(), "p1")
	if api.getCalls != 2 {
		t.Fatalf("expected stale refetch, got %d calls", api.getCalls)
	}
}

func TestSearchDelegatesToList(t *testing.T) {
	api := &stubAPI{}
	svc, _ := newService(t, api)

	resp, err := svc.Search(context.Background(), "oud")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Products) != 1 {
		t.Fatalf("expected products, got %d", len(resp.Products))
	}
}
