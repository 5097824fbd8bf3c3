// Package orders exposes the customer's order history. Orders are
// server-owned; this service only reads them and requests cancellations.
package orders

import (
	"context"
	"fmt"

	pkgerrors "github.com/mashood007/fp-store-front/pkg/errors"
	"github.com/mashood007/fp-store-front/pkg/storeapi"
)

type ordersAPI interface {
	ListOrders(ctx context.Context, token string) ([]storeapi.Order, error)
	GetOrder(ctx context.Context, token, id string) (*storeapi.Order, error)
	CancelOrder(ctx context.Context, token, id, reason string) (*storeapi.Order, error)
}

type tokenSource interface {
	Token() string
}

// DefaultCancelReason is used when the customer leaves the prompt empty.
const DefaultCancelReason = "Cancelled by customer"

// Service performs customer-scoped order operations.
type Service struct {
	api     ordersAPI
	session tokenSource
}

// NewService builds the orders service.
func NewService(api ordersAPI, session tokenSource) (*Service, error) {
	if api == nil {
		return nil, fmt.Errorf("api client is required")
	}
	if session == nil {
		return nil, fmt.Errorf("session is required")
	}
	return &Service{api: api, session: session}, nil
}

// List fetches the customer's order history.
func (s *Service) List(ctx context.Context) ([]storeapi.Order, error) {
	token, err := s.token()
	if err != nil {
		return nil, err
	}
	return s.api.ListOrders(ctx, token)
}

// Get fetches one order.
func (s *Service) Get(ctx context.Context, id string) (*storeapi.Order, error) {
	token, err := s.token()
	if err != nil {
		return nil, err
	}
	return s.api.GetOrder(ctx, token, id)
}

// Cancel requests cancellation of an order still in a cancellable status.
// The guard runs locally so no request is issued for orders the backend
// would reject anyway.
func (s *Service) Cancel(ctx context.Context, order storeapi.Order, reason string) (*storeapi.Order, error) {
	token, err := s.token()
	if err != nil {
		return nil, err
	}
	if !order.Status.CanCancel() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("orders in status %s cannot be cancelled", order.Status))
	}
	if reason == "" {
		reason = DefaultCancelReason
	}
	return s.api.CancelOrder(ctx, token, order.ID, reason)
}

func (s *Service) token() (string, error) {
	token := s.session.Token()
	if token == "" {
		return "", pkgerrors.New(pkgerrors.CodeUnauthorized, "not authenticated")
	}
	return token, nil
}
