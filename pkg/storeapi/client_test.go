package storeapi

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/mashood007/fp-store-front/pkg/config"
	"github.com/mashood007/fp-store-front/pkg/enums"
	pkgerrors "github.com/mashood007/fp-store-front/pkg/errors"
	"github.com/mashood007/fp-store-front/pkg/logger"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(config.APIConfig{
		BaseURL:        server.URL,
		RequestTimeout: 5 * time.Second,
	}, logger.New(logger.Options{ServiceName: "test"}))
	require.NoError(t, err)
	return client, server
}

func TestNewClientRequiresLogger(t *testing.T) {
	_, err := NewClient(config.APIConfig{BaseURL: "http://localhost"}, nil)
	require.Error(t, err)
}

func TestListProductsQueryParams(t *testing.T) {
	var gotQuery string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		require.Equal(t, "/products", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"products":[{"id":"p1","name":"Oud Royale","price":120.5,"isActive":true}],"pagination":{"total":1,"limit":12,"offset":0}}`))
	}))

	resp, err := client.ListProducts(context.Background(), ListProductsParams{
		Category: "perfume",
		Search:   "oud",
		Limit:    12,
	})
	require.NoError(t, err)
	require.Len(t, resp.Products, 1)
	require.True(t, resp.Products[0].Price.Equal(decimal.RequireFromString("120.5")))
	require.Contains(t, gotQuery, "category=perfume")
	require.Contains(t, gotQuery, "search=oud")
	require.Contains(t, gotQuery, "limit=12")
	require.NotContains(t, gotQuery, "offset")
}

func TestBearerTokenAttached(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"orders":[]}`))
	}))

	orders, err := client.ListOrders(context.Background(), "tok-123")
	require.NoError(t, err)
	require.Empty(t, orders)
}

func TestRemoteErrorMessagePassthrough(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"email already registered"}`))
	}))

	_, err := client.Register(context.Background(), RegisterRequest{Email: "a@b.c"})
	require.Error(t, err)
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
	require.Equal(t, "email already registered", pkgerrors.UserMessage(err))
}

func TestRemoteErrorFallbackMessage(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`not json`))
	}))

	_, err := client.GetProduct(context.Background(), "p1")
	require.Error(t, err)
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeRemote))
	require.Equal(t, "the store could not process the request", pkgerrors.UserMessage(err))
}

func TestUnauthorizedClassification(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid credentials"}`))
	}))

	_, err := client.Login(context.Background(), LoginRequest{Email: "a@b.c", Password: "nope"})
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeUnauthorized))
}

func TestNetworkErrorClassification(t *testing.T) {
	client, server := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	_, err := client.GetProduct(context.Background(), "p1")
	require.Error(t, err)
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNetwork))
	require.Equal(t, "network error occurred", pkgerrors.UserMessage(err))
}

func TestCancelOrderBody(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/orders/ord-1", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		require.Contains(t, string(body), `"action":"cancel"`)
		require.Contains(t, string(body), `"cancelReason":"changed my mind"`)
		_, _ = w.Write([]byte(`{"id":"ord-1","orderNumber":"FP-1001","status":"CANCELLED"}`))
	}))

	order, err := client.CancelOrder(context.Background(), "tok", "ord-1", "changed my mind")
	require.NoError(t, err)
	require.Equal(t, enums.OrderStatusCancelled, order.Status)
}

func TestCompleteCheckoutPath(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/checkout/chk-9/complete", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":"chk-9","orderId":"ord-1","paymentStatus":"paid","sessionId":"sess-1"}`))
	}))

	checkout, err := client.CompleteCheckout(context.Background(), "tok", "chk-9", CompleteCheckoutRequest{
		PaymentReference: NewPaymentReference(),
		PaymentGateway:   "simulation",
		SessionID:        "sess-1",
	})
	require.NoError(t, err)
	require.Equal(t, enums.PaymentStatusPaid, checkout.PaymentStatus)
}

func TestNewPaymentReference(t *testing.T) {
	first := NewPaymentReference()
	second := NewPaymentReference()
	require.True(t, strings.HasPrefix(first, "pay-"))
	require.NotEqual(t, first, second)
}

func TestOperationLogsCarryRequestID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"products":[],"pagination":{"total":0,"limit":12,"offset":0}}`))
	}))
	t.Cleanup(server.Close)

	var logs strings.Builder
	client, err := NewClient(config.APIConfig{
		BaseURL:        server.URL,
		RequestTimeout: 5 * time.Second,
	}, logger.New(logger.Options{
		ServiceName: "test",
		Level:       zerolog.DebugLevel,
		Output:      &logs,
	}))
	require.NoError(t, err)

	_, err = client.ListProducts(context.Background(), ListProductsParams{})
	require.NoError(t, err)
	require.Contains(t, logs.String(), `"request_id"`)
}
