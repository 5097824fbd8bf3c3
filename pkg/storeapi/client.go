package storeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/mashood007/fp-store-front/pkg/config"
	pkgerrors "github.com/mashood007/fp-store-front/pkg/errors"
	"github.com/mashood007/fp-store-front/pkg/logger"
)

var (
	errBaseURLRequired = errors.New("store api base url is required")
	errLoggerRequired  = errors.New("store api logger is required")
)

// Client wraps the remote store API with typed operations, bearer auth,
// logging, and error classification. It holds no cart or checkout state.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *logger.Logger
}

// NewClient validates the configuration and builds the API client.
func NewClient(cfg config.APIConfig, logg *logger.Logger) (*Client, error) {
	if logg == nil {
		return nil, errLoggerRequired
	}
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, errBaseURLRequired
	}
	return &Client{
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		baseURL:    base,
		logger:     logg,
	}, nil
}

// BaseURL reports the configured API root.
func (c *Client) BaseURL() string {
	if c == nil {
		return ""
	}
	return c.baseURL
}

// NewPaymentReference returns a unique reference for a payment completion
// call. Order creation intentionally carries no such key; see DESIGN.md.
func NewPaymentReference() string {
	return "pay-" + uuid.NewString()
}

// requestContext tags the context with a fresh request id so the request,
// response, and error logs of one call line up.
func (c *Client) requestContext(ctx context.Context) context.Context {
	if c == nil || c.logger == nil {
		return ctx
	}
	return c.logger.WithRequestID(ctx, uuid.NewString())
}

// errorEnvelope is the store API's failure body.
type errorEnvelope struct {
	Error string `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path, token string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encoding request")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "building request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeNetwork, err, "network error occurred")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.remoteError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeRemote, err, "decoding response")
	}
	return nil
}

// remoteError converts a non-2xx response into a typed error, passing the
// server-supplied message through when one is present.
func (c *Client) remoteError(resp *http.Response) error {
	code := pkgerrors.CodeForStatus(resp.StatusCode)

	var envelope errorEnvelope
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &envelope)
	}
	return pkgerrors.New(code, strings.TrimSpace(envelope.Error))
}

func (c *Client) log(ctx context.Context, phase, op string, fields map[string]any) {
	if c == nil || c.logger == nil {
		return
	}
	logFields := map[string]any{
		"operation": op,
		"phase":     phase,
	}
	for k, v := range fields {
		logFields[k] = v
	}
	ctx = c.logger.WithFields(ctx, logFields)
	switch phase {
	case "error":
		c.logger.Warn(ctx, fmt.Sprintf("store api %s", op))
	default:
		c.logger.Debug(ctx, fmt.Sprintf("store api %s", op))
	}
}
