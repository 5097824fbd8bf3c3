// Package auth holds the client-side identity: the authenticated customer
// profile, the opaque bearer token, and their durable persistence.
package auth

import (
	"context"
	"fmt"
	"sync"

	pkgerrors "github.com/mashood007/fp-store-front/pkg/errors"
	"github.com/mashood007/fp-store-front/pkg/logger"
	"github.com/mashood007/fp-store-front/pkg/storeapi"
)

type apiClient interface {
	Login(ctx context.Context, req storeapi.LoginRequest) (*storeapi.AuthResponse, error)
	Register(ctx context.Context, req storeapi.RegisterRequest) (*storeapi.AuthResponse, error)
	UpdateProfile(ctx context.Context, token string, update storeapi.ProfileUpdate) (*storeapi.Customer, error)
}

// RegisterData carries the registration form fields.
type RegisterData struct {
	Email    string
	Password string
	Name     string
	Phone    string
}

// SessionParams bundles the dependencies required to build a session.
type SessionParams struct {
	API         apiClient
	Credentials CredentialsStore
	Logger      *logger.Logger
}

// Session is the Identity/Session store. Invariant: IsAuthenticated is true
// exactly when both customer and token are present.
type Session struct {
	api    apiClient
	creds  CredentialsStore
	logger *logger.Logger

	mu       sync.Mutex
	customer *storeapi.Customer
	token    string
}

// NewSession validates dependencies and rehydrates any persisted identity.
// Corrupt or missing persisted state means logged-out, never an error.
func NewSession(params SessionParams) (*Session, error) {
	if params.API == nil {
		return nil, fmt.Errorf("api client is required")
	}
	if params.Credentials == nil {
		return nil, fmt.Errorf("credentials store is required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}

	s := &Session{
		api:    params.API,
		creds:  params.Credentials,
		logger: params.Logger,
	}

	stored, err := params.Credentials.Load()
	if err != nil {
		params.Logger.Warn(context.Background(), "failed to load persisted session, starting logged out")
		return s, nil
	}
	if stored != nil {
		customer := stored.Customer
		s.customer = &customer
		s.token = stored.Token
	}
	return s, nil
}

// Login authenticates against the store API. On success the identity is set
// and persisted; on failure nothing changes.
func (s *Session) Login(ctx context.Context, email, password string) error {
	resp, err := s.api.Login(ctx, storeapi.LoginRequest{Email: email, Password: password})
	if err != nil {
		return err
	}
	if resp.Token == "" {
		return pkgerrors.New(pkgerrors.CodeRemote, "no token received")
	}

	s.establish(resp.Customer, resp.Token)

	ctx = s.logger.WithCustomerID(ctx, resp.Customer.ID)
	s.logger.Info(ctx, "customer logged in")
	return nil
}

// Register creates the account and then delegates to Login, so the two
// failure paths merge.
func (s *Session) Register(ctx context.Context, data RegisterData) error {
	req := storeapi.RegisterRequest{
		Email:    data.Email,
		Password: data.Password,
		Name:     data.Name,
	}
	if data.Phone != "" {
		phone := data.Phone
		req.Phone = &phone
	}

	if _, err := s.api.Register(ctx, req); err != nil {
		return err
	}
	return s.Login(ctx, data.Email, data.Password)
}

// Logout tears down the identity and its persisted copy.
func (s *Session) Logout() {
	s.mu.Lock()
	s.customer = nil
	s.token = ""
	s.mu.Unlock()

	if err := s.creds.Clear(); err != nil {
		s.logger.Warn(context.Background(), "failed to clear persisted session")
	}
	s.logger.Info(context.Background(), "customer logged out")
}

// UpdateProfile applies a partial change remotely; the cached profile is
// replaced only when the remote call succeeds.
func (s *Session) UpdateProfile(ctx context.Context, update storeapi.ProfileUpdate) error {
	token := s.Token()
	if token == "" {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "not authenticated")
	}

	updated, err := s.api.UpdateProfile(ctx, token, update)
	if err != nil {
		return err
	}

	s.establish(*updated, token)
	return nil
}

// Customer returns the cached customer profile, or nil when logged out.
func (s *Session) Customer() *storeapi.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.customer == nil {
		return nil
	}
	customer := *s.customer
	return &customer
}

// Token returns the bearer credential, empty when logged out.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// IsAuthenticated reports whether both profile and token are present.
func (s *Session) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.customer != nil && s.token != ""
}

func (s *Session) establish(customer storeapi.Customer, token string) {
	s.mu.Lock()
	s.customer = &customer
	s.token = token
	s.mu.Unlock()

	if err := s.creds.Save(Credentials{Token: token, Customer: customer}); err != nil {
		s.logger.Warn(context.Background(), "failed to persist session")
	}
}
