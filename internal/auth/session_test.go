package auth

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	pkgerrors "github.com/mashood007/fp-store-front/pkg/errors"
	"github.com/mashood007/fp-store-front/pkg/logger"
	"github.com/mashood007/fp-store-front/pkg/storeapi"
)

type stubAPI struct {
	loginResp    *storeapi.AuthResponse
	loginErr     error
	registerErr  error
	updateResp   *storeapi.Customer
	updateErr    error
	loginCalls   int
	registerReqs []storeapi.RegisterRequest
}

func (s *stubAPI) Login(_ context.Context, _ storeapi.LoginRequest) (*storeapi.AuthResponse, error) {
	s.loginCalls++
	return s.loginResp, s.loginErr
}

func (s *stubAPI) Register(_ context.Context, req storeapi.RegisterRequest) (*storeapi.AuthResponse, error) {
	s.registerReqs = append(s.registerReqs, req)
	if s.registerErr != nil {
		return nil, s.registerErr
	}
	return s.loginResp, nil
}

func (s *stubAPI) UpdateProfile(_ context.Context, _ string, _ storeapi.ProfileUpdate) (*storeapi.Customer, error) {
	return s.updateResp, s.updateErr
}

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: nullWriter{}})
}

type nullWriter struct{}

func (nullWriter) Write(p []byte) (int, error) { return len(p), nil }

func fileStore(t *testing.T) (*FileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "credentials.json")
	store, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return store, path
}

func authResponse() *storeapi.AuthResponse {
	return &storeapi.AuthResponse{
		Customer: storeapi.Customer{ID: "cust-1", Email: "amal@example.com", Name: "Amal"},
		Token:    "tok-abc",
	}
}

func TestLoginEstablishesAndPersists(t *testing.T) {
	store, path := fileStore(t)
	api := &stubAPI{loginResp: authResponse()}
	session, err := NewSession(SessionParams{API: api, Credentials: store, Logger: testLogger()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if session.IsAuthenticated() {
		t.Fatal("expected logged-out start")
	}
	if err := session.Login(context.Background(), "amal@example.com", "pw"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !session.IsAuthenticated() || session.Token() != "tok-abc" {
		t.Fatal("expected authenticated session")
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected persisted credentials: %v", err)
	}
}

func TestLoginFailureLeavesStateUntouched(t *testing.T) {
	store, _ := fileStore(t)
	api := &stubAPI{loginErr: pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")}
	session, _ := NewSession(SessionParams{API: api, Credentials: store, Logger: testLogger()})

	err := session.Login(context.Background(), "amal@example.com", "wrong")
	if err == nil {
		t.Fatal("expected error")
	}
	if pkgerrors.UserMessage(err) != "invalid credentials" {
		t.Fatalf("unexpected message %q", pkgerrors.UserMessage(err))
	}
	if session.IsAuthenticated() {
		t.Fatal("failed login must not establish a session")
	}
}

func TestLoginWithoutTokenFails(t *testing.T) {
	store, _ := fileStore(t)
	api := &stubAPI{loginResp: &storeapi.AuthResponse{Customer: storeapi.Customer{ID: "c"}}}
	session, _ := NewSession(SessionParams{API: api, Credentials: store, Logger: testLogger()})

	if err := session.Login(context.Background(), "a@b.c", "pw"); err == nil {
		t.Fatal("expected error when no token received")
	}
	if session.IsAuthenticated() {
		t.Fatal("expected logged-out session")
	}
}

func TestRegisterDelegatesToLogin(t *testing.T) {
	store, _ := fileStore(t)
	api := &stubAPI{loginResp: authResponse()}
	session, _ := NewSession(SessionParams{API: api, Credentials: store, Logger: testLogger()})

	err := session.Register(context.Background(), RegisterData{
		Email:    "amal@example.com",
		Password: "pw",
		Name:     "Amal",
		Phone:    "+971500000000",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if api.loginCalls != 1 {
		t.Fatalf("expected login delegation, got %d calls", api.loginCalls)
	}
	if len(api.registerReqs) != 1 || api.registerReqs[0].Phone == nil {
		t.Fatal("expected phone forwarded on register")
	}
	if !session.IsAuthenticated() {
		t.Fatal("expected authenticated session after register")
	}
}

func TestRegisterFailureShortCircuits(t *testing.T) {
	store, _ := fileStore(t)
	api := &stubAPI{registerErr: pkgerrors.New(pkgerrors.CodeValidation, "email already registered")}
	session, _ := NewSession(SessionParams{API: api, Credentials: store, Logger: testLogger()})

	if err := session.Register(context.Background(), RegisterData{Email: "a@b.c", Password: "pw", Name: "A"}); err == nil {
		t.Fatal("expected error")
	}
	if api.loginCalls != 0 {
		t.Fatal("login must not run after failed registration")
	}
}

func TestRehydrateFromDisk(t *testing.T) {
	store, _ := fileStore(t)
	if err := store.Save(Credentials{Token: "tok-xyz", Customer: storeapi.Customer{ID: "cust-2", Name: "Rami"}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	session, err := NewSession(SessionParams{API: &stubAPI{}, Credentials: store, Logger: testLogger()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !session.IsAuthenticated() {
		t.Fatal("expected rehydrated session")
	}
	if session.Customer().Name != "Rami" {
		t.Fatalf("unexpected customer %+v", session.Customer())
	}
}

func TestCorruptCredentialsFailOpen(t *testing.T) {
	store, path := fileStore(t)
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	session, err := NewSession(SessionParams{API: &stubAPI{}, Credentials: store, Logger: testLogger()})
	if err != nil {
		t.Fatalf("corrupt state must not error: %v", err)
	}
	if session.IsAuthenticated() {
		t.Fatal("corrupt state must mean logged out")
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Fatal("corrupt file should be removed")
	}
}

func TestIncompleteCredentialsFailOpen(t *testing.T) {
	store, path := fileStore(t)
	if err := os.WriteFile(path, []byte(`{"token":"","customer":{"id":""}}`), 0o600); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	session, _ := NewSession(SessionParams{API: &stubAPI{}, Credentials: store, Logger: testLogger()})
	if session.IsAuthenticated() {
		t.Fatal("token and customer must both be present")
	}
	_ = path
}

func TestLogoutClearsStateAndDisk(t *testing.T) {
	store, path := fileStore(t)
	api := &stubAPI{loginResp: authResponse()}
	session, _ := NewSession(SessionParams{API: api, Credentials: store, Logger: testLogger()})
	_ = session.Login(context.Background(), "amal@example.com", "pw")

	session.Logout()

	if session.IsAuthenticated() || session.Token() != "" || session.Customer() != nil {
		t.Fatal("expected torn-down session")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("expected credentials file removed")
	}
}

func TestUpdateProfileOnlyAppliesOnSuccess(t *testing.T) {
	store, _ := fileStore(t)
	api := &stubAPI{loginResp: authResponse(), updateErr: pkgerrors.New(pkgerrors.CodeRemote, "update failed")}
	session, _ := NewSession(SessionParams{API: api, Credentials: store, Logger: testLogger()})
	_ = session.Login(context.Background(), "amal@example.com", "pw")

	name := "New Name"
	if err := session.UpdateProfile(context.Background(), storeapi.ProfileUpdate{Name: &name}); err == nil {
		t.Fatal("expected error")
	}
	if session.Customer().Name != "Amal" {
		t.Fatal("failed update must not change the cached profile")
	}

	api.updateErr = nil
	api.updateResp = &storeapi.Customer{ID: "cust-1", Email: "amal@example.com", Name: "New Name"}
	if err := session.UpdateProfile(context.Background(), storeapi.ProfileUpdate{Name: &name}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.Customer().Name != "New Name" {
		t.Fatal("expected updated cached profile")
	}
}

func TestUpdateProfileRequiresAuth(t *testing.T) {
	store, _ := fileStore(t)
	session, _ := NewSession(SessionParams{API: &stubAPI{}, Credentials: store, Logger: testLogger()})

	name := "x"
	err := session.UpdateProfile(context.Background(), storeapi.ProfileUpdate{Name: &name})
	if !pkgerrors.IsCode(err, pkgerrors.CodeUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}
