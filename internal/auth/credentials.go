package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/mashood007/fp-store-front/pkg/storeapi"
)

// Credentials is the durably persisted slice of the session: the opaque
// bearer token and the cached customer profile.
type Credentials struct {
	Token    string            `json:"token"`
	Customer storeapi.Customer `json:"customer"`
}

// CredentialsStore abstracts the durable client storage behind the session.
type CredentialsStore interface {
	Load() (*Credentials, error)
	Save(Credentials) error
	Clear() error
}

// FileStore keeps credentials in a mode-0600 JSON file, the terminal
// equivalent of the browser's local storage.
type FileStore struct {
	path string
}

// NewFileStore builds a store writing to the given path.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, fmt.Errorf("credentials path is required")
	}
	return &FileStore{path: path}, nil
}

// Load reads persisted credentials. Missing or corrupt state yields
// (nil, nil): the session fails open to logged-out rather than erroring,
// and a corrupt file is removed so the next load is clean.
func (f *FileStore) Load() (*Credentials, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading credentials: %w", err)
	}

	var creds Credentials
	if err := json.Unmarshal(raw, &creds); err != nil {
		_ = os.Remove(f.path)
		return nil, nil
	}
	if creds.Token == "" || creds.Customer.ID == "" {
		_ = os.Remove(f.path)
		return nil, nil
	}
	return &creds, nil
}

// Save persists the credentials with owner-only permissions.
func (f *FileStore) Save(creds Credentials) error {
	payload, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding credentials: %w", err)
	}
	if err := os.WriteFile(f.path, payload, 0o600); err != nil {
		return fmt.Errorf("writing credentials: %w", err)
	}
	return nil
}

// Clear removes the persisted credentials. Idempotent.
func (f *FileStore) Clear() error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing credentials: %w", err)
	}
	return nil
}
