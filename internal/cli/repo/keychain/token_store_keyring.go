package keychain

import (
	"encoding/json"
	"errors"
	"fmt"

	"HBnB/internal/cli/repo"

	"github.com/zalando/go-keyring"
)

// DefaultService is the keyring service name used by the CLI.
const DefaultService = "HBnB"

// TokenStoreKeyring keeps the token in the OS-native credential storage
// (macOS Keychain, Windows Credential Manager, Linux Secret Service).
// The secret is the JSON-encoded repo.StoredToken.
type TokenStoreKeyring struct {
	service string
	user    string
}

var _ repo.TokenStore = (*TokenStoreKeyring)(nil)

// NewTokenStoreKeyring creates a store for the given service; the keyring user is repo.TokenKey.
func NewTokenStoreKeyring(service string) (*TokenStoreKeyring, error) {
	if service == "" {
		return nil, errors.New("service cannot be empty")
	}
	return &TokenStoreKeyring{service: service, user: repo.TokenKey}, nil
}

// Save overwrites the secret in the keyring.
func (k *TokenStoreKeyring) Save(t repo.StoredToken) error {
	if t.Token == "" {
		return errors.New("empty token")
	}
	b, err := json.Marshal(t)
	if err != nil {
		return err
	}
	return keyring.Set(k.service, k.user, string(b))
}

// Load returns the token from the keyring.
func (k *TokenStoreKeyring) Load() (repo.StoredToken, error) {
	secret, err := keyring.Get(k.service, k.user)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return repo.StoredToken{}, repo.ErrNoToken
		}
		return repo.StoredToken{}, err
	}
	if secret == "" {
		return repo.StoredToken{}, repo.ErrNoToken
	}
	var t repo.StoredToken
	if err := json.Unmarshal([]byte(secret), &t); err != nil {
		return repo.StoredToken{}, fmt.Errorf("decode keyring secret for service %s: %w", k.service, err)
	}
	if t.Token == "" {
		return repo.StoredToken{}, repo.ErrNoToken
	}
	return t, nil
}

// Clear removes the secret; a missing secret is not an error.
func (k *TokenStoreKeyring) Clear() error {
	if err := keyring.Delete(k.service, k.user); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return err
	}
	return nil
}
