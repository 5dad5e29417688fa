// internal/config/keyring.go
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/99designs/keyring"
	"github.com/adrg/xdg"
)

const (
	serviceName = "quill"
	apiKeyItem  = "api_key"
	// APIKeyEnv takes precedence over the keyring.
	APIKeyEnv = "QUILL_API_KEY"
)

// ErrNoAPIKey means neither the environment nor the keyring holds a key.
var ErrNoAPIKey = errors.New("no API key configured (set " + APIKeyEnv + " or run `quill key set`)")

// SecretStore is the subset of keyring access quill needs.
type SecretStore interface {
	GetAPIKey() (string, error)
	SetAPIKey(key string) error
	DeleteAPIKey() error
}

// KeyringStore manages the API key in the system keyring
type KeyringStore struct {
	ring keyring.Keyring
}

// NewKeyringStore opens the system keyring. Where no OS keychain is
// available it falls back to an encrypted file under the XDG data dir.
func NewKeyringStore() (*KeyringStore, error) {
	ring, err := keyring.Open(keyring.Config{
		ServiceName:      serviceName,
		FileDir:          filepath.Join(xdg.DataHome, "quill", "keyring"),
		FilePasswordFunc: keyring.TerminalPrompt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open keyring: %w", err)
	}
	return &KeyringStore{ring: ring}, nil
}

// SetAPIKey stores the model API key
func (k *KeyringStore) SetAPIKey(key string) error {
	return k.ring.Set(keyring.Item{
		Key:         apiKeyItem,
		Data:        []byte(key),
		Label:       "quill API key",
		Description: "Credential for the quill language model provider",
	})
}

// GetAPIKey retrieves the model API key
func (k *KeyringStore) GetAPIKey() (string, error) {
	item, err := k.ring.Get(apiKeyItem)
	if err != nil {
		if errors.Is(err, keyring.ErrKeyNotFound) {
			return "", ErrNoAPIKey
		}
		return "", fmt.Errorf("keyring: get api key: %w", err)
	}
	return string(item.Data), nil
}

// DeleteAPIKey removes the model API key
func (k *KeyringStore) DeleteAPIKey() error {
	if err := k.ring.Remove(apiKeyItem); err != nil && !errors.Is(err, keyring.ErrKeyNotFound) {
		return fmt.Errorf("keyring: remove api key: %w", err)
	}
	return nil
}

// ResolveAPIKey returns the API key and where it came from.
// Priority: $QUILL_API_KEY > keyring. store may be nil.
func ResolveAPIKey(store SecretStore) (key, source string, err error) {
	if v := strings.TrimSpace(os.Getenv(APIKeyEnv)); v != "" {
		return v, "env", nil
	}
	if store == nil {
		return "", "", ErrNoAPIKey
	}
	key, err = store.GetAPIKey()
	if err != nil {
		return "", "", err
	}
	if key = strings.TrimSpace(key); key == "" {
		return "", "", ErrNoAPIKey
	}
	return key, "keyring", nil
}
