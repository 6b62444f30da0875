package store

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/99designs/keyring"
)

const keyringService = "lazygrid"

// ErrPasswordNotFound is returned when no password is stored for a source
var ErrPasswordNotFound = errors.New("password not found")

// PasswordStore keeps Postgres source passwords in the OS keyring, falling
// back to an encrypted file when no system keyring is available.
type PasswordStore struct {
	ring keyring.Keyring
}

// NewPasswordStore opens the keyring with platform-appropriate backends
func NewPasswordStore(configDir string) (*PasswordStore, error) {
	ring, err := keyring.Open(keyring.Config{
		ServiceName:      keyringService,
		AllowedBackends:  backendsForPlatform(),
		FileDir:          filepath.Join(configDir, "keyring"),
		FilePasswordFunc: keyring.FixedStringPrompt(keyringService),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open keyring: %w", err)
	}
	return &PasswordStore{ring: ring}, nil
}

func backendsForPlatform() []keyring.BackendType {
	switch runtime.GOOS {
	case "darwin":
		return []keyring.BackendType{keyring.KeychainBackend, keyring.FileBackend}
	case "linux":
		return []keyring.BackendType{keyring.SecretServiceBackend, keyring.KWalletBackend, keyring.FileBackend}
	case "windows":
		return []keyring.BackendType{keyring.WinCredBackend, keyring.FileBackend}
	default:
		return []keyring.BackendType{keyring.FileBackend}
	}
}

// Set stores the password for a named source
func (p *PasswordStore) Set(source, password string) error {
	err := p.ring.Set(keyring.Item{
		Key:   source,
		Data:  []byte(password),
		Label: fmt.Sprintf("lazygrid source %s", source),
	})
	if err != nil {
		return fmt.Errorf("failed to store password: %w", err)
	}
	return nil
}

// Get retrieves the password for a named source
func (p *PasswordStore) Get(source string) (string, error) {
	item, err := p.ring.Get(source)
	if err != nil {
		if errors.Is(err, keyring.ErrKeyNotFound) {
			return "", ErrPasswordNotFound
		}
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(item.Data), nil
}

// Delete removes the stored password for a named source
func (p *PasswordStore) Delete(source string) error {
	err := p.ring.Remove(source)
	if err != nil && !errors.Is(err, keyring.ErrKeyNotFound) {
		return fmt.Errorf("failed to delete password: %w", err)
	}
	return nil
}
