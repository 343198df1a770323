// Package credential implements secure access-token storage on top of the
// system keyring, with a file backend fallback for headless environments.
package credential

import (
	"context"
	"log/slog"

	"beacon/config"
	"beacon/internal/domain/entity"
	"beacon/internal/domain/service"

	"github.com/99designs/keyring"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const tokenKey = "accessToken"

// StoreParams holds dependencies for the keyring credential store
type StoreParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

type keyringStore struct {
	ring   keyring.Keyring
	logger *slog.Logger
}

// NewKeyringStore opens the system keyring and returns a credential store
// backed by it.
func NewKeyringStore(params StoreParams) (service.CredentialStore, error) {
	cfg := params.Config.Keyring

	ring, err := keyring.Open(keyring.Config{
		ServiceName: cfg.ServiceName,
		AllowedBackends: []keyring.BackendType{
			keyring.KeychainBackend,
			keyring.SecretServiceBackend,
			keyring.WinCredBackend,
			keyring.PassBackend,
			keyring.FileBackend,
		},
		FileDir:                  cfg.FileDir,
		FilePasswordFunc:         keyring.FixedStringPrompt(cfg.ServiceName + "-file-key"),
		KeychainTrustApplication: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "open keyring")
	}

	return &keyringStore{ring: ring, logger: params.Logger}, nil
}

// Save parses the token, persists it and returns the derived credentials.
func (s *keyringStore) Save(ctx context.Context, token string) (*entity.Credentials, error) {
	creds, err := credentialsFromToken(token)
	if err != nil {
		return nil, err
	}
	if creds.Expired() {
		return nil, errors.Wrap(service.ErrNoCredentials, "token already expired")
	}

	if err := s.ring.Set(keyring.Item{Key: tokenKey, Data: []byte(token)}); err != nil {
		return nil, errors.Wrap(err, "store access token")
	}

	return creds, nil
}

// Load returns the stored credentials. Expired tokens are cleared and
// reported as absent.
func (s *keyringStore) Load(ctx context.Context) (*entity.Credentials, error) {
	item, err := s.ring.Get(tokenKey)
	if err != nil {
		if errors.Is(err, keyring.ErrKeyNotFound) {
			return nil, service.ErrNoCredentials
		}

		return nil, errors.Wrap(err, "read access token")
	}

	creds, err := credentialsFromToken(string(item.Data))
	if err != nil {
		return nil, err
	}
	if creds.Expired() {
		s.logger.Debug("stored token expired, clearing")
		_ = s.ring.Remove(tokenKey)

		return nil, service.ErrNoCredentials
	}

	return creds, nil
}

// Clear removes any stored credentials.
func (s *keyringStore) Clear(ctx context.Context) error {
	if err := s.ring.Remove(tokenKey); err != nil && !errors.Is(err, keyring.ErrKeyNotFound) {
		return errors.Wrap(err, "remove access token")
	}

	return nil
}
