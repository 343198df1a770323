package service

import (
	"context"

	"beacon/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrNoCredentials is returned by Load when no usable credentials exist,
// either because the user is logged out or the stored token has expired.
var ErrNoCredentials = errors.New("credential: no stored credentials")

// CredentialStore persists the access token in secure storage and derives
// the user identity from it.
type CredentialStore interface {
	// Save parses the token, persists it and returns the derived credentials.
	Save(ctx context.Context, token string) (*entity.Credentials, error)

	// Load returns the stored credentials, or ErrNoCredentials.
	Load(ctx context.Context) (*entity.Credentials, error)

	// Clear removes any stored credentials. Clearing an empty store is a no-op.
	Clear(ctx context.Context) error
}
