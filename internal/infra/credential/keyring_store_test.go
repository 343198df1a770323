package credential

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"beacon/config"
	"beacon/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) service.CredentialStore {
	cfg := &config.Config{}
	cfg.Keyring = &config.KeyringConfig{
		ServiceName: "beacon-test",
		FileDir:     t.TempDir(),
	}

	store, err := NewKeyringStore(StoreParams{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	return store
}

func signedToken(t *testing.T, sub string, expiresAt time.Time) string {
	claims := jwt.MapClaims{"sub": sub}
	if !expiresAt.IsZero() {
		claims["exp"] = expiresAt.Unix()
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	return token
}

func TestKeyringStore_SaveThenLoad(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	userID := uuid.New()

	token := signedToken(t, userID.String(), time.Now().Add(time.Hour))

	saved, err := store.Save(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, userID, saved.UserID)
	assert.Equal(t, token, saved.Token)

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, userID, loaded.UserID)
	assert.False(t, loaded.Expired())
}

func TestKeyringStore_LoadWithoutCredentials(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, service.ErrNoCredentials)
}

func TestKeyringStore_ExpiredTokenIsAbsent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.Save(ctx, signedToken(t, uuid.New().String(), time.Now().Add(-time.Minute)))
	assert.ErrorIs(t, err, service.ErrNoCredentials)
}

func TestKeyringStore_SaveRejectsGarbageToken(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Save(context.Background(), "not-a-jwt")
	assert.Error(t, err)
}

func TestKeyringStore_ClearIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.Save(ctx, signedToken(t, uuid.New().String(), time.Now().Add(time.Hour)))
	require.NoError(t, err)

	require.NoError(t, store.Clear(ctx))
	require.NoError(t, store.Clear(ctx))

	_, err = store.Load(ctx)
	assert.ErrorIs(t, err, service.ErrNoCredentials)
}
