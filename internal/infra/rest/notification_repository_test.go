package rest

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"beacon/config"
	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	"beacon/internal/domain/service"
	mockSvc "beacon/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T, baseURL string) repository.NotificationRepository {
	store := mockSvc.NewMockCredentialStore(t)
	store.EXPECT().Load(mock.Anything).Return(&entity.Credentials{
		Token:  "test-token",
		UserID: uuid.New(),
	}, nil).Maybe()

	cfg := &config.Config{}
	cfg.API = &config.APIConfig{BaseURL: baseURL, Timeout: 2 * time.Second}

	repo, err := NewNotificationRepository(RepositoryParams{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Store:  store,
	})
	require.NoError(t, err)

	return repo
}

func TestNotificationRepository_List(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/notifications", r.URL.Path)
		assert.Equal(t, "20", r.URL.Query().Get("limit"))
		assert.Equal(t, "40", r.URL.Query().Get("offset"))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[
			{"id":1,"title":"Lesson booked","type":"SUCCESS","isRead":false,"createdAt":"2026-01-05T10:00:00Z"},
			{"id":2,"title":"Payment failed","type":"ERROR","isRead":true,"createdAt":"2026-01-04T09:00:00Z"}
		]}`))
	}))
	defer srv.Close()

	repo := newTestRepository(t, srv.URL)

	notifications, err := repo.List(context.Background(), 20, 40)
	require.NoError(t, err)
	require.Len(t, notifications, 2)
	assert.Equal(t, int64(1), notifications[0].ID)
	assert.Equal(t, entity.KindSuccess, notifications[0].Kind)
	assert.True(t, notifications[1].IsRead)
}

func TestNotificationRepository_MarkRead(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/notifications/7/read", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	repo := newTestRepository(t, srv.URL)

	require.NoError(t, repo.MarkRead(context.Background(), 7))
}

func TestNotificationRepository_MarkReadUnknownID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	repo := newTestRepository(t, srv.URL)

	err := repo.MarkRead(context.Background(), 999)
	assert.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)
}

func TestNotificationRepository_LoggedOut(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request must leave the client without credentials")
	}))
	defer srv.Close()

	store := mockSvc.NewMockCredentialStore(t)
	store.EXPECT().Load(mock.Anything).Return(nil, service.ErrNoCredentials).Once()

	cfg := &config.Config{}
	cfg.API = &config.APIConfig{BaseURL: srv.URL, Timeout: 2 * time.Second}

	repo, err := NewNotificationRepository(RepositoryParams{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Store:  store,
	})
	require.NoError(t, err)

	_, err = repo.List(context.Background(), 10, 0)
	assert.ErrorIs(t, err, domainerrors.ErrNotAuthenticated)
}

func TestNotificationRepository_MarkAllRead(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/notifications/read-all", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	repo := newTestRepository(t, srv.URL)

	require.NoError(t, repo.MarkAllRead(context.Background()))
}

func TestNotificationRepository_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	repo := newTestRepository(t, srv.URL)

	_, err := repo.List(context.Background(), 10, 0)
	assert.ErrorIs(t, err, domainerrors.ErrFeedUnavailable)
}

func TestNotificationRepository_ServerRejectsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	repo := newTestRepository(t, srv.URL)

	_, err := repo.List(context.Background(), 10, 0)
	assert.ErrorIs(t, err, domainerrors.ErrNotAuthenticated)
}
