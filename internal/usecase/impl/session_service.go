package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"beacon/internal/domain/entity"
	"beacon/internal/domain/service"
	"beacon/internal/errors"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// SessionParams holds dependencies for the session service
type SessionParams struct {
	fx.In

	Logger   *slog.Logger
	Store    service.CredentialStore
	Dialer   service.Dialer
	Notifier usecase.NotifierUsecase
	Acks     *AckService
}

// sessionService maintains exactly one live transport connection per
// authenticated session and reacts to authentication transitions. Transport
// failures are logged, never surfaced; collaborators only see the boolean
// connectivity snapshot.
type sessionService struct {
	logger   *slog.Logger
	store    service.CredentialStore
	dialer   service.Dialer
	notifier usecase.NotifierUsecase
	acks     *AckService

	mu        sync.Mutex
	conn      service.Conn
	status    entity.ConnectionStatus
	sessionID uuid.UUID
	userID    uuid.UUID
}

// NewSessionService creates the connection manager.
func NewSessionService(params SessionParams) usecase.SessionUsecase {
	return &sessionService{
		logger:   params.Logger,
		store:    params.Store,
		dialer:   params.Dialer,
		notifier: params.Notifier,
		acks:     params.Acks,
		status:   entity.StatusDisconnected,
	}
}

// Resume connects using previously stored credentials, if any.
func (s *sessionService) Resume(ctx context.Context) error {
	creds, err := s.store.Load(ctx)
	if err != nil {
		if errors.Is(err, service.ErrNoCredentials) {
			s.logger.Debug("no stored credentials, staying logged out")

			return nil
		}

		return errors.Wrap(err, "load stored credentials")
	}

	return s.start(ctx, *creds)
}

// Login stores the token and opens a connection for it. An existing session
// is torn down first so no stale connection survives a user switch.
func (s *sessionService) Login(ctx context.Context, token string) error {
	creds, err := s.store.Save(ctx, token)
	if err != nil {
		return errors.Wrap(err, "save credentials")
	}

	s.closeConnection()

	return s.start(ctx, *creds)
}

// Logout tears the session down synchronously: queued notification state is
// discarded before the connection closes, reconnection timers are
// cancelled, stored credentials are cleared.
func (s *sessionService) Logout(ctx context.Context) error {
	s.notifier.SetAuthenticated(false)
	s.notifier.SetRouteGate(true)
	s.closeConnection()

	if err := s.store.Clear(ctx); err != nil {
		return errors.Wrap(err, "clear credentials")
	}

	s.logger.Info("session closed")

	return nil
}

// State returns the connectivity indicator snapshot.
func (s *sessionService) State() entity.SessionState {
	s.mu.Lock()
	state := entity.SessionState{
		SessionID: s.sessionID,
		UserID:    s.userID,
		Status:    s.status,
	}
	s.mu.Unlock()

	state.QueueDepth = s.notifier.QueueDepth()

	return state
}

// start opens a connection for the given credentials and opens both gates.
// Establishment is asynchronous; status transitions arrive via handlers.
func (s *sessionService) start(ctx context.Context, creds entity.Credentials) error {
	sessionID := uuid.New()
	logger := s.logger.With(slog.String("session_id", sessionID.String()))

	s.mu.Lock()
	s.sessionID = sessionID
	s.userID = creds.UserID
	s.status = entity.StatusConnecting
	s.mu.Unlock()

	conn, err := s.dialer.Dial(ctx, creds, service.ConnHandlers{
		OnConnect: func() {
			s.setStatus(entity.StatusConnected)
			logger.Info("notification channel connected")
		},
		OnDisconnect: func(err error) {
			s.setStatus(entity.StatusDisconnected)
			logger.Info("notification channel disconnected", slog.Any("error", err))
		},
		OnEvent: func(event string, data json.RawMessage) {
			s.notifier.HandleFrame(event, data)
		},
		OnError: func(err error) {
			// Best-effort channel: connection errors never block the app.
			logger.Warn("notification channel error", slog.Any("error", err))
		},
	})
	if err != nil {
		s.setStatus(entity.StatusDisconnected)

		return errors.Wrap(err, "dial notification channel")
	}

	s.mu.Lock()
	s.conn = conn
	s.mu.Unlock()

	s.acks.Attach(conn)
	s.notifier.SetAuthenticated(true)
	s.notifier.SetRouteGate(false)

	return nil
}

// closeConnection closes any open connection and detaches the ack channel.
func (s *sessionService) closeConnection() {
	s.mu.Lock()
	conn := s.conn
	s.conn = nil
	s.status = entity.StatusDisconnected
	s.userID = uuid.Nil
	s.mu.Unlock()

	s.acks.Detach()

	if conn != nil {
		if err := conn.Close(); err != nil {
			s.logger.Warn("closing notification channel failed", slog.Any("error", err))
		}
	}
}

func (s *sessionService) setStatus(status entity.ConnectionStatus) {
	s.mu.Lock()
	s.status = status
	s.mu.Unlock()
}
