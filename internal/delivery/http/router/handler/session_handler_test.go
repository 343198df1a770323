package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"beacon/config"
	"beacon/internal/delivery/http/validator"
	"beacon/internal/domain/entity"
	mockSvc "beacon/internal/mocks/service"
	"beacon/internal/usecase"
	"beacon/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func createTestSessionHandler(t *testing.T) (
	*SessionHandler,
	*mockSvc.MockCredentialStore,
	*mockSvc.MockDialer,
) {
	store := mockSvc.NewMockCredentialStore(t)
	dialer := mockSvc.NewMockDialer(t)
	renderer := mockSvc.NewMockRenderer(t)
	navigator := mockSvc.NewMockNavigator(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	acks := impl.NewAckService(logger)
	notifier := impl.NewNotifierService(impl.NotifierParams{
		Config: &config.Config{
			Presenter: &config.PresenterConfig{DwellTime: 5 * time.Millisecond},
		},
		Logger:    logger,
		Renderer:  renderer,
		Navigator: navigator,
		Acks:      acks,
	})

	var uc usecase.SessionUsecase = impl.NewSessionService(impl.SessionParams{
		Logger:   logger,
		Store:    store,
		Dialer:   dialer,
		Notifier: notifier,
		Acks:     acks,
	})

	return NewSessionHandler(uc, logger), store, dialer
}

func newSessionContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/session/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestSessionHandler_Login(t *testing.T) {
	handler, store, dialer := createTestSessionHandler(t)

	creds := &entity.Credentials{
		Token:     "token-abc",
		UserID:    uuid.New(),
		ExpiresAt: time.Now().Add(time.Hour),
	}
	conn := mockSvc.NewMockConn(t)
	store.EXPECT().Save(mock.Anything, "token-abc").Return(creds, nil).Once()
	dialer.EXPECT().Dial(mock.Anything, *creds, mock.Anything).Return(conn, nil).Once()

	c, rec := newSessionContext(t, `{"token":"token-abc"}`)

	assert.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "connecting")
}

func TestSessionHandler_LoginMissingToken(t *testing.T) {
	handler, _, _ := createTestSessionHandler(t)

	c, rec := newSessionContext(t, `{}`)

	assert.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestSessionHandler_LoginRejectedToken(t *testing.T) {
	handler, store, _ := createTestSessionHandler(t)

	store.EXPECT().Save(mock.Anything, "garbage").
		Return(nil, assert.AnError).Once()

	c, rec := newSessionContext(t, `{"token":"garbage"}`)

	assert.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
}

func TestSessionHandler_Logout(t *testing.T) {
	handler, store, _ := createTestSessionHandler(t)

	store.EXPECT().Clear(mock.Anything).Return(nil).Once()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/session/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, handler.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
