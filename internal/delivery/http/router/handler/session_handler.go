// Package handler contains the HTTP handlers for the control surface.
package handler

import (
	"log/slog"
	"net/http"

	"beacon/internal/delivery/http/response"
	"beacon/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionHandler holds dependencies for session-related handlers.
type SessionHandler struct {
	uc     usecase.SessionUsecase
	logger *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(uc usecase.SessionUsecase, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		uc:     uc,
		logger: logger,
	}
}

// LoginRequest represents the request body for opening a session.
type LoginRequest struct {
	Token string `json:"token" validate:"required"`
}

// Login stores the access token and opens the notification channel.
func (h *SessionHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "token is required")
	}

	if err := h.uc.Login(c.Request().Context(), req.Token); err != nil {
		h.logger.Warn("login failed", slog.Any("error", err))

		return response.Unauthorized(c, "INVALID_TOKEN", "Token was rejected")
	}

	return response.Success(c, http.StatusOK, h.uc.State(), "Session opened")
}

// Logout closes the notification channel and clears stored credentials.
func (h *SessionHandler) Logout(c echo.Context) error {
	if err := h.uc.Logout(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Session closed")
}

// Resume reopens the channel from stored credentials, if any.
func (h *SessionHandler) Resume(c echo.Context) error {
	if err := h.uc.Resume(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.uc.State(), "Session resumed")
}
