package handler

import (
	"net/http"

	"beacon/internal/delivery/http/response"
	"beacon/internal/usecase"

	"github.com/labstack/echo/v4"
)

// StatusHandler exposes the connectivity indicator.
type StatusHandler struct {
	session usecase.SessionUsecase
}

// NewStatusHandler creates a new StatusHandler instance.
func NewStatusHandler(session usecase.SessionUsecase) *StatusHandler {
	return &StatusHandler{session: session}
}

// Status reports the session snapshot: connection state, user and the
// number of queued notification events.
func (h *StatusHandler) Status(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.session.State(), "Status retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
