// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"beacon/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler *handler.SessionHandler
	FeedHandler    *handler.FeedHandler
	StatusHandler  *handler.StatusHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler *handler.SessionHandler
	feedHandler    *handler.FeedHandler
	statusHandler  *handler.StatusHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler: params.SessionHandler,
		feedHandler:    params.FeedHandler,
		statusHandler:  params.StatusHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)
	e.GET("/status", r.statusHandler.Status)

	// Session lifecycle
	sessionGroup := e.Group("/session")
	{
		sessionGroup.POST("/login", r.sessionHandler.Login)
		sessionGroup.POST("/logout", r.sessionHandler.Logout)
		sessionGroup.POST("/resume", r.sessionHandler.Resume)
	}

	// Notification feed
	feedGroup := e.Group("/notifications")
	{
		feedGroup.GET("", r.feedHandler.List)
		feedGroup.POST("/:id/read", r.feedHandler.MarkRead)
		feedGroup.POST("/read-all", r.feedHandler.MarkAllRead)
	}
}
