// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"beacon/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	RegistrationHandler *handler.RegistrationHandler
	NotificationHandler *handler.NotificationHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	registrationHandler *handler.RegistrationHandler
	notificationHandler *handler.NotificationHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		registrationHandler: params.RegistrationHandler,
		notificationHandler: params.NotificationHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	apiGroup := e.Group("/api")
	{
		apiGroup.POST("/register", r.registrationHandler.Register)
		apiGroup.GET("/devices", r.registrationHandler.ListDevices)
		apiGroup.POST("/send", r.notificationHandler.Send)
		apiGroup.POST("/broadcast", r.notificationHandler.Broadcast)
	}
}
