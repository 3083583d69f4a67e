// Package router contains routing setup for the HTTP delivery.
package router

import (
	"rolodex/internal/delivery/http/middleware"
	"rolodex/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ContactHandler      *handler.ContactHandler
	GroupHandler        *handler.GroupHandler
	UserHandler         *handler.UserHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	contactHandler      *handler.ContactHandler
	groupHandler        *handler.GroupHandler
	userHandler         *handler.UserHandler
	authMiddleware      *middleware.AuthMiddleware
	requestIDMiddleware *middleware.RequestIDMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		contactHandler:      params.ContactHandler,
		groupHandler:        params.GroupHandler,
		userHandler:         params.UserHandler,
		authMiddleware:      params.AuthMiddleware,
		requestIDMiddleware: params.RequestIDMiddleware,
		rateLimitMiddleware: params.RateLimitMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Handle)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	authGroup.Use(r.rateLimitMiddleware.Handle)
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/login/google", r.userHandler.LoginWithGoogle)
		authGroup.POST("/refresh", r.userHandler.Refresh)
		authGroup.POST("/logout", r.userHandler.Logout)
	}

	// Contact routes that require authentication
	contactGroup := e.Group("/contacts")
	contactGroup.Use(r.authMiddleware.Authenticate)
	contactGroup.Use(r.rateLimitMiddleware.Handle)
	{
		// Static segments before the :id wildcard.
		contactGroup.GET("/count", r.contactHandler.Count)
		contactGroup.GET("", r.contactHandler.List)
		contactGroup.POST("", r.contactHandler.Save)
		contactGroup.GET("/:id", r.contactHandler.GetByID)
		contactGroup.DELETE("/:id", r.contactHandler.Delete)
		contactGroup.PATCH("/:id/notes", r.contactHandler.UpdateNotes)
		contactGroup.GET("/:id/qr", r.contactHandler.QRCode)
	}

	// Group routes that require authentication
	groupGroup := e.Group("/groups")
	groupGroup.Use(r.authMiddleware.Authenticate)
	groupGroup.Use(r.rateLimitMiddleware.Handle)
	{
		groupGroup.POST("", r.groupHandler.Create)
		groupGroup.GET("", r.groupHandler.List)
		groupGroup.DELETE("/:id", r.groupHandler.Delete)
		groupGroup.POST("/:id/contacts/:contactId", r.groupHandler.AddContact)
		groupGroup.DELETE("/:id/contacts/:contactId", r.groupHandler.RemoveContact)
	}
}
