// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"vitrina/internal/delivery/http/middleware"
	"vitrina/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	BusinessHandler *handler.BusinessHandler
	OfferingHandler *handler.OfferingHandler
	ShareHandler    *handler.ShareHandler
	AuthHandler     *handler.AuthHandler
	HealthHandler   *handler.HealthHandler
	AuthMiddleware  *middleware.AuthMiddleware
	SessionGate     *middleware.SessionGate
}

// router holds all the handlers that need to be registered.
type router struct {
	businessHandler *handler.BusinessHandler
	offeringHandler *handler.OfferingHandler
	shareHandler    *handler.ShareHandler
	authHandler     *handler.AuthHandler
	healthHandler   *handler.HealthHandler
	authMiddleware  *middleware.AuthMiddleware
	sessionGate     *middleware.SessionGate
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		businessHandler: params.BusinessHandler,
		offeringHandler: params.OfferingHandler,
		shareHandler:    params.ShareHandler,
		authHandler:     params.AuthHandler,
		healthHandler:   params.HealthHandler,
		authMiddleware:  params.AuthMiddleware,
		sessionGate:     params.SessionGate,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// The gate watches every request; only protected prefixes pay for it.
	e.Use(r.sessionGate.Guard)

	// Health check endpoint
	e.GET("/api/health", r.healthHandler.Check)

	// Hosted-auth callback flow
	authGroup := e.Group("/auth")
	{
		authGroup.GET("/callback", r.authHandler.Callback)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	// Flat offering endpoint, business_id in the body
	offeringGroup := e.Group("/api/offerings")
	offeringGroup.Use(r.authMiddleware.Authenticate)
	{
		offeringGroup.POST("", r.offeringHandler.Create)
	}

	// Owner-scoped business API
	businessGroup := e.Group("/api/business")
	businessGroup.Use(r.authMiddleware.Authenticate)
	{
		businessGroup.POST("", r.businessHandler.Create)
		businessGroup.GET("", r.businessHandler.List)
		businessGroup.GET("/:id", r.businessHandler.Get)

		businessGroup.POST("/:id/offerings", r.offeringHandler.Add)
		businessGroup.GET("/:id/offerings", r.offeringHandler.List)

		businessGroup.GET("/:id/share", r.shareHandler.GetLink)
		businessGroup.GET("/:id/share/qr", r.shareHandler.GetQR)
	}
}
