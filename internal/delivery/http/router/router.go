// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/trinex-it/blackout/config"
	"github.com/trinex-it/blackout/internal/delivery/http/middleware"
	"github.com/trinex-it/blackout/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	TOTPHandler    *handler.TOTPHandler
	AuthMiddleware *middleware.AuthMiddleware
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	totpHandler    *handler.TOTPHandler
	authMiddleware *middleware.AuthMiddleware
	baseURL        string
	signupEnabled  bool
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		totpHandler:    params.TOTPHandler,
		authMiddleware: params.AuthMiddleware,
		baseURL:        params.Config.Blackout.BaseURL,
		signupEnabled:  params.Config.Blackout.Signup.Enabled,
	}
}

// RegisterRoutes mounts the authentication endpoints under the configured base URL.
func (r *router) RegisterRoutes(e *echo.Echo) {
	base := e.Group(r.baseURL, r.authMiddleware.Authenticate)
	requireAuth := r.authMiddleware.RequireAuthenticated

	base.GET("/health", handler.HealthCheck)

	authGroup := base.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.GET("/status", r.authHandler.Status, requireAuth)
	}

	if r.signupEnabled {
		base.POST("/signup", r.authHandler.Signup)
	}

	tfaGroup := base.Group("/2fa")
	{
		tfaGroup.GET("", r.totpHandler.Generate, requireAuth)
		tfaGroup.POST("", r.totpHandler.Enable, requireAuth)
		tfaGroup.POST("/disable", r.totpHandler.Disable, requireAuth)
		// Used by clients that lost their authenticator, so it takes credentials instead of a token.
		tfaGroup.POST("/disable-recovery", r.totpHandler.DisableWithRecovery)
	}
}
