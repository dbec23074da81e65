package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"vitrina/config"
	"vitrina/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// SessionGate guards the protected page prefixes. Unauthenticated browser
// traffic is redirected to the login page; API traffic under a protected
// prefix gets a 401. When the auth section is not configured the gate lets
// everything through so a half-configured deployment degrades to an open
// app instead of a locked-out one.
type SessionGate struct {
	tokenSvc          service.TokenService
	logger            *slog.Logger
	cookieName        string
	protectedPrefixes []string
	exemptPaths       []string
	loginPath         string
	enabled           bool
}

// NewSessionGate is the constructor for SessionGate.
func NewSessionGate(tokenSvc service.TokenService, cfg *config.Config, logger *slog.Logger) *SessionGate {
	return &SessionGate{
		tokenSvc:          tokenSvc,
		logger:            logger,
		cookieName:        cfg.Auth.CookieName,
		protectedPrefixes: cfg.Session.ProtectedPrefixes,
		exemptPaths:       cfg.Session.ExemptPaths,
		loginPath:         cfg.Session.LoginPath,
		enabled:           cfg.Auth.JWTSecret != "",
	}
}

// Guard is the middleware entry point, installed globally.
func (g *SessionGate) Guard(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		path := c.Request().URL.Path

		if !g.protects(path) {
			return next(c)
		}

		if !g.enabled {
			g.logger.LogAttrs(c.Request().Context(), slog.LevelWarn,
				"session gate disabled, no jwt secret configured",
				slog.String("path", path),
			)

			return next(c)
		}

		token := ExtractToken(c, g.cookieName)
		if token != "" {
			if _, err := g.tokenSvc.ValidateAccessToken(token); err == nil {
				return next(c)
			}
		}

		if strings.HasPrefix(path, "/api/") {
			return echo.NewHTTPError(http.StatusUnauthorized, "session required")
		}

		return c.Redirect(http.StatusFound, g.loginPath)
	}
}

func (g *SessionGate) protects(path string) bool {
	for _, exempt := range g.exemptPaths {
		if path == exempt {
			return false
		}
	}

	for _, prefix := range g.protectedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}

	return false
}
