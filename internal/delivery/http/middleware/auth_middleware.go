// Package middleware contains the HTTP middlewares of the application.
package middleware

import (
	"net/http"
	"strings"

	"vitrina/config"
	domainerrors "vitrina/internal/domain/errors"
	"vitrina/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKeyUserID is where the authenticated owner's ID lives on the
// request context.
const ContextKeyUserID = "userID"

// AuthMiddleware authenticates API requests against the provider-issued
// access token, read from the session cookie or a bearer header.
type AuthMiddleware struct {
	tokenSvc   service.TokenService
	cookieName string
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, cookieName: cfg.Auth.CookieName}
}

// Authenticate validates the access token and stores the caller identity on
// the context. API callers without a valid session get a 401 envelope, never
// a redirect.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := ExtractToken(c, m.cookieName)
		if tokenString == "" {
			return domainerrors.ErrUnauthorized
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return domainerrors.ErrUnauthorized
		}

		c.Set(ContextKeyUserID, claims.UserID)

		return next(c)
	}
}

// ExtractToken pulls the access token from the session cookie, falling back
// to a standard bearer header for non-browser clients.
func ExtractToken(c echo.Context, cookieName string) string {
	if cookie, err := c.Cookie(cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get("Authorization")
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token != authHeader {
		return token
	}

	return ""
}

// UserID reads the authenticated owner's ID set by Authenticate.
func UserID(c echo.Context) (uuid.UUID, error) {
	id, ok := c.Get(ContextKeyUserID).(uuid.UUID)
	if !ok {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authenticated user")
	}

	return id, nil
}
