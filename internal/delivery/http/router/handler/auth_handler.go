package handler

import (
	"log/slog"
	"net/http"
	"net/url"

	"vitrina/config"
	"vitrina/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthHandler holds dependencies for the hosted-auth callback flow.
type AuthHandler struct {
	uc         usecase.AuthUsecase
	logger     *slog.Logger
	cookieName string
	loginPath  string
	secure     bool
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:         uc,
		logger:     logger,
		cookieName: cfg.Auth.CookieName,
		loginPath:  cfg.Session.LoginPath,
		secure:     cfg.Env.Env == "prod",
	}
}

// Callback completes the magic-link flow: it exchanges the code for a
// session, stores the access token in the session cookie, and sends the
// browser to the dashboard. Failed exchanges bounce back to the login page
// instead of rendering an error body.
func (h *AuthHandler) Callback(c echo.Context) error {
	code := c.QueryParam("code")
	if code == "" {
		return c.Redirect(http.StatusFound, h.loginPath+"?error=no_code")
	}

	session, err := h.uc.ExchangeCode(c.Request().Context(), code)
	if err != nil {
		h.logger.LogAttrs(c.Request().Context(), slog.LevelWarn, "auth callback rejected",
			slog.String("error", err.Error()),
		)

		return c.Redirect(http.StatusFound, h.loginPath+"?error="+url.QueryEscape(err.Error()))
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    session.AccessToken,
		Path:     "/",
		MaxAge:   session.ExpiresIn,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})

	next := c.QueryParam("next")
	if next == "" || next[0] != '/' {
		next = "/dashboard"
	}

	return c.Redirect(http.StatusFound, next)
}

// Logout clears the session cookie and sends the browser to the login page.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return c.Redirect(http.StatusFound, h.loginPath)
}
