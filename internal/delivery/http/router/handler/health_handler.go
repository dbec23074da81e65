package handler

import (
	"log/slog"
	"net/http"

	"vitrina/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports liveness plus whether the hosted auth provider is
// configured, so a half-wired deployment fails its probe instead of serving
// a broken login flow.
type HealthHandler struct {
	provider service.IdentityProvider
	logger   *slog.Logger
}

// NewHealthHandler is the constructor for HealthHandler, injected by Fx.
func NewHealthHandler(provider service.IdentityProvider, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		provider: provider,
		logger:   logger,
	}
}

// Check handles the health probe.
func (h *HealthHandler) Check(c echo.Context) error {
	if err := h.provider.VerifyConfig(); err != nil {
		h.logger.LogAttrs(c.Request().Context(), slog.LevelError, "health check failed",
			slog.String("error", err.Error()),
		)

		return c.JSON(http.StatusInternalServerError, map[string]any{
			"ok":    false,
			"error": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]any{"ok": true})
}
