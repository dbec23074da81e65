package handler

import (
	"log/slog"
	"net/http"

	"vitrina/internal/delivery/http/middleware"
	"vitrina/internal/delivery/http/response"
	"vitrina/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ShareHandler holds dependencies for share-link handlers.
type ShareHandler struct {
	uc     usecase.ShareUsecase
	logger *slog.Logger
}

// NewShareHandler is the constructor for ShareHandler, injected by Fx.
func NewShareHandler(uc usecase.ShareUsecase, logger *slog.Logger) *ShareHandler {
	return &ShareHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetLink handles the share-link request.
func (h *ShareHandler) GetLink(c echo.Context) error {
	ownerID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	businessID, err := parseBusinessID(c)
	if err != nil {
		return err
	}

	link, err := h.uc.GetShareLink(c.Request().Context(), ownerID, businessID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, link, "")
}

// GetQR handles the share-QR request and responds with a raw PNG.
func (h *ShareHandler) GetQR(c echo.Context) error {
	ownerID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	businessID, err := parseBusinessID(c)
	if err != nil {
		return err
	}

	qrCode, err := h.uc.GetShareQR(c.Request().Context(), ownerID, businessID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", qrCode)
}
