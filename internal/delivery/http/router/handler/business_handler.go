// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"vitrina/internal/delivery/http/middleware"
	"vitrina/internal/delivery/http/response"
	domainerrors "vitrina/internal/domain/errors"
	"vitrina/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BusinessHandler holds dependencies for business profile handlers.
type BusinessHandler struct {
	uc     usecase.BusinessUsecase
	logger *slog.Logger
}

// NewBusinessHandler is the constructor for BusinessHandler, injected by Fx.
func NewBusinessHandler(uc usecase.BusinessUsecase, logger *slog.Logger) *BusinessHandler {
	return &BusinessHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles the business registration request.
func (h *BusinessHandler) Create(c echo.Context) error {
	ownerID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	var input *usecase.CreateBusinessInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de registro no válidos")
	}
	if err := c.Validate(input); err != nil {
		return err
	}
	input.OwnerID = ownerID

	business, err := h.uc.CreateBusiness(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, business, "Negocio creado")
}

// Get handles the owned-business detail request.
func (h *BusinessHandler) Get(c echo.Context) error {
	ownerID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	businessID, err := parseBusinessID(c)
	if err != nil {
		return err
	}

	business, err := h.uc.GetBusiness(c.Request().Context(), ownerID, businessID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, business, "")
}

// businessSummary is the listing projection: just enough to render the
// dashboard list, nothing from the billing or location columns.
type businessSummary struct {
	ID           uuid.UUID `json:"id"`
	BusinessName string    `json:"business_name"`
	BusinessType string    `json:"business_type"`
}

type businessListResponse struct {
	Businesses []businessSummary `json:"businesses"`
}

// List handles the owned-business listing request.
func (h *BusinessHandler) List(c echo.Context) error {
	ownerID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	businesses, err := h.uc.ListBusinesses(c.Request().Context(), ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	summaries := make([]businessSummary, 0, len(businesses))
	for _, business := range businesses {
		summaries = append(summaries, businessSummary{
			ID:           business.ID,
			BusinessName: business.BusinessName,
			BusinessType: business.BusinessType,
		})
	}

	return response.Success(c, http.StatusOK, businessListResponse{Businesses: summaries}, "")
}

// parseBusinessID reads the :id path parameter. A malformed ID reads as not
// found rather than a binding error so probing IDs leaks nothing.
func parseBusinessID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrBusinessNotFound
	}

	return id, nil
}
