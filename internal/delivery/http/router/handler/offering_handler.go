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

// OfferingHandler holds dependencies for offering handlers.
type OfferingHandler struct {
	uc     usecase.OfferingUsecase
	logger *slog.Logger
}

// NewOfferingHandler is the constructor for OfferingHandler, injected by Fx.
func NewOfferingHandler(uc usecase.OfferingUsecase, logger *slog.Logger) *OfferingHandler {
	return &OfferingHandler{
		uc:     uc,
		logger: logger,
	}
}

// addOfferingRequest is the payload of the flat append endpoint: the target
// business travels in the body instead of the path.
type addOfferingRequest struct {
	BusinessID string `json:"business_id" validate:"required,uuid"`
	usecase.OfferingInput
}

// Create handles the flat append-offering request (business_id in the body).
func (h *OfferingHandler) Create(c echo.Context) error {
	ownerID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	var req addOfferingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de oferta no válidos")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	businessID, err := uuid.Parse(req.BusinessID)
	if err != nil {
		return domainerrors.ErrBusinessNotFound
	}

	offering, err := h.uc.AddOffering(c.Request().Context(), ownerID, businessID, &req.OfferingInput)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, offering, "Oferta creada")
}

// Add handles the append-offering request.
func (h *OfferingHandler) Add(c echo.Context) error {
	ownerID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	businessID, err := parseBusinessID(c)
	if err != nil {
		return err
	}

	var input *usecase.OfferingInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de oferta no válidos")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	offering, err := h.uc.AddOffering(c.Request().Context(), ownerID, businessID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, offering, "Oferta creada")
}

// List handles the list-offerings request.
func (h *OfferingHandler) List(c echo.Context) error {
	ownerID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	businessID, err := parseBusinessID(c)
	if err != nil {
		return err
	}

	offerings, err := h.uc.ListOfferings(c.Request().Context(), ownerID, businessID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, offerings, "")
}
