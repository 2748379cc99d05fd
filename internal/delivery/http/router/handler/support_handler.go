package handler

import (
	"net/http"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/errors"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SupportHandler holds dependencies for support ticket handlers.
type SupportHandler struct {
	uc usecase.SupportUsecase
}

// NewSupportHandler is the constructor for SupportHandler, injected by Fx.
func NewSupportHandler(uc usecase.SupportUsecase) *SupportHandler {
	return &SupportHandler{uc: uc}
}

// List handles the ticket listing request.
func (h *SupportHandler) List(c echo.Context) error {
	tickets, err := h.uc.List(c.Request().Context(), actorID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tickets, "")
}

// Get handles a single ticket retrieve.
func (h *SupportHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	ticket, err := h.uc.Get(c.Request().Context(), actorID(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ticket, "")
}

// Create handles opening a ticket. The endpoint is open: anonymous
// visitors may create one, and authenticated ones are attached as owner.
func (h *SupportHandler) Create(c echo.Context) error {
	var input *usecase.CreateSupportInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid support ticket input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	ticket, err := h.uc.Create(c.Request().Context(), actorID(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, ticket, "Support ticket created successfully")
}

// Update handles the ticket content update request.
func (h *SupportHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var input *usecase.UpdateSupportInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid support ticket input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	ticket, err := h.uc.Update(c.Request().Context(), actorID(c), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ticket, "Support ticket updated successfully")
}

// UpdateStatus moves a ticket through its handling states. Gated by a
// dedicated permission, separate from the content update.
func (h *SupportHandler) UpdateStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var input *usecase.UpdateSupportStatusInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	ticket, err := h.uc.UpdateStatus(c.Request().Context(), actorID(c), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ticket, "Support ticket status updated successfully")
}

// Delete handles the ticket delete request.
func (h *SupportHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), actorID(c), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Support ticket deleted successfully")
}
