package handler

import (
	"net/http"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/errors"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CharacteristicHandler holds dependencies for characteristic handlers.
type CharacteristicHandler struct {
	uc usecase.CharacteristicUsecase
}

// NewCharacteristicHandler is the constructor for CharacteristicHandler, injected by Fx.
func NewCharacteristicHandler(uc usecase.CharacteristicUsecase) *CharacteristicHandler {
	return &CharacteristicHandler{uc: uc}
}

// List handles the characteristic listing request.
func (h *CharacteristicHandler) List(c echo.Context) error {
	characteristics, err := h.uc.List(c.Request().Context(), actorID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, characteristics, "")
}

// Get handles a single characteristic retrieve.
func (h *CharacteristicHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	characteristic, err := h.uc.Get(c.Request().Context(), actorID(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, characteristic, "")
}

// Create handles the characteristic creation request.
func (h *CharacteristicHandler) Create(c echo.Context) error {
	var input *usecase.CreateCharacteristicInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid characteristic input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	characteristic, err := h.uc.Create(c.Request().Context(), actorID(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, characteristic, "Characteristic created successfully")
}

// Update handles the characteristic update request.
func (h *CharacteristicHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var input *usecase.UpdateCharacteristicInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid characteristic input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	characteristic, err := h.uc.Update(c.Request().Context(), actorID(c), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, characteristic, "Characteristic updated successfully")
}

// Delete handles the characteristic delete request.
func (h *CharacteristicHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), actorID(c), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Characteristic deleted successfully")
}
