package handler

import (
	"net/http"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/errors"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CurrencyHandler holds dependencies for currency administration handlers.
type CurrencyHandler struct {
	uc usecase.CurrencyUsecase
}

// NewCurrencyHandler is the constructor for CurrencyHandler, injected by Fx.
func NewCurrencyHandler(uc usecase.CurrencyUsecase) *CurrencyHandler {
	return &CurrencyHandler{uc: uc}
}

// List handles the currency listing request.
func (h *CurrencyHandler) List(c echo.Context) error {
	currencies, err := h.uc.List(c.Request().Context(), actorID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, currencies, "")
}

// Get handles a single currency retrieve.
func (h *CurrencyHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	currency, err := h.uc.Get(c.Request().Context(), actorID(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, currency, "")
}

// Create handles the currency creation request.
func (h *CurrencyHandler) Create(c echo.Context) error {
	var input *usecase.CreateCurrencyInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid currency input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	currency, err := h.uc.Create(c.Request().Context(), actorID(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, currency, "Currency created successfully")
}

// Update handles the currency update request.
func (h *CurrencyHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var input *usecase.UpdateCurrencyInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid currency input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	currency, err := h.uc.Update(c.Request().Context(), actorID(c), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, currency, "Currency updated successfully")
}

// Delete handles the currency delete request.
func (h *CurrencyHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), actorID(c), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Currency deleted successfully")
}
