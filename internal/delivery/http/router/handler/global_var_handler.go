package handler

import (
	"net/http"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/errors"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
)

// GlobalVarHandler holds dependencies for global variable handlers.
type GlobalVarHandler struct {
	uc usecase.GlobalVarUsecase
}

// NewGlobalVarHandler is the constructor for GlobalVarHandler, injected by Fx.
func NewGlobalVarHandler(uc usecase.GlobalVarUsecase) *GlobalVarHandler {
	return &GlobalVarHandler{uc: uc}
}

// List handles the global variable listing request.
func (h *GlobalVarHandler) List(c echo.Context) error {
	vars, err := h.uc.List(c.Request().Context(), actorID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, vars, "")
}

// Get handles a single global variable retrieve.
func (h *GlobalVarHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	gv, err := h.uc.Get(c.Request().Context(), actorID(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, gv, "")
}

// Create handles the global variable creation request.
func (h *GlobalVarHandler) Create(c echo.Context) error {
	var input *usecase.CreateGlobalVarInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid global variable input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	gv, err := h.uc.Create(c.Request().Context(), actorID(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, gv, "Global variable created successfully")
}

// Update handles the global variable update request.
func (h *GlobalVarHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var input *usecase.UpdateGlobalVarInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid global variable input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	gv, err := h.uc.Update(c.Request().Context(), actorID(c), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, gv, "Global variable updated successfully")
}

// Delete handles the global variable delete request.
func (h *GlobalVarHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), actorID(c), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Global variable deleted successfully")
}
