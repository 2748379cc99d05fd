package handler

import (
	"net/http"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/errors"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CartHandler holds dependencies for cart administration handlers.
type CartHandler struct {
	uc usecase.CartUsecase
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

// List handles the cart listing request.
func (h *CartHandler) List(c echo.Context) error {
	carts, err := h.uc.List(c.Request().Context(), actorID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, carts, "")
}

// Get handles a single cart retrieve.
func (h *CartHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	cart, err := h.uc.Get(c.Request().Context(), actorID(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "")
}

// Create handles the cart creation request. A client owns at most one
// non-deleted cart.
func (h *CartHandler) Create(c echo.Context) error {
	var input *usecase.CreateCartInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	cart, err := h.uc.Create(c.Request().Context(), actorID(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, cart, "Cart created successfully")
}

// Update handles the cart update request.
func (h *CartHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var input *usecase.UpdateCartInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	cart, err := h.uc.Update(c.Request().Context(), actorID(c), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Cart updated successfully")
}

// Delete handles the cart delete request.
func (h *CartHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), actorID(c), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Cart deleted successfully")
}
