package handler

import (
	"net/http"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/errors"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CartItemHandler holds dependencies for cart item handlers.
type CartItemHandler struct {
	uc usecase.CartItemUsecase
}

// NewCartItemHandler is the constructor for CartItemHandler, injected by Fx.
func NewCartItemHandler(uc usecase.CartItemUsecase) *CartItemHandler {
	return &CartItemHandler{uc: uc}
}

// List handles the cart item listing request.
func (h *CartItemHandler) List(c echo.Context) error {
	items, err := h.uc.List(c.Request().Context(), actorID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "")
}

// Get handles a single cart item retrieve.
func (h *CartItemHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	item, err := h.uc.Get(c.Request().Context(), actorID(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, item, "")
}

// Create handles adding a product to a cart.
func (h *CartItemHandler) Create(c echo.Context) error {
	var input *usecase.CreateCartItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	item, err := h.uc.Create(c.Request().Context(), actorID(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, item, "Item added to cart")
}

// Update handles a quantity change. Quantity zero removes the item.
func (h *CartItemHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var input *usecase.UpdateCartItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	item, removed, err := h.uc.Update(c.Request().Context(), actorID(c), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	if removed {
		return response.Success(c, http.StatusOK, nil, "Item removed from cart")
	}

	return response.Success(c, http.StatusOK, item, "Cart item updated successfully")
}

// Delete handles the cart item removal request.
func (h *CartItemHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), actorID(c), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Item removed from cart")
}
