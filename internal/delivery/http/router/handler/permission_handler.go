package handler

import (
	"net/http"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/errors"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
)

// PermissionHandler holds dependencies for permission administration handlers.
type PermissionHandler struct {
	uc usecase.PermissionUsecase
}

// NewPermissionHandler is the constructor for PermissionHandler, injected by Fx.
func NewPermissionHandler(uc usecase.PermissionUsecase) *PermissionHandler {
	return &PermissionHandler{uc: uc}
}

// List handles the permission listing request.
func (h *PermissionHandler) List(c echo.Context) error {
	perms, err := h.uc.List(c.Request().Context(), actorID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, perms, "")
}

// Get handles a single permission retrieve.
func (h *PermissionHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	perm, err := h.uc.Get(c.Request().Context(), actorID(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, perm, "")
}

// Create handles the permission creation request.
func (h *PermissionHandler) Create(c echo.Context) error {
	var input *usecase.CreatePermissionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid permission input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	perm, err := h.uc.Create(c.Request().Context(), actorID(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, perm, "Permission created successfully")
}

// Update handles the permission update request.
func (h *PermissionHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var input *usecase.UpdatePermissionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid permission input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	perm, err := h.uc.Update(c.Request().Context(), actorID(c), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, perm, "Permission updated successfully")
}

// Delete handles the permission delete request.
func (h *PermissionHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), actorID(c), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Permission deleted successfully")
}
