package handler

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/errors"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ClientHandler holds dependencies for client-related handlers.
type ClientHandler struct {
	uc     usecase.ClientUsecase
	logger *slog.Logger
}

// NewClientHandler is the constructor for ClientHandler, injected by Fx.
func NewClientHandler(uc usecase.ClientUsecase, logger *slog.Logger) *ClientHandler {
	return &ClientHandler{uc: uc, logger: logger}
}

// Login handles the login request. Open endpoint.
func (h *ClientHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// Register handles the self-service registration request. Open endpoint.
func (h *ClientHandler) Register(c echo.Context) error {
	var input *usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	client, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, client, "Client registered successfully")
}

// List handles the client listing request.
func (h *ClientHandler) List(c echo.Context) error {
	clients, err := h.uc.List(c.Request().Context(), actorID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, clients, "")
}

// Get handles a single client retrieve.
func (h *ClientHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	client, err := h.uc.Get(c.Request().Context(), actorID(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, client, "")
}

// Create handles the admin client creation request.
func (h *ClientHandler) Create(c echo.Context) error {
	var input *usecase.CreateClientInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid client input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	client, err := h.uc.Create(c.Request().Context(), actorID(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, client, "Client created successfully")
}

// Update handles the admin client update request.
func (h *ClientHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var input *usecase.UpdateClientInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid client input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	client, err := h.uc.Update(c.Request().Context(), actorID(c), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, client, "Client updated successfully")
}

// SelfUpdate handles a client updating their own profile.
func (h *ClientHandler) SelfUpdate(c echo.Context) error {
	var input *usecase.UpdateClientInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid client input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	client, err := h.uc.SelfUpdate(c.Request().Context(), actorID(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, client, "Profile updated successfully")
}

// Delete handles the admin client delete request.
func (h *ClientHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), actorID(c), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Client deleted successfully")
}

// SelfDelete handles a client deleting their own account.
func (h *ClientHandler) SelfDelete(c echo.Context) error {
	if err := h.uc.SelfDelete(c.Request().Context(), actorID(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Account deleted successfully")
}

// deleteListInput carries the bulk delete payload.
type deleteListInput struct {
	IDs []uuid.UUID `json:"ids" validate:"required,min=1"`
}

// DeleteList handles the bulk client delete request.
func (h *ClientHandler) DeleteList(c echo.Context) error {
	var input *deleteListInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid delete list input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	if err := h.uc.DeleteList(c.Request().Context(), actorID(c), input.IDs); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Clients deleted successfully")
}

// ResetPassword handles an admin resetting another client's password to
// the configured default.
func (h *ClientHandler) ResetPassword(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.ResetPassword(c.Request().Context(), actorID(c), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password reset successfully")
}

// SelfResetPassword handles a client resetting their own password to the
// configured default.
func (h *ClientHandler) SelfResetPassword(c echo.Context) error {
	if err := h.uc.SelfResetPassword(c.Request().Context(), actorID(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password reset successfully")
}
