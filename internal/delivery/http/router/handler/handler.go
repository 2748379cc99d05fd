// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/delivery/http/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// actorID resolves the authenticated client from the request context.
// Anonymous requests resolve to uuid.Nil; the usecase layer decides
// whether that is acceptable for the operation.
func actorID(c echo.Context) uuid.UUID {
	return deliverycontext.GetClientID(c)
}

// pathID parses the ':id' path parameter.
func pathID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	return id, nil
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
