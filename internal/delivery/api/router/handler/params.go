// Package handler contains the HTTP handlers of the API.
package handler

import (
	"net/http"
	"strconv"

	"loyalty/internal/delivery/api/response"
	deliverycontext "loyalty/internal/delivery/context"
	domainerrors "loyalty/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthCheck handles the health check endpoint
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// requireClient returns the authenticated client of the request.
func requireClient(c echo.Context) (uuid.UUID, error) {
	clientID, ok := deliverycontext.GetClientID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthorized
	}

	return clientID, nil
}

// uuidParam parses a path parameter holding a UUID.
func uuidParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails(name + ": invalid id")
	}

	return id, nil
}

// pageParams reads the limit and offset query parameters. Absent values are zero.
func pageParams(c echo.Context) (limit, offset int, err error) {
	if limit, err = intQuery(c, "limit"); err != nil {
		return 0, 0, err
	}
	if offset, err = intQuery(c, "offset"); err != nil {
		return 0, 0, err
	}

	return limit, offset, nil
}

func intQuery(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails(name + ": must be a non-negative integer")
	}

	return value, nil
}

// bindAndValidate decodes the body into req and validates it.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	return c.Validate(req)
}
