package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the error body shape of the API: a user-facing message
// plus an optional diagnostic string for operator debugging.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// MessageResponse is the body of update and delete successes
type MessageResponse struct {
	Message string `json:"message"`
}

// CreatedResponse is the body of a create success
type CreatedResponse struct {
	ID      int32  `json:"id"`
	Message string `json:"message"`
}

func validationError(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

func notFoundError(c echo.Context, message string) error {
	return c.JSON(http.StatusNotFound, ErrorResponse{Error: message})
}

func storeError(c echo.Context, message string) error {
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: message})
}

// storeErrorWithDetails exposes the underlying diagnostic in the response
// body, only where the original endpoints did.
func storeErrorWithDetails(c echo.Context, message string, err error) error {
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: message, Details: err.Error()})
}
