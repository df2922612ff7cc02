package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"calendar-reminders/internal/pkg/clock"
)

// APIErrorResponse is the JSON error body returned for every failed request.
type APIErrorResponse struct {
	Timestamp   string            `json:"timestamp"`
	Status      int               `json:"status"`
	Error       string            `json:"error"`
	Message     string            `json:"message"`
	Path        string            `json:"path"`
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`
}

// errorJSON writes the standard error body for the given status.
func errorJSON(c echo.Context, clk clock.Clock, status int, message string) error {
	return fieldErrorJSON(c, clk, status, message, nil)
}

// fieldErrorJSON writes the standard error body including per-field
// validation messages.
func fieldErrorJSON(c echo.Context, clk clock.Clock, status int, message string, fieldErrors map[string]string) error {
	return c.JSON(status, APIErrorResponse{
		Timestamp:   clk.Now().UTC().Format("2006-01-02T15:04:05"),
		Status:      status,
		Error:       http.StatusText(status),
		Message:     message,
		Path:        c.Request().URL.Path,
		FieldErrors: fieldErrors,
	})
}
