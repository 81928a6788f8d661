package handlers

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/ottermq/mbconsole/internal/client"
	"github.com/ottermq/mbconsole/internal/console"
)

// Status maps a broker or validation error to the status the console API answers with.
func Status(err error) int {
	switch {
	case err == nil:
		return fiber.StatusOK
	case errors.Is(err, console.ErrValidation), errors.Is(err, client.ErrInvalidName),
		errors.Is(err, console.ErrMissingEndpoint):
		return fiber.StatusBadRequest
	case errors.Is(err, console.ErrInvalidCredentials):
		return fiber.StatusUnauthorized
	case errors.Is(err, client.ErrUnauthorized):
		return fiber.StatusForbidden
	case errors.Is(err, client.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, client.ErrConflict):
		return fiber.StatusConflict
	case errors.Is(err, context.DeadlineExceeded):
		return fiber.StatusGatewayTimeout
	case client.IsTransport(err):
		return fiber.StatusBadGateway
	}
	if code := client.StatusCode(err); code >= 400 && code < 500 {
		return code
	}
	return fiber.StatusBadGateway
}

// Describe turns an error into the banner text shown by the UI.
func Describe(err error) string {
	var apiErr *client.APIError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, console.ErrValidation), errors.Is(err, console.ErrInvalidCredentials),
		errors.Is(err, console.ErrMissingEndpoint), errors.Is(err, client.ErrInvalidName):
		return capitalize(err.Error())
	case errors.Is(err, client.ErrUnauthorized):
		return "The broker rejected the session credentials."
	case errors.Is(err, client.ErrNotFound):
		return "The broker has no such resource."
	case errors.Is(err, context.DeadlineExceeded):
		return "The broker did not answer in time."
	case client.IsTransport(err):
		return "The broker could not be reached."
	case errors.As(err, &apiErr) && apiErr.Message != "":
		return "The broker refused the request: " + apiErr.Message
	}
	return "The request to the broker failed."
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:] + "."
}
