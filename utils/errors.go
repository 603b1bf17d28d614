package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse is the JSON envelope returned by every failing handler.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// Domain error kinds. Services wrap these with fmt.Errorf("%w: ...") so
// handlers can map them to HTTP statuses without string matching.
var (
	ErrValidation        = errors.New("validation failed")
	ErrAuth              = errors.New("authentication failed")
	ErrAuthorization     = errors.New("not allowed")
	ErrReference         = errors.New("referenced record not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrConflict          = errors.New("record changed concurrently")
)

// StatusFor maps a domain error to its HTTP status. Anything unrecognized is
// treated as a store failure.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrAuth):
		return fiber.StatusUnauthorized
	case errors.Is(err, ErrAuthorization):
		return fiber.StatusForbidden
	case errors.Is(err, ErrReference):
		return fiber.StatusNotFound
	case errors.Is(err, ErrConflict):
		return fiber.StatusConflict
	case errors.Is(err, ErrInvalidTransition):
		return fiber.StatusUnprocessableEntity
	}
	return fiber.StatusInternalServerError
}

// Fail writes the standard error envelope for a domain error.
func Fail(c *fiber.Ctx, message string, err error) error {
	return c.Status(StatusFor(err)).JSON(ErrorResponse{
		Message: message,
		Error:   err.Error(),
	})
}
