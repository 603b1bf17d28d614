package utils

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{ErrValidation, fiber.StatusBadRequest},
		{ErrAuth, fiber.StatusUnauthorized},
		{ErrAuthorization, fiber.StatusForbidden},
		{ErrReference, fiber.StatusNotFound},
		{ErrConflict, fiber.StatusConflict},
		{ErrInvalidTransition, fiber.StatusUnprocessableEntity},
		{errors.New("disk on fire"), fiber.StatusInternalServerError},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, StatusFor(tc.err), tc.err.Error())
	}
}

func TestStatusForUnwrapsChains(t *testing.T) {
	err := fmt.Errorf("approving request abc: %w", ErrInvalidTransition)
	assert.Equal(t, fiber.StatusUnprocessableEntity, StatusFor(err))

	err = fmt.Errorf("lawyer lookup: %w", fmt.Errorf("wrapped: %w", ErrReference))
	assert.Equal(t, fiber.StatusNotFound, StatusFor(err))
}
