package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Malformed inputs are rejected before the slot lookup runs.
func TestCheckLawyerAvailabilityRejectsMalformedInput(t *testing.T) {
	_, err := CheckLawyerAvailability("lawyer-1", "Jan 20", "15:00")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = CheckLawyerAvailability("lawyer-1", "2024-01-20", "3pm")
	assert.ErrorIs(t, err, ErrValidation)
}
