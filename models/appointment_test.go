package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusTransitions(t *testing.T) {
	assert.True(t, StatusPending.CanTransition(StatusConfirmed))
	assert.True(t, StatusPending.CanTransition(StatusCancelled))
	assert.True(t, StatusConfirmed.CanTransition(StatusCompleted))
	assert.True(t, StatusConfirmed.CanTransition(StatusCancelled))

	// no skipping ahead, no going back
	assert.False(t, StatusPending.CanTransition(StatusCompleted))
	assert.False(t, StatusConfirmed.CanTransition(StatusPending))
}

func TestTerminalStatesAreImmutable(t *testing.T) {
	for _, terminal := range []AppointmentStatus{StatusCompleted, StatusCancelled} {
		assert.True(t, terminal.Terminal())
		for _, next := range []AppointmentStatus{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled} {
			assert.False(t, terminal.CanTransition(next),
				"%s should not transition to %s", terminal, next)
		}
	}
}

func TestCheckTransitionRejectsUnknownStatus(t *testing.T) {
	err := CheckTransition(StatusPending, AppointmentStatus("approved"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown status")
}

func TestStatusValid(t *testing.T) {
	for _, s := range []AppointmentStatus{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled} {
		assert.True(t, s.Valid())
	}
	assert.False(t, AppointmentStatus("declined").Valid())
	assert.False(t, AppointmentStatus("").Valid())
}

func TestAppointmentTypeValid(t *testing.T) {
	for _, at := range []AppointmentType{TypeConsultation, TypeFollowUp, TypeDocumentReview, TypeCourtPreparation} {
		assert.True(t, at.Valid())
	}
	assert.False(t, AppointmentType("mediation").Valid())
}

func TestFromRequestCarriesBookingFields(t *testing.T) {
	req := &AppointmentRequest{
		ID:              "req-1",
		ClientID:        "client-1",
		LawyerID:        "lawyer-1",
		RequestedDate:   "2024-01-20",
		RequestedTime:   "15:00",
		DurationMinutes: 60,
		AppointmentType: TypeConsultation,
		Description:     "Employment contract dispute",
		Status:          StatusPending,
	}

	appt := FromRequest(req)

	assert.Equal(t, "client-1", appt.ClientID)
	assert.Equal(t, "lawyer-1", appt.LawyerID)
	assert.Equal(t, "2024-01-20", appt.AppointmentDate)
	assert.Equal(t, "15:00", appt.AppointmentTime)
	assert.Equal(t, 60, appt.DurationMinutes)
	assert.Equal(t, TypeConsultation, appt.AppointmentType)
	assert.Equal(t, "Employment contract dispute", appt.Description)
	assert.Equal(t, StatusConfirmed, appt.Status)
	assert.Empty(t, appt.Notes)
}

func TestRequestedAt(t *testing.T) {
	req := &AppointmentRequest{RequestedDate: "2024-01-20", RequestedTime: "15:00"}
	at, err := req.RequestedAt()
	require.NoError(t, err)
	assert.Equal(t, 2024, at.Year())
	assert.Equal(t, 15, at.Hour())

	req.RequestedTime = "3pm"
	_, err = req.RequestedAt()
	assert.Error(t, err)
}
