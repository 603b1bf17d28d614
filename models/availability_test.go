package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleDayOnSeedsDefaultSlot(t *testing.T) {
	week := NewWeeklyAvailability()
	require.False(t, week.DayAvailable(Saturday))

	week.ToggleDay(Saturday, true)

	assert.Equal(t, []string{"09:00"}, week[Saturday])
	assert.True(t, week.DayAvailable(Saturday))
}

func TestToggleDayOffClearsAllSlots(t *testing.T) {
	week := NewWeeklyAvailability()
	week[Saturday] = []string{"09:00", "14:00", "16:00"}

	week.ToggleDay(Saturday, false)

	assert.Empty(t, week[Saturday])
	assert.False(t, week.DayAvailable(Saturday))
}

func TestToggleDayOnKeepsExistingSlots(t *testing.T) {
	week := NewWeeklyAvailability()
	week[Monday] = []string{"10:00", "11:00"}

	week.ToggleDay(Monday, true)

	assert.Equal(t, []string{"10:00", "11:00"}, week[Monday])
}

func TestToggleSlotAddsAndRemovesSorted(t *testing.T) {
	week := NewWeeklyAvailability()

	require.NoError(t, week.ToggleSlot(Monday, "14:00"))
	require.NoError(t, week.ToggleSlot(Monday, "09:00"))
	assert.Equal(t, []string{"09:00", "14:00"}, week[Monday])

	require.NoError(t, week.ToggleSlot(Monday, "14:00"))
	assert.Equal(t, []string{"09:00"}, week[Monday])
}

func TestToggleSlotRejectsUnknownLabel(t *testing.T) {
	week := NewWeeklyAvailability()
	err := week.ToggleSlot(Monday, "03:30")
	require.Error(t, err)
	assert.Empty(t, week[Monday])
}

func TestFromTimeSlotsSkipsUnavailableRows(t *testing.T) {
	slots := []TimeSlot{
		{LawyerID: "l1", DayOfWeek: Monday, StartTime: "10:00", IsAvailable: true},
		{LawyerID: "l1", DayOfWeek: Monday, StartTime: "09:00", IsAvailable: true},
		{LawyerID: "l1", DayOfWeek: Tuesday, StartTime: "11:00", IsAvailable: false},
	}

	week := FromTimeSlots(slots)

	assert.Equal(t, []string{"09:00", "10:00"}, week[Monday])
	assert.False(t, week.DayAvailable(Tuesday))
}

func TestTimeSlotsExpandsHourWindows(t *testing.T) {
	week := NewWeeklyAvailability()
	week[Friday] = []string{"09:00", "17:00"}

	rows := week.TimeSlots("lawyer-1")

	require.Len(t, rows, 2)
	assert.Equal(t, "lawyer-1", rows[0].LawyerID)
	assert.Equal(t, Friday, rows[0].DayOfWeek)
	assert.Equal(t, "09:00", rows[0].StartTime)
	assert.Equal(t, "10:00", rows[0].EndTime)
	assert.Equal(t, "18:00", rows[1].EndTime)
	assert.True(t, rows[0].IsAvailable)
}
