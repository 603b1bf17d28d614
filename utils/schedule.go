package utils

import (
	"fmt"
	"time"

	"github.com/lawgicai/lawgic-backend/db"
	"github.com/lawgicai/lawgic-backend/models"
)

// CheckLawyerAvailability reports whether the lawyer offers a slot covering
// the requested date and time. Requests outside the published availability
// are rejected up front rather than left for the lawyer to decline.
func CheckLawyerAvailability(lawyerID, date, timeLabel string) (bool, error) {
	day, err := dayOf(date)
	if err != nil {
		return false, err
	}
	requested, err := time.Parse("15:04", timeLabel)
	if err != nil {
		return false, fmt.Errorf("%w: invalid time %q", ErrValidation, timeLabel)
	}

	var slots []models.TimeSlot
	if err := db.DB.
		Where("lawyer_id = ? AND day_of_week = ? AND is_available = ?", lawyerID, day, true).
		Find(&slots).Error; err != nil {
		return false, fmt.Errorf("failed to load time slots: %w", err)
	}

	for _, slot := range slots {
		start, err := time.Parse("15:04", slot.StartTime)
		if err != nil {
			continue
		}
		end, err := time.Parse("15:04", slot.EndTime)
		if err != nil {
			continue
		}
		if !requested.Before(start) && requested.Before(end) {
			return true, nil
		}
	}
	return false, nil
}

func dayOf(date string) (models.DayOfWeek, error) {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid date %q", ErrValidation, date)
	}
	return models.DayOfWeek(d.Weekday()), nil
}
