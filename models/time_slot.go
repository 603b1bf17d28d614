package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DayOfWeek int

const (
	Sunday DayOfWeek = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// Valid reports whether the day is in the 0-6 range.
func (d DayOfWeek) Valid() bool {
	return d >= Sunday && d <= Saturday
}

// TimeSlot is one recurring weekly availability window for a lawyer.
// Times are "HH:MM" in 24h format. Duplicate (lawyer, day, start) rows are
// rejected by the unique index; overlapping windows are the caller's problem.
type TimeSlot struct {
	ID          string    `json:"id" gorm:"type:uuid;primaryKey"`
	LawyerID    string    `json:"lawyer_id" gorm:"type:uuid;not null;uniqueIndex:idx_lawyer_day_start"`
	DayOfWeek   DayOfWeek `json:"day_of_week" gorm:"not null;uniqueIndex:idx_lawyer_day_start"`
	StartTime   string    `json:"start_time" gorm:"not null;uniqueIndex:idx_lawyer_day_start"`
	EndTime     string    `json:"end_time" gorm:"not null"`
	IsAvailable bool      `json:"is_available" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (t *TimeSlot) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}
