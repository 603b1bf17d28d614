package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Valid reports whether the status is a known lifecycle state.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transition is permitted.
func (s AppointmentStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransition reports whether moving from s to next is a legal lifecycle
// step: pending -> confirmed -> completed, with pending|confirmed -> cancelled.
func (s AppointmentStatus) CanTransition(next AppointmentStatus) bool {
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCompleted || next == StatusCancelled
	}
	return false
}

type AppointmentType string

const (
	TypeConsultation     AppointmentType = "consultation"
	TypeFollowUp         AppointmentType = "follow_up"
	TypeDocumentReview   AppointmentType = "document_review"
	TypeCourtPreparation AppointmentType = "court_preparation"
)

// Valid reports whether the value is a known appointment type.
func (t AppointmentType) Valid() bool {
	switch t {
	case TypeConsultation, TypeFollowUp, TypeDocumentReview, TypeCourtPreparation:
		return true
	}
	return false
}

// AppointmentRequest is a client's proposed booking, actioned by the lawyer.
// A decline stores the required response message and ends in cancelled.
type AppointmentRequest struct {
	ID              string            `json:"id" gorm:"type:uuid;primaryKey"`
	ClientID        string            `json:"client_id" gorm:"type:uuid;not null;index"`
	Client          Profile           `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	LawyerID        string            `json:"lawyer_id" gorm:"type:uuid;not null;index"`
	Lawyer          Profile           `json:"lawyer,omitempty" gorm:"foreignKey:LawyerID"`
	RequestedDate   string            `json:"requested_date" gorm:"not null"` // "2006-01-02"
	RequestedTime   string            `json:"requested_time" gorm:"not null"` // "15:04"
	DurationMinutes int               `json:"duration_minutes" gorm:"default:60"`
	AppointmentType AppointmentType   `json:"appointment_type" gorm:"type:varchar(32);not null"`
	Description     string            `json:"description" gorm:"not null"`
	Status          AppointmentStatus `json:"status" gorm:"type:varchar(16);not null;default:pending"`
	ResponseMessage string            `json:"response_message"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

func (r *AppointmentRequest) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if r.Status == "" {
		r.Status = StatusPending
	}
	if r.DurationMinutes == 0 {
		r.DurationMinutes = 60
	}
	return nil
}

// RequestedAt parses the requested date and time into a single instant.
func (r *AppointmentRequest) RequestedAt() (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", r.RequestedDate+" "+r.RequestedTime, time.Local)
}

// Appointment is a confirmed booking, created by lawyer approval of a request
// or booked directly by the lawyer.
type Appointment struct {
	ID              string            `json:"id" gorm:"type:uuid;primaryKey"`
	ClientID        string            `json:"client_id" gorm:"type:uuid;not null;index"`
	Client          Profile           `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	LawyerID        string            `json:"lawyer_id" gorm:"type:uuid;not null;index"`
	Lawyer          Profile           `json:"lawyer,omitempty" gorm:"foreignKey:LawyerID"`
	AppointmentDate string            `json:"appointment_date" gorm:"not null"`
	AppointmentTime string            `json:"appointment_time" gorm:"not null"`
	DurationMinutes int               `json:"duration_minutes" gorm:"default:60"`
	AppointmentType AppointmentType   `json:"appointment_type" gorm:"type:varchar(32);not null"`
	Description     string            `json:"description" gorm:"not null"`
	Notes           string            `json:"notes"`
	Status          AppointmentStatus `json:"status" gorm:"type:varchar(16);not null;default:pending"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.Status == "" {
		a.Status = StatusPending
	}
	if a.DurationMinutes == 0 {
		a.DurationMinutes = 60
	}
	return nil
}

// ScheduledAt parses the appointment date and time into a single instant.
func (a *Appointment) ScheduledAt() (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", a.AppointmentDate+" "+a.AppointmentTime, time.Local)
}

// FromRequest builds the appointment produced by approving a request. Date,
// time, duration, type and description carry over; notes start empty.
func FromRequest(r *AppointmentRequest) *Appointment {
	return &Appointment{
		ClientID:        r.ClientID,
		LawyerID:        r.LawyerID,
		AppointmentDate: r.RequestedDate,
		AppointmentTime: r.RequestedTime,
		DurationMinutes: r.DurationMinutes,
		AppointmentType: r.AppointmentType,
		Description:     r.Description,
		Status:          StatusConfirmed,
	}
}

// CheckTransition validates a status move, distinguishing malformed values
// from illegal lifecycle steps.
func CheckTransition(from, to AppointmentStatus) error {
	if !to.Valid() {
		return fmt.Errorf("unknown status %q", to)
	}
	if !from.CanTransition(to) {
		return fmt.Errorf("cannot move from %s to %s", from, to)
	}
	return nil
}
