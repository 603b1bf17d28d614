package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserType string

const (
	UserTypeClient UserType = "client"
	UserTypeLawyer UserType = "lawyer"
)

// Valid reports whether the value is one of the known user types.
func (t UserType) Valid() bool {
	return t == UserTypeClient || t == UserTypeLawyer
}

// DashboardPath returns the dashboard route for this role.
func (t UserType) DashboardPath() string {
	if t == UserTypeLawyer {
		return "/lawyer-dashboard"
	}
	return "/user-dashboard"
}

// User holds the credentials for an authenticated identity. Everything the
// rest of the system cares about lives on the Profile linked via user_id.
type User struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey"`
	Email     string    `json:"email" gorm:"unique;not null"`
	Password  string    `json:"password,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}
