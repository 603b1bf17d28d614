package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile is the identity record shared by clients and lawyers. Exactly one
// profile exists per user; email and user_type are fixed at creation.
type Profile struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    string    `json:"user_id" gorm:"type:uuid;uniqueIndex;not null"`
	FullName  string    `json:"full_name" gorm:"not null"`
	Email     string    `json:"email" gorm:"not null"`
	Phone     string    `json:"phone"`
	AvatarURL string    `json:"avatar_url"`
	UserType  UserType  `json:"user_type" gorm:"type:varchar(16);not null;default:client"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

// ApplyUpdate copies the owner-writable fields onto the profile. Email and
// user_type never change after creation.
func (p *Profile) ApplyUpdate(patch ProfilePatch) {
	if patch.FullName != nil {
		p.FullName = *patch.FullName
	}
	if patch.Phone != nil {
		p.Phone = *patch.Phone
	}
	if patch.AvatarURL != nil {
		p.AvatarURL = *patch.AvatarURL
	}
}

// ProfilePatch carries the fields a profile owner may change.
type ProfilePatch struct {
	FullName  *string `json:"full_name"`
	Phone     *string `json:"phone"`
	AvatarURL *string `json:"avatar_url"`
}
