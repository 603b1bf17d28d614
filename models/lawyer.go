package models

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Lawyer extends a lawyer Profile with professional details. One row per
// lawyer profile, created empty at sign-up and removed with the profile.
type Lawyer struct {
	ID              string         `json:"id" gorm:"type:uuid;primaryKey"`
	ProfileID       string         `json:"profile_id" gorm:"type:uuid;uniqueIndex;not null"`
	Profile         Profile        `json:"profile,omitempty" gorm:"foreignKey:ProfileID"`
	Bio             string         `json:"bio"`
	Education       string         `json:"education"`
	ExperienceYears int            `json:"experience_years"`
	HourlyRate      float64        `json:"hourly_rate"`
	Specialties     pq.StringArray `json:"specialties" gorm:"type:text[]"`
	// IsVerified is set by an external trust process, never by the lawyer.
	IsVerified bool      `json:"is_verified" gorm:"default:false"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (l *Lawyer) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}

// NormalizeSpecialties deduplicates and sorts the specialty tags. The set is
// order-insensitive, so a canonical order keeps comparisons cheap.
func (l *Lawyer) NormalizeSpecialties() {
	seen := make(map[string]bool, len(l.Specialties))
	out := l.Specialties[:0]
	for _, s := range l.Specialties {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	sort.Strings(out)
	l.Specialties = out
}

// LawyerPatch carries the owner-writable lawyer detail fields. The
// verification flag is deliberately absent.
type LawyerPatch struct {
	Bio             *string   `json:"bio"`
	Education       *string   `json:"education"`
	ExperienceYears *int      `json:"experience_years"`
	HourlyRate      *float64  `json:"hourly_rate"`
	Specialties     *[]string `json:"specialties"`
}

// ApplyUpdate copies the owner-writable fields onto the lawyer record.
func (l *Lawyer) ApplyUpdate(patch LawyerPatch) {
	if patch.Bio != nil {
		l.Bio = *patch.Bio
	}
	if patch.Education != nil {
		l.Education = *patch.Education
	}
	if patch.ExperienceYears != nil {
		l.ExperienceYears = *patch.ExperienceYears
	}
	if patch.HourlyRate != nil {
		l.HourlyRate = *patch.HourlyRate
	}
	if patch.Specialties != nil {
		l.Specialties = pq.StringArray(*patch.Specialties)
	}
	l.NormalizeSpecialties()
}
