package models

import (
	"time"

	"github.com/google/uuid"
)

// DoctorProfile holds the practice details a doctor exposes to patients.
// One profile per user, enforced with a unique index on UserID.
type DoctorProfile struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Specialization  string    `gorm:"size:100;not null" json:"specialization"`
	ExperienceYears int       `gorm:"not null" json:"experience_years"`
	LicenseNumber   string    `gorm:"size:50;not null" json:"license_number"`
	Bio             string    `gorm:"type:text" json:"bio"`
	ConsultationFee float64   `gorm:"not null" json:"consultation_fee"`
	Available       bool      `gorm:"default:true" json:"available"`
	CreatedAt       time.Time `json:"created_at"`
}
