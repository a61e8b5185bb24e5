package models

import (
	"time"

	"github.com/google/uuid"
)

// Role values a user can hold. Profile creation is the only path that
// promotes a patient to doctor.
const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
)

// User is an account provisioned on first successful identity verification
// (or by demo seeding). Users are never deleted.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email     string    `gorm:"size:255;not null;index" json:"email"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Picture   string    `gorm:"type:text" json:"picture"`
	Role      string    `gorm:"size:20;default:'patient'" json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
