package models

import (
	"time"

	"github.com/google/uuid"
)

// Appointment status values. Transitions are one-directional in practice
// (pending -> active).
const (
	AppointmentStatusPending   = "pending"
	AppointmentStatusActive    = "active"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"
)

// Appointment type values.
const (
	AppointmentTypeScheduled = "scheduled"
	AppointmentTypeInstant   = "instant"
)

// Appointment links a patient (User.ID) to a doctor (DoctorProfile.ID).
// VideoRoomID is assigned at creation and never changes; it keys an
// external video session, no signaling happens here.
type Appointment struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	PatientID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"doctor_id"`
	ScheduledTime *time.Time `json:"scheduled_time"`
	Status        string     `gorm:"size:20;default:'pending'" json:"status"`
	Type          string     `gorm:"size:20;default:'scheduled'" json:"type"`
	VideoRoomID   string     `gorm:"size:36;not null" json:"video_room_id"`
	CreatedAt     time.Time  `json:"created_at"`
}
