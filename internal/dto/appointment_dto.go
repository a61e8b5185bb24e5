package dto

import (
	"time"

	"github.com/medconnect/telemed-backend/internal/models"
)

type AppointmentCreateRequest struct {
	DoctorID      string     `json:"doctor_id"`
	ScheduledTime *time.Time `json:"scheduled_time"`
	Type          string     `json:"type"`
}

// DoctorSummary enriches a patient's appointment with the doctor's details.
type DoctorSummary struct {
	Name           string `json:"name"`
	Picture        string `json:"picture"`
	Specialization string `json:"specialization"`
}

// AppointmentEntry carries an appointment plus role-dependent enrichment.
// Enrichment lookups that fail leave the field unset rather than failing
// the whole request.
type AppointmentEntry struct {
	models.Appointment
	Patient *UserSummary   `json:"patient,omitempty"`
	Doctor  *DoctorSummary `json:"doctor,omitempty"`
}

type AppointmentResponse struct {
	Appointment *models.Appointment `json:"appointment"`
	Success     bool                `json:"success,omitempty"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentEntry `json:"appointments"`
}

type StartAppointmentResponse struct {
	VideoRoomID string `json:"video_room_id"`
	Success     bool   `json:"success"`
}
