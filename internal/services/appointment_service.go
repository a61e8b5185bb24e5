package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/medconnect/telemed-backend/internal/dto"
	"github.com/medconnect/telemed-backend/internal/metrics"
	"github.com/medconnect/telemed-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrDoctorUnavailable   = errors.New("doctor not available")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrAccessDenied        = errors.New("access denied")
)

type AppointmentService struct {
	db      *gorm.DB
	metrics *metrics.Collector
}

func NewAppointmentService(db *gorm.DB, collector *metrics.Collector) *AppointmentService {
	return &AppointmentService{db: db, metrics: collector}
}

// Create books an appointment against an available doctor profile and
// assigns the video room id. Unknown and unavailable doctors are
// indistinguishable to the caller.
func (s *AppointmentService) Create(patientID uuid.UUID, req *dto.AppointmentCreateRequest) (*models.Appointment, error) {
	doctorID, err := uuid.Parse(req.DoctorID)
	if err != nil {
		return nil, ErrDoctorUnavailable
	}

	var doctor models.DoctorProfile
	err = s.db.Where("id = ? AND available = ?", doctorID, true).First(&doctor).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrDoctorUnavailable
	}
	if err != nil {
		return nil, fmt.Errorf("doctor lookup failed: %w", err)
	}

	apptType := req.Type
	if apptType == "" {
		apptType = models.AppointmentTypeScheduled
	}

	appointment := models.Appointment{
		ID:            uuid.New(),
		PatientID:     patientID,
		DoctorID:      doctorID,
		ScheduledTime: req.ScheduledTime,
		Status:        models.AppointmentStatusPending,
		Type:          apptType,
		VideoRoomID:   uuid.NewString(),
	}

	if err := s.db.Create(&appointment).Error; err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	s.metrics.RecordAppointmentBooked()
	return &appointment, nil
}

// ListForUser returns the caller's appointments with role-dependent
// enrichment. Doctors match through their profile id, patients through
// their user id. Failed enrichment lookups drop the field silently.
func (s *AppointmentService) ListForUser(user *models.User) ([]dto.AppointmentEntry, error) {
	if user.Role == models.RoleDoctor {
		return s.listForDoctor(user.ID)
	}
	return s.listForPatient(user.ID)
}

func (s *AppointmentService) listForDoctor(userID uuid.UUID) ([]dto.AppointmentEntry, error) {
	var profile models.DoctorProfile
	err := s.db.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []dto.AppointmentEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("profile lookup failed: %w", err)
	}

	var appointments []models.Appointment
	if err := s.db.Where("doctor_id = ?", profile.ID).Find(&appointments).Error; err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}

	entries := make([]dto.AppointmentEntry, 0, len(appointments))
	for _, a := range appointments {
		entry := dto.AppointmentEntry{Appointment: a}
		var patient models.User
		if err := s.db.First(&patient, "id = ?", a.PatientID).Error; err == nil {
			entry.Patient = &dto.UserSummary{Name: patient.Name, Picture: patient.Picture}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (s *AppointmentService) listForPatient(userID uuid.UUID) ([]dto.AppointmentEntry, error) {
	var appointments []models.Appointment
	if err := s.db.Where("patient_id = ?", userID).Find(&appointments).Error; err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}

	entries := make([]dto.AppointmentEntry, 0, len(appointments))
	for _, a := range appointments {
		entry := dto.AppointmentEntry{Appointment: a}
		var profile models.DoctorProfile
		if err := s.db.First(&profile, "id = ?", a.DoctorID).Error; err == nil {
			var owner models.User
			if err := s.db.First(&owner, "id = ?", profile.UserID).Error; err == nil {
				entry.Doctor = &dto.DoctorSummary{
					Name:           owner.Name,
					Picture:        owner.Picture,
					Specialization: profile.Specialization,
				}
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Join returns the appointment for the video call. Only the patient or
// the doctor who owns the referenced profile may join.
func (s *AppointmentService) Join(appointmentID string, userID uuid.UUID) (*models.Appointment, error) {
	appointment, err := s.find(appointmentID)
	if err != nil {
		return nil, err
	}

	if appointment.PatientID != userID && !s.ownsDoctorProfile(appointment.DoctorID, userID) {
		return nil, ErrAccessDenied
	}

	return appointment, nil
}

// Start flips the appointment to active and returns the room id. Any
// authenticated caller may start any appointment; ownership is only
// checked on Join. Clients rely on this, so don't tighten it without
// an API version bump.
func (s *AppointmentService) Start(appointmentID string) (string, error) {
	appointment, err := s.find(appointmentID)
	if err != nil {
		return "", err
	}

	err = s.db.Model(&models.Appointment{}).
		Where("id = ?", appointment.ID).
		Update("status", models.AppointmentStatusActive).Error
	if err != nil {
		return "", fmt.Errorf("failed to start appointment: %w", err)
	}

	s.metrics.RecordAppointmentStarted()
	return appointment.VideoRoomID, nil
}

func (s *AppointmentService) find(appointmentID string) (*models.Appointment, error) {
	id, err := uuid.Parse(appointmentID)
	if err != nil {
		return nil, ErrAppointmentNotFound
	}

	var appointment models.Appointment
	err = s.db.First(&appointment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("appointment lookup failed: %w", err)
	}
	return &appointment, nil
}

func (s *AppointmentService) ownsDoctorProfile(profileID, userID uuid.UUID) bool {
	var profile models.DoctorProfile
	if err := s.db.First(&profile, "id = ?", profileID).Error; err != nil {
		return false
	}
	return profile.UserID == userID
}
