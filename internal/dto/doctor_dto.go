package dto

import "github.com/medconnect/telemed-backend/internal/models"

type DoctorProfileRequest struct {
	Specialization  string  `json:"specialization"`
	ExperienceYears int     `json:"experience_years"`
	LicenseNumber   string  `json:"license_number"`
	Bio             string  `json:"bio"`
	ConsultationFee float64 `json:"consultation_fee"`
}

type AvailabilityRequest struct {
	Available bool `json:"available"`
}

// UserSummary is the slice of the owning user exposed alongside a profile.
type UserSummary struct {
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// DoctorListEntry is a profile joined with its owner; User is omitted when
// the secondary lookup fails.
type DoctorListEntry struct {
	models.DoctorProfile
	User *UserSummary `json:"user,omitempty"`
}

type DoctorListResponse struct {
	Doctors []DoctorListEntry `json:"doctors"`
}

type ProfileResponse struct {
	Profile *models.DoctorProfile `json:"profile"`
	Success bool                  `json:"success,omitempty"`
}
