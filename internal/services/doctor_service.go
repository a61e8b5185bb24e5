package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/medconnect/telemed-backend/internal/dto"
	"github.com/medconnect/telemed-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrProfileExists   = errors.New("doctor profile already exists")
	ErrProfileNotFound = errors.New("doctor profile not found")
)

type DoctorService struct {
	db *gorm.DB
}

func NewDoctorService(db *gorm.DB) *DoctorService {
	return &DoctorService{db: db}
}

// CreateProfile inserts the profile and promotes the user to doctor in
// one transaction. Promoting an existing doctor is a no-op; a second
// profile for the same user is rejected.
func (s *DoctorService) CreateProfile(userID uuid.UUID, req *dto.DoctorProfileRequest) (*models.DoctorProfile, error) {
	var existing models.DoctorProfile
	if err := s.db.Where("user_id = ?", userID).First(&existing).Error; err == nil {
		return nil, ErrProfileExists
	}

	profile := models.DoctorProfile{
		ID:              uuid.New(),
		UserID:          userID,
		Specialization:  req.Specialization,
		ExperienceYears: req.ExperienceYears,
		LicenseNumber:   req.LicenseNumber,
		Bio:             req.Bio,
		ConsultationFee: req.ConsultationFee,
		Available:       true,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).Where("id = ?", userID).Update("role", models.RoleDoctor).Error; err != nil {
			return err
		}
		return tx.Create(&profile).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create doctor profile: %w", err)
	}

	return &profile, nil
}

// ListAvailable returns every available profile joined with its owner's
// name and picture. A missing owner drops the user field, not the row.
func (s *DoctorService) ListAvailable() ([]dto.DoctorListEntry, error) {
	var profiles []models.DoctorProfile
	if err := s.db.Where("available = ?", true).Find(&profiles).Error; err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}

	entries := make([]dto.DoctorListEntry, 0, len(profiles))
	for _, p := range profiles {
		entry := dto.DoctorListEntry{DoctorProfile: p}
		var owner models.User
		if err := s.db.First(&owner, "id = ?", p.UserID).Error; err == nil {
			entry.User = &dto.UserSummary{Name: owner.Name, Picture: owner.Picture}
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func (s *DoctorService) GetProfileByUserID(userID uuid.UUID) (*models.DoctorProfile, error) {
	var profile models.DoctorProfile
	err := s.db.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("profile lookup failed: %w", err)
	}
	return &profile, nil
}

// SetAvailability overwrites the available flag unconditionally. No
// profile means nothing to update; that is not an error.
func (s *DoctorService) SetAvailability(userID uuid.UUID, available bool) error {
	return s.db.Model(&models.DoctorProfile{}).
		Where("user_id = ?", userID).
		Update("available", available).Error
}
