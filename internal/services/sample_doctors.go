package services

import (
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/medconnect/telemed-backend/internal/models"
	"gorm.io/gorm"
)

type sampleDoctor struct {
	Email           string
	Name            string
	Picture         string
	Specialization  string
	ExperienceYears int
	LicenseNumber   string
	Bio             string
	ConsultationFee float64
}

var sampleDoctors = []sampleDoctor{
	{
		Email:           "dr.smith@medconnect.com",
		Name:            "Dr. Sarah Smith",
		Picture:         "https://images.unsplash.com/photo-1559839734-2b71ea197ec2?w=150&h=150&fit=crop&crop=face",
		Specialization:  "General Medicine",
		ExperienceYears: 8,
		LicenseNumber:   "MD12345",
		Bio:             "Experienced family physician specializing in rural healthcare delivery.",
		ConsultationFee: 75.0,
	},
	{
		Email:           "dr.johnson@medconnect.com",
		Name:            "Dr. Michael Johnson",
		Picture:         "https://images.unsplash.com/photo-1612349317150-e413f6a5b16d?w=150&h=150&fit=crop&crop=face",
		Specialization:  "Cardiology",
		ExperienceYears: 12,
		LicenseNumber:   "MD67890",
		Bio:             "Cardiologist with expertise in remote heart monitoring and consultation.",
		ConsultationFee: 120.0,
	},
	{
		Email:           "dr.wilson@medconnect.com",
		Name:            "Dr. Emily Wilson",
		Picture:         "https://images.unsplash.com/photo-1594824804732-ca8db3ac9421?w=150&h=150&fit=crop&crop=face",
		Specialization:  "Pediatrics",
		ExperienceYears: 6,
		LicenseNumber:   "MD11122",
		Bio:             "Pediatrician dedicated to providing quality healthcare for children in underserved areas.",
		ConsultationFee: 90.0,
	},
}

// SeedSampleDoctors creates the demo doctor accounts. Keyed by email, so
// running it again leaves existing accounts untouched.
func (s *DoctorService) SeedSampleDoctors() error {
	seeded := 0

	for _, sd := range sampleDoctors {
		var existing models.User
		err := s.db.Where("email = ?", sd.Email).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		user := models.User{
			ID:      uuid.New(),
			Email:   sd.Email,
			Name:    sd.Name,
			Picture: sd.Picture,
			Role:    models.RoleDoctor,
		}
		profile := models.DoctorProfile{
			ID:              uuid.New(),
			UserID:          user.ID,
			Specialization:  sd.Specialization,
			ExperienceYears: sd.ExperienceYears,
			LicenseNumber:   sd.LicenseNumber,
			Bio:             sd.Bio,
			ConsultationFee: sd.ConsultationFee,
			Available:       true,
		}

		err = s.db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
			return tx.Create(&profile).Error
		})
		if err != nil {
			return err
		}
		seeded++
	}

	if seeded > 0 {
		slog.Info("seeded sample doctors", "new", seeded, "total", len(sampleDoctors))
	}
	return nil
}
