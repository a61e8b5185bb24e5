package services

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/medconnect/telemed-backend/internal/dto"
	"github.com/medconnect/telemed-backend/internal/models"
	"gorm.io/gorm"
)

func createUser(t *testing.T, db *gorm.DB, role string) models.User {
	t.Helper()
	user := models.User{
		ID:      uuid.New(),
		Email:   uuid.NewString() + "@example.com",
		Name:    "Test User",
		Picture: "https://example.com/u.png",
		Role:    role,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

func profileRequest() *dto.DoctorProfileRequest {
	return &dto.DoctorProfileRequest{
		Specialization:  "Dermatology",
		ExperienceYears: 5,
		LicenseNumber:   "MD55555",
		Bio:             "Skin specialist.",
		ConsultationFee: 80.0,
	}
}

func TestCreateProfile_PromotesUserToDoctor(t *testing.T) {
	db := newTestDB(t)
	svc := NewDoctorService(db)
	user := createUser(t, db, models.RolePatient)

	profile, err := svc.CreateProfile(user.ID, profileRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !profile.Available {
		t.Error("new profiles must start available")
	}

	var updated models.User
	if err := db.First(&updated, "id = ?", user.ID).Error; err != nil {
		t.Fatal(err)
	}
	if updated.Role != models.RoleDoctor {
		t.Errorf("profile creation must promote the user to doctor, got %q", updated.Role)
	}
}

func TestCreateProfile_RejectsDuplicate(t *testing.T) {
	db := newTestDB(t)
	svc := NewDoctorService(db)
	user := createUser(t, db, models.RolePatient)

	if _, err := svc.CreateProfile(user.ID, profileRequest()); err != nil {
		t.Fatal(err)
	}

	_, err := svc.CreateProfile(user.ID, profileRequest())
	if !errors.Is(err, ErrProfileExists) {
		t.Fatalf("expected ErrProfileExists, got %v", err)
	}

	var count int64
	db.Model(&models.DoctorProfile{}).Where("user_id = ?", user.ID).Count(&count)
	if count != 1 {
		t.Errorf("expected a single profile, got %d", count)
	}
}

func TestListAvailable(t *testing.T) {
	db := newTestDB(t)
	svc := NewDoctorService(db)

	available := createUser(t, db, models.RolePatient)
	if _, err := svc.CreateProfile(available.ID, profileRequest()); err != nil {
		t.Fatal(err)
	}

	hidden := createUser(t, db, models.RolePatient)
	if _, err := svc.CreateProfile(hidden.ID, profileRequest()); err != nil {
		t.Fatal(err)
	}
	if err := svc.SetAvailability(hidden.ID, false); err != nil {
		t.Fatal(err)
	}

	entries, err := svc.ListAvailable()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 available doctor, got %d", len(entries))
	}
	if entries[0].UserID != available.ID {
		t.Error("wrong doctor listed")
	}
	if entries[0].User == nil || entries[0].User.Name != available.Name {
		t.Error("listing must join the owning user's name and picture")
	}
}

func TestListAvailable_MissingOwnerOmitsUserField(t *testing.T) {
	db := newTestDB(t)
	svc := NewDoctorService(db)

	profile := models.DoctorProfile{
		ID:             uuid.New(),
		UserID:         uuid.New(), // no such user
		Specialization: "Cardiology",
		Available:      true,
	}
	if err := db.Create(&profile).Error; err != nil {
		t.Fatal(err)
	}

	entries, err := svc.ListAvailable()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected the profile row to survive, got %d entries", len(entries))
	}
	if entries[0].User != nil {
		t.Error("missing owner must omit the user field, not fail")
	}
}

func TestGetProfileByUserID_NotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewDoctorService(db)

	_, err := svc.GetProfileByUserID(uuid.New())
	if !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestSetAvailability_Toggle(t *testing.T) {
	db := newTestDB(t)
	svc := NewDoctorService(db)
	user := createUser(t, db, models.RolePatient)
	if _, err := svc.CreateProfile(user.ID, profileRequest()); err != nil {
		t.Fatal(err)
	}

	if err := svc.SetAvailability(user.ID, false); err != nil {
		t.Fatal(err)
	}
	profile, err := svc.GetProfileByUserID(user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if profile.Available {
		t.Error("expected availability false")
	}

	if err := svc.SetAvailability(user.ID, true); err != nil {
		t.Fatal(err)
	}
	profile, err = svc.GetProfileByUserID(user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !profile.Available {
		t.Error("expected availability true")
	}

	// No profile is not an error.
	if err := svc.SetAvailability(uuid.New(), true); err != nil {
		t.Errorf("availability update without a profile must be a no-op, got %v", err)
	}
}

func TestSeedSampleDoctors_Idempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewDoctorService(db)

	if err := svc.SeedSampleDoctors(); err != nil {
		t.Fatal(err)
	}
	if err := svc.SeedSampleDoctors(); err != nil {
		t.Fatal(err)
	}

	var users, profiles int64
	db.Model(&models.User{}).Count(&users)
	db.Model(&models.DoctorProfile{}).Count(&profiles)
	if users != 3 || profiles != 3 {
		t.Fatalf("expected 3 users and 3 profiles, got %d and %d", users, profiles)
	}

	var seeded []models.User
	db.Find(&seeded)
	for _, u := range seeded {
		if u.Role != models.RoleDoctor {
			t.Errorf("seeded user %s must be a doctor, got %q", u.Email, u.Role)
		}
	}

	entries, err := svc.ListAvailable()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 available doctors, got %d", len(entries))
	}
	for _, e := range entries {
		if e.User == nil || e.User.Name == "" || e.User.Picture == "" {
			t.Error("seeded doctors must list with populated user info")
		}
	}
}
