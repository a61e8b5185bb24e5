package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/medconnect/telemed-backend/internal/dto"
	"github.com/medconnect/telemed-backend/internal/middleware"
	"github.com/medconnect/telemed-backend/internal/services"
)

type DoctorHandler struct {
	doctorService *services.DoctorService
}

func NewDoctorHandler(doctorService *services.DoctorService) *DoctorHandler {
	return &DoctorHandler{doctorService: doctorService}
}

// CreateProfile claims a doctor profile for the caller and promotes
// them to the doctor role.
func (h *DoctorHandler) CreateProfile(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var req dto.DoctorProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	profile, err := h.doctorService.CreateProfile(user.ID, &req)
	if err != nil {
		if errors.Is(err, services.ErrProfileExists) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: "Doctor profile already exists",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create doctor profile",
		})
	}

	return c.JSON(dto.ProfileResponse{Profile: profile, Success: true})
}

// ListAvailable returns every available doctor with owner info.
func (h *DoctorHandler) ListAvailable(c *fiber.Ctx) error {
	doctors, err := h.doctorService.ListAvailable()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list doctors",
		})
	}
	return c.JSON(dto.DoctorListResponse{Doctors: doctors})
}

// GetMyProfile returns the calling doctor's own profile.
func (h *DoctorHandler) GetMyProfile(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	profile, err := h.doctorService.GetProfileByUserID(user.ID)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Doctor profile not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load profile",
		})
	}

	return c.JSON(dto.ProfileResponse{Profile: profile})
}

// UpdateAvailability overwrites the caller's availability flag.
func (h *DoctorHandler) UpdateAvailability(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var req dto.AvailabilityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := h.doctorService.SetAvailability(user.ID, req.Available); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update availability",
		})
	}

	return c.JSON(dto.SuccessResponse{Success: true})
}
