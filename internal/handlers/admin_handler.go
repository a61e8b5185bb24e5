package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/medconnect/telemed-backend/internal/dto"
	"github.com/medconnect/telemed-backend/internal/services"
)

type AdminHandler struct {
	doctorService *services.DoctorService
}

func NewAdminHandler(doctorService *services.DoctorService) *AdminHandler {
	return &AdminHandler{doctorService: doctorService}
}

// InitSampleDoctors seeds the demo doctor accounts. Idempotent per email.
func (h *AdminHandler) InitSampleDoctors(c *fiber.Ctx) error {
	if err := h.doctorService.SeedSampleDoctors(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to seed sample doctors",
		})
	}
	return c.JSON(fiber.Map{"message": "Sample doctors initialized", "success": true})
}
