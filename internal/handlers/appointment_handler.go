package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/medconnect/telemed-backend/internal/dto"
	"github.com/medconnect/telemed-backend/internal/middleware"
	"github.com/medconnect/telemed-backend/internal/services"
)

type AppointmentHandler struct {
	appointmentService *services.AppointmentService
}

func NewAppointmentHandler(appointmentService *services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: appointmentService}
}

// Create books an appointment for the caller against an available doctor.
func (h *AppointmentHandler) Create(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var req dto.AppointmentCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	appointment, err := h.appointmentService.Create(user.ID, &req)
	if err != nil {
		if errors.Is(err, services.ErrDoctorUnavailable) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Doctor not available",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create appointment",
		})
	}

	return c.JSON(dto.AppointmentResponse{Appointment: appointment, Success: true})
}

// List returns the caller's appointments with role-dependent enrichment.
func (h *AppointmentHandler) List(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	appointments, err := h.appointmentService.ListForUser(user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list appointments",
		})
	}

	return c.JSON(dto.AppointmentListResponse{Appointments: appointments})
}

// Join returns the appointment record for the video call.
func (h *AppointmentHandler) Join(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	appointment, err := h.appointmentService.Join(c.Params("id"), user.ID)
	if err != nil {
		if errors.Is(err, services.ErrAppointmentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Appointment not found",
			})
		}
		if errors.Is(err, services.ErrAccessDenied) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Access denied",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to join appointment",
		})
	}

	return c.JSON(dto.AppointmentResponse{Appointment: appointment})
}

// Start marks the appointment active and returns the room id.
func (h *AppointmentHandler) Start(c *fiber.Ctx) error {
	roomID, err := h.appointmentService.Start(c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrAppointmentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Appointment not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to start appointment",
		})
	}

	return c.JSON(dto.StartAppointmentResponse{VideoRoomID: roomID, Success: true})
}
