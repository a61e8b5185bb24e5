package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/medconnect/telemed-backend/internal/config"
	"github.com/medconnect/telemed-backend/internal/dto"
	"github.com/medconnect/telemed-backend/internal/identity"
	"github.com/medconnect/telemed-backend/internal/middleware"
	"github.com/medconnect/telemed-backend/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
}

func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{authService: authService, cfg: cfg}
}

// ProcessSession exchanges the external session id for a local session
// and sets the bearer cookie.
func (h *AuthHandler) ProcessSession(c *fiber.Ctx) error {
	var req dto.ProcessSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	user, token, err := h.authService.ProcessSession(c.UserContext(), req.SessionID)
	if err != nil {
		if errors.Is(err, services.ErrSessionIDRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Session ID required",
			})
		}
		if errors.Is(err, identity.ErrInvalidSession) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid session",
			})
		}
		slog.Error("session processing failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Session processing failed",
		})
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.cfg.SessionTTL.Seconds()),
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteNoneMode,
	})

	return c.JSON(dto.SessionResponse{User: user, Success: true})
}

// Me returns the caller's user record.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return c.JSON(dto.MeResponse{User: middleware.CurrentUser(c)})
}

// Logout clears the session matching the presented token. Succeeds even
// when nothing matched.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.authService.Logout(middleware.TokenFromRequest(c)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to logout",
		})
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteNoneMode,
	})

	return c.JSON(dto.SuccessResponse{Success: true})
}
