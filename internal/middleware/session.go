package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/medconnect/telemed-backend/internal/dto"
	"github.com/medconnect/telemed-backend/internal/models"
	"github.com/medconnect/telemed-backend/internal/services"
)

// SessionCookie is the cookie carrying the bearer credential.
const SessionCookie = "session_token"

const userLocal = "currentUser"

// TokenFromRequest extracts the bearer credential, cookie first, then
// the Authorization header.
func TokenFromRequest(c *fiber.Ctx) string {
	if token := c.Cookies(SessionCookie); token != "" {
		return token
	}
	auth := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

// RequireAuth resolves the credential against the session store and
// stores the user in context locals. Missing, expired and unknown
// tokens all fail the same way.
func RequireAuth(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := auth.ResolveUser(TokenFromRequest(c))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "session resolution failed")
		}
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Authentication required",
			})
		}
		c.Locals(userLocal, user)
		return c.Next()
	}
}

// RequireDoctor runs after RequireAuth and rejects non-doctor users.
func RequireDoctor() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Authentication required",
			})
		}
		if user.Role != models.RoleDoctor {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Doctor access required",
			})
		}
		return c.Next()
	}
}

// CurrentUser returns the authenticated user stored by RequireAuth.
func CurrentUser(c *fiber.Ctx) *models.User {
	if user, ok := c.Locals(userLocal).(*models.User); ok {
		return user
	}
	return nil
}
