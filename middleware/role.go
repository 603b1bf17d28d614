package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lawgicai/lawgic-backend/models"
)

// RequireRole rejects callers whose user type does not match. The response
// carries the dashboard path matching the caller's actual role so the client
// can redirect.
func RequireRole(required models.UserType) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userType, ok := c.Locals("userType").(models.UserType)
		if !ok {
			return unauthorized(c, "User role not found in context")
		}

		if userType != required {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error":    "You don't have the required role to perform this action",
				"redirect": userType.DashboardPath(),
			})
		}

		return c.Next()
	}
}
