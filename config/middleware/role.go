package middleware

import "github.com/gofiber/fiber/v2"

// RequireHR rejects callers whose role is not hr.
func RequireHR() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := CurrentUser(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authentication required"})
		}
		if user.Role != "hr" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Unauthorized"})
		}
		return c.Next()
	}
}
