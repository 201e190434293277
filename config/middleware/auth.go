package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"hr-management-backend/models"
	"hr-management-backend/pkg/paseto"
	"hr-management-backend/repository"
)

// AuthMiddleware resolves the caller to a stored user. Clients either
// send the X-User-Email and X-User-Role header pair, or a PASETO
// bearer token in the Authorization header. The matched user is stored
// in c.Locals("user").
func AuthMiddleware(users repository.UserRepository, maker *paseto.Maker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if authHeader := c.Get("Authorization"); authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if !(len(parts) == 2 && parts[0] == "Bearer") {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authorization header format must be Bearer <token>"})
			}

			claims, err := maker.ValidateToken(parts[1])
			if err != nil {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or expired token"})
			}

			user, ok := users.FindByID(claims.UserID)
			if !ok {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not found"})
			}

			c.Locals("user", user)
			return c.Next()
		}

		email := c.Get("X-User-Email")
		role := c.Get("X-User-Role")
		if email == "" || role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authentication required"})
		}

		user, ok := users.FindByEmailAndRole(email, role)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not found"})
		}

		c.Locals("user", user)
		return c.Next()
	}
}

// CurrentUser returns the authenticated user placed by AuthMiddleware.
func CurrentUser(c *fiber.Ctx) (models.User, bool) {
	user, ok := c.Locals("user").(models.User)
	return user, ok
}
