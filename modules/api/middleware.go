package api

import (
	"strings"

	"github.com/example/task-tracker/modules/auth"
	"github.com/gofiber/fiber/v2"
)

const (
	// IdentityContextKey is the key used to store the authenticated
	// identity in the Fiber context.
	IdentityContextKey = "identity"
)

// AuthMiddleware validates the bearer token on protected routes and
// stores the resolved Identity for downstream handlers. On any failure
// it short-circuits with 401 before service logic runs.
func AuthMiddleware(authPort auth.AuthPort) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(MessageResponse{
				Msg: "Authorization header is required",
			})
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(MessageResponse{
				Msg: "Invalid authorization header format. Use: Bearer <token>",
			})
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(MessageResponse{
				Msg: "Token is required",
			})
		}

		identity, err := authPort.ValidateToken(c.UserContext(), token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(MessageResponse{
				Msg: "Invalid or expired token",
			})
		}

		c.Locals(IdentityContextKey, identity)

		return c.Next()
	}
}
