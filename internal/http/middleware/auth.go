package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"studygeni/internal/auth"
)

const (
	// UserIDLocalKey is the context locals key holding the authenticated user's ID.
	UserIDLocalKey = "user_id"
	// UserRoleLocalKey is the context locals key holding the authenticated user's role.
	UserRoleLocalKey = "user_role"
)

// TokenVerifier validates an access token and returns its claims.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// Auth requires a valid Bearer token. On success the user's ID and role are
// stored in context locals; handlers downstream treat them as verified.
func Auth(verifier TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		tokenStr, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenStr == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "authentication required")
		}

		claims, err := verifier.Verify(tokenStr)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid or expired token")
		}

		c.Locals(UserIDLocalKey, claims.UserID)
		c.Locals(UserRoleLocalKey, claims.Role)

		return c.Next()
	}
}

// RequireRole rejects authenticated requests whose role does not match.
// It must run after Auth.
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		got, _ := c.Locals(UserRoleLocalKey).(string)
		if got != role {
			return fiber.NewError(fiber.StatusForbidden, "insufficient permissions")
		}
		return c.Next()
	}
}
