package middleware

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Yotam1312/EasyPass/internal/auth"
)

const (
	userIDLocal   = "user_id"
	usernameLocal = "username"
)

// JWTAuth is the single authentication point for protected routes: it
// extracts the bearer token from the Authorization header, verifies it, and
// injects the verified identity into the request locals. Handlers behind it
// trust that identity unconditionally.
func JWTAuth(tokens *auth.Tokens) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authz := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			return fiber.NewError(http.StatusUnauthorized, "missing bearer token")
		}
		claims, err := tokens.Verify(strings.TrimSpace(authz[len("Bearer "):]))
		if err != nil {
			return fiber.NewError(http.StatusUnauthorized, "invalid token")
		}

		c.Locals(userIDLocal, claims.UserID)
		c.Locals(usernameLocal, claims.Username)
		return c.Next()
	}
}

// UserID returns the verified user id injected by JWTAuth, or zero when the
// request never passed the guard.
func UserID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(userIDLocal).(int64)
	return id
}

// Username returns the verified username injected by JWTAuth.
func Username(c *fiber.Ctx) string {
	name, _ := c.Locals(usernameLocal).(string)
	return name
}
