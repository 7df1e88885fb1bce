package middleware

import (
	"context"
	"errors"
	"strings"

	"devconnector/internal/auth"
	"devconnector/internal/models"

	"github.com/gofiber/fiber/v2"
)

// TokenHeader is the primary header carrying the session token.
const TokenHeader = "x-auth-token"

// RequireAuth rejects requests without a valid token and stores the caller's
// id in the "userID" local and the request context. It never reads the database.
func RequireAuth(verifier auth.TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := verifier.Verify(tokenFromRequest(c))
		if err != nil {
			AuthFailures.WithLabelValues(failureReason(err)).Inc()
			Logger.WarnContext(c.UserContext(), "authentication rejected",
				"path", c.Path(), "error", err)
			return models.RespondWithError(c, err)
		}

		c.Locals("userID", userID)
		c.SetUserContext(context.WithValue(c.UserContext(), UserIDKey, userID))
		return c.Next()
	}
}

// UserID returns the authenticated caller stored by RequireAuth.
func UserID(c *fiber.Ctx) (uint, bool) {
	id, ok := c.Locals("userID").(uint)
	return id, ok && id != 0
}

func tokenFromRequest(c *fiber.Ctx) string {
	if token := strings.TrimSpace(c.Get(TokenHeader)); token != "" {
		return token
	}
	header := c.Get(fiber.HeaderAuthorization)
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, auth.ErrMissingToken):
		return "missing"
	case errors.Is(err, auth.ErrExpiredToken):
		return "expired"
	default:
		return "invalid"
	}
}
