package server

import (
	"log/slog"
	"strconv"

	"devconnector/internal/middleware"
	"devconnector/internal/models"

	"github.com/gofiber/fiber/v2"
)

// respondError writes err using the standard error body. Internal errors are
// logged with their cause; the client only sees "Server Error".
func respondError(c *fiber.Ctx, err error) error {
	appErr := models.AsAppError(err)
	if appErr.Code == models.CodeInternal {
		middleware.Logger.ErrorContext(c.UserContext(), "request failed",
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.Any("error", err),
		)
	}
	return models.RespondWithError(c, appErr)
}

// parseID reads a numeric route parameter. Malformed ids cannot match any
// document, so they are reported as the resource not being found.
func parseID(c *fiber.Ctx, param, resource string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(param), 10, 64)
	if err != nil || id == 0 {
		return 0, models.NewNotFoundError(resource)
	}
	return uint(id), nil
}

// parseBody decodes the JSON request body into dest.
func parseBody(c *fiber.Ctx, dest any) error {
	if err := c.BodyParser(dest); err != nil {
		return models.NewValidationError("Invalid request body")
	}
	return nil
}

// callerID returns the authenticated user set by RequireAuth.
func callerID(c *fiber.Ctx) (uint, error) {
	id, ok := middleware.UserID(c)
	if !ok {
		return 0, models.NewUnauthorizedError("No token, authorization denied")
	}
	return id, nil
}
