package models

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Status(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want int
	}{
		{"validation", NewValidationError("bad"), fiber.StatusBadRequest},
		{"unauthorized", NewUnauthorizedError("no token"), fiber.StatusUnauthorized},
		{"forbidden", NewForbiddenError("User not authorized"), fiber.StatusForbidden},
		{"not found", NewNotFoundError("Post"), fiber.StatusNotFound},
		{"conflict", NewConflictError("User already exists"), fiber.StatusConflict},
		{"internal", NewInternalError(errors.New("boom")), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Status())
		})
	}
}

func TestNewNotFoundError_Message(t *testing.T) {
	assert.Equal(t, "Profile not found", NewNotFoundError("Profile").Message)
}

func TestAsAppError(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), NewConflictError("dup"))
	assert.Equal(t, CodeConflict, AsAppError(wrapped).Code)
	assert.True(t, HasCode(wrapped, CodeConflict))

	plain := AsAppError(errors.New("driver exploded"))
	assert.Equal(t, CodeInternal, plain.Code)
	assert.Equal(t, "Server Error", plain.Message)
}

func respond(t *testing.T, err error) (int, ErrorResponse) {
	t.Helper()
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error { return RespondWithError(c, err) })

	resp, testErr := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, testErr)
	defer resp.Body.Close()

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestRespondWithError_Validation(t *testing.T) {
	status, body := respond(t, NewFieldValidationError([]FieldError{
		{Msg: "Name is required", Param: "name"},
		{Msg: "Please include a valid email", Param: "email"},
	}))

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, CodeValidation, body.Code)
	assert.Empty(t, body.Msg)
	require.Len(t, body.Errors, 2)
	assert.Equal(t, "email", body.Errors[1].Param)
}

func TestRespondWithError_HidesInternalDetail(t *testing.T) {
	status, body := respond(t, errors.New("pq: relation \"users\" does not exist"))

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, CodeInternal, body.Code)
	assert.Equal(t, "Server Error", body.Msg)
}

func TestRespondWithError_Forbidden(t *testing.T) {
	status, body := respond(t, NewForbiddenError("User not authorized"))

	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Equal(t, ErrorResponse{Code: CodeForbidden, Msg: "User not authorized"}, body)
}

func TestNewHTTPError(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		message  string
		wantCode string
		wantMsg  string
	}{
		{"method not allowed", fiber.StatusMethodNotAllowed, "Method Not Allowed", "METHOD_NOT_ALLOWED", "Method Not Allowed"},
		{"body too large", fiber.StatusRequestEntityTooLarge, "", "REQUEST_ENTITY_TOO_LARGE", "Request Entity Too Large"},
		{"bad request", fiber.StatusBadRequest, "Bad Request", "BAD_REQUEST", "Bad Request"},
		{"not found keeps taxonomy code", fiber.StatusNotFound, "Route not found", CodeNotFound, "Route not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewHTTPError(tt.status, tt.message)
			assert.Equal(t, tt.status, err.Status())

			status, body := respond(t, err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, ErrorResponse{Code: tt.wantCode, Msg: tt.wantMsg}, body)
		})
	}
}
