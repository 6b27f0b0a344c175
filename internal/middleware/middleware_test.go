package middleware_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"autoworld/internal/domain"
	"autoworld/internal/middleware"
	"autoworld/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Manual mock for middleware.SessionAuthenticator
type MockSessionAuthenticator struct {
	AuthenticateFunc func(ctx context.Context, token string) (string, error)
}

func (m *MockSessionAuthenticator) Authenticate(ctx context.Context, token string) (string, error) {
	if m.AuthenticateFunc != nil {
		return m.AuthenticateFunc(ctx, token)
	}
	return "", errors.New("AuthenticateFunc not set on mock")
}

func newTestApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
}

func decodeError(t *testing.T, body io.Reader) middleware.ErrorResponse {
	t.Helper()
	var out middleware.ErrorResponse
	require.NoError(t, json.NewDecoder(body).Decode(&out))
	return out
}

func TestErrorHandler_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", domain.NewNotFoundError("sound not found: x"), 404, "NOT_FOUND"},
		{"session not found", domain.NewSessionNotFoundError("s1"), 404, "SESSION_NOT_FOUND"},
		{"invalid input", domain.NewInvalidInputError("bad"), 400, "INVALID_INPUT"},
		{"invalid category", domain.NewInvalidCategoryError("boats"), 400, "INVALID_CATEGORY"},
		{"unauthorized", domain.NewUnauthorizedError("no"), 401, "UNAUTHORIZED"},
		{"conflict", domain.NewConflictError("no video is open"), 409, "CONFLICT"},
		{"answer required", domain.NewAnswerRequiredError(2), 409, "ANSWER_REQUIRED"},
		{"internal", domain.NewInternalError("boom", errors.New("cause")), 500, "INTERNAL_ERROR"},
		{"fiber", fiber.NewError(fiber.StatusMethodNotAllowed, "nope"), 405, "HTTP_ERROR"},
		{"unknown", errors.New("plain"), 500, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp()
			app.Get("/", func(c *fiber.Ctx) error { return tt.err })

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			body := decodeError(t, resp.Body)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantStatus, body.Status)
		})
	}
}

func TestErrorHandler_ValidationErrors(t *testing.T) {
	app := newTestApp()
	app.Post("/", func(c *fiber.Ctx) error {
		return domain.ValidationErrors{domain.NewMissingFieldError("email", domain.MsgEmailRequired)}
	})

	resp, err := app.Test(httptest.NewRequest("POST", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body middleware.ValidationErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "VALIDATION_ERROR", body.Code)
	require.Len(t, body.Errors, 1)
	assert.Equal(t, domain.CodeMissingField, body.Errors[0].Code)
	assert.Equal(t, domain.MsgEmailRequired, body.Errors[0].Message)
}

func TestErrorHandler_DomainContextBecomesDetails(t *testing.T) {
	app := newTestApp()
	app.Get("/", func(c *fiber.Ctx) error {
		return domain.NewInvalidInputError("choice out of range").WithContext("choice", 9)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	body := decodeError(t, resp.Body)
	assert.Equal(t, float64(9), body.Details["choice"])
}

func TestRequireSession(t *testing.T) {
	tests := []struct {
		name          string
		authHeader    string
		authenticate  func(ctx context.Context, token string) (string, error)
		wantStatus    int
		wantSessionID interface{}
	}{
		{
			name:       "No Auth Header",
			wantStatus: fiber.StatusUnauthorized,
		},
		{
			name:       "Not Bearer",
			authHeader: "Basic abc",
			wantStatus: fiber.StatusUnauthorized,
		},
		{
			name:       "Empty Token",
			authHeader: "Bearer ",
			wantStatus: fiber.StatusUnauthorized,
		},
		{
			name:       "Valid Token",
			authHeader: "Bearer good",
			authenticate: func(ctx context.Context, token string) (string, error) {
				assert.Equal(t, "good", token)
				return "session-1", nil
			},
			wantStatus:    fiber.StatusOK,
			wantSessionID: "session-1",
		},
		{
			name:       "Invalid Token",
			authHeader: "Bearer bad",
			authenticate: func(ctx context.Context, token string) (string, error) {
				return "", domain.NewUnauthorizedError("invalid or expired session token")
			},
			wantStatus: fiber.StatusUnauthorized,
		},
		{
			name:       "Expired Session",
			authHeader: "Bearer stale",
			authenticate: func(ctx context.Context, token string) (string, error) {
				return "", domain.NewSessionNotFoundError("s0")
			},
			wantStatus: fiber.StatusNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			auth := &MockSessionAuthenticator{AuthenticateFunc: tc.authenticate}
			app := newTestApp()
			var sessionIDLocal interface{}
			app.Get("/protected", middleware.RequireSession(auth), func(c *fiber.Ctx) error {
				sessionIDLocal = c.Locals(middleware.SessionIDKey)
				id, err := middleware.SessionID(c)
				if err != nil {
					return err
				}
				return c.SendString(id)
			})

			req := httptest.NewRequest("GET", "/protected", nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, resp.StatusCode)
			assert.Equal(t, tc.wantSessionID, sessionIDLocal)
		})
	}
}

func TestSessionID_Missing(t *testing.T) {
	app := newTestApp()
	app.Get("/", func(c *fiber.Ctx) error {
		_, err := middleware.SessionID(c)
		return err
	})
	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestValidateSlugParam(t *testing.T) {
	vm := middleware.NewValidationMiddleware(validation.NewValidator())
	app := newTestApp()
	app.Use(middleware.RequestLogger())
	app.Get("/sounds/:type", vm.ValidateSlugParam("type"), func(c *fiber.Ctx) error {
		return c.SendString(c.Params("type"))
	})
	app.Get("/gallery", vm.ValidateSlugQuery("category"), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	tests := []struct {
		path       string
		wantStatus int
	}{
		{"/sounds/horn", fiber.StatusOK},
		{"/sounds/HORN", fiber.StatusBadRequest},
		{"/sounds/horn%20blast", fiber.StatusBadRequest},
		{"/gallery", fiber.StatusNoContent},
		{"/gallery?category=suv", fiber.StatusNoContent},
		{"/gallery?category=S%24UV", fiber.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}
