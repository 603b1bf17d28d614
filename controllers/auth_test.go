package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerApp() *fiber.App {
	app := fiber.New()
	app.Post("/auth/register", Register)
	return app
}

func postRegister(t *testing.T, app *fiber.App, input RegisterInput) *http.Response {
	t.Helper()
	payload, err := json.Marshal(input)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

// These all fail during input validation, before any store access.
func TestRegisterValidation(t *testing.T) {
	app := registerApp()

	tests := []struct {
		name    string
		input   RegisterInput
		wantErr string
	}{
		{
			name:    "missing email",
			input:   RegisterInput{Password: "secret1", ConfirmPassword: "secret1", FullName: "Jane Doe"},
			wantErr: "Missing required fields",
		},
		{
			name:    "missing full name",
			input:   RegisterInput{Email: "jane@example.com", Password: "secret1", ConfirmPassword: "secret1"},
			wantErr: "Missing required fields",
		},
		{
			name:    "password too short",
			input:   RegisterInput{Email: "jane@example.com", Password: "12345", ConfirmPassword: "12345", FullName: "Jane Doe"},
			wantErr: "Password must be at least 6 characters",
		},
		{
			name:    "password mismatch",
			input:   RegisterInput{Email: "jane@example.com", Password: "secret1", ConfirmPassword: "secret2", FullName: "Jane Doe"},
			wantErr: "Passwords do not match",
		},
		{
			name:    "unknown user type",
			input:   RegisterInput{Email: "jane@example.com", Password: "secret1", ConfirmPassword: "secret1", FullName: "Jane Doe", UserType: "admin"},
			wantErr: "user_type must be 'client' or 'lawyer'",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp := postRegister(t, app, tc.input)
			defer resp.Body.Close()

			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
			var body map[string]string
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tc.wantErr, body["error"])
		})
	}
}

func TestRegisterRejectsWhitespaceEmail(t *testing.T) {
	resp := postRegister(t, registerApp(), RegisterInput{
		Email:           "   ",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		FullName:        "Jane Doe",
	})
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestRefreshRejectsInvalidToken(t *testing.T) {
	app := fiber.New()
	app.Post("/auth/refresh", RefreshToken)

	payload := []byte(`{"refreshToken":"not.a.valid.token"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Invalid refresh token", body["message"])
}

func TestRegisterRejectsMalformedBody(t *testing.T) {
	app := registerApp()
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
