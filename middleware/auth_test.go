package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lawgicai/lawgic-backend/models"
)

func guardedApp() *fiber.App {
	app := fiber.New()
	lawyer := app.Group("/lawyer", Protected(), RequireRole(models.UserTypeLawyer))
	lawyer.Get("/dashboard", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"profile_id": c.Locals("profileID"),
			"user_type":  c.Locals("userType"),
		})
	})
	return app
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(Secret())
	require.NoError(t, err)
	return signed
}

func clientToken(t *testing.T, userType models.UserType) string {
	return signToken(t, jwt.MapClaims{
		"id":         "user-1",
		"profile_id": "profile-1",
		"email":      "test@example.com",
		"user_type":  string(userType),
		"jti":        "jti-1",
		"exp":        time.Now().Add(time.Hour).Unix(),
	})
}

func doRequest(t *testing.T, app *fiber.App, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/lawyer/dashboard", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestProtectedRejectsMissingToken(t *testing.T) {
	resp := doRequest(t, guardedApp(), "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "/auth", decodeBody(t, resp)["redirect"])
}

func TestProtectedRejectsGarbageToken(t *testing.T) {
	resp := doRequest(t, guardedApp(), "not.a.jwt")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "/auth", decodeBody(t, resp)["redirect"])
}

func TestProtectedRejectsExpiredToken(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"id":         "user-1",
		"profile_id": "profile-1",
		"user_type":  "lawyer",
		"jti":        "jti-1",
		"exp":        time.Now().Add(-time.Hour).Unix(),
	})
	resp := doRequest(t, guardedApp(), token)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedRejectsTokenWithoutProfile(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"id":        "user-1",
		"user_type": "lawyer",
		"exp":       time.Now().Add(time.Hour).Unix(),
	})
	resp := doRequest(t, guardedApp(), token)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireRoleRedirectsClientToOwnDashboard(t *testing.T) {
	resp := doRequest(t, guardedApp(), clientToken(t, models.UserTypeClient))
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "/user-dashboard", decodeBody(t, resp)["redirect"])
}

func TestRequireRoleAdmitsMatchingRole(t *testing.T) {
	resp := doRequest(t, guardedApp(), clientToken(t, models.UserTypeLawyer))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "profile-1", body["profile_id"])
	assert.Equal(t, "lawyer", body["user_type"])
}

func TestProtectedRejectsUnknownRole(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"id":         "user-1",
		"profile_id": "profile-1",
		"user_type":  "admin",
		"jti":        "jti-1",
		"exp":        time.Now().Add(time.Hour).Unix(),
	})
	resp := doRequest(t, guardedApp(), token)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
