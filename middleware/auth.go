package middleware

import (
	"fmt"
	"os"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"

	"github.com/lawgicai/lawgic-backend/models"
	"github.com/lawgicai/lawgic-backend/redis"
)

// Secret returns the JWT signing key.
func Secret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "solid_secret_key" // Replace with secure key in production
	}
	return []byte(secret)
}

// Protected validates the bearer token and stores the caller's identity in
// the request locals: userID, profileID and userType.
func Protected() fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   Secret(),
		ErrorHandler: jwtError,
		SuccessHandler: func(c *fiber.Ctx) error {
			token, ok := c.Locals("user").(*jwt.Token)
			if !ok {
				return unauthorized(c, "Invalid token")
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return unauthorized(c, "Invalid token claims")
			}

			if jti, _ := claims["jti"].(string); redis.TokenBlacklisted(jti) {
				return unauthorized(c, "Token has been revoked")
			}

			userID, err := claimString(claims, "id")
			if err != nil {
				return unauthorized(c, "Invalid user ID in token")
			}
			profileID, err := claimString(claims, "profile_id")
			if err != nil {
				return unauthorized(c, "Invalid profile ID in token")
			}
			userType, err := claimString(claims, "user_type")
			if err != nil || !models.UserType(userType).Valid() {
				return unauthorized(c, "Invalid role in token")
			}

			c.Locals("userID", userID)
			c.Locals("profileID", profileID)
			c.Locals("userType", models.UserType(userType))

			return c.Next()
		},
	})
}

func claimString(claims jwt.MapClaims, key string) (string, error) {
	val, ok := claims[key].(string)
	if !ok || val == "" {
		return "", fmt.Errorf("no %s found in claims", key)
	}
	return val, nil
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error":    message,
		"redirect": "/auth",
	})
}

// jwtError handles missing or malformed tokens. Unauthenticated dashboard
// access is pointed back to the auth page.
func jwtError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error":    "Invalid or expired token",
		"redirect": "/auth",
	})
}
