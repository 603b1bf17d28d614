package controllers

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/lawgicai/lawgic-backend/db"
	"github.com/lawgicai/lawgic-backend/middleware"
	"github.com/lawgicai/lawgic-backend/models"
	"github.com/lawgicai/lawgic-backend/redis"
	"github.com/lawgicai/lawgic-backend/utils"
)

type RegisterInput struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	FullName        string `json:"full_name"`
	UserType        string `json:"user_type"`
	Phone           string `json:"phone"`
}

// Register handles sign-up. All input validation happens before any store
// access so a bad form never reaches the database.
func Register(c *fiber.Ctx) error {
	input := new(RegisterInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	input.Email = normalizeEmail(input.Email)
	if input.Email == "" || input.Password == "" || input.FullName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields",
		})
	}
	if len(input.Password) < 6 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Password must be at least 6 characters",
		})
	}
	if input.Password != input.ConfirmPassword {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Passwords do not match",
		})
	}
	userType := models.UserType(input.UserType)
	if input.UserType == "" {
		userType = models.UserTypeClient
	}
	if !userType.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "user_type must be 'client' or 'lawyer'",
		})
	}

	var existingUser models.User
	if db.DB.Where("email = ?", input.Email).First(&existingUser).RowsAffected > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "User with this email already exists",
		})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to hash password",
		})
	}

	user := models.User{
		Email:    input.Email,
		Password: string(hashedPassword),
	}
	profile := models.Profile{
		FullName: input.FullName,
		Email:    input.Email,
		Phone:    input.Phone,
		UserType: userType,
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		profile.UserID = user.ID
		if err := tx.Create(&profile).Error; err != nil {
			return err
		}
		if userType == models.UserTypeLawyer {
			return tx.Create(&models.Lawyer{ProfileID: profile.ID}).Error
		}
		return nil
	})
	if err != nil {
		log.Printf("Error creating user: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create user: " + err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(profile)
}

// Login handles user authentication
func Login(c *fiber.Ctx) error {
	type LoginInput struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	input := new(LoginInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	var user models.User
	if db.DB.Where("email = ?", normalizeEmail(input.Email)).First(&user).RowsAffected == 0 {
		return utils.Fail(c, "Invalid credentials", utils.ErrAuth)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return utils.Fail(c, "Invalid credentials", utils.ErrAuth)
	}

	var profile models.Profile
	if err := db.DB.Where("user_id = ?", user.ID).First(&profile).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch profile",
		})
	}

	tokenString, refreshTokenString, err := issueTokens(&user, &profile)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate token",
		})
	}

	return c.JSON(fiber.Map{
		"token":        tokenString,
		"refreshToken": refreshTokenString,
		"redirect":     profile.UserType.DashboardPath(),
		"user": fiber.Map{
			"id":         user.ID,
			"profile_id": profile.ID,
			"full_name":  profile.FullName,
			"email":      user.Email,
			"user_type":  profile.UserType,
		},
	})
}

func issueTokens(user *models.User, profile *models.Profile) (string, string, error) {
	claims := jwt.MapClaims{
		"id":         user.ID,
		"profile_id": profile.ID,
		"email":      user.Email,
		"user_type":  string(profile.UserType),
		"jti":        uuid.New().String(),
		"exp":        time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(middleware.Secret())
	if err != nil {
		return "", "", err
	}

	refreshClaims := jwt.MapClaims{
		"id":    user.ID,
		"email": user.Email,
		"jti":   uuid.New().String(),
		"exp":   time.Now().Add(7 * 24 * time.Hour).Unix(),
	}
	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims)
	refreshTokenString, err := refreshToken.SignedString(middleware.Secret())
	if err != nil {
		return "", "", err
	}

	return tokenString, refreshTokenString, nil
}

// Me returns the current user's profile.
func Me(c *fiber.Ctx) error {
	profileID, _ := c.Locals("profileID").(string)

	var profile models.Profile
	if err := db.DB.First(&profile, "id = ?", profileID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Profile not found",
		})
	}

	return c.JSON(profile)
}

// Logout revokes the presented token until its natural expiry.
func Logout(c *fiber.Ctx) error {
	token, ok := c.Locals("user").(*jwt.Token)
	if ok {
		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			jti, _ := claims["jti"].(string)
			if exp, ok := claims["exp"].(float64); ok {
				redis.BlacklistToken(jti, time.Until(time.Unix(int64(exp), 0)))
			}
		}
	}

	return c.JSON(fiber.Map{
		"message":  "Successfully logged out",
		"redirect": "/auth",
	})
}

// RefreshToken generates a new access token using a refresh token
func RefreshToken(c *fiber.Ctx) error {
	type RefreshRequest struct {
		RefreshToken string `json:"refreshToken"`
	}

	refreshRequest := new(RefreshRequest)
	if err := c.BodyParser(refreshRequest); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	token, err := jwt.Parse(refreshRequest.RefreshToken, func(token *jwt.Token) (interface{}, error) {
		return middleware.Secret(), nil
	})
	if err != nil || !token.Valid {
		return utils.Fail(c, "Invalid refresh token", utils.ErrAuth)
	}

	claims := token.Claims.(jwt.MapClaims)
	userID, _ := claims["id"].(string)
	if jti, _ := claims["jti"].(string); redis.TokenBlacklisted(jti) {
		return utils.Fail(c, "Refresh token has been revoked", utils.ErrAuth)
	}

	var user models.User
	if err := db.DB.First(&user, "id = ?", userID).Error; err != nil {
		return utils.Fail(c, "Invalid refresh token", utils.ErrAuth)
	}
	var profile models.Profile
	if err := db.DB.Where("user_id = ?", user.ID).First(&profile).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch profile",
		})
	}

	tokenString, _, err := issueTokens(&user, &profile)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate token",
		})
	}

	return c.JSON(fiber.Map{
		"token": tokenString,
	})
}

// normalizeEmail trims surrounding whitespace; comparisons stay
// case-sensitive to match the store's unique index.
func normalizeEmail(email string) string {
	return strings.TrimSpace(email)
}
