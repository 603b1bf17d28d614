package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lawgicai/lawgic-backend/db"
	"github.com/lawgicai/lawgic-backend/models"
	"github.com/lawgicai/lawgic-backend/redis"
	"github.com/lawgicai/lawgic-backend/utils"
)

// GetProfile returns the caller's own profile.
func GetProfile(c *fiber.Ctx) error {
	profileID, _ := c.Locals("profileID").(string)

	var profile models.Profile
	if err := db.DB.First(&profile, "id = ?", profileID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Profile not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(profile)
}

// UpdateProfile applies owner-writable changes. Email and user_type fields
// in the payload are ignored.
func UpdateProfile(c *fiber.Ctx) error {
	profileID, _ := c.Locals("profileID").(string)

	var patch models.ProfilePatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	var profile models.Profile
	if err := db.DB.First(&profile, "id = ?", profileID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Profile not found",
			Error:   err.Error(),
		})
	}

	profile.ApplyUpdate(patch)
	if err := db.DB.Save(&profile).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update profile",
			Error:   err.Error(),
		})
	}

	if profile.UserType == models.UserTypeLawyer {
		redis.InvalidateDirectory()
	}

	return c.JSON(profile)
}

// UploadAvatar stores a new profile picture and saves its URL.
func UploadAvatar(c *fiber.Ctx) error {
	profileID, _ := c.Locals("profileID").(string)

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Avatar file is required",
			Error:   err.Error(),
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to read avatar file",
			Error:   err.Error(),
		})
	}
	defer file.Close()

	url, err := utils.UploadAvatar(file, profileID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to upload avatar",
			Error:   err.Error(),
		})
	}

	if err := db.DB.Model(&models.Profile{}).
		Where("id = ?", profileID).
		Update("avatar_url", url).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save avatar URL",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{"avatar_url": url})
}
