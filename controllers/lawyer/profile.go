package lawyer

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lawgicai/lawgic-backend/db"
	"github.com/lawgicai/lawgic-backend/models"
	"github.com/lawgicai/lawgic-backend/redis"
	"github.com/lawgicai/lawgic-backend/utils"
)

// GetDetails returns the lawyer's professional record.
func GetDetails(c *fiber.Ctx) error {
	profileID, _ := c.Locals("profileID").(string)

	var detail models.Lawyer
	if err := db.DB.Preload("Profile").
		Where("profile_id = ?", profileID).
		First(&detail).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Lawyer details not found",
			Error:   err.Error(),
		})
	}

	return c.JSON(detail)
}

// UpdateDetails applies owner-writable changes to the professional record.
// The verification flag cannot be set here; it belongs to an external trust
// process.
func UpdateDetails(c *fiber.Ctx) error {
	profileID, _ := c.Locals("profileID").(string)

	var patch models.LawyerPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if patch.ExperienceYears != nil && *patch.ExperienceYears < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Experience years cannot be negative",
		})
	}
	if patch.HourlyRate != nil && *patch.HourlyRate < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Hourly rate cannot be negative",
		})
	}

	var detail models.Lawyer
	if err := db.DB.Where("profile_id = ?", profileID).First(&detail).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Lawyer details not found",
			Error:   err.Error(),
		})
	}

	detail.ApplyUpdate(patch)
	if err := db.DB.Save(&detail).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update lawyer details",
			Error:   err.Error(),
		})
	}

	redis.InvalidateDirectory()
	return c.JSON(detail)
}
