package lawyer

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/lawgicai/lawgic-backend/db"
	"github.com/lawgicai/lawgic-backend/models"
	"github.com/lawgicai/lawgic-backend/redis"
	"github.com/lawgicai/lawgic-backend/utils"
)

// GetAvailability returns the weekly availability map for the logged-in
// lawyer.
func GetAvailability(c *fiber.Ctx) error {
	profileID, _ := c.Locals("profileID").(string)

	var slots []models.TimeSlot
	if err := db.DB.Where("lawyer_id = ?", profileID).Find(&slots).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch availability",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"availability": models.FromTimeSlots(slots),
		"catalog":      models.SlotCatalog,
	})
}

// SaveAvailability replaces the lawyer's whole weekly availability in one
// transaction.
func SaveAvailability(c *fiber.Ctx) error {
	profileID, _ := c.Locals("profileID").(string)

	var body struct {
		Availability models.WeeklyAvailability `json:"availability"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	for day, labels := range body.Availability {
		if !day.Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Day of week must be between 0 and 6",
			})
		}
		for _, label := range labels {
			if !models.InCatalog(label) {
				return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
					Message: "Time " + label + " is not in the slot catalog",
				})
			}
		}
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("lawyer_id = ?", profileID).Delete(&models.TimeSlot{}).Error; err != nil {
			return err
		}
		rows := body.Availability.TimeSlots(profileID)
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save availability",
			Error:   err.Error(),
		})
	}

	redis.InvalidateDirectory()
	return c.JSON(fiber.Map{
		"message":      "Availability updated",
		"availability": body.Availability,
	})
}

// ToggleAvailability flips a single day or time slot. Without a time, the
// whole day is toggled; a day switched on with no slots gets the default
// slot, and a day switched off loses all its slots.
func ToggleAvailability(c *fiber.Ctx) error {
	profileID, _ := c.Locals("profileID").(string)

	var body struct {
		DayOfWeek models.DayOfWeek `json:"day_of_week"`
		Time      string           `json:"time"`
		Available *bool            `json:"available"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if !body.DayOfWeek.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Day of week must be between 0 and 6",
		})
	}

	var slots []models.TimeSlot
	if err := db.DB.Where("lawyer_id = ?", profileID).Find(&slots).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch availability",
			Error:   err.Error(),
		})
	}
	week := models.FromTimeSlots(slots)

	if body.Time != "" {
		if err := week.ToggleSlot(body.DayOfWeek, body.Time); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Invalid time slot",
				Error:   err.Error(),
			})
		}
	} else {
		on := !week.DayAvailable(body.DayOfWeek)
		if body.Available != nil {
			on = *body.Available
		}
		week.ToggleDay(body.DayOfWeek, on)
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("lawyer_id = ? AND day_of_week = ?", profileID, body.DayOfWeek).
			Delete(&models.TimeSlot{}).Error; err != nil {
			return err
		}
		day := models.WeeklyAvailability{body.DayOfWeek: week[body.DayOfWeek]}
		rows := day.TimeSlots(profileID)
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save availability",
			Error:   err.Error(),
		})
	}

	redis.InvalidateDirectory()
	return c.JSON(fiber.Map{
		"day_of_week": body.DayOfWeek,
		"slots":       week[body.DayOfWeek],
	})
}
