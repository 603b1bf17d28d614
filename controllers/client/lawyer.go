package client

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/lawgicai/lawgic-backend/db"
	"github.com/lawgicai/lawgic-backend/models"
	"github.com/lawgicai/lawgic-backend/redis"
	"github.com/lawgicai/lawgic-backend/utils"
)

// GetAllLawyers returns the lawyer directory, paginated and cached.
func GetAllLawyers(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	cacheKey := fmt.Sprintf("lawyers:directory:%d:%d", page, limit)
	if cached := redis.GetDirectory(cacheKey); cached != nil {
		c.Set("Content-Type", "application/json")
		return c.Send(cached)
	}

	var lawyers []models.Lawyer
	if err := db.DB.Preload("Profile").
		Limit(limit).
		Offset(offset).
		Find(&lawyers).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch lawyers",
			Error:   err.Error(),
		})
	}

	var count int64
	db.DB.Model(&models.Lawyer{}).Count(&count)

	payload := fiber.Map{
		"lawyers": lawyers,
		"total":   count,
		"page":    page,
		"limit":   limit,
		"pages":   (int(count) + limit - 1) / limit,
	}

	if data, err := json.Marshal(payload); err == nil {
		redis.CacheDirectory(cacheKey, data)
	}

	return c.JSON(payload)
}

// GetLawyerDetails returns one lawyer's professional record together with
// their published availability.
func GetLawyerDetails(c *fiber.Ctx) error {
	id := c.Params("id")

	var lawyer models.Lawyer
	if err := db.DB.Preload("Profile").
		Where("profile_id = ?", id).
		First(&lawyer).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Lawyer not found",
			Error:   err.Error(),
		})
	}

	var slots []models.TimeSlot
	db.DB.Where("lawyer_id = ? AND is_available = ?", id, true).Find(&slots)

	return c.JSON(fiber.Map{
		"lawyer":       lawyer,
		"availability": models.FromTimeSlots(slots),
	})
}
