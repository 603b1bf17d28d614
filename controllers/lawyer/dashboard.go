package lawyer

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lawgicai/lawgic-backend/db"
	"github.com/lawgicai/lawgic-backend/models"
	"github.com/lawgicai/lawgic-backend/utils"
)

// GetDashboardOverview returns the counters shown on the lawyer dashboard.
func GetDashboardOverview(c *fiber.Ctx) error {
	profileID, _ := c.Locals("profileID").(string)

	var statistics struct {
		PendingRequests   int64     `json:"pending_requests"`
		UpcomingCount     int64     `json:"upcoming_count"`
		CompletedCount    int64     `json:"completed_count"`
		CancelledCount    int64     `json:"cancelled_count"`
		TotalAppointments int64     `json:"total_appointments"`
		LastUpdated       time.Time `json:"last_updated"`
	}

	db.DB.Model(&models.AppointmentRequest{}).
		Where("lawyer_id = ? AND status = ?", profileID, models.StatusPending).
		Count(&statistics.PendingRequests)

	today := time.Now().Format("2006-01-02")
	db.DB.Model(&models.Appointment{}).
		Where("lawyer_id = ? AND status = ? AND appointment_date >= ?", profileID, models.StatusConfirmed, today).
		Count(&statistics.UpcomingCount)

	db.DB.Model(&models.Appointment{}).
		Where("lawyer_id = ? AND status = ?", profileID, models.StatusCompleted).
		Count(&statistics.CompletedCount)

	db.DB.Model(&models.Appointment{}).
		Where("lawyer_id = ? AND status = ?", profileID, models.StatusCancelled).
		Count(&statistics.CancelledCount)

	db.DB.Model(&models.Appointment{}).
		Where("lawyer_id = ?", profileID).
		Count(&statistics.TotalAppointments)

	statistics.LastUpdated = time.Now()

	return c.JSON(statistics)
}

// GetRecentRequests returns the latest few requests for the dashboard feed.
func GetRecentRequests(c *fiber.Ctx) error {
	profileID, _ := c.Locals("profileID").(string)

	limit := 5
	if c.Query("limit") != "" {
		if parsed := c.QueryInt("limit"); parsed > 0 {
			limit = parsed
		}
	}

	var requests []models.AppointmentRequest
	if err := db.DB.Preload("Client").
		Where("lawyer_id = ?", profileID).
		Order("created_at desc").
		Limit(limit).
		Find(&requests).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch recent requests",
			Error:   err.Error(),
		})
	}

	return c.JSON(requests)
}
