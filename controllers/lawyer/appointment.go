package lawyer

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lawgicai/lawgic-backend/db"
	"github.com/lawgicai/lawgic-backend/models"
	"github.com/lawgicai/lawgic-backend/utils"
)

// GetUpcomingAppointments returns pending and confirmed appointments for the
// logged-in lawyer, soonest first.
func GetUpcomingAppointments(c *fiber.Ctx) error {
	profileID, _ := c.Locals("profileID").(string)

	limit := 10
	if c.Query("limit") != "" {
		if parsed := c.QueryInt("limit"); parsed > 0 {
			limit = parsed
		}
	}

	var appointments []models.Appointment
	query := db.DB.
		Preload("Client").
		Where("lawyer_id = ?", profileID).
		Where("appointment_date >= ?", time.Now().Format("2006-01-02")).
		Where("status IN ?", []models.AppointmentStatus{models.StatusPending, models.StatusConfirmed}).
		Order("appointment_date asc, appointment_time asc").
		Limit(limit)

	if err := query.Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointments",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"appointments": appointments,
		"count":        len(appointments),
	})
}

// GetAppointmentHistory returns completed and cancelled appointments with
// pagination.
func GetAppointmentHistory(c *fiber.Ctx) error {
	profileID, _ := c.Locals("profileID").(string)

	page := 1
	limit := 10
	if c.Query("page") != "" {
		if parsed := c.QueryInt("page"); parsed > 0 {
			page = parsed
		}
	}
	if c.Query("limit") != "" {
		if parsed := c.QueryInt("limit"); parsed > 0 {
			limit = parsed
		}
	}
	offset := (page - 1) * limit

	statuses := []models.AppointmentStatus{models.StatusCompleted, models.StatusCancelled}
	switch models.AppointmentStatus(c.Query("status")) {
	case models.StatusCompleted:
		statuses = []models.AppointmentStatus{models.StatusCompleted}
	case models.StatusCancelled:
		statuses = []models.AppointmentStatus{models.StatusCancelled}
	}

	var total int64
	db.DB.Model(&models.Appointment{}).
		Where("lawyer_id = ?", profileID).
		Where("status IN ?", statuses).
		Count(&total)

	var appointments []models.Appointment
	if err := db.DB.
		Preload("Client").
		Where("lawyer_id = ?", profileID).
		Where("status IN ?", statuses).
		Order("appointment_date desc, appointment_time desc").
		Offset(offset).
		Limit(limit).
		Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointment history",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"appointments": appointments,
		"total":        total,
		"page":         page,
		"limit":        limit,
		"pages":        (total + int64(limit) - 1) / int64(limit),
	})
}

// CompleteAppointment marks a confirmed appointment done.
func CompleteAppointment(c *fiber.Ctx) error {
	profileID, _ := c.Locals("profileID").(string)

	appointment, err := booking().CompleteAppointment(profileID, c.Params("id"))
	if err != nil {
		return utils.Fail(c, "Failed to complete appointment", err)
	}

	return c.JSON(fiber.Map{
		"message":     "Appointment marked as completed",
		"appointment": appointment,
	})
}

// CancelAppointment cancels a pending or confirmed appointment.
func CancelAppointment(c *fiber.Ctx) error {
	profileID, _ := c.Locals("profileID").(string)

	appointment, err := booking().CancelAppointment(profileID, c.Params("id"), time.Now())
	if err != nil {
		return utils.Fail(c, "Failed to cancel appointment", err)
	}

	return c.JSON(fiber.Map{
		"message":     "Appointment cancelled",
		"appointment": appointment,
	})
}

// UpdateNotes stores the lawyer's notes on a non-terminal appointment.
func UpdateNotes(c *fiber.Ctx) error {
	profileID, _ := c.Locals("profileID").(string)

	var body struct {
		Notes string `json:"notes"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	appointment, err := booking().UpdateNotes(profileID, c.Params("id"), body.Notes)
	if err != nil {
		return utils.Fail(c, "Failed to update notes", err)
	}

	return c.JSON(appointment)
}

// CreateAppointment books a confirmed appointment directly, without a client
// request.
func CreateAppointment(c *fiber.Ctx) error {
	profileID, _ := c.Locals("profileID").(string)

	var appointment models.Appointment
	if err := c.BodyParser(&appointment); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if err := booking().BookDirect(profileID, &appointment); err != nil {
		return utils.Fail(c, "Failed to create appointment", err)
	}

	return c.Status(fiber.StatusCreated).JSON(appointment)
}
