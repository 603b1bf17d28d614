package client

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lawgicai/lawgic-backend/db"
	"github.com/lawgicai/lawgic-backend/services"
	"github.com/lawgicai/lawgic-backend/utils"
)

// GetAppointments lists the caller's scheduled appointments.
func GetAppointments(c *fiber.Ctx) error {
	profileID, _ := c.Locals("profileID").(string)

	appointments, err := services.NewBookingRepo(db.DB).ListAppointmentsByClient(profileID)
	if err != nil {
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

// CancelAppointment cancels one of the caller's own appointments before its
// date.
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
