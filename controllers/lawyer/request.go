package lawyer

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lawgicai/lawgic-backend/db"
	"github.com/lawgicai/lawgic-backend/models"
	"github.com/lawgicai/lawgic-backend/services"
	"github.com/lawgicai/lawgic-backend/utils"
)

func booking() *services.BookingService {
	return services.NewBookingService(services.NewBookingRepo(db.DB))
}

// GetRequests returns the lawyer's appointment requests, pending first by
// default. Pass ?status=all for the full history.
func GetRequests(c *fiber.Ctx) error {
	profileID, _ := c.Locals("profileID").(string)

	var statuses []models.AppointmentStatus
	switch c.Query("status", "pending") {
	case "all":
		statuses = nil
	case "cancelled":
		statuses = []models.AppointmentStatus{models.StatusCancelled}
	case "confirmed":
		statuses = []models.AppointmentStatus{models.StatusConfirmed}
	default:
		statuses = []models.AppointmentStatus{models.StatusPending}
	}

	repo := services.NewBookingRepo(db.DB)
	requests, err := repo.ListRequestsByLawyer(profileID, statuses)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch requests",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"requests": requests,
		"count":    len(requests),
	})
}

// ApproveRequest confirms a pending request and creates the matching
// appointment.
func ApproveRequest(c *fiber.Ctx) error {
	profileID, _ := c.Locals("profileID").(string)
	id := c.Params("id")

	appointment, err := booking().Approve(profileID, id)
	if err != nil {
		return utils.Fail(c, "Failed to approve request", err)
	}

	return c.JSON(fiber.Map{
		"message":     "Appointment request approved",
		"appointment": appointment,
	})
}

// DeclineRequest cancels a pending request with a mandatory message for the
// client.
func DeclineRequest(c *fiber.Ctx) error {
	profileID, _ := c.Locals("profileID").(string)
	id := c.Params("id")

	var body struct {
		Message string `json:"message"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	request, err := booking().Decline(profileID, id, body.Message)
	if err != nil {
		return utils.Fail(c, "Failed to decline request", err)
	}

	return c.JSON(fiber.Map{
		"message": "Appointment request declined",
		"request": request,
	})
}
