package client

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lawgicai/lawgic-backend/db"
	"github.com/lawgicai/lawgic-backend/models"
	"github.com/lawgicai/lawgic-backend/services"
	"github.com/lawgicai/lawgic-backend/utils"
)

func booking() *services.BookingService {
	return services.NewBookingService(services.NewBookingRepo(db.DB))
}

// CreateRequest submits a booking proposal to a lawyer. The request starts
// pending; the caller is always recorded as the client.
func CreateRequest(c *fiber.Ctx) error {
	profileID, _ := c.Locals("profileID").(string)

	var request models.AppointmentRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	// Requests outside the lawyer's published weekly availability are
	// rejected up front.
	if request.RequestedDate != "" && request.RequestedTime != "" {
		available, err := utils.CheckLawyerAvailability(request.LawyerID, request.RequestedDate, request.RequestedTime)
		if err != nil {
			return utils.Fail(c, "Failed to check lawyer availability", err)
		}
		if !available {
			return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
				Message: "The lawyer is not available at the requested time",
			})
		}
	}

	if err := booking().CreateRequest(profileID, &request); err != nil {
		return utils.Fail(c, "Failed to create appointment request", err)
	}

	return c.Status(fiber.StatusCreated).JSON(request)
}

// GetRequests lists the caller's own requests, newest first.
func GetRequests(c *fiber.Ctx) error {
	profileID, _ := c.Locals("profileID").(string)

	requests, err := services.NewBookingRepo(db.DB).ListRequestsByClient(profileID)
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

// UpdateRequest amends a pending request's description, date or time.
func UpdateRequest(c *fiber.Ctx) error {
	profileID, _ := c.Locals("profileID").(string)

	var patch services.RequestPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	request, err := booking().UpdateRequest(profileID, c.Params("id"), patch)
	if err != nil {
		return utils.Fail(c, "Failed to update request", err)
	}

	return c.JSON(request)
}

// CancelRequest withdraws the caller's own request.
func CancelRequest(c *fiber.Ctx) error {
	profileID, _ := c.Locals("profileID").(string)

	request, err := booking().CancelRequest(profileID, c.Params("id"), time.Now())
	if err != nil {
		return utils.Fail(c, "Failed to cancel request", err)
	}

	return c.JSON(fiber.Map{
		"message": "Appointment request cancelled",
		"request": request,
	})
}
