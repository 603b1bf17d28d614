package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lawgicai/lawgic-backend/controllers/client"
	"github.com/lawgicai/lawgic-backend/middleware"
	"github.com/lawgicai/lawgic-backend/models"
)

// SetupClientRoutes configures the client dashboard API
func SetupClientRoutes(app *fiber.App) {
	group := app.Group("/client", middleware.Protected(), middleware.RequireRole(models.UserTypeClient))

	group.Get("/lawyers", client.GetAllLawyers)
	group.Get("/lawyers/:id", client.GetLawyerDetails)

	group.Post("/requests", client.CreateRequest)
	group.Get("/requests", client.GetRequests)
	group.Patch("/requests/:id", client.UpdateRequest)
	group.Post("/requests/:id/cancel", client.CancelRequest)

	group.Get("/appointments", client.GetAppointments)
	group.Post("/appointments/:id/cancel", client.CancelAppointment)
}
