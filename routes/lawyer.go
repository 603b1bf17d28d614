package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lawgicai/lawgic-backend/controllers/lawyer"
	"github.com/lawgicai/lawgic-backend/middleware"
	"github.com/lawgicai/lawgic-backend/models"
)

// SetupLawyerRoutes configures the lawyer dashboard API
func SetupLawyerRoutes(app *fiber.App) {
	group := app.Group("/lawyer", middleware.Protected(), middleware.RequireRole(models.UserTypeLawyer))

	group.Get("/details", lawyer.GetDetails)
	group.Patch("/details", lawyer.UpdateDetails)

	group.Get("/availability", lawyer.GetAvailability)
	group.Put("/availability", lawyer.SaveAvailability)
	group.Post("/availability/toggle", lawyer.ToggleAvailability)

	group.Get("/requests", lawyer.GetRequests)
	group.Post("/requests/:id/approve", lawyer.ApproveRequest)
	group.Post("/requests/:id/decline", lawyer.DeclineRequest)

	group.Get("/appointments", lawyer.GetUpcomingAppointments)
	group.Get("/appointments/history", lawyer.GetAppointmentHistory)
	group.Post("/appointments", lawyer.CreateAppointment)
	group.Post("/appointments/:id/complete", lawyer.CompleteAppointment)
	group.Post("/appointments/:id/cancel", lawyer.CancelAppointment)
	group.Patch("/appointments/:id/notes", lawyer.UpdateNotes)

	group.Get("/dashboard", lawyer.GetDashboardOverview)
	group.Get("/dashboard/recent", lawyer.GetRecentRequests)
}
