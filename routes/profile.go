package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lawgicai/lawgic-backend/controllers"
	"github.com/lawgicai/lawgic-backend/middleware"
)

// SetupProfileRoutes configures the shared profile routes
func SetupProfileRoutes(app *fiber.App) {
	profile := app.Group("/profile", middleware.Protected())
	profile.Get("/", controllers.GetProfile)
	profile.Patch("/", controllers.UpdateProfile)
	profile.Post("/avatar", controllers.UploadAvatar)
}
