package main

import (
	"fmt"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/lawgicai/lawgic-backend/cron"
	"github.com/lawgicai/lawgic-backend/db"
	"github.com/lawgicai/lawgic-backend/redis"
	"github.com/lawgicai/lawgic-backend/routes"
)

func main() {
	app := fiber.New()
	db.Init()
	redis.InitRedis()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": "lawgic-backend"})
	})
	routes.SetupAuthRoutes(app)
	routes.SetupProfileRoutes(app)
	routes.SetupLawyerRoutes(app)
	routes.SetupClientRoutes(app)

	cron.StartCronJobs()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	fmt.Println("Server listening on port " + port)
	app.Listen(":" + port)
}
