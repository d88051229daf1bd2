package main

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/meddesk/clinic-api/db"
	"github.com/meddesk/clinic-api/logger"
	"github.com/meddesk/clinic-api/redis"
	"github.com/meddesk/clinic-api/routes"
)

func main() {
	app := fiber.New()
	db.Init()
	db.Migrate()
	redis.InitRedis()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Clinic booking API")
	})

	routes.SetupAuthRoutes(app)
	routes.SetupDoctorRoutes(app)
	routes.SetupAppointmentRoutes(app)
	routes.SetupAdminRoutes(app)
	routes.SetupProfileRoutes(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	logger.Log.WithField("port", port).Info("Starting server")
	if err := app.Listen(":" + port); err != nil {
		logger.Log.WithError(err).Fatal("Server stopped")
	}
}
