package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/meddesk/clinic-api/controllers"
	"github.com/meddesk/clinic-api/middleware"
	"github.com/meddesk/clinic-api/models"
)

// SetupDoctorRoutes configures the public directory and availability routes
func SetupDoctorRoutes(app *fiber.App) {
	doctors := app.Group("/api/doctors")

	doctors.Get("/", controllers.ListDoctors)
	doctors.Put("/availability", middleware.Protected(), middleware.RequireRole(models.RoleDoctor), controllers.ReplaceAvailability)
}
