package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/meddesk/clinic-api/controllers"
	"github.com/meddesk/clinic-api/middleware"
	"github.com/meddesk/clinic-api/models"
)

// SetupAppointmentRoutes configures all appointment related routes
func SetupAppointmentRoutes(app *fiber.App) {
	appointments := app.Group("/api/appointments", middleware.Protected())

	appointments.Get("/", controllers.ListAppointments)
	appointments.Post("/", middleware.RequireRole(models.RolePatient), controllers.CreateAppointment)
	appointments.Put("/:id", controllers.UpdateAppointmentStatus)
}
