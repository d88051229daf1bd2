package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/meddesk/clinic-api/controllers"
	"github.com/meddesk/clinic-api/middleware"
)

// SetupProfileRoutes configures the self-service profile routes
func SetupProfileRoutes(app *fiber.App) {
	profile := app.Group("/api/profile", middleware.Protected())

	profile.Get("/", controllers.GetProfile)
	profile.Put("/", controllers.UpdateProfile)
}
