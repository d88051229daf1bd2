package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/meddesk/clinic-api/controllers"
	"github.com/meddesk/clinic-api/middleware"
)

// SetupAuthRoutes configures all authentication related routes
func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/api/auth")

	// Public routes
	auth.Post("/signup", controllers.Signup)
	auth.Post("/login", controllers.Login)

	// Protected routes
	auth.Get("/me", middleware.Protected(), controllers.Me)
}
