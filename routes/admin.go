package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/meddesk/clinic-api/controllers"
	"github.com/meddesk/clinic-api/middleware"
	"github.com/meddesk/clinic-api/models"
)

// SetupAdminRoutes configures the account moderation routes
func SetupAdminRoutes(app *fiber.App) {
	admin := app.Group("/api/admin", middleware.Protected(), middleware.RequireRole(models.RoleAdmin))

	admin.Get("/users", controllers.ListUsers)
	admin.Put("/users/:id/block", controllers.SetUserBlocked)
}
