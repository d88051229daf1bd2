package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/meddesk/clinic-api/db"
	"github.com/meddesk/clinic-api/logger"
	"github.com/meddesk/clinic-api/models"
	"github.com/meddesk/clinic-api/utils"
)

// ListUsers returns every account for moderation, doctor rows tagged with
// their specialization. An optional search term filters the fetched set by
// name, email or specialization.
func ListUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := db.DB.Preload("Doctor").Order("id asc").Find(&users).Error; err != nil {
		logger.Log.WithError(err).Error("Failed to fetch users")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch users",
		})
	}

	views := make([]models.AdminUserView, 0, len(users))
	for _, user := range users {
		views = append(views, models.NewAdminUserView(user))
	}

	return c.JSON(utils.FilterUsers(views, c.Query("search")))
}

// SetUserBlocked toggles the blocked flag on an account. The write is
// idempotent and existing appointments keep their status.
func SetUserBlocked(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	var input struct {
		IsBlocked bool `json:"isBlocked"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	var user models.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	if err := db.DB.Model(&user).Update("is_blocked", input.IsBlocked).Error; err != nil {
		logger.Log.WithError(err).Error("Failed to update user")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update user",
		})
	}

	user.Sanitize()
	return c.JSON(user)
}
