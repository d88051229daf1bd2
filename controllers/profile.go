package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/meddesk/clinic-api/db"
	"github.com/meddesk/clinic-api/logger"
	"github.com/meddesk/clinic-api/models"
)

// GetProfile returns the caller's own user record
func GetProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var user models.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	user.Sanitize()
	return c.JSON(user)
}

// UpdateProfile updates the caller's name and phone. Email and role are
// immutable through this path.
func UpdateProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var input struct {
		Name  string `json:"name"`
		Phone string `json:"phone"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if input.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name cannot be empty",
		})
	}

	var user models.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	updates := map[string]interface{}{
		"name":  input.Name,
		"phone": input.Phone,
	}
	if err := db.DB.Model(&user).Updates(updates).Error; err != nil {
		logger.Log.WithError(err).Error("Failed to update profile")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update profile",
		})
	}

	user.Sanitize()
	return c.JSON(user)
}
