package controllers

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/meddesk/clinic-api/db"
	"github.com/meddesk/clinic-api/logger"
	"github.com/meddesk/clinic-api/models"
	"github.com/meddesk/clinic-api/redis"
	"github.com/meddesk/clinic-api/utils"
)

const doctorListTTL = 60 * time.Second

// ListDoctors returns the public doctor directory, optionally filtered by a
// case-insensitive specialization substring
func ListDoctors(c *fiber.Ctx) error {
	specialization := c.Query("specialization")

	// Only the unfiltered listing is cached; it backs the landing page.
	if specialization == "" {
		if cached, ok := redis.GetCached(redis.DoctorListKey); ok {
			c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			return c.Send(cached)
		}
	}

	query := db.DB.Preload("User").Order("id asc")
	if specialization != "" {
		query = query.Where("specialization ILIKE ?", "%"+specialization+"%")
	}

	var doctors []models.Doctor
	if err := query.Find(&doctors).Error; err != nil {
		logger.Log.WithError(err).Error("Failed to fetch doctors")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch doctors",
		})
	}

	views := make([]models.DoctorView, 0, len(doctors))
	for _, doctor := range doctors {
		views = append(views, models.NewDoctorView(doctor))
	}

	if specialization == "" {
		if payload, err := json.Marshal(views); err == nil {
			redis.SetCached(redis.DoctorListKey, payload, doctorListTTL)
		}
	}

	return c.JSON(views)
}

// ReplaceAvailability replaces the calling doctor's slot set wholesale
func ReplaceAvailability(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var input struct {
		AvailableSlots []models.AvailabilitySlot `json:"availableSlots"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if err := utils.ValidateSlots(input.AvailableSlots); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var doctor models.Doctor
	if err := db.DB.Where("user_id = ?", userID).First(&doctor).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Doctor profile not found",
		})
	}

	if err := db.DB.Model(&doctor).Update("available_slots", models.SlotList(input.AvailableSlots)).Error; err != nil {
		logger.Log.WithError(err).Error("Failed to update availability")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update availability",
		})
	}

	redis.Invalidate(redis.DoctorListKey)

	return c.JSON(fiber.Map{
		"message": "Availability updated successfully",
	})
}
