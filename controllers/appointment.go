package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/meddesk/clinic-api/db"
	"github.com/meddesk/clinic-api/logger"
	"github.com/meddesk/clinic-api/models"
)

// CreateAppointment books a new appointment for the calling patient. The
// record always starts out pending; no conflict check is made against the
// doctor's other appointments or advisory slots.
func CreateAppointment(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var input struct {
		DoctorID        uint   `json:"doctorId"`
		AppointmentDate string `json:"appointmentDate"`
		AppointmentTime string `json:"appointmentTime"`
		Notes           string `json:"notes"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if _, err := time.Parse("2006-01-02", input.AppointmentDate); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid appointment date. Please use YYYY-MM-DD format.",
		})
	}
	if _, err := time.Parse("15:04", input.AppointmentTime); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid appointment time. Please use HH:MM format.",
		})
	}

	var doctor models.Doctor
	if err := db.DB.Preload("User").First(&doctor, input.DoctorID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Doctor not found",
		})
	}
	if doctor.User.IsBlocked {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "This doctor is not currently accepting appointments",
		})
	}

	appointment := models.Appointment{
		PatientID:       userID,
		DoctorID:        doctor.ID,
		AppointmentDate: input.AppointmentDate,
		AppointmentTime: input.AppointmentTime,
		Notes:           input.Notes,
	}

	if err := db.DB.Create(&appointment).Error; err != nil {
		logger.Log.WithError(err).Error("Failed to create appointment")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to book appointment",
		})
	}

	appointment.Doctor = doctor
	db.DB.First(&appointment.Patient, userID)

	return c.Status(fiber.StatusCreated).JSON(models.NewAppointmentView(appointment))
}

// ListAppointments returns the caller's appointments: patients see bookings
// they made, doctors see requests naming them, admins see everything. Each
// row is enriched with the counterparty's display fields.
func ListAppointments(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	role := c.Locals("role").(string)

	query := db.DB.
		Preload("Patient").
		Preload("Doctor.User").
		Order("appointment_date asc, appointment_time asc")

	switch role {
	case models.RolePatient:
		query = query.Where("patient_id = ?", userID)
	case models.RoleDoctor:
		var doctor models.Doctor
		if err := db.DB.Where("user_id = ?", userID).First(&doctor).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Doctor profile not found",
			})
		}
		query = query.Where("doctor_id = ?", doctor.ID)
	case models.RoleAdmin:
		// admins see all appointments
	default:
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Unknown role",
		})
	}

	var appointments []models.Appointment
	if err := query.Find(&appointments).Error; err != nil {
		logger.Log.WithError(err).Error("Failed to fetch appointments")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch appointments",
		})
	}

	views := make([]models.AppointmentView, 0, len(appointments))
	for _, appointment := range appointments {
		views = append(views, models.NewAppointmentView(appointment))
	}

	return c.JSON(views)
}

// UpdateAppointmentStatus applies a status transition: patients cancel their
// own pending bookings, doctors approve or decline requests naming them.
func UpdateAppointmentStatus(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	role := c.Locals("role").(string)

	appointmentID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid appointment ID",
		})
	}

	var input struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	newStatus := models.AppointmentStatus(input.Status)
	if !models.IsValidStatus(newStatus) || newStatus == models.StatusPending {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid status. Must be 'approved', 'declined', or 'cancelled'.",
		})
	}

	var appointment models.Appointment
	if err := db.DB.First(&appointment, appointmentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Appointment not found",
		})
	}

	// Doctors act through their doctor record, not their user id.
	actorID := userID
	if role == models.RoleDoctor {
		var doctor models.Doctor
		if err := db.DB.Where("user_id = ?", userID).First(&doctor).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Doctor profile not found",
			})
		}
		actorID = doctor.ID
	}

	if err := appointment.TransitionBy(role, actorID, newStatus); err != nil {
		var notOwner models.ErrNotOwner
		if errors.As(err, &notOwner) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	// Conditional update keyed on the expected prior status, so two
	// concurrent transitions on the same appointment cannot both win.
	result := db.DB.Model(&models.Appointment{}).
		Where("id = ? AND status = ?", appointment.ID, models.StatusPending).
		Update("status", newStatus)
	if result.Error != nil {
		logger.Log.WithError(result.Error).Error("Failed to update appointment status")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update appointment status",
		})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Appointment is no longer pending",
		})
	}

	if err := db.DB.Preload("Patient").Preload("Doctor.User").First(&appointment, appointment.ID).Error; err != nil {
		logger.Log.WithError(err).Error("Failed to reload appointment")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch appointment",
		})
	}

	return c.JSON(models.NewAppointmentView(appointment))
}
