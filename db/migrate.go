package db

import (
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/meddesk/clinic-api/logger"
	"github.com/meddesk/clinic-api/models"
)

// Migrate applies the schema and seeds the bootstrap admin account
func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Doctor{},
		&models.Appointment{},
	)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to run migrations")
	}

	ensureAdmin()

	logger.Log.Info("Migrations applied")
}

// ensureAdmin creates the admin account from ADMIN_* env vars if it is missing
func ensureAdmin() {
	email := strings.ToLower(os.Getenv("ADMIN_EMAIL"))
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}

	var existing models.User
	if DB.Where("email = ?", email).First(&existing).RowsAffected > 0 {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to hash admin password")
		return
	}

	admin := models.User{
		Name:     os.Getenv("ADMIN_NAME"),
		Email:    email,
		Password: string(hashed),
		Role:     models.RoleAdmin,
	}
	if admin.Name == "" {
		admin.Name = "Admin"
	}

	if err := DB.Create(&admin).Error; err != nil {
		logger.Log.WithError(err).Error("Failed to create admin account")
		return
	}
	logger.Log.Info("Admin account created")
}
