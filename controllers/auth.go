package controllers

import (
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/meddesk/clinic-api/db"
	"github.com/meddesk/clinic-api/logger"
	"github.com/meddesk/clinic-api/models"
	"github.com/meddesk/clinic-api/redis"
)

// SignupInput carries the registration payload. Doctor fields are only
// consulted when role is "doctor".
type SignupInput struct {
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Password        string  `json:"password"`
	Phone           string  `json:"phone"`
	Role            string  `json:"role"`
	Specialization  string  `json:"specialization"`
	Experience      int     `json:"experience"`
	Bio             string  `json:"bio"`
	ConsultationFee float64 `json:"consultationFee"`
}

// Signup handles user registration
func Signup(c *fiber.Ctx) error {
	input := new(SignupInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if input.Email == "" || input.Password == "" || input.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields",
		})
	}

	// Roles are fixed at signup; admin accounts are seeded, never self-assigned.
	role := input.Role
	if role == "" {
		role = models.RolePatient
	}
	if role != models.RolePatient && role != models.RoleDoctor {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Role must be 'patient' or 'doctor'",
		})
	}

	if role == models.RoleDoctor {
		if input.Specialization == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Specialization is required for doctors",
			})
		}
		if input.Experience < 0 || input.ConsultationFee < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Experience and consultation fee cannot be negative",
			})
		}
	}

	email := strings.ToLower(input.Email)

	var existingUser models.User
	if db.DB.Where("email = ?", email).First(&existingUser).RowsAffected > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "User with this email already exists",
		})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to hash password")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Server error",
		})
	}

	user := models.User{
		Name:     input.Name,
		Email:    email,
		Password: string(hashedPassword),
		Phone:    input.Phone,
		Role:     role,
	}

	// A doctor profile exists iff the owning user has role=doctor, so both
	// rows are created in one transaction.
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		if role == models.RoleDoctor {
			doctor := models.Doctor{
				UserID:          user.ID,
				Specialization:  input.Specialization,
				Bio:             input.Bio,
				Experience:      input.Experience,
				ConsultationFee: input.ConsultationFee,
				AvailableSlots:  models.SlotList{},
			}
			if err := tx.Create(&doctor).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logger.Log.WithError(err).Error("Failed to create user")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create user",
		})
	}

	if user.Role == models.RoleDoctor {
		redis.Invalidate(redis.DoctorListKey)
	}

	tokenString, err := createToken(user)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to generate token")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate token",
		})
	}

	user.Sanitize()
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"token": tokenString,
		"user":  user,
	})
}

// Login handles user authentication
func Login(c *fiber.Ctx) error {
	type LoginInput struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	input := new(LoginInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	var user models.User
	if db.DB.Where("email = ?", strings.ToLower(input.Email)).First(&user).RowsAffected == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid credentials",
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid credentials",
		})
	}

	if user.IsBlocked {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Your account has been blocked",
		})
	}

	tokenString, err := createToken(user)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to generate token")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate token",
		})
	}

	user.Sanitize()
	return c.JSON(fiber.Map{
		"token": tokenString,
		"user":  user,
	})
}

// Me returns the current user's account, with the doctor profile attached
// for doctor accounts
func Me(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var user models.User
	if err := db.DB.Preload("Doctor").First(&user, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	user.Sanitize()
	return c.JSON(user)
}

// createToken issues a 24 hour HS256 access token
func createToken(user models.User) (string, error) {
	claims := jwt.MapClaims{
		"id":    user.ID,
		"email": user.Email,
		"role":  user.Role,
		"exp":   time.Now().Add(time.Hour * 24).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "solid_secret_key" // Replace with secure key in production
	}

	return token.SignedString([]byte(secret))
}
