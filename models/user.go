package models

import (
	"time"
)

const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
	RoleAdmin   = "admin"
)

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	Email     string    `json:"email" gorm:"unique"`
	Password  string    `json:"password,omitempty"`
	Role      string    `json:"role" gorm:"default:patient"`
	Phone     string    `json:"phone,omitempty"`
	IsBlocked bool      `json:"is_blocked"`
	Doctor    *Doctor   `json:"doctor,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Sanitize clears the password hash before the user is serialized
func (u *User) Sanitize() {
	u.Password = ""
}

// AdminUserView is the moderation listing row; doctor rows carry their
// specialization so admins can tell practitioners apart.
type AdminUserView struct {
	ID             uint      `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Role           string    `json:"role"`
	Phone          string    `json:"phone,omitempty"`
	IsBlocked      bool      `json:"is_blocked"`
	Specialization string    `json:"specialization,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewAdminUserView maps a user (with its doctor profile preloaded, if any)
func NewAdminUserView(u User) AdminUserView {
	view := AdminUserView{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Phone:     u.Phone,
		IsBlocked: u.IsBlocked,
		CreatedAt: u.CreatedAt,
	}
	if u.Doctor != nil {
		view.Specialization = u.Doctor.Specialization
	}
	return view
}
