package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// AvailabilitySlot is a weekly working-hours entry published by a doctor.
// It is advisory metadata: bookings are not checked against it.
type AvailabilitySlot struct {
	Day       string `json:"day"`
	StartTime string `json:"startTime"` // Format "HH:MM" in 24h
	EndTime   string `json:"endTime"`   // Format "HH:MM" in 24h
}

// SlotList stores a doctor's availability slots as a JSONB column
type SlotList []AvailabilitySlot

// Value implements the driver.Valuer interface
func (s SlotList) Value() (driver.Value, error) {
	if s == nil {
		s = SlotList{}
	}
	jsonData, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil // Return as string for JSONB type
}

// Scan implements the sql.Scanner interface
func (s *SlotList) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("failed to unmarshal SlotList: unsupported type %T", value)
	}

	return json.Unmarshal(data, s)
}

type Doctor struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	UserID          uint      `json:"user_id" gorm:"uniqueIndex"`
	User            User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Specialization  string    `json:"specialization"`
	Bio             string    `json:"bio,omitempty"`
	Experience      int       `json:"experience" gorm:"default:0"`
	Rating          float64   `json:"rating" gorm:"type:decimal(2,1);default:0.0"`
	ConsultationFee float64   `json:"consultation_fee" gorm:"type:decimal(10,2);default:0"`
	AvailableSlots  SlotList  `json:"available_slots" gorm:"type:jsonb;default:'[]'"`
	CreatedAt       time.Time `json:"created_at"`
}

// DoctorView is the public directory representation of a doctor
type DoctorView struct {
	ID              uint     `json:"id"`
	UserID          uint     `json:"user_id"`
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone,omitempty"`
	Specialization  string   `json:"specialization"`
	Bio             string   `json:"bio,omitempty"`
	Experience      int      `json:"experience"`
	Rating          float64  `json:"rating"`
	ConsultationFee float64  `json:"consultation_fee"`
	AvailableSlots  SlotList `json:"available_slots"`
}

// NewDoctorView joins a doctor with its owning user for presentation
func NewDoctorView(d Doctor) DoctorView {
	return DoctorView{
		ID:              d.ID,
		UserID:          d.UserID,
		Name:            d.User.Name,
		Email:           d.User.Email,
		Phone:           d.User.Phone,
		Specialization:  d.Specialization,
		Bio:             d.Bio,
		Experience:      d.Experience,
		Rating:          d.Rating,
		ConsultationFee: d.ConsultationFee,
		AvailableSlots:  d.AvailableSlots,
	}
}
