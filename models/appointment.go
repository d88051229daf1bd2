package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusApproved  AppointmentStatus = "approved"
	StatusDeclined  AppointmentStatus = "declined"
	StatusCancelled AppointmentStatus = "cancelled"
)

// IsValidStatus reports whether s is one of the defined appointment statuses.
func IsValidStatus(s AppointmentStatus) bool {
	switch s {
	case StatusPending, StatusApproved, StatusDeclined, StatusCancelled:
		return true
	}
	return false
}

// ErrNotOwner is returned when the caller is not the patient or doctor
// named on the appointment.
type ErrNotOwner struct{}

func (ErrNotOwner) Error() string {
	return "you can only update your own appointments"
}

// ErrInvalidTransition is returned when the requested status change is not
// defined by the appointment lifecycle.
type ErrInvalidTransition struct {
	From AppointmentStatus
	To   AppointmentStatus
}

func (e ErrInvalidTransition) Error() string {
	return fmt.Sprintf("invalid transition from %s to %s", e.From, e.To)
}

type Appointment struct {
	ID              uint              `json:"id" gorm:"primaryKey"`
	PatientID       uint              `json:"patient_id"`
	Patient         User              `json:"patient,omitempty" gorm:"foreignKey:PatientID"`
	DoctorID        uint              `json:"doctor_id"`
	Doctor          Doctor            `json:"doctor,omitempty" gorm:"foreignKey:DoctorID"`
	AppointmentDate string            `json:"appointment_date"` // Format "YYYY-MM-DD"
	AppointmentTime string            `json:"appointment_time"` // Format "HH:MM" in 24h
	Status          AppointmentStatus `json:"status" gorm:"default:pending"`
	Notes           string            `json:"notes,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.Status == "" {
		a.Status = StatusPending
	}
	return nil
}

// TransitionBy validates a status change requested by the given actor.
// Patients may cancel their own pending appointments; doctors may approve or
// decline appointments naming their doctor record. Approved, declined and
// cancelled are terminal. The caller applies the actual write.
//
// actorID is a user id for patients and a doctor id for doctors.
func (a *Appointment) TransitionBy(actorRole string, actorID uint, next AppointmentStatus) error {
	switch actorRole {
	case RolePatient:
		if a.PatientID != actorID {
			return ErrNotOwner{}
		}
		if a.Status != StatusPending || next != StatusCancelled {
			return ErrInvalidTransition{From: a.Status, To: next}
		}
	case RoleDoctor:
		if a.DoctorID != actorID {
			return ErrNotOwner{}
		}
		if a.Status != StatusPending || (next != StatusApproved && next != StatusDeclined) {
			return ErrInvalidTransition{From: a.Status, To: next}
		}
	default:
		// Admins moderate accounts, not appointment outcomes.
		return ErrNotOwner{}
	}
	return nil
}

// AppointmentView enriches an appointment with counterparty display fields
type AppointmentView struct {
	ID              uint              `json:"id"`
	PatientID       uint              `json:"patient_id"`
	DoctorID        uint              `json:"doctor_id"`
	AppointmentDate string            `json:"appointment_date"`
	AppointmentTime string            `json:"appointment_time"`
	Status          AppointmentStatus `json:"status"`
	Notes           string            `json:"notes,omitempty"`
	DoctorName      string            `json:"doctor_name"`
	Specialization  string            `json:"specialization"`
	PatientName     string            `json:"patient_name"`
	PatientEmail    string            `json:"patient_email"`
	PatientPhone    string            `json:"patient_phone,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
}

// NewAppointmentView builds the presentation record for a preloaded appointment
func NewAppointmentView(a Appointment) AppointmentView {
	return AppointmentView{
		ID:              a.ID,
		PatientID:       a.PatientID,
		DoctorID:        a.DoctorID,
		AppointmentDate: a.AppointmentDate,
		AppointmentTime: a.AppointmentTime,
		Status:          a.Status,
		Notes:           a.Notes,
		DoctorName:      a.Doctor.User.Name,
		Specialization:  a.Doctor.Specialization,
		PatientName:     a.Patient.Name,
		PatientEmail:    a.Patient.Email,
		PatientPhone:    a.Patient.Phone,
		CreatedAt:       a.CreatedAt,
	}
}
