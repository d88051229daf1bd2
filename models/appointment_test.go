package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidStatus(t *testing.T) {
	assert.True(t, IsValidStatus(StatusPending))
	assert.True(t, IsValidStatus(StatusApproved))
	assert.True(t, IsValidStatus(StatusDeclined))
	assert.True(t, IsValidStatus(StatusCancelled))
	assert.False(t, IsValidStatus("confirmed"))
	assert.False(t, IsValidStatus(""))
}

func TestPatientCanCancelOwnPendingAppointment(t *testing.T) {
	apt := Appointment{PatientID: 7, DoctorID: 3, Status: StatusPending}

	err := apt.TransitionBy(RolePatient, 7, StatusCancelled)
	assert.NoError(t, err)
}

func TestPatientCannotTransitionForeignAppointment(t *testing.T) {
	apt := Appointment{PatientID: 7, DoctorID: 3, Status: StatusPending}

	for _, target := range []AppointmentStatus{StatusCancelled, StatusApproved, StatusDeclined} {
		err := apt.TransitionBy(RolePatient, 8, target)
		assert.ErrorAs(t, err, &ErrNotOwner{})
	}
}

func TestPatientCannotApproveOrDecline(t *testing.T) {
	apt := Appointment{PatientID: 7, DoctorID: 3, Status: StatusPending}

	for _, target := range []AppointmentStatus{StatusApproved, StatusDeclined} {
		err := apt.TransitionBy(RolePatient, 7, target)
		assert.ErrorAs(t, err, &ErrInvalidTransition{})
	}
}

func TestDoctorCanApproveAndDeclinePendingAppointment(t *testing.T) {
	for _, target := range []AppointmentStatus{StatusApproved, StatusDeclined} {
		apt := Appointment{PatientID: 7, DoctorID: 3, Status: StatusPending}
		assert.NoError(t, apt.TransitionBy(RoleDoctor, 3, target))
	}
}

func TestDoctorCannotCancel(t *testing.T) {
	apt := Appointment{PatientID: 7, DoctorID: 3, Status: StatusPending}

	err := apt.TransitionBy(RoleDoctor, 3, StatusCancelled)
	assert.ErrorAs(t, err, &ErrInvalidTransition{})
}

func TestDoctorCannotTransitionForeignAppointment(t *testing.T) {
	apt := Appointment{PatientID: 7, DoctorID: 3, Status: StatusPending}

	err := apt.TransitionBy(RoleDoctor, 4, StatusApproved)
	assert.ErrorAs(t, err, &ErrNotOwner{})
}

func TestTerminalStatesAllowNoFurtherTransitions(t *testing.T) {
	terminal := []AppointmentStatus{StatusApproved, StatusDeclined, StatusCancelled}
	targets := []AppointmentStatus{StatusApproved, StatusDeclined, StatusCancelled}

	for _, from := range terminal {
		for _, to := range targets {
			apt := Appointment{PatientID: 7, DoctorID: 3, Status: from}

			err := apt.TransitionBy(RoleDoctor, 3, to)
			assert.Error(t, err, "doctor transition %s -> %s should fail", from, to)

			err = apt.TransitionBy(RolePatient, 7, to)
			assert.Error(t, err, "patient transition %s -> %s should fail", from, to)
		}
	}
}

func TestAdminCannotTransitionAppointments(t *testing.T) {
	apt := Appointment{PatientID: 7, DoctorID: 3, Status: StatusPending}

	err := apt.TransitionBy(RoleAdmin, 1, StatusApproved)
	assert.ErrorAs(t, err, &ErrNotOwner{})
}

func TestBeforeCreateDefaultsStatusToPending(t *testing.T) {
	apt := Appointment{PatientID: 7, DoctorID: 3}
	assert.NoError(t, apt.BeforeCreate(nil))
	assert.Equal(t, StatusPending, apt.Status)

	apt = Appointment{PatientID: 7, DoctorID: 3, Status: StatusApproved}
	assert.NoError(t, apt.BeforeCreate(nil))
	assert.Equal(t, StatusApproved, apt.Status)
}

func TestNewAppointmentViewEnrichesCounterparties(t *testing.T) {
	apt := Appointment{
		ID:              42,
		PatientID:       7,
		DoctorID:        3,
		AppointmentDate: "2025-06-01",
		AppointmentTime: "10:00",
		Status:          StatusPending,
		Notes:           "first visit",
		Patient: User{
			ID:    7,
			Name:  "Pat Doe",
			Email: "pat@example.com",
			Phone: "555-0101",
		},
		Doctor: Doctor{
			ID:             3,
			Specialization: "Cardiology",
			User:           User{Name: "Dr. Grey"},
		},
	}

	view := NewAppointmentView(apt)

	assert.Equal(t, uint(42), view.ID)
	assert.Equal(t, "2025-06-01", view.AppointmentDate)
	assert.Equal(t, "10:00", view.AppointmentTime)
	assert.Equal(t, StatusPending, view.Status)
	assert.Equal(t, "first visit", view.Notes)
	assert.Equal(t, "Dr. Grey", view.DoctorName)
	assert.Equal(t, "Cardiology", view.Specialization)
	assert.Equal(t, "Pat Doe", view.PatientName)
	assert.Equal(t, "pat@example.com", view.PatientEmail)
	assert.Equal(t, "555-0101", view.PatientPhone)
}
