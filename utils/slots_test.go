package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meddesk/clinic-api/models"
)

func TestValidateSlotsRejectsEmptySet(t *testing.T) {
	err := ValidateSlots(nil)
	assert.EqualError(t, err, "please select at least one working day")

	err = ValidateSlots([]models.AvailabilitySlot{})
	assert.EqualError(t, err, "please select at least one working day")
}

func TestValidateSlotsRejectsUnknownDay(t *testing.T) {
	err := ValidateSlots([]models.AvailabilitySlot{
		{Day: "Funday", StartTime: "09:00", EndTime: "17:00"},
	})
	assert.Error(t, err)
}

func TestValidateSlotsRejectsBadTimeFormat(t *testing.T) {
	err := ValidateSlots([]models.AvailabilitySlot{
		{Day: "Monday", StartTime: "9am", EndTime: "17:00"},
	})
	assert.Error(t, err)

	err = ValidateSlots([]models.AvailabilitySlot{
		{Day: "Monday", StartTime: "09:00", EndTime: "5pm"},
	})
	assert.Error(t, err)
}

func TestValidateSlotsRejectsInvertedRange(t *testing.T) {
	err := ValidateSlots([]models.AvailabilitySlot{
		{Day: "Monday", StartTime: "17:00", EndTime: "09:00"},
	})
	assert.Error(t, err)

	// start == end is also invalid
	err = ValidateSlots([]models.AvailabilitySlot{
		{Day: "Monday", StartTime: "09:00", EndTime: "09:00"},
	})
	assert.Error(t, err)
}

func TestValidateSlotsAcceptsValidSet(t *testing.T) {
	err := ValidateSlots([]models.AvailabilitySlot{
		{Day: "Monday", StartTime: "09:00", EndTime: "17:00"},
		{Day: "Wednesday", StartTime: "10:30", EndTime: "14:00"},
		// duplicates are permitted, the set is advisory
		{Day: "Monday", StartTime: "09:00", EndTime: "17:00"},
	})
	assert.NoError(t, err)
}
