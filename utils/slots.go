package utils

import (
	"fmt"
	"time"

	"github.com/meddesk/clinic-api/models"
)

var weekdays = map[string]bool{
	"Sunday":    true,
	"Monday":    true,
	"Tuesday":   true,
	"Wednesday": true,
	"Thursday":  true,
	"Friday":    true,
	"Saturday":  true,
}

// ValidateSlots checks an availability submission before it replaces the
// doctor's slot set. The set must not be empty and every slot needs a valid
// weekday and an "HH:MM" time range with start before end. Duplicates are
// allowed; the slots are advisory and never enforced against bookings.
func ValidateSlots(slots []models.AvailabilitySlot) error {
	if len(slots) == 0 {
		return fmt.Errorf("please select at least one working day")
	}

	layout := "15:04"
	for _, slot := range slots {
		if !weekdays[slot.Day] {
			return fmt.Errorf("invalid day: %s", slot.Day)
		}

		start, err := time.Parse(layout, slot.StartTime)
		if err != nil {
			return fmt.Errorf("invalid start time format for %s", slot.Day)
		}
		end, err := time.Parse(layout, slot.EndTime)
		if err != nil {
			return fmt.Errorf("invalid end time format for %s", slot.Day)
		}

		if !start.Before(end) {
			return fmt.Errorf("start time must be before end time for %s", slot.Day)
		}
	}

	return nil
}
