package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlotListScan(t *testing.T) {
	payload := `[{"day":"Monday","startTime":"09:00","endTime":"17:00"}]`

	var fromBytes SlotList
	assert.NoError(t, fromBytes.Scan([]byte(payload)))
	assert.Len(t, fromBytes, 1)
	assert.Equal(t, "Monday", fromBytes[0].Day)
	assert.Equal(t, "09:00", fromBytes[0].StartTime)
	assert.Equal(t, "17:00", fromBytes[0].EndTime)

	var fromString SlotList
	assert.NoError(t, fromString.Scan(payload))
	assert.Equal(t, fromBytes, fromString)

	var invalid SlotList
	assert.Error(t, invalid.Scan(42))
}

func TestSlotListValueNilBecomesEmptyArray(t *testing.T) {
	var slots SlotList

	value, err := slots.Value()
	assert.NoError(t, err)
	assert.Equal(t, "[]", value)
}
