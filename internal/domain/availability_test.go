package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstance_AddSlot_CreatesDay(t *testing.T) {
	inst := &Instance{Availability: map[string]*DayAvailability{}}

	inst.AddSlot("2025-10-20", "10:00")

	day := inst.Availability["2025-10-20"]
	require.NotNil(t, day)
	assert.True(t, day.IsAvailable)
	assert.True(t, day.Slots["10:00"])
}

func TestInstance_CloseSlot_OnlyWhenOpen(t *testing.T) {
	inst := &Instance{Availability: map[string]*DayAvailability{
		"2025-10-20": {IsAvailable: true, Slots: map[string]bool{"10:00": true, "11:00": false}},
	}}

	inst.CloseSlot("2025-10-20", "10:00")
	assert.False(t, inst.Availability["2025-10-20"].Slots["10:00"])

	// Незаявленный слот не создается закрытием
	inst.CloseSlot("2025-10-20", "12:00")
	_, exists := inst.Availability["2025-10-20"].Slots["12:00"]
	assert.False(t, exists)

	// Неизвестная дата: тихий no-op
	inst.CloseSlot("2099-01-01", "10:00")
	assert.NotContains(t, inst.Availability, "2099-01-01")
}

func TestInstance_ReopenSlot_OnlyWhenClosed(t *testing.T) {
	inst := &Instance{Availability: map[string]*DayAvailability{
		"2025-10-20": {IsAvailable: true, Slots: map[string]bool{"10:00": false, "11:00": true}},
	}}

	inst.ReopenSlot("2025-10-20", "10:00")
	assert.True(t, inst.Availability["2025-10-20"].Slots["10:00"])

	// Незаявленный слот не создается открытием
	inst.ReopenSlot("2025-10-20", "12:00")
	_, exists := inst.Availability["2025-10-20"].Slots["12:00"]
	assert.False(t, exists)
}

func TestInstance_CloseReopenRoundTrip(t *testing.T) {
	inst := &Instance{Availability: map[string]*DayAvailability{}}
	inst.AddSlot("2025-10-20", "10:00")

	inst.CloseSlot("2025-10-20", "10:00")
	inst.ReopenSlot("2025-10-20", "10:00")

	assert.True(t, inst.Availability["2025-10-20"].Slots["10:00"])
}

func TestInstance_OpenSlots_SortedAndFiltered(t *testing.T) {
	inst := &Instance{Availability: map[string]*DayAvailability{
		"2025-10-20": {IsAvailable: true, Slots: map[string]bool{
			"14:00": true,
			"09:00": true,
			"11:00": false,
			"10:00": true,
		}},
	}}

	assert.Equal(t, []string{"09:00", "10:00", "14:00"}, inst.OpenSlots("2025-10-20"))

	// Неизвестная дата дает пустой список, а не nil
	slots := inst.OpenSlots("2099-01-01")
	require.NotNil(t, slots)
	assert.Empty(t, slots)
}
