package domain

import "sort"

// DayAvailability holds the bookable slots for one calendar date.
// A slot maps a time-of-day string to an open flag: true means bookable,
// false means consumed by a live appointment.
type DayAvailability struct {
	IsAvailable bool            `json:"isAvailable"`
	Slots       map[string]bool `json:"availableSlots"`
}

// AddSlot marks the given time as open on the given date, creating the
// date entry if it does not exist yet. Adding an existing slot re-opens
// it. The time string is stored as supplied, without format validation.
func (i *Instance) AddSlot(date, timeStr string) {
	if i.Availability == nil {
		i.Availability = make(map[string]*DayAvailability)
	}
	day, ok := i.Availability[date]
	if !ok {
		day = &DayAvailability{IsAvailable: true, Slots: make(map[string]bool)}
		i.Availability[date] = day
	}
	if day.Slots == nil {
		day.Slots = make(map[string]bool)
	}
	day.Slots[timeStr] = true
}

// CloseSlot marks the slot as consumed, but only if it exists and is
// currently open. A closed or unknown slot is left untouched: booking a
// slot that was never listed as available is tolerated.
func (i *Instance) CloseSlot(date, timeStr string) {
	day, ok := i.Availability[date]
	if !ok {
		return
	}
	if open, exists := day.Slots[timeStr]; exists && open {
		day.Slots[timeStr] = false
	}
}

// ReopenSlot marks the slot as open again, but only if it exists and is
// currently closed. Used when the appointment holding the slot is deleted.
func (i *Instance) ReopenSlot(date, timeStr string) {
	day, ok := i.Availability[date]
	if !ok {
		return
	}
	if open, exists := day.Slots[timeStr]; exists && !open {
		day.Slots[timeStr] = true
	}
}

// OpenSlots returns the sorted list of open times for the given date.
// An unknown date yields an empty list, not an error.
func (i *Instance) OpenSlots(date string) []string {
	day, ok := i.Availability[date]
	if !ok {
		return []string{}
	}

	slots := make([]string, 0, len(day.Slots))
	for timeStr, open := range day.Slots {
		if open {
			slots = append(slots, timeStr)
		}
	}
	sort.Strings(slots)

	return slots
}
