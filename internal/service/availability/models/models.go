package models

import "github.com/m04kA/SMC-SalonScheduler/internal/domain"

// DayResponse доступность одного календарного дня
type DayResponse struct {
	IsAvailable    bool            `json:"isAvailable"`
	AvailableSlots map[string]bool `json:"availableSlots"`
}

// SlotCreatedResponse подтверждение добавления слота
type SlotCreatedResponse struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// FromDomainAvailability конвертирует карту доступности в DTO.
// Всегда возвращает непустую карту (не nil).
func FromDomainAvailability(availability map[string]*domain.DayAvailability) map[string]DayResponse {
	resp := make(map[string]DayResponse, len(availability))
	for date, day := range availability {
		if day == nil {
			continue
		}
		slots := day.Slots
		if slots == nil {
			slots = map[string]bool{}
		}
		resp[date] = DayResponse{
			IsAvailable:    day.IsAvailable,
			AvailableSlots: slots,
		}
	}
	return resp
}
