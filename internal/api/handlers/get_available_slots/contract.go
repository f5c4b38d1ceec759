package get_available_slots

import "context"

type AvailabilityService interface {
	ListOpenSlots(ctx context.Context, instanceID, date string) ([]string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
