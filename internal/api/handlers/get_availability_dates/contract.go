package get_availability_dates

import (
	"context"

	"github.com/m04kA/SMC-SalonScheduler/internal/service/availability/models"
)

type AvailabilityService interface {
	ListDates(ctx context.Context, instanceID string) (map[string]models.DayResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
