package add_availability_slot

import (
	"context"

	"github.com/m04kA/SMC-SalonScheduler/internal/service/availability/models"
)

type AvailabilityService interface {
	AddSlot(ctx context.Context, instanceID, date, timeStr string) (*models.SlotCreatedResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
