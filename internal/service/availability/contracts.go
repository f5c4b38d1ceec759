package availability

import (
	"context"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
)

// InstanceManager интерфейс доступа к записям инстансов
type InstanceManager interface {
	View(ctx context.Context, instanceID string, fn func(inst *domain.Instance) error) error
	Do(ctx context.Context, instanceID string, fn func(inst *domain.Instance) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
