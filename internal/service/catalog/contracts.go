package catalog

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
)

// InstanceManager интерфейс доступа к записям инстансов
type InstanceManager interface {
	View(ctx context.Context, instanceID string, fn func(inst *domain.Instance) error) error
	Do(ctx context.Context, instanceID string, fn func(inst *domain.Instance) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования).
// Используется для генерации идентификаторов услуг.
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
