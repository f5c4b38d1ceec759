package create_appointment

import (
	"context"
	"math/rand"
	"time"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
)

// InstanceManager интерфейс доступа к записям инстансов.
// Do сериализует цикл "чтение - мутация - запись": все мутации внутри fn
// становятся долговечными одной записью документа.
type InstanceManager interface {
	Do(ctx context.Context, instanceID string, fn func(inst *domain.Instance) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RandomPicker интерфейс выбора случайного индекса (для тестирования)
type RandomPicker interface {
	Intn(n int) int
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

// RealRandomPicker реальный источник случайности для production
type RealRandomPicker struct{}

// Intn возвращает случайное число из [0, n)
func (p *RealRandomPicker) Intn(n int) int {
	return rand.Intn(n)
}
