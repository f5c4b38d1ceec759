package instances

import (
	"context"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
)

// Store интерфейс документного хранилища
type Store interface {
	Load(ctx context.Context) (*domain.Document, error)
	Save(ctx context.Context, doc *domain.Document) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
