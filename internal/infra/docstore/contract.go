package docstore

import (
	"context"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
)

// Store контракт документного хранилища: весь документ со всеми тенантами
// читается и сохраняется целиком, без транзакций и версионирования.
type Store interface {
	// Load загружает текущее состояние документа. Если хранилище пустое
	// или повреждено, подставляет документ по умолчанию и сохраняет его.
	Load(ctx context.Context) (*domain.Document, error)

	// Save сохраняет документ целиком (включая все остальные тенанты).
	Save(ctx context.Context, doc *domain.Document) error
}
