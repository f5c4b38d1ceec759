package instances

import (
	"context"
	"fmt"
	"sync"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
)

// Manager доступ к записям инстансов поверх документного хранилища.
//
// Все циклы "прочитать документ - изменить - записать" сериализуются через
// один мьютекс: это явная точка упорядочивания мутаций, которая не дает
// конкурентным запросам одного процесса потерять обновления счетчиков
// (usesLeft, флаги слотов). Запись между процессами остается
// last-writer-wins по всему документу.
//
// Неизвестный инстанс лениво создается с администратором по умолчанию;
// записи без каталога (созданные до его появления) лечатся при чтении.
type Manager struct {
	mu           sync.Mutex
	store        Store
	defaultAdmin string
	log          Logger
}

// NewManager создает менеджер инстансов
func NewManager(store Store, defaultAdmin string, log Logger) *Manager {
	return &Manager{
		store:        store,
		defaultAdmin: defaultAdmin,
		log:          log,
	}
}

// View загружает документ, разрешает инстанс и выполняет fn для чтения.
// Изменения, сделанные fn, не сохраняются (кроме ленивого создания и
// backfill каталога, которые сохраняются сразу).
func (m *Manager) View(ctx context.Context, instanceID string, fn func(inst *domain.Instance) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, inst, err := m.resolve(ctx, instanceID)
	if err != nil {
		return err
	}

	return fn(inst)
}

// Do загружает документ, разрешает инстанс, выполняет fn и после успеха
// сохраняет документ целиком одной записью. Если fn возвращает ошибку,
// запись не выполняется и изменения в памяти отбрасываются.
func (m *Manager) Do(ctx context.Context, instanceID string, fn func(inst *domain.Instance) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc, inst, err := m.resolve(ctx, instanceID)
	if err != nil {
		return err
	}

	if err := fn(inst); err != nil {
		return err
	}

	if err := m.store.Save(ctx, doc); err != nil {
		return fmt.Errorf("%w: %v", ErrSave, err)
	}

	return nil
}

// resolve загружает документ и возвращает запись инстанса, создавая или
// леча её при необходимости. Вызывается только под мьютексом.
func (m *Manager) resolve(ctx context.Context, instanceID string) (*domain.Document, *domain.Instance, error) {
	doc, err := m.store.Load(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}

	if doc.Instances == nil {
		doc.Instances = make(map[string]*domain.Instance)
	}

	inst, ok := doc.Instances[instanceID]
	if !ok {
		inst = domain.NewInstance(m.defaultAdmin)
		doc.Instances[instanceID] = inst
		if err := m.store.Save(ctx, doc); err != nil {
			return nil, nil, fmt.Errorf("%w: persist new instance: %v", ErrSave, err)
		}
		m.log.Info("Created new instance %q with default admin %q", instanceID, m.defaultAdmin)
		return doc, inst, nil
	}

	// Лечим записи, созданные до появления каталога
	if inst.Categories == nil || inst.Services == nil {
		if inst.Categories == nil {
			inst.Categories = domain.DefaultCategories()
		}
		if inst.Services == nil {
			inst.Services = domain.DefaultServices()
		}
		if err := m.store.Save(ctx, doc); err != nil {
			return nil, nil, fmt.Errorf("%w: persist catalog backfill: %v", ErrSave, err)
		}
		m.log.Info("Backfilled default catalog for legacy instance %q", instanceID)
	}

	return doc, inst, nil
}
