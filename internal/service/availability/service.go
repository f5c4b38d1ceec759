package availability

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	"github.com/m04kA/SMC-SalonScheduler/internal/service/availability/models"
)

// Service сервис календаря доступности инстанса.
// Закрытие и открытие слотов при создании/удалении записей выполняется
// движком записей; здесь только чтение календаря и добавление слотов
// администратором.
type Service struct {
	manager InstanceManager
	logger  Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(manager InstanceManager, logger Logger) *Service {
	return &Service{
		manager: manager,
		logger:  logger,
	}
}

// ListDates возвращает календарь доступности инстанса как есть
func (s *Service) ListDates(ctx context.Context, instanceID string) (map[string]models.DayResponse, error) {
	var result map[string]models.DayResponse
	err := s.manager.View(ctx, instanceID, func(inst *domain.Instance) error {
		result = models.FromDomainAvailability(inst.Availability)
		return nil
	})
	if err != nil {
		s.logger.Error("ListDates: instance=%s: %v", instanceID, err)
		return nil, fmt.Errorf("%w: ListDates: %v", ErrInternal, err)
	}

	return result, nil
}

// ListOpenSlots возвращает отсортированный список открытых слотов на дату.
// Неизвестная дата дает пустой список, а не ошибку.
func (s *Service) ListOpenSlots(ctx context.Context, instanceID, date string) ([]string, error) {
	var result []string
	err := s.manager.View(ctx, instanceID, func(inst *domain.Instance) error {
		result = inst.OpenSlots(date)
		return nil
	})
	if err != nil {
		s.logger.Error("ListOpenSlots: instance=%s date=%s: %v", instanceID, date, err)
		return nil, fmt.Errorf("%w: ListOpenSlots: %v", ErrInternal, err)
	}

	return result, nil
}

// AddSlot добавляет открытый слот на дату, создавая день при
// необходимости. Формат времени не проверяется.
func (s *Service) AddSlot(ctx context.Context, instanceID, date, timeStr string) (*models.SlotCreatedResponse, error) {
	if date == "" || timeStr == "" {
		s.logger.Warn("AddSlot: missing date or time for instance=%s", instanceID)
		return nil, fmt.Errorf("%w: date and time are required", ErrInvalidInput)
	}

	err := s.manager.Do(ctx, instanceID, func(inst *domain.Instance) error {
		inst.AddSlot(date, timeStr)
		return nil
	})
	if err != nil {
		s.logger.Error("AddSlot: instance=%s date=%s time=%s: %v", instanceID, date, timeStr, err)
		return nil, fmt.Errorf("%w: AddSlot: %v", ErrInternal, err)
	}

	s.logger.Info("AddSlot: slot %s %s added for instance=%s", date, timeStr, instanceID)
	return &models.SlotCreatedResponse{Date: date, Time: timeStr}, nil
}
