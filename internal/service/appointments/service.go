package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	"github.com/m04kA/SMC-SalonScheduler/internal/service/appointments/models"
)

// Service сервис записей: чтение, обновление и удаление с компенсацией
// побочных эффектов. Создание записи живет в отдельном usecase, так как
// координирует купоны и календарь доступности.
type Service struct {
	manager InstanceManager
	logger  Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(manager InstanceManager, logger Logger) *Service {
	return &Service{
		manager: manager,
		logger:  logger,
	}
}

// List возвращает все записи инстанса (для администратора)
func (s *Service) List(ctx context.Context, instanceID string) ([]models.AppointmentResponse, error) {
	var result []models.AppointmentResponse
	err := s.manager.View(ctx, instanceID, func(inst *domain.Instance) error {
		result = models.FromDomainAppointmentList(inst.Appointments)
		return nil
	})
	if err != nil {
		s.logger.Error("List: instance=%s: %v", instanceID, err)
		return nil, fmt.Errorf("%w: List: %v", ErrInternal, err)
	}

	return result, nil
}

// GetByID возвращает запись по идентификатору
func (s *Service) GetByID(ctx context.Context, instanceID string, id int64) (*models.AppointmentResponse, error) {
	var result *models.AppointmentResponse
	err := s.manager.View(ctx, instanceID, func(inst *domain.Instance) error {
		idx := inst.FindAppointment(id)
		if idx < 0 {
			return ErrAppointmentNotFound
		}
		result = models.FromDomainAppointment(&inst.Appointments[idx])
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found in instance=%s", id, instanceID)
			return nil, err
		}
		s.logger.Error("GetByID: instance=%s id=%d: %v", instanceID, id, err)
		return nil, fmt.Errorf("%w: GetByID: %v", ErrInternal, err)
	}

	return result, nil
}

// Update обновляет поля записи по принципу truthy-merge: переданные
// пустые строки и нулевые суммы не затирают существующие значения,
// непустой указатель на список заметок заменяет список целиком.
func (s *Service) Update(ctx context.Context, instanceID string, id int64, req *models.UpdateAppointmentRequest) (*models.AppointmentResponse, error) {
	var result *models.AppointmentResponse
	err := s.manager.Do(ctx, instanceID, func(inst *domain.Instance) error {
		idx := inst.FindAppointment(id)
		if idx < 0 {
			return ErrAppointmentNotFound
		}

		appt := &inst.Appointments[idx]
		if req.ClientName != nil && *req.ClientName != "" {
			appt.ClientName = *req.ClientName
		}
		if req.Status != nil && *req.Status != "" {
			appt.Status = *req.Status
		}
		if req.Profit != nil && *req.Profit != 0 {
			appt.Profit = *req.Profit
		}
		if req.Materials != nil && *req.Materials != 0 {
			appt.Materials = *req.Materials
		}
		if req.Notes != nil {
			appt.Notes = *req.Notes
		}

		result = models.FromDomainAppointment(appt)
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrAppointmentNotFound) {
			s.logger.Warn("Update: appointment id=%d not found in instance=%s", id, instanceID)
			return nil, err
		}
		s.logger.Error("Update: instance=%s id=%d: %v", instanceID, id, err)
		return nil, fmt.Errorf("%w: Update: %v", ErrInternal, err)
	}

	s.logger.Info("Update: appointment id=%d updated in instance=%s", id, instanceID)
	return result, nil
}

// Delete удаляет запись и откатывает её побочные эффекты: возвращает
// использование купона (если купон еще существует) и открывает слот
// (если он сейчас закрыт). Все три эффекта применяются до единственной
// сохраняющей записи, поэтому либо все долговечны, либо ни один.
func (s *Service) Delete(ctx context.Context, instanceID string, id int64) error {
	err := s.manager.Do(ctx, instanceID, func(inst *domain.Instance) error {
		removed, ok := inst.RemoveAppointment(id)
		if !ok {
			return ErrAppointmentNotFound
		}

		if removed.HasRedeemedCoupon() {
			inst.ReverseCoupon(removed.CouponCode)
		}
		inst.ReopenSlot(removed.Date, removed.Time)

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrAppointmentNotFound) {
			s.logger.Warn("Delete: appointment id=%d not found in instance=%s", id, instanceID)
			return err
		}
		s.logger.Error("Delete: instance=%s id=%d: %v", instanceID, id, err)
		return fmt.Errorf("%w: Delete: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: appointment id=%d deleted from instance=%s", id, instanceID)
	return nil
}
