package coupons

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	"github.com/m04kA/SMC-SalonScheduler/internal/service/coupons/models"
)

// Service сервис управления купонами инстанса
type Service struct {
	manager      InstanceManager
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса купонов
func NewService(manager InstanceManager, logger Logger) *Service {
	return &Service{
		manager:      manager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// ListPublic возвращает публичные данные действующих купонов:
// только те, у которых остались использования и не истек срок
func (s *Service) ListPublic(ctx context.Context, instanceID string) ([]models.PublicCouponResponse, error) {
	now := s.timeProvider.Now()

	var result []models.PublicCouponResponse
	err := s.manager.View(ctx, instanceID, func(inst *domain.Instance) error {
		result = models.FromDomainGrantList(inst.PublicCoupons(now))
		return nil
	})
	if err != nil {
		s.logger.Error("ListPublic: instance=%s: %v", instanceID, err)
		return nil, fmt.Errorf("%w: ListPublic: %v", ErrInternal, err)
	}

	return result, nil
}

// List возвращает полные данные всех купонов инстанса (для администратора)
func (s *Service) List(ctx context.Context, instanceID string) ([]models.CouponResponse, error) {
	var result []models.CouponResponse
	err := s.manager.View(ctx, instanceID, func(inst *domain.Instance) error {
		result = models.FromDomainCouponList(inst.Coupons)
		return nil
	})
	if err != nil {
		s.logger.Error("List: instance=%s: %v", instanceID, err)
		return nil, fmt.Errorf("%w: List: %v", ErrInternal, err)
	}

	return result, nil
}

// Create создает новый купон. Все поля обязательны; код должен быть
// уникален в пределах инстанса. Новый купон не участвует в ротации.
func (s *Service) Create(ctx context.Context, instanceID string, req *models.CreateCouponRequest) (*models.CouponResponse, error) {
	if req.Code == "" || req.Discount <= 0 || req.UsesLeft <= 0 || req.ExpiresAt == "" {
		s.logger.Warn("Create: invalid coupon input for instance=%s", instanceID)
		return nil, fmt.Errorf("%w: all coupon fields are required", ErrInvalidInput)
	}

	var result *models.CouponResponse
	err := s.manager.Do(ctx, instanceID, func(inst *domain.Instance) error {
		if inst.FindCoupon(req.Code) != nil {
			return ErrCouponExists
		}

		coupon := domain.Coupon{
			Code:       req.Code,
			Discount:   req.Discount,
			UsesLeft:   req.UsesLeft,
			ExpiresAt:  req.ExpiresAt,
			InRotation: false,
		}
		inst.Coupons = append(inst.Coupons, coupon)
		result = models.FromDomainCoupon(&coupon)
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrCouponExists) {
			s.logger.Warn("Create: coupon code=%s already exists in instance=%s", req.Code, instanceID)
			return nil, err
		}
		s.logger.Error("Create: instance=%s code=%s: %v", instanceID, req.Code, err)
		return nil, fmt.Errorf("%w: Create: %v", ErrInternal, err)
	}

	s.logger.Info("Create: coupon code=%s created in instance=%s", req.Code, instanceID)
	return result, nil
}

// Update обновляет поля купона. Счетчик использований не может стать
// отрицательным; остальные поля патчатся опционально.
func (s *Service) Update(ctx context.Context, instanceID, code string, req *models.UpdateCouponRequest) (*models.CouponResponse, error) {
	var result *models.CouponResponse
	err := s.manager.Do(ctx, instanceID, func(inst *domain.Instance) error {
		coupon := inst.FindCoupon(code)
		if coupon == nil {
			return ErrCouponNotFound
		}

		if req.UsesLeft != nil {
			if *req.UsesLeft < 0 {
				return ErrNegativeUses
			}
			coupon.UsesLeft = *req.UsesLeft
		}
		if req.ExpiresAt != nil && *req.ExpiresAt != "" {
			coupon.ExpiresAt = *req.ExpiresAt
		}
		if req.InRotation != nil {
			coupon.InRotation = *req.InRotation
		}

		result = models.FromDomainCoupon(coupon)
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrCouponNotFound):
			s.logger.Warn("Update: coupon code=%s not found in instance=%s", code, instanceID)
			return nil, err
		case errors.Is(err, ErrNegativeUses):
			s.logger.Warn("Update: negative usesLeft rejected for code=%s in instance=%s", code, instanceID)
			return nil, err
		default:
			s.logger.Error("Update: instance=%s code=%s: %v", instanceID, code, err)
			return nil, fmt.Errorf("%w: Update: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Update: coupon code=%s updated in instance=%s", code, instanceID)
	return result, nil
}

// Delete удаляет купон по коду. Идемпотентна: отсутствующий код не
// считается ошибкой. Использования, уже списанные на записи, не
// восстанавливаются.
func (s *Service) Delete(ctx context.Context, instanceID, code string) error {
	err := s.manager.Do(ctx, instanceID, func(inst *domain.Instance) error {
		kept := inst.Coupons[:0]
		for _, c := range inst.Coupons {
			if c.Code != code {
				kept = append(kept, c)
			}
		}
		inst.Coupons = kept
		return nil
	})
	if err != nil {
		s.logger.Error("Delete: instance=%s code=%s: %v", instanceID, code, err)
		return fmt.Errorf("%w: Delete: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: coupon code=%s deleted from instance=%s", code, instanceID)
	return nil
}

// Stats возвращает агрегированную статистику: количество типов купонов,
// число погашений и наград на записях, число действующих купонов
func (s *Service) Stats(ctx context.Context, instanceID string) (*models.StatsResponse, error) {
	now := s.timeProvider.Now()

	var result *models.StatsResponse
	err := s.manager.View(ctx, instanceID, func(inst *domain.Instance) error {
		stats := &models.StatsResponse{
			TotalCouponTypes: len(inst.Coupons),
		}

		for i := range inst.Appointments {
			if inst.Appointments[i].HasRedeemedCoupon() {
				stats.CouponsRedeemed++
			}
			if inst.Appointments[i].HasAwardedCoupon() {
				stats.CouponsAwarded++
			}
		}

		for i := range inst.Coupons {
			if inst.Coupons[i].IsActive(now) {
				stats.ActiveCouponTypes++
			}
		}

		result = stats
		return nil
	})
	if err != nil {
		s.logger.Error("Stats: instance=%s: %v", instanceID, err)
		return nil, fmt.Errorf("%w: Stats: %v", ErrInternal, err)
	}

	return result, nil
}
