package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	"github.com/m04kA/SMC-SalonScheduler/pkg/ptr"
)

// UseCase use case создания записи: координирует погашение купона,
// розыгрыш награды и закрытие слота как одну логическую операцию
type UseCase struct {
	manager      InstanceManager
	timeProvider TimeProvider
	randomPicker RandomPicker
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(manager InstanceManager, logger Logger) *UseCase {
	return &UseCase{
		manager:      manager,
		timeProvider: &RealTimeProvider{},
		randomPicker: &RealRandomPicker{},
		logger:       logger,
	}
}

// Execute выполняет создание записи.
//
// Порядок внутри сериализованной мутации: сначала погашение купона
// (любая ошибка прерывает операцию до каких-либо долговечных изменений),
// затем построение записи, розыгрыш купона для клиентских созданий,
// добавление в коллекцию и закрытие слота. Все эффекты сохраняются
// одной записью документа.
//
// Проверка доступности слота - рекомендательная: закрывается только
// слот, который был явно открыт, а запись на незаявленный или уже
// занятый слот не блокируется.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: instance=%s, date=%s, time=%s, admin=%t",
		req.InstanceID, req.Date, req.Time, req.IsAdminCreation)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время: оно же источник идентификатора записи
	now := uc.timeProvider.Now()

	var created domain.Appointment

	// 3. Выполняем мутацию инстанса в сериализованном цикле
	err := uc.manager.Do(ctx, req.InstanceID, func(inst *domain.Instance) error {
		// 3.1. Погашаем купон, если код передан. Ошибка погашения
		// прерывает операцию целиком: запись не создается, слот не
		// закрывается.
		if req.CouponCode != "" {
			if _, err := inst.RedeemCoupon(req.CouponCode, now); err != nil {
				return err
			}
		}

		// 3.2. Строим запись с идентификатором из метки времени
		appt := domain.Appointment{
			ID:         now.UnixMilli(),
			Date:       req.Date,
			Time:       req.Time,
			ClientName: req.ClientName,
			Phone:      req.Phone,
			Status:     req.Status,
			Image:      req.Image,
			CouponCode: req.CouponCode,
			Notes:      []string{},
		}

		// 3.3. Клиентское создание участвует в розыгрыше: равновероятный
		// выбор среди купонов в ротации с остатком использований.
		// Счетчик выбранного купона не уменьшается - награда
		// фиксируется снимком на записи и списывается только при
		// будущем погашении.
		if !req.IsAdminCreation {
			eligible := inst.EligibleRotationCoupons()
			if len(eligible) > 0 {
				picked := eligible[uc.randomPicker.Intn(len(eligible))]
				appt.AwardedCoupon = ptr.Ptr(picked.Grant())
				uc.logger.Info("CreateAppointment: awarded coupon code=%s to client %s",
					picked.Code, req.ClientName)
			}
		}

		// 3.4. Добавляем запись и закрываем слот (если он был открыт)
		inst.Appointments = append(inst.Appointments, appt)
		inst.CloseSlot(req.Date, req.Time)

		created = appt
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCouponNotFound):
			uc.logger.Warn("CreateAppointment: invalid coupon code=%s, instance=%s", req.CouponCode, req.InstanceID)
			return nil, ErrCouponNotFound
		case errors.Is(err, domain.ErrCouponExpired):
			uc.logger.Warn("CreateAppointment: expired coupon code=%s, instance=%s", req.CouponCode, req.InstanceID)
			return nil, ErrCouponExpired
		case errors.Is(err, domain.ErrCouponExhausted):
			uc.logger.Warn("CreateAppointment: exhausted coupon code=%s, instance=%s", req.CouponCode, req.InstanceID)
			return nil, ErrCouponExhausted
		default:
			uc.logger.Error("CreateAppointment: instance=%s: %v", req.InstanceID, err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d, instance=%s",
		created.ID, req.InstanceID)

	return &Response{
		ID:            created.ID,
		Date:          created.Date,
		Time:          created.Time,
		ClientName:    created.ClientName,
		Phone:         created.Phone,
		Status:        created.Status,
		Image:         created.Image,
		CouponCode:    created.CouponCode,
		AwardedCoupon: created.AwardedCoupon,
		Notes:         created.Notes,
	}, nil
}
