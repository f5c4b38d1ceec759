package list_coupons

import (
	"context"

	"github.com/m04kA/SMC-SalonScheduler/internal/service/coupons/models"
)

type CouponService interface {
	List(ctx context.Context, instanceID string) ([]models.CouponResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
