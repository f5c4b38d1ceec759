package update_coupon

import (
	"context"

	"github.com/m04kA/SMC-SalonScheduler/internal/service/coupons/models"
)

type CouponService interface {
	Update(ctx context.Context, instanceID, code string, req *models.UpdateCouponRequest) (*models.CouponResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
