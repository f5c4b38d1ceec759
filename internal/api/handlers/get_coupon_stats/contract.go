package get_coupon_stats

import (
	"context"

	"github.com/m04kA/SMC-SalonScheduler/internal/service/coupons/models"
)

type CouponService interface {
	Stats(ctx context.Context, instanceID string) (*models.StatsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
