package delete_coupon

import "context"

type CouponService interface {
	Delete(ctx context.Context, instanceID, code string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
