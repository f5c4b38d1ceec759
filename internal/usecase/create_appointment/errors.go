package create_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при отсутствии обязательных полей записи
	ErrInvalidInput = errors.New("create_appointment: missing required appointment data")

	// ErrCouponNotFound возвращается, когда код купона не существует
	ErrCouponNotFound = errors.New("create_appointment: invalid coupon code")

	// ErrCouponExpired возвращается, когда срок действия купона истек
	ErrCouponExpired = errors.New("create_appointment: coupon has expired")

	// ErrCouponExhausted возвращается, когда у купона не осталось использований
	ErrCouponExhausted = errors.New("create_appointment: coupon has no uses left")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
