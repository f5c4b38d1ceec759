package coupons

import "errors"

var (
	// ErrCouponNotFound возвращается, когда купон не найден
	ErrCouponNotFound = errors.New("coupons: coupon not found")

	// ErrCouponExists возвращается при попытке создать купон с существующим кодом
	ErrCouponExists = errors.New("coupons: coupon code already exists")

	// ErrNegativeUses возвращается при попытке установить отрицательный счетчик использований
	ErrNegativeUses = errors.New("coupons: uses cannot be negative")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("coupons: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("coupons: internal error")
)
