package domain

import "errors"

var (
	// ErrCouponNotFound is returned when the referenced coupon code does not exist
	ErrCouponNotFound = errors.New("domain: coupon not found")

	// ErrCouponExpired is returned when the coupon expiry date has passed
	ErrCouponExpired = errors.New("domain: coupon has expired")

	// ErrCouponExhausted is returned when the coupon has no uses left
	ErrCouponExhausted = errors.New("domain: coupon has no uses left")
)
