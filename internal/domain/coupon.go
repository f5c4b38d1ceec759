package domain

import "time"

// Coupon represents a discount coupon definition within one instance.
// The code is unique within the instance; UsesLeft is a remaining-uses
// counter that is decremented on redemption and restored on reversal.
type Coupon struct {
	Code       string `json:"code"`
	Discount   int    `json:"discount"` // percentage
	UsesLeft   int    `json:"usesLeft"`
	ExpiresAt  string `json:"expiresAt"` // YYYY-MM-DD
	InRotation bool   `json:"inRotation"`
}

// CouponGrant is the non-sensitive projection of a coupon, used both for
// the public coupon listing and for the award snapshot stored on an
// appointment.
type CouponGrant struct {
	Code      string `json:"code"`
	Discount  int    `json:"discount"`
	ExpiresAt string `json:"expiresAt"`
}

// IsExpired returns true if the coupon expiry date has passed.
// An unparseable expiry date is treated as expired.
func (c *Coupon) IsExpired(now time.Time) bool {
	expires, err := time.Parse(DateFormat, c.ExpiresAt)
	if err != nil {
		return true
	}
	return now.After(expires)
}

// IsActive returns true if the coupon can still be redeemed: it has uses
// left and has not expired.
func (c *Coupon) IsActive(now time.Time) bool {
	return c.UsesLeft > 0 && !c.IsExpired(now)
}

// Grant returns the non-sensitive projection of the coupon.
func (c *Coupon) Grant() CouponGrant {
	return CouponGrant{
		Code:      c.Code,
		Discount:  c.Discount,
		ExpiresAt: c.ExpiresAt,
	}
}
