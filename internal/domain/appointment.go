package domain

// Appointment represents a booked (date, time) slot for a client.
// The ID is derived from the creation timestamp (Unix milliseconds),
// so ids are time-ordered.
type Appointment struct {
	ID         int64  `json:"id"`
	Date       string `json:"date"` // YYYY-MM-DD
	Time       string `json:"time"` // HH:MM
	ClientName string `json:"clientName"`
	Phone      string `json:"phone"`
	Status     string `json:"status,omitempty"`
	Image      string `json:"image,omitempty"`

	// CouponCode is the code redeemed at creation time, if any.
	CouponCode string `json:"couponCode,omitempty"`

	// AwardedCoupon is a snapshot of a rotation coupon granted to the
	// client as a booking bonus. The grant is independent of any redeemed
	// coupon and does not consume a use of the source coupon.
	AwardedCoupon *CouponGrant `json:"awardedCoupon,omitempty"`

	Notes     []string `json:"notes"`
	Profit    float64  `json:"profit,omitempty"`
	Materials float64  `json:"materials,omitempty"`
}

// HasRedeemedCoupon returns true if the appointment was created with a
// redeemed coupon code.
func (a *Appointment) HasRedeemedCoupon() bool {
	return a.CouponCode != ""
}

// HasAwardedCoupon returns true if a rotation coupon was awarded to the
// client at booking time.
func (a *Appointment) HasAwardedCoupon() bool {
	return a.AwardedCoupon != nil
}
