package domain

import (
	"encoding/json"
	"time"
)

// Document is the root aggregate persisted by the document store. It holds
// every tenant under one object; each write persists the whole document.
type Document struct {
	// Users is owned by the auth module and carried verbatim so that
	// full-document writes do not destroy it.
	Users     json.RawMessage      `json:"users"`
	Instances map[string]*Instance `json:"instances"`
}

// Admin is an instance administrator account. Password hashing is handled
// by the auth module; the core never inspects the value.
type Admin struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Instance is one tenant's isolated data partition: its admins, coupon
// ledger, appointments, availability calendar and service catalog.
type Instance struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`

	// UserID is set by the provisioning module; carried verbatim.
	UserID json.RawMessage `json:"userId,omitempty"`

	Admins       []Admin                     `json:"admins"`
	Coupons      []Coupon                    `json:"coupons"`
	Appointments []Appointment               `json:"appointments"`
	Availability map[string]*DayAvailability `json:"availability"`
	Categories   []Category                  `json:"categories"`
	Services     []Service                   `json:"services"`
}

// FindCoupon returns a pointer to the coupon with the given code, or nil
// if the code is unknown.
func (i *Instance) FindCoupon(code string) *Coupon {
	for idx := range i.Coupons {
		if i.Coupons[idx].Code == code {
			return &i.Coupons[idx]
		}
	}
	return nil
}

// RedeemCoupon consumes one use of the coupon with the given code and
// returns its grant projection. The mutation is in-memory only; the caller
// is responsible for persisting the enclosing document.
func (i *Instance) RedeemCoupon(code string, now time.Time) (CouponGrant, error) {
	coupon := i.FindCoupon(code)
	if coupon == nil {
		return CouponGrant{}, ErrCouponNotFound
	}
	if coupon.IsExpired(now) {
		return CouponGrant{}, ErrCouponExpired
	}
	if coupon.UsesLeft <= 0 {
		return CouponGrant{}, ErrCouponExhausted
	}

	coupon.UsesLeft--
	return coupon.Grant(), nil
}

// ReverseCoupon restores one use to the coupon with the given code.
// Silent no-op if the coupon has been deleted since redemption.
func (i *Instance) ReverseCoupon(code string) {
	if coupon := i.FindCoupon(code); coupon != nil {
		coupon.UsesLeft++
	}
}

// EligibleRotationCoupons returns pointers to the coupons eligible for a
// random award: in rotation and with uses left. Expiry is not checked
// here; an awarded coupon is validated at redemption time instead.
func (i *Instance) EligibleRotationCoupons() []*Coupon {
	eligible := make([]*Coupon, 0)
	for idx := range i.Coupons {
		if i.Coupons[idx].InRotation && i.Coupons[idx].UsesLeft > 0 {
			eligible = append(eligible, &i.Coupons[idx])
		}
	}
	return eligible
}

// PublicCoupons returns the non-sensitive projection of every coupon that
// is currently redeemable.
func (i *Instance) PublicCoupons(now time.Time) []CouponGrant {
	public := make([]CouponGrant, 0)
	for idx := range i.Coupons {
		if i.Coupons[idx].IsActive(now) {
			public = append(public, i.Coupons[idx].Grant())
		}
	}
	return public
}

// FindAppointment returns the index of the appointment with the given id,
// or -1 if it is unknown.
func (i *Instance) FindAppointment(id int64) int {
	for idx := range i.Appointments {
		if i.Appointments[idx].ID == id {
			return idx
		}
	}
	return -1
}

// RemoveAppointment removes the appointment with the given id and returns
// it. The second return value is false if the id is unknown.
func (i *Instance) RemoveAppointment(id int64) (Appointment, bool) {
	idx := i.FindAppointment(id)
	if idx < 0 {
		return Appointment{}, false
	}
	removed := i.Appointments[idx]
	i.Appointments = append(i.Appointments[:idx], i.Appointments[idx+1:]...)
	return removed, true
}

// FindCategory returns the index of the category with the given id, or -1.
func (i *Instance) FindCategory(id string) int {
	for idx := range i.Categories {
		if i.Categories[idx].ID == id {
			return idx
		}
	}
	return -1
}

// FindService returns the index of the service with the given id, or -1.
func (i *Instance) FindService(id int64) int {
	for idx := range i.Services {
		if i.Services[idx].ID == id {
			return idx
		}
	}
	return -1
}
