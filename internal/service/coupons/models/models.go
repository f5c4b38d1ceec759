package models

import "github.com/m04kA/SMC-SalonScheduler/internal/domain"

// Request модели

// CreateCouponRequest запрос на создание купона
type CreateCouponRequest struct {
	Code      string `json:"code"`
	Discount  int    `json:"discount"`
	UsesLeft  int    `json:"usesLeft"`
	ExpiresAt string `json:"expiresAt"`
}

// UpdateCouponRequest запрос на обновление купона.
// Указатели: nil означает "поле не менять".
type UpdateCouponRequest struct {
	UsesLeft   *int    `json:"usesLeft,omitempty"`
	ExpiresAt  *string `json:"expiresAt,omitempty"`
	InRotation *bool   `json:"inRotation,omitempty"`
}

// Response модели

// CouponResponse полные данные купона (для администратора)
type CouponResponse struct {
	Code       string `json:"code"`
	Discount   int    `json:"discount"`
	UsesLeft   int    `json:"usesLeft"`
	ExpiresAt  string `json:"expiresAt"`
	InRotation bool   `json:"inRotation"`
}

// PublicCouponResponse публичные данные купона (без внутренних счетчиков)
type PublicCouponResponse struct {
	Code      string `json:"code"`
	Discount  int    `json:"discount"`
	ExpiresAt string `json:"expiresAt"`
}

// StatsResponse агрегированная статистика по купонам
type StatsResponse struct {
	TotalCouponTypes  int `json:"totalCouponTypes"`
	CouponsRedeemed   int `json:"couponsRedeemed"`
	CouponsAwarded    int `json:"couponsAwarded"`
	ActiveCouponTypes int `json:"activeCouponTypes"`
}

// Методы конвертации

// FromDomainCoupon конвертирует domain модель в DTO
func FromDomainCoupon(c *domain.Coupon) *CouponResponse {
	if c == nil {
		return nil
	}
	return &CouponResponse{
		Code:       c.Code,
		Discount:   c.Discount,
		UsesLeft:   c.UsesLeft,
		ExpiresAt:  c.ExpiresAt,
		InRotation: c.InRotation,
	}
}

// FromDomainCouponList конвертирует список domain моделей в DTO
func FromDomainCouponList(coupons []domain.Coupon) []CouponResponse {
	resp := make([]CouponResponse, 0, len(coupons))
	for i := range coupons {
		resp = append(resp, *FromDomainCoupon(&coupons[i]))
	}
	return resp
}

// FromDomainGrant конвертирует публичную проекцию купона в DTO
func FromDomainGrant(g domain.CouponGrant) PublicCouponResponse {
	return PublicCouponResponse{
		Code:      g.Code,
		Discount:  g.Discount,
		ExpiresAt: g.ExpiresAt,
	}
}

// FromDomainGrantList конвертирует список публичных проекций в DTO
func FromDomainGrantList(grants []domain.CouponGrant) []PublicCouponResponse {
	resp := make([]PublicCouponResponse, 0, len(grants))
	for _, g := range grants {
		resp = append(resp, FromDomainGrant(g))
	}
	return resp
}
