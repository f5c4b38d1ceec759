package create_appointment

import (
	createAppointment "github.com/m04kA/SMC-SalonScheduler/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	Date       string `json:"date"` // "2025-10-15"
	Time       string `json:"time"` // "10:00"
	ClientName string `json:"clientName"`
	Phone      string `json:"phone"`
	Status     string `json:"status,omitempty"`
	Image      string `json:"image,omitempty"`
	CouponCode string `json:"couponCode,omitempty"`
}

// AwardedCouponResponse снимок подаренного купона
type AwardedCouponResponse struct {
	Code      string `json:"code"`
	Discount  int    `json:"discount"`
	ExpiresAt string `json:"expiresAt"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID            int64                  `json:"id"`
	Date          string                 `json:"date"`
	Time          string                 `json:"time"`
	ClientName    string                 `json:"clientName"`
	Phone         string                 `json:"phone"`
	Status        string                 `json:"status,omitempty"`
	Image         string                 `json:"image,omitempty"`
	CouponCode    string                 `json:"couponCode,omitempty"`
	AwardedCoupon *AwardedCouponResponse `json:"awardedCoupon,omitempty"`
	Notes         []string               `json:"notes"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(instanceID string, isAdmin bool) *createAppointment.Request {
	return &createAppointment.Request{
		InstanceID:      instanceID,
		Date:            r.Date,
		Time:            r.Time,
		ClientName:      r.ClientName,
		Phone:           r.Phone,
		Status:          r.Status,
		Image:           r.Image,
		CouponCode:      r.CouponCode,
		IsAdminCreation: isAdmin,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	out := &AppointmentResponse{
		ID:         resp.ID,
		Date:       resp.Date,
		Time:       resp.Time,
		ClientName: resp.ClientName,
		Phone:      resp.Phone,
		Status:     resp.Status,
		Image:      resp.Image,
		CouponCode: resp.CouponCode,
		Notes:      resp.Notes,
	}
	if out.Notes == nil {
		out.Notes = []string{}
	}
	if resp.AwardedCoupon != nil {
		out.AwardedCoupon = &AwardedCouponResponse{
			Code:      resp.AwardedCoupon.Code,
			Discount:  resp.AwardedCoupon.Discount,
			ExpiresAt: resp.AwardedCoupon.ExpiresAt,
		}
	}
	return out
}
