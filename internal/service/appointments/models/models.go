package models

import "github.com/m04kA/SMC-SalonScheduler/internal/domain"

// Request модели

// UpdateAppointmentRequest запрос на обновление записи.
// Патч повторяет семантику оригинала: пустые строки и нулевые суммы
// игнорируются, непустой (даже пустой по содержимому) список заметок
// заменяет существующий.
type UpdateAppointmentRequest struct {
	ClientName *string   `json:"clientName,omitempty"`
	Status     *string   `json:"status,omitempty"`
	Profit     *float64  `json:"profit,omitempty"`
	Materials  *float64  `json:"materials,omitempty"`
	Notes      *[]string `json:"notes,omitempty"`
}

// Response модели

// AwardedCouponResponse снимок купона, подаренного при бронировании
type AwardedCouponResponse struct {
	Code      string `json:"code"`
	Discount  int    `json:"discount"`
	ExpiresAt string `json:"expiresAt"`
}

// AppointmentResponse ответ с данными записи
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
	Profit        float64                `json:"profit,omitempty"`
	Materials     float64                `json:"materials,omitempty"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	resp := &AppointmentResponse{
		ID:         a.ID,
		Date:       a.Date,
		Time:       a.Time,
		ClientName: a.ClientName,
		Phone:      a.Phone,
		Status:     a.Status,
		Image:      a.Image,
		CouponCode: a.CouponCode,
		Notes:      a.Notes,
		Profit:     a.Profit,
		Materials:  a.Materials,
	}

	if resp.Notes == nil {
		resp.Notes = []string{}
	}

	if a.AwardedCoupon != nil {
		resp.AwardedCoupon = &AwardedCouponResponse{
			Code:      a.AwardedCoupon.Code,
			Discount:  a.AwardedCoupon.Discount,
			ExpiresAt: a.AwardedCoupon.ExpiresAt,
		}
	}

	return resp
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []domain.Appointment) []AppointmentResponse {
	resp := make([]AppointmentResponse, 0, len(appointments))
	for i := range appointments {
		resp = append(resp, *FromDomainAppointment(&appointments[i]))
	}
	return resp
}
