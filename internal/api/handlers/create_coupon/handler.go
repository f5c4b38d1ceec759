package create_coupon

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-SalonScheduler/internal/service/coupons"
	"github.com/m04kA/SMC-SalonScheduler/internal/service/coupons/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingFields      = "все поля купона обязательны"
	msgCouponExists       = "купон с таким кодом уже существует"
)

type Handler struct {
	service CouponService
	logger  Logger
}

func NewHandler(service CouponService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/instances/{instanceId}/coupons
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	instanceID := mux.Vars(r)["instanceId"]

	var req models.CreateCouponRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /coupons - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), instanceID, &req)
	if err != nil {
		switch {
		case errors.Is(err, coupons.ErrInvalidInput):
			h.logger.Warn("POST /coupons - Missing coupon fields: instance=%s", instanceID)
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, coupons.ErrCouponExists):
			h.logger.Warn("POST /coupons - Duplicate coupon code: instance=%s, code=%s", instanceID, req.Code)
			handlers.RespondBadRequest(w, msgCouponExists)

		default:
			h.logger.Error("POST /coupons - Failed to create coupon: instance=%s, code=%s, error=%v",
				instanceID, req.Code, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /coupons - Coupon created: instance=%s, code=%s", instanceID, result.Code)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
