package update_coupon

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
	msgCouponNotFound     = "купон не найден"
	msgNegativeUses       = "количество использований не может быть отрицательным"
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

// Handle PUT /api/v1/instances/{instanceId}/coupons/{code}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	instanceID := vars["instanceId"]
	code := vars["code"]

	var req models.UpdateCouponRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /coupons/{code} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), instanceID, code, &req)
	if err != nil {
		switch {
		case errors.Is(err, coupons.ErrCouponNotFound):
			h.logger.Warn("PUT /coupons/{code} - Coupon not found: instance=%s, code=%s", instanceID, code)
			handlers.RespondNotFound(w, msgCouponNotFound)

		case errors.Is(err, coupons.ErrNegativeUses):
			h.logger.Warn("PUT /coupons/{code} - Negative usesLeft rejected: instance=%s, code=%s", instanceID, code)
			handlers.RespondBadRequest(w, msgNegativeUses)

		default:
			h.logger.Error("PUT /coupons/{code} - Failed to update coupon: instance=%s, code=%s, error=%v",
				instanceID, code, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /coupons/{code} - Coupon updated: instance=%s, code=%s", instanceID, code)
	handlers.RespondJSON(w, http.StatusOK, result)
}
