package delete_coupon

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonScheduler/internal/api/handlers"
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

// Handle DELETE /api/v1/instances/{instanceId}/coupons/{code}
//
// Удаление идемпотентно: отсутствующий код не считается ошибкой.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	instanceID := vars["instanceId"]
	code := vars["code"]

	if err := h.service.Delete(r.Context(), instanceID, code); err != nil {
		h.logger.Error("DELETE /coupons/{code} - Failed to delete coupon: instance=%s, code=%s, error=%v",
			instanceID, code, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /coupons/{code} - Coupon deleted: instance=%s, code=%s", instanceID, code)
	handlers.RespondNoContent(w)
}
