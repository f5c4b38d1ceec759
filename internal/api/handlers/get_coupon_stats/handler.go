package get_coupon_stats

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

// Handle GET /api/v1/instances/{instanceId}/coupons/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	instanceID := mux.Vars(r)["instanceId"]

	result, err := h.service.Stats(r.Context(), instanceID)
	if err != nil {
		h.logger.Error("GET /coupons/stats - Failed to get coupon stats: instance=%s, error=%v", instanceID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /coupons/stats - Stats retrieved: instance=%s", instanceID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
