package get_public_coupons

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

// Handle GET /api/v1/instances/{instanceId}/public/coupons
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	instanceID := mux.Vars(r)["instanceId"]

	result, err := h.service.ListPublic(r.Context(), instanceID)
	if err != nil {
		h.logger.Error("GET /public/coupons - Failed to list public coupons: instance=%s, error=%v", instanceID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /public/coupons - Public coupons listed: instance=%s, count=%d", instanceID, len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
