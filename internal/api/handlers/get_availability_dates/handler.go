package get_availability_dates

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonScheduler/internal/api/handlers"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/instances/{instanceId}/availability/dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	instanceID := mux.Vars(r)["instanceId"]

	result, err := h.service.ListDates(r.Context(), instanceID)
	if err != nil {
		h.logger.Error("GET /availability/dates - Failed to list dates: instance=%s, error=%v", instanceID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /availability/dates - Dates listed: instance=%s, count=%d", instanceID, len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
