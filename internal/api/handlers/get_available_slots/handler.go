package get_available_slots

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

// Handle GET /api/v1/instances/{instanceId}/availability/slots/{date}
//
// Неизвестная дата дает пустой список слотов, а не 404.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	instanceID := vars["instanceId"]
	date := vars["date"]

	result, err := h.service.ListOpenSlots(r.Context(), instanceID, date)
	if err != nil {
		h.logger.Error("GET /availability/slots/{date} - Failed to list slots: instance=%s, date=%s, error=%v",
			instanceID, date, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /availability/slots/{date} - Slots listed: instance=%s, date=%s, count=%d",
		instanceID, date, len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
