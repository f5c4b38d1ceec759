package list_appointments

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonScheduler/internal/api/handlers"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/instances/{instanceId}/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	instanceID := mux.Vars(r)["instanceId"]

	result, err := h.service.List(r.Context(), instanceID)
	if err != nil {
		h.logger.Error("GET /appointments - Failed to list appointments: instance=%s, error=%v", instanceID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /appointments - Appointments listed: instance=%s, count=%d", instanceID, len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
