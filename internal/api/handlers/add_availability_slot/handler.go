package add_availability_slot

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-SalonScheduler/internal/service/availability"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingDateOrTime  = "дата и время обязательны"
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

// Handle POST /api/v1/instances/{instanceId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	instanceID := mux.Vars(r)["instanceId"]

	var req AddSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.AddSlot(r.Context(), instanceID, req.Date, req.Time)
	if err != nil {
		if errors.Is(err, availability.ErrInvalidInput) {
			h.logger.Warn("POST /availability - Missing date or time: instance=%s", instanceID)
			handlers.RespondBadRequest(w, msgMissingDateOrTime)
			return
		}
		h.logger.Error("POST /availability - Failed to add slot: instance=%s, date=%s, time=%s, error=%v",
			instanceID, req.Date, req.Time, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /availability - Slot added: instance=%s, date=%s, time=%s",
		instanceID, result.Date, result.Time)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
