package create_service

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-SalonScheduler/internal/service/catalog"
	"github.com/m04kA/SMC-SalonScheduler/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingFields      = "имя, цена, длительность и категория обязательны"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/instances/{instanceId}/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	instanceID := mux.Vars(r)["instanceId"]

	var req models.CreateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateService(r.Context(), instanceID, &req)
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidInput) {
			h.logger.Warn("POST /services - Missing required fields: instance=%s", instanceID)
			handlers.RespondBadRequest(w, msgMissingFields)
			return
		}
		h.logger.Error("POST /services - Failed to create service: instance=%s, error=%v", instanceID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /services - Service created: instance=%s, id=%d", instanceID, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
