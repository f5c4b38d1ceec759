package list_services

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonScheduler/internal/api/handlers"
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

// Handle GET /api/v1/instances/{instanceId}/services
//
// Отдает услуги вместе с категориями одним ответом: витрине нужны обе
// коллекции сразу.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	instanceID := mux.Vars(r)["instanceId"]

	result, err := h.service.ListCatalog(r.Context(), instanceID)
	if err != nil {
		h.logger.Error("GET /services - Failed to list catalog: instance=%s, error=%v", instanceID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /services - Catalog listed: instance=%s, services=%d, categories=%d",
		instanceID, len(result.Services), len(result.Categories))
	handlers.RespondJSON(w, http.StatusOK, result)
}
