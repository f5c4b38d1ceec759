package list_categories

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

// Handle GET /api/v1/instances/{instanceId}/categories
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	instanceID := mux.Vars(r)["instanceId"]

	result, err := h.service.ListCategories(r.Context(), instanceID)
	if err != nil {
		h.logger.Error("GET /categories - Failed to list categories: instance=%s, error=%v", instanceID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /categories - Categories listed: instance=%s, count=%d", instanceID, len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
