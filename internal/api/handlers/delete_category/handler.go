package delete_category

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-SalonScheduler/internal/service/catalog"
)

const msgNotFound = "категория не найдена"

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

// Handle DELETE /api/v1/instances/{instanceId}/categories/{categoryId}
//
// Услуги, ссылающиеся на удаленную категорию, не трогаются.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	instanceID := vars["instanceId"]
	categoryID := vars["categoryId"]

	if err := h.service.DeleteCategory(r.Context(), instanceID, categoryID); err != nil {
		if errors.Is(err, catalog.ErrCategoryNotFound) {
			h.logger.Warn("DELETE /categories/{id} - Category not found: instance=%s, id=%s", instanceID, categoryID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("DELETE /categories/{id} - Failed to delete category: instance=%s, id=%s, error=%v",
			instanceID, categoryID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /categories/{id} - Category deleted: instance=%s, id=%s", instanceID, categoryID)
	handlers.RespondNoContent(w)
}
