package update_category

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
	msgNotFound           = "категория не найдена"
	msgCategoryExists     = "категория с таким идентификатором уже существует"
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

// Handle PUT /api/v1/instances/{instanceId}/categories/{categoryId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	instanceID := vars["instanceId"]
	categoryID := vars["categoryId"]

	var req models.UpdateCategoryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /categories/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateCategory(r.Context(), instanceID, categoryID, &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrCategoryNotFound):
			h.logger.Warn("PUT /categories/{id} - Category not found: instance=%s, id=%s", instanceID, categoryID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, catalog.ErrCategoryExists):
			h.logger.Warn("PUT /categories/{id} - New category id already exists: instance=%s, id=%s, new_id=%s",
				instanceID, categoryID, req.NewID)
			handlers.RespondBadRequest(w, msgCategoryExists)

		default:
			h.logger.Error("PUT /categories/{id} - Failed to update category: instance=%s, id=%s, error=%v",
				instanceID, categoryID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /categories/{id} - Category updated: instance=%s, id=%s", instanceID, categoryID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
