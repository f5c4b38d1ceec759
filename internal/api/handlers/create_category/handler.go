package create_category

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
	msgMissingFields      = "идентификатор и имя категории обязательны"
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

// Handle POST /api/v1/instances/{instanceId}/categories
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	instanceID := mux.Vars(r)["instanceId"]

	var req models.CreateCategoryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /categories - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateCategory(r.Context(), instanceID, &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /categories - Missing id or name: instance=%s", instanceID)
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, catalog.ErrCategoryExists):
			h.logger.Warn("POST /categories - Duplicate category: instance=%s, id=%s", instanceID, req.ID)
			handlers.RespondBadRequest(w, msgCategoryExists)

		default:
			h.logger.Error("POST /categories - Failed to create category: instance=%s, id=%s, error=%v",
				instanceID, req.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /categories - Category created: instance=%s, id=%s", instanceID, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
