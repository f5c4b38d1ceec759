package create_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-SalonScheduler/internal/api/middleware"
	createAppointment "github.com/m04kA/SMC-SalonScheduler/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingFields      = "дата, время, имя и телефон обязательны"
	msgCouponNotFound     = "недействительный код купона"
	msgCouponExpired      = "срок действия купона истек"
	msgCouponExhausted    = "купон уже использован"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/instances/{instanceId}/appointments
//
// Администраторские создания (по заголовкам сессии) не участвуют в
// розыгрыше купонов; клиентские участвуют.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	instanceID := mux.Vars(r)["instanceId"]

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq := req.ToUseCaseRequest(instanceID, middleware.IsAdmin(r))

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Validation failed: instance=%s, error=%v", instanceID, err)
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, createAppointment.ErrCouponNotFound):
			h.logger.Warn("POST /appointments - Invalid coupon: instance=%s, code=%s", instanceID, req.CouponCode)
			handlers.RespondBadRequest(w, msgCouponNotFound)

		case errors.Is(err, createAppointment.ErrCouponExpired):
			h.logger.Warn("POST /appointments - Expired coupon: instance=%s, code=%s", instanceID, req.CouponCode)
			handlers.RespondBadRequest(w, msgCouponExpired)

		case errors.Is(err, createAppointment.ErrCouponExhausted):
			h.logger.Warn("POST /appointments - Exhausted coupon: instance=%s, code=%s", instanceID, req.CouponCode)
			handlers.RespondBadRequest(w, msgCouponExhausted)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: instance=%s, error=%v", instanceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments - Appointment created: instance=%s, id=%d", instanceID, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
