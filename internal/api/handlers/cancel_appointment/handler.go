package cancel_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	cancelUC "github.com/m04kA/SMC-SalonService/internal/usecase/cancel_appointment"
)

const (
	msgInvalidAppointmentID = "некорректный ID записи"
	msgNotFound             = "запись не найдена"
	msgForbidden            = "доступ запрещен"
	msgWithinWindow         = "до визита осталось меньше 48 часов - для отмены свяжитесь с менеджером"
	// Конкурентное изменение и транспортный сбой показываются одинаково:
	// клиент в обоих случаях может только повторить попытку
	msgCancelFailed   = "не удалось отменить запись, попробуйте ещё раз"
	msgCancelBusy     = "отмена уже выполняется"
	msgInvalidRequest = "некорректный запрос"
)

type Handler struct {
	usecase CancelUseCase
	logger  Logger
}

func NewHandler(usecase CancelUseCase, logger Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments/{appointmentId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем appointmentId из URL
	vars := mux.Vars(r)
	appointmentIDStr := vars["appointmentId"]

	appointmentID, err := strconv.ParseInt(appointmentIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /appointments/{id}/cancel - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	req := &cancelUC.Request{
		AppointmentID: appointmentID,
		Identity:      middleware.IdentityFromContext(r.Context()),
	}

	result, err := h.usecase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, cancelUC.ErrInvalidInput):
			h.logger.Warn("POST /appointments/{id}/cancel - Invalid input: appointment_id=%d", appointmentID)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.Is(err, cancelUC.ErrAppointmentNotFound):
			h.logger.Warn("POST /appointments/{id}/cancel - Not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, cancelUC.ErrAccessDenied):
			h.logger.Warn("POST /appointments/{id}/cancel - Access denied: appointment_id=%d", appointmentID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, cancelUC.ErrWithinProtectedWindow):
			h.logger.Info("POST /appointments/{id}/cancel - Within protected window: appointment_id=%d", appointmentID)
			handlers.RespondConflict(w, msgWithinWindow)

		case errors.Is(err, cancelUC.ErrAlreadyReleased):
			h.logger.Warn("POST /appointments/{id}/cancel - Released concurrently: appointment_id=%d", appointmentID)
			handlers.RespondConflict(w, msgCancelFailed)

		case errors.Is(err, cancelUC.ErrCancelInProgress):
			h.logger.Warn("POST /appointments/{id}/cancel - Already in progress: appointment_id=%d", appointmentID)
			handlers.RespondConflict(w, msgCancelBusy)

		default:
			h.logger.Error("POST /appointments/{id}/cancel - Failed to cancel: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondJSON(w, http.StatusInternalServerError, handlers.ErrorResponse{
				Code:    http.StatusInternalServerError,
				Message: msgCancelFailed,
			})
		}
		return
	}

	h.logger.Info("POST /appointments/{id}/cancel - Cancelled successfully: appointment_id=%d", appointmentID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
