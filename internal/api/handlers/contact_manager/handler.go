package contact_manager

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	contactUC "github.com/m04kA/SMC-SalonService/internal/usecase/contact_manager"
)

const (
	msgInvalidAppointmentID = "некорректный ID записи"
	msgNotFound             = "запись не найдена"
	msgForbidden            = "доступ запрещен"
	// Отдельное сообщение для отсутствующей конфигурации: это не сбой сети
	msgManagerUnavailable = "связь с менеджером временно недоступна: контакт не настроен"
	msgInvalidRequest     = "некорректный запрос"
)

type Handler struct {
	usecase ContactManagerUseCase
	logger  Logger
}

func NewHandler(usecase ContactManagerUseCase, logger Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments/{appointmentId}/contact-manager
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем appointmentId из URL
	vars := mux.Vars(r)
	appointmentIDStr := vars["appointmentId"]

	appointmentID, err := strconv.ParseInt(appointmentIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /appointments/{id}/contact-manager - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	req := &contactUC.Request{
		AppointmentID: appointmentID,
		Identity:      middleware.IdentityFromContext(r.Context()),
	}

	result, err := h.usecase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, contactUC.ErrInvalidInput):
			h.logger.Warn("POST /appointments/{id}/contact-manager - Invalid input: appointment_id=%d", appointmentID)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.Is(err, contactUC.ErrAppointmentNotFound):
			h.logger.Warn("POST /appointments/{id}/contact-manager - Not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, contactUC.ErrAccessDenied):
			h.logger.Warn("POST /appointments/{id}/contact-manager - Access denied: appointment_id=%d", appointmentID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, contactUC.ErrManagerContactNotConfigured):
			h.logger.Error("POST /appointments/{id}/contact-manager - Manager contact not configured")
			handlers.RespondServiceUnavailable(w, msgManagerUnavailable)

		default:
			h.logger.Error("POST /appointments/{id}/contact-manager - Failed: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments/{id}/contact-manager - Handoff prepared: appointment_id=%d, delivered=%v",
		appointmentID, result.Delivered)
	handlers.RespondJSON(w, http.StatusOK, result)
}
