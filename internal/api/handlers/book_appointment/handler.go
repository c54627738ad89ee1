package book_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	bookUC "github.com/m04kA/SMC-SalonService/internal/usecase/book_appointment"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

const (
	msgInvalidSlotID      = "некорректный ID слота"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingContact     = "для записи нужны имя и телефон"
	msgSlotNotFound       = "слот не найден"
	msgSlotTaken          = "слот уже занят"
	msgSlotInPast         = "нельзя записаться на прошедшую дату"
)

type Handler struct {
	usecase BookUseCase
	logger  Logger
}

func NewHandler(usecase BookUseCase, logger Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

// Handle POST /api/v1/slots/{slotId}/book
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем slotId из URL
	vars := mux.Vars(r)
	slotIDStr := vars["slotId"]

	slotID, err := strconv.ParseInt(slotIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /slots/{id}/book - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	// Декодируем body
	var req BookAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /slots/{id}/book - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Для записи нужна полная идентификация: имя и телефон
	identity := middleware.IdentityFromContext(r.Context())
	if identity.Name == nil || identity.Phone == nil {
		h.logger.Warn("POST /slots/{id}/book - Incomplete identity: slot_id=%d", slotID)
		handlers.RespondBadRequest(w, msgMissingContact)
		return
	}

	serviceReq := &bookUC.Request{
		AppointmentID: slotID,
		ClientName:    ptr.Deref(identity.Name, ""),
		ClientPhone:   ptr.Deref(identity.Phone, ""),
		ServiceName:   req.ServiceName,
	}

	result, err := h.usecase.Execute(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookUC.ErrInvalidInput):
			h.logger.Warn("POST /slots/{id}/book - Invalid input: slot_id=%d, error=%v", slotID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, bookUC.ErrSlotNotFound):
			h.logger.Warn("POST /slots/{id}/book - Slot not found: slot_id=%d", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, bookUC.ErrSlotTaken):
			h.logger.Warn("POST /slots/{id}/book - Slot taken: slot_id=%d", slotID)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, bookUC.ErrSlotInPast):
			h.logger.Warn("POST /slots/{id}/book - Slot in past: slot_id=%d", slotID)
			handlers.RespondBadRequest(w, msgSlotInPast)

		default:
			h.logger.Error("POST /slots/{id}/book - Failed to book: slot_id=%d, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /slots/{id}/book - Booked successfully: slot_id=%d", slotID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
