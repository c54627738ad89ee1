package join_waitlist

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	waitlistService "github.com/m04kA/SMC-SalonService/internal/service/waitlist"
	"github.com/m04kA/SMC-SalonService/internal/service/waitlist/models"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
)

type Handler struct {
	service WaitlistService
	logger  Logger
}

func NewHandler(service WaitlistService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/waitlist
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Декодируем body
	var req models.JoinWaitlistRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /waitlist - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Контакты по умолчанию берём из идентификации клиента
	identity := middleware.IdentityFromContext(r.Context())
	if req.ClientName == "" {
		req.ClientName = ptr.Deref(identity.Name, "")
	}
	if req.ClientPhone == "" {
		req.ClientPhone = ptr.Deref(identity.Phone, "")
	}

	result, err := h.service.Join(r.Context(), &req)
	if err != nil {
		if errors.Is(err, waitlistService.ErrInvalidInput) {
			h.logger.Warn("POST /waitlist - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
		h.logger.Error("POST /waitlist - Failed to join waitlist: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /waitlist - Entry created: id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
