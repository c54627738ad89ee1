package get_my_appointments

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/usecase/classify_appointments"
)

const (
	msgInvalidDateRange = "некорректный период выборки"
)

type Handler struct {
	usecase ClassifyUseCase
	logger  Logger
}

func NewHandler(usecase ClassifyUseCase, logger Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

// Handle GET /api/v1/my-appointments?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем период выборки
	from, err := handlers.ParseDateParam(r, "from")
	if err != nil {
		h.logger.Warn("GET /my-appointments - Invalid 'from' param: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateRange)
		return
	}

	to, err := handlers.ParseDateParam(r, "to")
	if err != nil {
		h.logger.Warn("GET /my-appointments - Invalid 'to' param: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateRange)
		return
	}

	// Идентификация клиента из контекста (проставлена middleware.Auth)
	req := &classify_appointments.Request{
		Identity: middleware.IdentityFromContext(r.Context()),
		From:     from,
		To:       to,
	}

	result, err := h.usecase.Execute(r.Context(), req)
	if err != nil {
		if errors.Is(err, classify_appointments.ErrInvalidInput) {
			h.logger.Warn("GET /my-appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDateRange)
			return
		}
		h.logger.Error("GET /my-appointments - Failed to classify appointments: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /my-appointments - Retrieved successfully: upcoming=%d, past=%d, next=%v",
		len(result.Upcoming), len(result.Past), result.Next != nil)
	handlers.RespondJSON(w, http.StatusOK, result)
}
