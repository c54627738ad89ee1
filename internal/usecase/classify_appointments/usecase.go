package classify_appointments

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// UseCase use case классификации записей клиента
type UseCase struct {
	appointmentRepo AppointmentRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case классификации записей клиента
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ClassifyAppointments: period=%s..%s",
		req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ClassifyAppointments: validation failed: %v", err)
		return nil, err
	}

	// 2. Пустая идентификация - не ошибка, а определённое поведение:
	// фильтровать не по чему, возвращаем пустые списки
	if req.Identity.IsEmpty() {
		uc.logger.Info("ClassifyAppointments: empty identity, returning empty views")
		return emptyResponse(), nil
	}

	// 3. Получаем записи с best-effort фильтром на стороне хранилища
	records, err := uc.appointmentRepo.GetBookedByIdentity(ctx, req.From, req.To, req.Identity)
	if err != nil {
		uc.logger.Error("ClassifyAppointments: repository error: %v", err)
		return nil, fmt.Errorf("%w: failed to fetch appointments: %v", ErrInternal, err)
	}

	// 4. Классифицируем с авторитетной проверкой принадлежности
	classification := Classify(records, req.Identity, uc.timeProvider.Now())

	uc.logger.Info("ClassifyAppointments: classified %d records (upcoming=%d, past=%d, next=%v)",
		len(records), len(classification.Upcoming), len(classification.Past), classification.Next != nil)

	return toResponse(classification), nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.From.IsZero() || req.To.IsZero() {
		return fmt.Errorf("%w: date range is required", ErrInvalidInput)
	}
	if req.To.Before(req.From) {
		return fmt.Errorf("%w: invalid date range", ErrInvalidInput)
	}
	return nil
}

// toResponse конвертирует результат классификации в ответ.
// Ближайшая запись исключается из списка предстоящих - она выводится отдельно.
func toResponse(c Classification) *Response {
	resp := &Response{
		Upcoming: FromDomainAppointmentList(withoutNext(c.Upcoming, c.Next)),
		Past:     FromDomainAppointmentList(c.Past),
	}

	if c.Next != nil {
		next := FromDomainAppointment(c.Next)
		resp.Next = &next
	}

	return resp
}

func emptyResponse() *Response {
	return &Response{
		Upcoming: []AppointmentView{},
		Past:     []AppointmentView{},
	}
}
