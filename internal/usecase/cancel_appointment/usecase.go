package cancel_appointment

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/appointment"
)

// UseCase use case отмены записи.
//
// Последовательность:
//  1. запись существует, занята и принадлежит клиенту;
//  2. правило 48 часов (строгое "меньше" - блокировка);
//  3. условное освобождение слота в хранилище - защита от конкурентной отмены;
//  4. best-effort уведомления: лист ожидания на слот, лист ожидания на услугу,
//     административное уведомление. Их сбои не откатывают отмену и не видны
//     клиенту.
type UseCase struct {
	appointmentRepo AppointmentRepository
	waitlistRepo    WaitlistRepository
	pushClient      PushServiceClient
	adminClient     AdminServiceClient
	timeProvider    TimeProvider
	logger          Logger

	// inFlight защищает переход "подтверждение -> отмена": повторное нажатие,
	// пока запрос к хранилищу в полёте, превращается в no-op
	mu       sync.Mutex
	inFlight map[int64]struct{}
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	waitlistRepo WaitlistRepository,
	pushClient PushServiceClient,
	adminClient AdminServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		waitlistRepo:    waitlistRepo,
		pushClient:      pushClient,
		adminClient:     adminClient,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
		inFlight:        make(map[int64]struct{}),
	}
}

// Execute выполняет use case отмены записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelAppointment: appointment=%d", req.AppointmentID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CancelAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Защита от дублирующей отправки
	if !uc.tryAcquire(req.AppointmentID) {
		uc.logger.Warn("CancelAppointment: appointment=%d already being cancelled", req.AppointmentID)
		return nil, ErrCancelInProgress
	}
	defer uc.release(req.AppointmentID)

	// 3. Получаем запись
	appt, err := uc.appointmentRepo.GetByID(ctx, req.AppointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			uc.logger.Warn("CancelAppointment: appointment=%d not found", req.AppointmentID)
			return nil, ErrAppointmentNotFound
		}
		uc.logger.Error("CancelAppointment: repository error for appointment=%d: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
	}

	// 4. Предусловие: слот должен быть занят. Уже свободный слот означает,
	// что его освободили или переоформили раньше нас
	if !appt.IsBooked() {
		uc.logger.Warn("CancelAppointment: appointment=%d is not booked", req.AppointmentID)
		return nil, ErrAlreadyReleased
	}

	// 5. Авторитетная проверка принадлежности
	if !appt.BelongsTo(req.Identity) {
		uc.logger.Warn("CancelAppointment: appointment=%d does not belong to requester", req.AppointmentID)
		return nil, ErrAccessDenied
	}

	// 6. Правило 48 часов
	now := uc.timeProvider.Now()
	if !isCancellable(appt, now) {
		uc.logger.Info("CancelAppointment: appointment=%d within protected window (%.1fh left)",
			req.AppointmentID, hoursUntil(appt, now))
		return nil, ErrWithinProtectedWindow
	}

	// Снимок данных до освобождения: после Release поля клиента и услуги
	// в хранилище будут обнулены
	freed := *appt

	// 7. Условное освобождение слота
	if err := uc.appointmentRepo.Release(ctx, req.AppointmentID); err != nil {
		if errors.Is(err, appointmentRepo.ErrAlreadyReleased) {
			uc.logger.Warn("CancelAppointment: appointment=%d released concurrently", req.AppointmentID)
			return nil, ErrAlreadyReleased
		}
		uc.logger.Error("CancelAppointment: failed to release appointment=%d: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: failed to release appointment: %v", ErrInternal, err)
	}

	uc.logger.Info("CancelAppointment: appointment=%d released, date=%s time=%s",
		req.AppointmentID, freed.Date.Format(domain.DateFormat), freed.StartTime)

	// 8. Best-effort уведомления. Каждый эффект изолирован: сбой одного не
	// мешает остальным и не влияет на результат отмены
	uc.runEffects(ctx, &freed, now)

	return &Response{
		AppointmentID: freed.ID,
		Date:          freed.Date.Format(domain.DateFormat),
		StartTime:     freed.DisplayTime(),
		ServiceName:   freed.DisplayService(),
	}, nil
}

// tryAcquire помечает запись как отменяемую; false - отмена уже идёт
func (uc *UseCase) tryAcquire(id int64) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if _, busy := uc.inFlight[id]; busy {
		return false
	}
	uc.inFlight[id] = struct{}{}
	return true
}

// release снимает пометку отмены
func (uc *UseCase) release(id int64) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	delete(uc.inFlight, id)
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.AppointmentID <= 0 {
		return fmt.Errorf("%w: appointmentID must be positive", ErrInvalidInput)
	}
	if req.Identity.IsEmpty() {
		return fmt.Errorf("%w: identity is required", ErrInvalidInput)
	}
	return nil
}
