package book_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/appointment"
)

// UseCase use case записи клиента в свободный слот.
// Занятие слота условное (is_available = true -> false): при одновременной
// записи двух клиентов на один слот второй получит ErrSlotTaken.
type UseCase struct {
	appointmentRepo AppointmentRepository
	adminClient     AdminServiceClient
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	adminClient AdminServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		adminClient:     adminClient,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case записи в слот
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookAppointment: slot=%d, service=%s", req.AppointmentID, req.ServiceName)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем слот
	slot, err := uc.appointmentRepo.GetByID(ctx, req.AppointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			uc.logger.Warn("BookAppointment: slot=%d not found", req.AppointmentID)
			return nil, ErrSlotNotFound
		}
		uc.logger.Error("BookAppointment: repository error for slot=%d: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
	}

	// 3. Слот должен быть свободен и в будущем
	if slot.IsBooked() {
		uc.logger.Warn("BookAppointment: slot=%d is already booked", req.AppointmentID)
		return nil, ErrSlotTaken
	}
	if isSlotInPast(slot, uc.timeProvider.Now()) {
		uc.logger.Warn("BookAppointment: slot=%d is in the past", req.AppointmentID)
		return nil, ErrSlotInPast
	}

	// 4. Условное занятие слота
	err = uc.appointmentRepo.Claim(ctx, req.AppointmentID,
		strings.TrimSpace(req.ClientName), strings.TrimSpace(req.ClientPhone), req.ServiceName)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrSlotTaken) {
			uc.logger.Warn("BookAppointment: slot=%d taken concurrently", req.AppointmentID)
			return nil, ErrSlotTaken
		}
		uc.logger.Error("BookAppointment: failed to claim slot=%d: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: failed to claim slot: %v", ErrInternal, err)
	}

	uc.logger.Info("BookAppointment: slot=%d booked, date=%s time=%s",
		req.AppointmentID, slot.Date.Format(domain.DateFormat), slot.StartTime)

	// 5. Best-effort уведомление администраторов; сбой не отменяет запись
	uc.notifyAdmin(ctx, slot, req)

	return &Response{
		AppointmentID: slot.ID,
		Date:          slot.Date.Format(domain.DateFormat),
		StartTime:     slot.DisplayTime(),
		ServiceName:   req.ServiceName,
	}, nil
}

// notifyAdmin создает административное уведомление о новой записи
func (uc *UseCase) notifyAdmin(ctx context.Context, slot *domain.Appointment, req *Request) {
	body := fmt.Sprintf("Клиент %s записался на %s %s (услуга: %s).",
		strings.TrimSpace(req.ClientName),
		slot.Date.Format(domain.DateFormat),
		slot.StartTime.Normalized(),
		req.ServiceName,
	)

	if err := uc.adminClient.CreateNotification(ctx, "Новая запись", body, domain.NotificationCategoryBooking); err != nil {
		uc.logger.Error("BookAppointment: admin notification failed for slot=%d: %v", slot.ID, err)
	}
}

// isSlotInPast проверяет, что дата слота раньше сегодняшнего дня
func isSlotInPast(slot *domain.Appointment, now time.Time) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return !slot.IsUpcoming(today)
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.AppointmentID <= 0 {
		return fmt.Errorf("%w: appointmentID must be positive", ErrInvalidInput)
	}

	name := strings.TrimSpace(req.ClientName)
	phone := strings.TrimSpace(req.ClientPhone)
	if name == "" || phone == "" {
		return fmt.Errorf("%w: clientName and clientPhone are required", ErrInvalidInput)
	}
	if len(name) > domain.MaxClientNameLength || len(phone) > domain.MaxClientPhoneLength {
		return fmt.Errorf("%w: client fields are too long", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ServiceName) == "" {
		return fmt.Errorf("%w: serviceName is required", ErrInvalidInput)
	}
	if len(req.ServiceName) > domain.MaxServiceNameLength {
		return fmt.Errorf("%w: serviceName is too long", ErrInvalidInput)
	}

	return nil
}
