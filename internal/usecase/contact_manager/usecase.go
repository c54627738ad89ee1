package contact_manager

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/appointment"
)

// UseCase use case связи с менеджером - escape-канал для записей внутри
// защитного окна, когда самостоятельная отмена запрещена.
//
// Формирует детерминированное сообщение с датой, временем и услугой, строит
// wa.me ссылку и, если настроен Cloud API, дополнительно отправляет текст
// менеджеру. Неудача отправки через API не считается ошибкой: ссылка
// остаётся рабочим каналом.
type UseCase struct {
	appointmentRepo AppointmentRepository
	whatsappClient  WhatsAppClient
	managerName     string
	managerPhone    string
	logger          Logger
}

// NewUseCase создает новый экземпляр use case.
// managerPhone может быть пустым - тогда Execute возвращает
// ErrManagerContactNotConfigured.
func NewUseCase(
	appointmentRepo AppointmentRepository,
	whatsappClient WhatsAppClient,
	managerName string,
	managerPhone string,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		whatsappClient:  whatsappClient,
		managerName:     managerName,
		managerPhone:    managerPhone,
		logger:          logger,
	}
}

// Execute выполняет use case связи с менеджером
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ContactManager: appointment=%d", req.AppointmentID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ContactManager: validation failed: %v", err)
		return nil, err
	}

	// 2. Контакт менеджера должен быть настроен - иначе явная ошибка
	// конфигурации, а не молчаливый сбой или отправка в никуда
	if uc.managerPhone == "" {
		uc.logger.Error("ContactManager: manager contact is not configured")
		return nil, ErrManagerContactNotConfigured
	}

	// 3. Получаем запись
	appt, err := uc.appointmentRepo.GetByID(ctx, req.AppointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			uc.logger.Warn("ContactManager: appointment=%d not found", req.AppointmentID)
			return nil, ErrAppointmentNotFound
		}
		uc.logger.Error("ContactManager: repository error for appointment=%d: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
	}

	// 4. Запись должна принадлежать клиенту
	if !appt.BelongsTo(req.Identity) {
		uc.logger.Warn("ContactManager: appointment=%d does not belong to requester", req.AppointmentID)
		return nil, ErrAccessDenied
	}

	// 5. Детерминированное сообщение по данным записи
	message := buildMessage(appt)

	// 6. Best-effort отправка через Cloud API
	delivered := false
	if uc.whatsappClient.IsConfigured() {
		if err := uc.whatsappClient.SendText(ctx, uc.managerPhone, message); err != nil {
			uc.logger.Warn("ContactManager: cloud api send failed, falling back to chat link: %v", err)
		} else {
			delivered = true
		}
	}

	return &Response{
		ManagerName: uc.managerName,
		Message:     message,
		ChatLink:    uc.whatsappClient.ChatLink(uc.managerPhone, message),
		Delivered:   delivered,
	}, nil
}

// buildMessage формирует предзаполненный текст обращения к менеджеру.
// Текст детерминированный: зависит только от данных записи.
func buildMessage(appt *domain.Appointment) string {
	timePart := appt.DisplayTime()
	if timePart == "" {
		timePart = "время не указано"
	}

	servicePart := appt.DisplayService()
	if servicePart == "" {
		servicePart = "услуга не указана"
	}

	return fmt.Sprintf(
		"Здравствуйте! Хочу отменить запись на %s в %s (%s). До визита осталось меньше 48 часов, поэтому отменяю через вас.",
		appt.Date.Format(domain.DateFormat), timePart, servicePart,
	)
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
