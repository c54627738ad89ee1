package cancel_appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// runEffects запускает пост-эффекты отмены: уведомление листа ожидания на
// освободившийся слот, уведомление листа ожидания на услугу и уведомление
// администраторов. Все три - fire-and-forget: ошибки логируются и глотаются.
func (uc *UseCase) runEffects(ctx context.Context, freed *domain.Appointment, cancelledAt time.Time) {
	effects := []struct {
		name string
		run  func(context.Context, *domain.Appointment, time.Time) error
	}{
		{"notify slot waitlist", uc.notifySlotWaitlist},
		{"notify service waitlist", uc.notifyServiceWaitlist},
		{"notify admin", uc.notifyAdmin},
	}

	for _, effect := range effects {
		if err := effect.run(ctx, freed, cancelledAt); err != nil {
			uc.logger.Error("CancelAppointment: effect %q failed for appointment=%d: %v",
				effect.name, freed.ID, err)
		}
	}
}

// notifySlotWaitlist уведомляет клиентов, ожидающих именно этот слот
func (uc *UseCase) notifySlotWaitlist(ctx context.Context, freed *domain.Appointment, _ time.Time) error {
	entries, err := uc.waitlistRepo.GetBySlot(ctx, freed.Date, freed.StartTime)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}

	message := fmt.Sprintf("Освободилось окно %s %s - успейте записаться!",
		freed.Date.Format(domain.DateFormat), freed.StartTime.Normalized())

	return uc.pushClient.NotifyClients(ctx, entryPhones(entries), "Слот освободился", message)
}

// notifyServiceWaitlist уведомляет клиентов, ожидающих услугу на любую
// будущую дату
func (uc *UseCase) notifyServiceWaitlist(ctx context.Context, freed *domain.Appointment, cancelledAt time.Time) error {
	if freed.ServiceName == nil || *freed.ServiceName == "" {
		return nil
	}

	entries, err := uc.waitlistRepo.GetByServiceFrom(ctx, *freed.ServiceName, cancelledAt)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}

	message := fmt.Sprintf("Освободилась запись на услугу %q: %s %s",
		*freed.ServiceName, freed.Date.Format(domain.DateFormat), freed.StartTime.Normalized())

	return uc.pushClient.NotifyClients(ctx, entryPhones(entries), "Запись освободилась", message)
}

// notifyAdmin создает административное уведомление об отмене:
// кто отменил, когда и какую услугу
func (uc *UseCase) notifyAdmin(ctx context.Context, freed *domain.Appointment, cancelledAt time.Time) error {
	clientName := ""
	if freed.ClientName != nil {
		clientName = *freed.ClientName
	}

	body := fmt.Sprintf("Клиент %s отменил запись на %s %s (услуга: %s). Отмена оформлена %s.",
		clientName,
		freed.Date.Format(domain.DateFormat),
		freed.StartTime.Normalized(),
		freed.DisplayService(),
		cancelledAt.Format(time.RFC3339),
	)

	return uc.adminClient.CreateNotification(ctx, "Отмена записи", body, domain.NotificationCategoryCancellation)
}

// entryPhones собирает телефоны клиентов из записей листа ожидания
func entryPhones(entries []*domain.WaitlistEntry) []string {
	phones := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.ClientPhone != "" {
			phones = append(phones, e.ClientPhone)
		}
	}
	return phones
}
