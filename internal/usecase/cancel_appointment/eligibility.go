package cancel_appointment

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// hoursUntil возвращает количество часов от now до начала визита.
// Время визита собирается из даты и времени записи; отсутствующее или
// частичное время считается полуночью.
func hoursUntil(appt *domain.Appointment, now time.Time) float64 {
	return appt.StartsAt().Sub(now).Hours()
}

// isCancellable проверяет правило 48 часов.
// Сравнение строгое: ровно 48.0 часов до визита - отмена разрешена,
// 47.999 - уже нет.
func isCancellable(appt *domain.Appointment, now time.Time) bool {
	return hoursUntil(appt, now) >= domain.CancellationNoticeHours
}
