package classify_appointments

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Classification результат классификации записей клиента.
// Upcoming включает Next: исключение ближайшей записи из списка - правило
// отображения, оно применяется на уровне Response, а не здесь.
type Classification struct {
	Next     *domain.Appointment
	Upcoming []*domain.Appointment
	Past     []*domain.Appointment
}

// Classify распределяет записи по категориям "предстоящие"/"прошедшие" и
// находит ближайшую предстоящую запись.
//
// Правила:
//   - свободные слоты (is_available = true) отбрасываются всегда;
//   - записи, не принадлежащие клиенту, отбрасываются - повторная авторитетная
//     проверка поверх best-effort фильтра хранилища;
//   - граница "предстоящая"/"прошедшая" - сегодняшняя полночь, вычисляется
//     один раз на весь проход, чтобы все записи сравнивались с одним моментом;
//   - ближайшая запись - минимум по паре (дата, время), отсутствующее или
//     некорректное время считается полуночью только для сортировки.
//
// Функция чистая: одинаковый вход дает одинаковый результат.
func Classify(records []*domain.Appointment, identity domain.Identity, now time.Time) Classification {
	result := Classification{
		Upcoming: make([]*domain.Appointment, 0),
		Past:     make([]*domain.Appointment, 0),
	}

	if identity.IsEmpty() {
		return result
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	for _, record := range records {
		if !record.IsBooked() {
			continue
		}
		if !record.BelongsTo(identity) {
			continue
		}

		if record.IsUpcoming(today) {
			result.Upcoming = append(result.Upcoming, record)
			if result.Next == nil || record.StartsAt().Before(result.Next.StartsAt()) {
				result.Next = record
			}
		} else {
			result.Past = append(result.Past, record)
		}
	}

	return result
}

// withoutNext возвращает список предстоящих записей без ближайшей.
// Ближайшая запись выводится клиенту отдельным блоком.
func withoutNext(upcoming []*domain.Appointment, next *domain.Appointment) []*domain.Appointment {
	if next == nil {
		return upcoming
	}

	rest := make([]*domain.Appointment, 0, len(upcoming))
	for _, a := range upcoming {
		// Сравнение по указателю: при дублях ID исключается только сама
		// ближайшая запись, остальные проходят как есть
		if a == next {
			continue
		}
		rest = append(rest, a)
	}
	return rest
}
