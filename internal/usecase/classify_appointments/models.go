package classify_appointments

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Request модель запроса на классификацию записей клиента
type Request struct {
	Identity domain.Identity // Идентификация клиента (имя и/или телефон)
	From     time.Time       // Начало периода выборки (включительно)
	To       time.Time       // Конец периода выборки (включительно)
}

// Response модель ответа с категоризированными записями клиента
type Response struct {
	Next     *AppointmentView  // Ближайшая предстоящая запись (отсутствует, если записей нет)
	Upcoming []AppointmentView // Предстоящие записи без ближайшей (она выводится отдельно)
	Past     []AppointmentView // Прошедшие записи
}

// AppointmentView представление записи для клиента
type AppointmentView struct {
	ID          int64  `json:"id"`
	Date        string `json:"date"`        // "2025-10-15"
	StartTime   string `json:"startTime"`   // "14:30", пустая строка если время не указано
	ServiceName string `json:"serviceName"` // Название услуги, пустая строка если не указано
}

// FromDomainAppointment конвертирует domain модель в представление.
// Отсутствующее время отображается пустой строкой, а не "00:00".
func FromDomainAppointment(a *domain.Appointment) AppointmentView {
	return AppointmentView{
		ID:          a.ID,
		Date:        a.Date.Format(domain.DateFormat),
		StartTime:   a.DisplayTime(),
		ServiceName: a.DisplayService(),
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в представления
func FromDomainAppointmentList(appointments []*domain.Appointment) []AppointmentView {
	views := make([]AppointmentView, 0, len(appointments))
	for _, a := range appointments {
		views = append(views, FromDomainAppointment(a))
	}
	return views
}
