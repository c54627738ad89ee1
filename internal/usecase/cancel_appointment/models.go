package cancel_appointment

import (
	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Request модель запроса на отмену записи
type Request struct {
	AppointmentID int64           // ID записи
	Identity      domain.Identity // Идентификация клиента (имя и/или телефон)
}

// Response модель ответа на успешную отмену
type Response struct {
	AppointmentID int64  `json:"appointmentId"`
	Date          string `json:"date"`      // Дата освобождённого слота
	StartTime     string `json:"startTime"` // Время освобождённого слота
	ServiceName   string `json:"serviceName"`
}
