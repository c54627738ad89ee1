package book_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// AppointmentRepository интерфейс репозитория слотов расписания
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	// Claim условно занимает свободный слот; возвращает ErrSlotTaken,
	// если слот уже занят
	Claim(ctx context.Context, id int64, clientName, clientPhone, serviceName string) error
}

// AdminServiceClient интерфейс клиента административных уведомлений
type AdminServiceClient interface {
	CreateNotification(ctx context.Context, title, body, category string) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
