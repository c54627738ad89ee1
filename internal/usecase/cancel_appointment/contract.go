package cancel_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// AppointmentRepository интерфейс репозитория слотов расписания
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	// Release условно освобождает слот; возвращает ErrAlreadyReleased,
	// если слот уже не занят
	Release(ctx context.Context, id int64) error
}

// WaitlistRepository интерфейс репозитория листа ожидания
type WaitlistRepository interface {
	GetBySlot(ctx context.Context, date time.Time, startTime types.TimeString) ([]*domain.WaitlistEntry, error)
	GetByServiceFrom(ctx context.Context, serviceName string, from time.Time) ([]*domain.WaitlistEntry, error)
}

// PushServiceClient интерфейс клиента push-уведомлений
type PushServiceClient interface {
	NotifyClients(ctx context.Context, phones []string, title, message string) error
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
