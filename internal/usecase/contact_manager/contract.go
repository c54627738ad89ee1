package contact_manager

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// AppointmentRepository интерфейс репозитория слотов расписания
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
}

// WhatsAppClient интерфейс клиента передачи диалога в WhatsApp
type WhatsAppClient interface {
	IsConfigured() bool
	ChatLink(phone, text string) string
	SendText(ctx context.Context, to, body string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
