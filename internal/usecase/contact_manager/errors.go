package contact_manager

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("contact_manager: appointment not found")

	// ErrAccessDenied возвращается, когда запись не принадлежит клиенту
	ErrAccessDenied = errors.New("contact_manager: access denied")

	// ErrManagerContactNotConfigured возвращается, когда контакт менеджера не
	// настроен. Отдельная ошибка: клиент должен увидеть явное "канал недоступен",
	// а не общую ошибку сети
	ErrManagerContactNotConfigured = errors.New("contact_manager: manager contact is not configured")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("contact_manager: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("contact_manager: internal error")
)
