package whatsapp

import "errors"

var (
	// ErrNotConfigured возвращается, когда отправка через Cloud API не настроена
	// (нет access token или phone number ID)
	ErrNotConfigured = errors.New("whatsapp client: cloud api is not configured")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("whatsapp client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от Cloud API
	ErrInvalidResponse = errors.New("whatsapp client: invalid response")
)
