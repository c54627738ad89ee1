package cancel_appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("cancel_appointment: appointment not found")

	// ErrAccessDenied возвращается, когда запись не принадлежит клиенту
	ErrAccessDenied = errors.New("cancel_appointment: access denied")

	// ErrWithinProtectedWindow возвращается, когда до визита осталось меньше 48
	// часов: самостоятельная отмена запрещена, клиенту предлагается связаться
	// с менеджером
	ErrWithinProtectedWindow = errors.New("cancel_appointment: appointment is within protected window")

	// ErrAlreadyReleased возвращается, когда слот уже освобождён или переоформлен
	// другим процессом к моменту отмены
	ErrAlreadyReleased = errors.New("cancel_appointment: appointment already released")

	// ErrCancelInProgress возвращается при повторной попытке отмены, пока
	// предыдущая ещё выполняется
	ErrCancelInProgress = errors.New("cancel_appointment: cancellation already in progress")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_appointment: internal error")
)
