package book_appointment

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("book_appointment: slot not found")

	// ErrSlotTaken возвращается, когда слот уже занят другим клиентом
	ErrSlotTaken = errors.New("book_appointment: slot already taken")

	// ErrSlotInPast возвращается при попытке записаться на прошедшую дату
	ErrSlotInPast = errors.New("book_appointment: slot is in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_appointment: internal error")
)
