package appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrAlreadyReleased возвращается, когда условное освобождение слота не затронуло
	// ни одной строки: слот уже свободен или был переоформлен другим процессом
	ErrAlreadyReleased = errors.New("appointment.repository: appointment already released")

	// ErrSlotTaken возвращается, когда условное занятие слота не затронуло ни одной
	// строки: слот уже занят
	ErrSlotTaken = errors.New("appointment.repository: slot already taken")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("appointment.repository: failed to scan row")
)
