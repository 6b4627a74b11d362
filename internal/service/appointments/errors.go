package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	// или не принадлежит пользователю
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrSlotTaken возвращается, когда целевой слот переноса уже занят
	ErrSlotTaken = errors.New("slot is already taken")

	// ErrCannotReschedule возвращается, когда запись нельзя перенести
	ErrCannotReschedule = errors.New("appointment cannot be rescheduled")

	// ErrInvalidStatus возвращается при попытке установить недопустимый статус
	ErrInvalidStatus = errors.New("invalid appointment status")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
