package create_appointment

import "errors"

var (
	// ErrWorkerNotFound возвращается, когда работник не найден или неактивен
	ErrWorkerNotFound = errors.New("worker not found")

	// ErrWorkerNotAvailable возвращается, когда работник не принимает в этот день
	ErrWorkerNotAvailable = errors.New("worker is not available on this date")

	// ErrSlotTaken возвращается, когда слот уже занят другой записью
	ErrSlotTaken = errors.New("slot is already taken")

	// ErrPastSlot возвращается, когда слот уже начался или в прошлом
	// Слот, начинающийся ровно сейчас, тоже считается прошедшим
	ErrPastSlot = errors.New("slot is in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
