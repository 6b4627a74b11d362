package get_available_slots

import "errors"

var (
	// ErrWorkerNotFound возвращается, когда работник не найден
	ErrWorkerNotFound = errors.New("worker not found")

	// ErrInvalidDate возвращается при дате в прошлом
	ErrInvalidDate = errors.New("invalid appointment date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
