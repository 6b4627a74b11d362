package worker

import "errors"

var (
	// ErrWorkerNotFound - работник не найден
	ErrWorkerNotFound = errors.New("worker: worker not found")

	// ErrScheduleNotFound - у работника нет расписания на этот день недели
	ErrScheduleNotFound = errors.New("worker: schedule not found")

	// ErrBuildQuery - ошибка построения SQL запроса
	ErrBuildQuery = errors.New("worker: failed to build query")

	// ErrExecQuery - ошибка выполнения SQL запроса
	ErrExecQuery = errors.New("worker: failed to execute query")

	// ErrScanRow - ошибка сканирования результата
	ErrScanRow = errors.New("worker: failed to scan row")
)
