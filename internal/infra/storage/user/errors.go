package user

import "errors"

var (
	// ErrUserNotFound - пользователь не найден
	ErrUserNotFound = errors.New("user: user not found")

	// ErrBuildQuery - ошибка построения SQL запроса
	ErrBuildQuery = errors.New("user: failed to build query")

	// ErrExecQuery - ошибка выполнения SQL запроса
	ErrExecQuery = errors.New("user: failed to execute query")

	// ErrScanRow - ошибка сканирования результата
	ErrScanRow = errors.New("user: failed to scan row")
)
