package businessconfig

import "errors"

var (
	// ErrConfigNotFound - настройка с таким ключом не найдена
	ErrConfigNotFound = errors.New("businessconfig: config not found")

	// ErrBuildQuery - ошибка построения SQL запроса
	ErrBuildQuery = errors.New("businessconfig: failed to build query")

	// ErrExecQuery - ошибка выполнения SQL запроса
	ErrExecQuery = errors.New("businessconfig: failed to execute query")

	// ErrScanRow - ошибка сканирования результата
	ErrScanRow = errors.New("businessconfig: failed to scan row")
)
