package user

import (
	"github.com/m04kA/SMC-HairdresserBot/pkg/dbmetrics"
)

// DBExecutor интерфейс для выполнения запросов (может быть *dbmetrics.DB или *dbmetrics.Tx)
type DBExecutor = dbmetrics.DBExecutor
