package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-HairdresserBot/pkg/types"
)

// Request модель запроса на получение свободных слотов работника
type Request struct {
	WorkerID int64     // ID работника
	Date     time.Time // Дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа со списком свободных слотов
type Response struct {
	WorkerID     int64              // ID работника
	Date         time.Time          // Дата, на которую запрашивались слоты
	SlotDuration int                // Длительность слота в минутах
	Slots        []types.TimeString // Свободные времена начала, по возрастанию
}
