package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-HairdresserBot/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	UserID          int64            // ID пользователя
	WorkerID        int64            // ID работника
	Date            time.Time        // Дата записи (без времени)
	StartTime       types.TimeString // Время начала, например "14:00"
	DurationMinutes int              // Длительность; 0 - взять действующую длительность слота
	ServiceID       *int64           // Выбранная услуга (может отсутствовать)
	ServiceName     *string          // Название услуги на момент записи
	Notes           *string          // Заметки
}

// Response модель ответа с созданной записью
type Response struct {
	ID              int64
	UserID          int64
	WorkerID        int64
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          string
	ServiceID       *int64
	ServiceName     *string
	Notes           *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
