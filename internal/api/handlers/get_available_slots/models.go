package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-HairdresserBot/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-HairdresserBot/internal/usecase/get_available_slots"
)

// Response HTTP ответ со списком свободных слотов
type Response struct {
	WorkerID     int64    `json:"workerId"`
	Date         string   `json:"date"` // "2026-01-15"
	SlotDuration int      `json:"slotDurationMinutes"`
	Slots        []string `json:"slots"` // ["10:00", "11:00"]
}

// ToUseCaseRequest конвертирует параметры запроса в модель use case
func ToUseCaseRequest(workerID int64, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		WorkerID: workerID,
		Date:     date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *getAvailableSlots.Response) *Response {
	slots := make([]string, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, slot.String())
	}

	return &Response{
		WorkerID:     resp.WorkerID,
		Date:         resp.Date.Format(domain.DateFormat),
		SlotDuration: resp.SlotDuration,
		Slots:        slots,
	}
}
