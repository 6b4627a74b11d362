package create_appointment

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-HairdresserBot/internal/domain"
	"github.com/m04kA/SMC-HairdresserBot/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.WorkerID <= 0 {
		return fmt.Errorf("%w: workerID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid start time %q", ErrInvalidInput, string(req.StartTime))
	}

	if req.DurationMinutes < 0 {
		return fmt.Errorf("%w: duration must not be negative", ErrInvalidInput)
	}

	return nil
}

// validateSlotInFuture проверяет, что слот еще не начался
// Строгое сравнение: слот, начинающийся ровно в текущую минуту, считается прошедшим
func validateSlotInFuture(date time.Time, startTime types.TimeString, now time.Time) error {
	parsed, err := time.Parse(domain.TimeFormat, string(startTime))
	if err != nil {
		return fmt.Errorf("%w: invalid start time %q", ErrInvalidInput, string(startTime))
	}

	slotStart := time.Date(
		date.Year(), date.Month(), date.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0,
		now.Location(),
	)

	if !slotStart.After(now) {
		return ErrPastSlot
	}

	return nil
}
