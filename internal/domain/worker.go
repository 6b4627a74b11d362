package domain

import (
	"time"

	"github.com/m04kA/SMC-HairdresserBot/pkg/types"
)

// Worker represents a hairdresser that customers can book
type Worker struct {
	ID        int64
	Name      string
	Specialty *string
	IsActive  bool
	CreatedAt time.Time
}

// WorkerSchedule represents working hours for one day of the week.
// At most one row exists per (worker, day-of-week); day 0 is Sunday.
type WorkerSchedule struct {
	ID        int64
	WorkerID  int64
	DayOfWeek int
	StartTime types.TimeString
	EndTime   types.TimeString
	IsWorking bool
}

// WorkerService represents a service a worker can perform
type WorkerService struct {
	ID              int64
	Name            string
	DurationMinutes int
	Price           float64
}
