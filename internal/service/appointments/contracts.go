package appointments

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HairdresserBot/internal/domain"
	"github.com/m04kA/SMC-HairdresserBot/pkg/types"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	GetActiveByUser(ctx context.Context, userID int64) ([]*domain.Appointment, error)
	GetActiveByWorkerAndDate(ctx context.Context, workerID int64, date time.Time) ([]*domain.Appointment, error)
	HasActiveSlot(ctx context.Context, workerID int64, date time.Time, startTime types.TimeString, excludeID *int64) (bool, error)
	CancelOwned(ctx context.Context, id, userID int64) error
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
	UpdateSlot(ctx context.Context, id int64, date time.Time, startTime types.TimeString) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
