package create_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HairdresserBot/internal/domain"
	"github.com/m04kA/SMC-HairdresserBot/pkg/types"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	FindActiveSlot(ctx context.Context, workerID int64, date time.Time, startTime types.TimeString) (*domain.Appointment, error)
}

// WorkerRepository интерфейс репозитория работников
type WorkerRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Worker, error)
	GetScheduleForDay(ctx context.Context, workerID int64, dayOfWeek int) (*domain.WorkerSchedule, error)
}

// ConfigService интерфейс сервиса настроек салона
type ConfigService interface {
	SlotDurationMinutes(ctx context.Context) int
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
