package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HairdresserBot/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// GetActiveByWorkerAndDate получает активные записи работника на дату
	GetActiveByWorkerAndDate(ctx context.Context, workerID int64, date time.Time) ([]*domain.Appointment, error)
}

// WorkerRepository интерфейс репозитория работников
type WorkerRepository interface {
	// GetScheduleForDay получает расписание работника на день недели (0 = воскресенье)
	GetScheduleForDay(ctx context.Context, workerID int64, dayOfWeek int) (*domain.WorkerSchedule, error)
}

// ConfigService интерфейс сервиса настроек салона
type ConfigService interface {
	// SlotDurationMinutes возвращает действующую длительность слота
	SlotDurationMinutes(ctx context.Context) int
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
