package get_worker_appointments

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HairdresserBot/internal/service/appointments/models"
)

type AppointmentService interface {
	GetWorkerAppointments(ctx context.Context, workerID int64, date time.Time) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
