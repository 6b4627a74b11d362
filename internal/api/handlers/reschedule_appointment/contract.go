package reschedule_appointment

import (
	"context"

	"github.com/m04kA/SMC-HairdresserBot/internal/service/appointments/models"
)

type AppointmentService interface {
	Reschedule(ctx context.Context, id int64, req *models.RescheduleAppointmentRequest) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
