package get_user_appointments

import (
	"context"

	"github.com/m04kA/SMC-HairdresserBot/internal/service/appointments/models"
)

type AppointmentService interface {
	GetUserAppointments(ctx context.Context, userID int64) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
