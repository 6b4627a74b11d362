package conversation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HairdresserBot/internal/domain"
	"github.com/m04kA/SMC-HairdresserBot/internal/integrations/whatsapp"
	appointmentmodels "github.com/m04kA/SMC-HairdresserBot/internal/service/appointments/models"
	"github.com/m04kA/SMC-HairdresserBot/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-HairdresserBot/internal/usecase/get_available_slots"
)

// Store хранилище состояний диалогов
type Store interface {
	Get(ctx context.Context, phoneNumber string) (*domain.ConversationState, error)
	Put(ctx context.Context, state *domain.ConversationState) error
	Remove(ctx context.Context, phoneNumber string) error
}

// WhatsAppClient интерфейс клиента для отправки сообщений
type WhatsAppClient interface {
	SendText(ctx context.Context, to, body string) error
	SendButtons(ctx context.Context, to, body string, buttons []whatsapp.Button) error
	SendList(ctx context.Context, to, header, body, buttonText string, sections []whatsapp.ListSection) error
	SendLocation(ctx context.Context, to string, latitude, longitude float64, name, address string) error
}

// AvailableSlotsUseCase интерфейс use case получения свободных слотов
type AvailableSlotsUseCase interface {
	Execute(ctx context.Context, req *get_available_slots.Request) (*get_available_slots.Response, error)
}

// CreateAppointmentUseCase интерфейс use case создания записи
type CreateAppointmentUseCase interface {
	Execute(ctx context.Context, req *create_appointment.Request) (*create_appointment.Response, error)
}

// AppointmentService интерфейс сервиса записей (список активных и отмена)
type AppointmentService interface {
	GetUserAppointments(ctx context.Context, userID int64) (*appointmentmodels.AppointmentListResponse, error)
	Cancel(ctx context.Context, id, userID int64) error
}

// WorkerRepository интерфейс репозитория работников
type WorkerRepository interface {
	GetActive(ctx context.Context) ([]*domain.Worker, error)
	GetByID(ctx context.Context, id int64) (*domain.Worker, error)
	GetServices(ctx context.Context, workerID int64) ([]*domain.WorkerService, error)
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetOrCreate(ctx context.Context, phoneNumber string, name *string) (*domain.User, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
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
