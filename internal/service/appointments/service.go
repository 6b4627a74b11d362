package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-HairdresserBot/internal/domain"
	apptRepo "github.com/m04kA/SMC-HairdresserBot/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-HairdresserBot/internal/service/appointments/models"
	"github.com/m04kA/SMC-HairdresserBot/pkg/types"
)

// Service сервис для работы с записями на прием
type Service struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// GetUserAppointments получает активные записи пользователя
func (s *Service) GetUserAppointments(ctx context.Context, userID int64) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetUserAppointments: fetching appointments for user=%d", userID)

	appts, err := s.appointmentRepo.GetActiveByUser(ctx, userID)
	if err != nil {
		s.logger.Error("GetUserAppointments: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserAppointments: successfully fetched %d appointments for user=%d", len(appts), userID)
	return models.FromDomainAppointmentList(appts), nil
}

// GetWorkerAppointments получает активные записи работника на дату
func (s *Service) GetWorkerAppointments(ctx context.Context, workerID int64, date time.Time) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetWorkerAppointments: fetching appointments for worker=%d, date=%s",
		workerID, date.Format(domain.DateFormat))

	appts, err := s.appointmentRepo.GetActiveByWorkerAndDate(ctx, workerID, date)
	if err != nil {
		s.logger.Error("GetWorkerAppointments: repository error for worker=%d: %v", workerID, err)
		return nil, fmt.Errorf("%w: GetWorkerAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetWorkerAppointments: successfully fetched %d appointments for worker=%d",
		len(appts), workerID)
	return models.FromDomainAppointmentList(appts), nil
}

// Cancel отменяет запись пользователя
// Чужая запись, несуществующая запись и уже отмененная запись неразличимы
// для вызывающего - во всех случаях возвращается ErrAppointmentNotFound
func (s *Service) Cancel(ctx context.Context, id, userID int64) error {
	s.logger.Info("Cancel: cancelling appointment id=%d for user=%d", id, userID)

	if err := s.appointmentRepo.CancelOwned(ctx, id, userID); err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found for user=%d", id, userID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%d", id)
	return nil
}

// HasSlotConflict проверяет, занят ли слот работника другой активной записью
func (s *Service) HasSlotConflict(ctx context.Context, workerID int64, date time.Time, startTime types.TimeString, excludeID *int64) (bool, error) {
	taken, err := s.appointmentRepo.HasActiveSlot(ctx, workerID, date, startTime, excludeID)
	if err != nil {
		s.logger.Error("HasSlotConflict: repository error for worker=%d: %v", workerID, err)
		return false, fmt.Errorf("%w: HasSlotConflict - repository error: %v", ErrInternal, err)
	}
	return taken, nil
}

// Reschedule переносит запись пользователя на другую дату и время
func (s *Service) Reschedule(ctx context.Context, id int64, req *models.RescheduleAppointmentRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("Reschedule: appointment id=%d for user=%d to %s %s", id, req.UserID, req.Date, req.StartTime)

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		s.logger.Warn("Reschedule: invalid date %q", req.Date)
		return nil, fmt.Errorf("%w: invalid date format", ErrInvalidInput)
	}

	startTime, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		s.logger.Warn("Reschedule: invalid start time %q", req.StartTime)
		return nil, fmt.Errorf("%w: invalid start time format", ErrInvalidInput)
	}

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Reschedule: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("Reschedule: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Reschedule - repository error: %v", ErrInternal, err)
	}

	// Чужую запись переносить нельзя, наружу отдаем "не найдено"
	if appt.UserID != req.UserID {
		s.logger.Warn("Reschedule: appointment id=%d does not belong to user=%d", id, req.UserID)
		return nil, ErrAppointmentNotFound
	}

	if !appt.CanBeRescheduled() {
		s.logger.Warn("Reschedule: appointment id=%d in status %s cannot be rescheduled", id, appt.Status)
		return nil, ErrCannotReschedule
	}

	// Проверяем занятость целевого слота, свою же запись не считаем
	taken, err := s.appointmentRepo.HasActiveSlot(ctx, appt.WorkerID, date, startTime, &appt.ID)
	if err != nil {
		s.logger.Error("Reschedule: failed to check target slot: %v", err)
		return nil, fmt.Errorf("%w: Reschedule - failed to check target slot: %v", ErrInternal, err)
	}
	if taken {
		s.logger.Warn("Reschedule: target slot %s %s for worker=%d is taken", req.Date, req.StartTime, appt.WorkerID)
		return nil, ErrSlotTaken
	}

	if err := s.appointmentRepo.UpdateSlot(ctx, id, date, startTime); err != nil {
		if errors.Is(err, apptRepo.ErrSlotTaken) {
			return nil, ErrSlotTaken
		}
		s.logger.Error("Reschedule: failed to update slot for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Reschedule - failed to update slot: %v", ErrInternal, err)
	}

	updated, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Reschedule: failed to reload appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Reschedule - failed to reload appointment: %v", ErrInternal, err)
	}

	s.logger.Info("Reschedule: successfully rescheduled appointment id=%d", id)
	return models.FromDomainAppointment(updated), nil
}

// UpdateStatus обновляет статус записи (операционный API)
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: appointment id=%d, status=%s", id, req.Status)

	status := domain.AppointmentStatus(req.Status)
	if !domain.ValidStatus(status) {
		s.logger.Warn("UpdateStatus: invalid status %q", req.Status)
		return ErrInvalidStatus
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%d not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated appointment id=%d to %s", id, req.Status)
	return nil
}
