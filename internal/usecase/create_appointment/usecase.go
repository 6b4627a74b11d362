package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-HairdresserBot/internal/domain"
	apptRepo "github.com/m04kA/SMC-HairdresserBot/internal/infra/storage/appointment"
	workerRepo "github.com/m04kA/SMC-HairdresserBot/internal/infra/storage/worker"
)

// UseCase use case для создания записи на прием
type UseCase struct {
	appointmentRepo AppointmentRepository
	workerRepo      WorkerRepository
	configService   ConfigService
	txManager       TransactionManager
	location        *time.Location
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	workerRepo WorkerRepository,
	configService ConfigService,
	txManager TransactionManager,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		workerRepo:      workerRepo,
		configService:   configService,
		txManager:       txManager,
		location:        location,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case создания записи
// Занятость слота проверяется дважды: SELECT в сериализуемой транзакции и
// частичный уникальный индекс в БД - гонка двух бронирований всегда
// заканчивается ровно одной созданной записью
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: user=%d, worker=%d, date=%s, time=%s",
		req.UserID, req.WorkerID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Текущее время в часовом поясе салона
	now := uc.timeProvider.Now().In(uc.location)

	// 3. Слот должен быть строго в будущем
	if err := validateSlotInFuture(req.Date, req.StartTime, now); err != nil {
		uc.logger.Warn("CreateAppointment: slot %s %s is in the past",
			req.Date.Format(domain.DateFormat), req.StartTime)
		return nil, err
	}

	// 4. Работник существует и активен
	w, err := uc.workerRepo.GetByID(ctx, req.WorkerID)
	if err != nil {
		if errors.Is(err, workerRepo.ErrWorkerNotFound) {
			uc.logger.Warn("CreateAppointment: worker id=%d not found", req.WorkerID)
			return nil, ErrWorkerNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get worker id=%d: %v", req.WorkerID, err)
		return nil, fmt.Errorf("%w: failed to get worker: %v", ErrInternal, err)
	}
	if !w.IsActive {
		uc.logger.Warn("CreateAppointment: worker id=%d is inactive", req.WorkerID)
		return nil, ErrWorkerNotFound
	}

	// 5. Работник принимает в этот день
	schedule, err := uc.workerRepo.GetScheduleForDay(ctx, req.WorkerID, int(req.Date.Weekday()))
	if err != nil {
		if errors.Is(err, workerRepo.ErrScheduleNotFound) {
			uc.logger.Warn("CreateAppointment: worker id=%d has no schedule for weekday=%d",
				req.WorkerID, int(req.Date.Weekday()))
			return nil, ErrWorkerNotAvailable
		}
		uc.logger.Error("CreateAppointment: failed to get schedule for worker id=%d: %v", req.WorkerID, err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}
	if !schedule.IsWorking {
		uc.logger.Warn("CreateAppointment: worker id=%d is off on %s",
			req.WorkerID, req.Date.Format(domain.DateFormat))
		return nil, ErrWorkerNotAvailable
	}
	if req.StartTime.IsBefore(schedule.StartTime) || !req.StartTime.IsBefore(schedule.EndTime) {
		uc.logger.Warn("CreateAppointment: time %s is outside working hours %s-%s",
			req.StartTime, schedule.StartTime, schedule.EndTime)
		return nil, ErrWorkerNotAvailable
	}

	// 6. Длительность: явная из запроса или действующая длительность слота
	duration := req.DurationMinutes
	if duration == 0 {
		duration = uc.configService.SlotDurationMinutes(ctx)
	}

	var result *domain.Appointment

	// 7. Проверка занятости и создание в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		_, err := uc.appointmentRepo.FindActiveSlot(txCtx, req.WorkerID, req.Date, req.StartTime)
		if err == nil {
			uc.logger.Warn("CreateAppointment: slot %s %s for worker=%d is already taken",
				req.Date.Format(domain.DateFormat), req.StartTime, req.WorkerID)
			return ErrSlotTaken
		}
		if !errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			uc.logger.Error("CreateAppointment: failed to check slot: %v", err)
			return fmt.Errorf("%w: failed to check slot: %v", ErrInternal, err)
		}

		appt := &domain.Appointment{
			UserID:          req.UserID,
			WorkerID:        req.WorkerID,
			Date:            req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: duration,
			Status:          domain.StatusPending,
			ServiceID:       req.ServiceID,
			ServiceName:     req.ServiceName,
			Notes:           req.Notes,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			if errors.Is(err, apptRepo.ErrSlotTaken) {
				return ErrSlotTaken
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	return &Response{
		ID:              result.ID,
		UserID:          result.UserID,
		WorkerID:        result.WorkerID,
		Date:            result.Date,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		ServiceID:       result.ServiceID,
		ServiceName:     result.ServiceName,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
