package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-HairdresserBot/internal/domain"
	workerRepo "github.com/m04kA/SMC-HairdresserBot/internal/infra/storage/worker"
	"github.com/m04kA/SMC-HairdresserBot/pkg/types"
)

// UseCase use case для получения свободных слотов работника на дату
type UseCase struct {
	appointmentRepo AppointmentRepository
	workerRepo      WorkerRepository
	configService   ConfigService
	location        *time.Location
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
// location - часовой пояс салона, все "сегодня/сейчас" считаются в нем
func NewUseCase(
	appointmentRepo AppointmentRepository,
	workerRepo WorkerRepository,
	configService ConfigService,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		workerRepo:      workerRepo,
		configService:   configService,
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

// Execute выполняет use case получения свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: worker=%d, date=%s",
		req.WorkerID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Текущее время в часовом поясе салона
	now := uc.timeProvider.Now().In(uc.location)

	// 3. Дата в прошлом - бронировать нечего
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("GetAvailableSlots: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 4. Действующая длительность слота
	slotDuration := uc.configService.SlotDurationMinutes(ctx)

	// 5. Расписание работника на этот день недели
	schedule, err := uc.workerRepo.GetScheduleForDay(ctx, req.WorkerID, int(req.Date.Weekday()))
	if err != nil {
		if errors.Is(err, workerRepo.ErrScheduleNotFound) {
			// Нет строки расписания - работник в этот день не принимает
			uc.logger.Info("GetAvailableSlots: worker=%d has no schedule for weekday=%d",
				req.WorkerID, int(req.Date.Weekday()))
			return uc.emptyResponse(req, slotDuration), nil
		}
		uc.logger.Error("GetAvailableSlots: failed to get schedule for worker=%d: %v", req.WorkerID, err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	if !schedule.IsWorking {
		uc.logger.Info("GetAvailableSlots: worker=%d is off on %s",
			req.WorkerID, req.Date.Format(domain.DateFormat))
		return uc.emptyResponse(req, slotDuration), nil
	}

	// 6. Генерируем слоты-кандидаты по расписанию смены
	candidates, err := generateCandidateSlots(schedule, slotDuration)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	// 7. Убираем занятые слоты
	appointments, err := uc.appointmentRepo.GetActiveByWorkerAndDate(ctx, req.WorkerID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments for worker=%d: %v", req.WorkerID, err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	free := removeBooked(candidates, appointments)

	// 8. Для сегодняшней даты убираем уже прошедшие слоты
	free, err = filterPastToday(free, req.Date, now, slotDuration)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to filter past slots: %v", err)
		return nil, fmt.Errorf("%w: failed to filter past slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: worker=%d, date=%s: %d free of %d candidates",
		req.WorkerID, req.Date.Format(domain.DateFormat), len(free), len(candidates))

	return &Response{
		WorkerID:     req.WorkerID,
		Date:         req.Date,
		SlotDuration: slotDuration,
		Slots:        free,
	}, nil
}

func (uc *UseCase) emptyResponse(req *Request, slotDuration int) *Response {
	return &Response{
		WorkerID:     req.WorkerID,
		Date:         req.Date,
		SlotDuration: slotDuration,
		Slots:        []types.TimeString{},
	}
}
