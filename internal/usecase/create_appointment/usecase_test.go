package create_appointment

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HairdresserBot/internal/domain"
	apptRepo "github.com/m04kA/SMC-HairdresserBot/internal/infra/storage/appointment"
	workerRepo "github.com/m04kA/SMC-HairdresserBot/internal/infra/storage/worker"
	"github.com/m04kA/SMC-HairdresserBot/pkg/types"
)

// fakeAppointmentRepo имитирует таблицу записей вместе с частичным
// уникальным индексом по (worker, date, start_time)
type fakeAppointmentRepo struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]*domain.Appointment
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{
		nextID: 1,
		byID:   make(map[int64]*domain.Appointment),
	}
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.byID {
		if existing.IsActive() &&
			existing.WorkerID == appt.WorkerID &&
			existing.Date.Equal(appt.Date) &&
			existing.StartTime == appt.StartTime {
			return nil, apptRepo.ErrSlotTaken
		}
	}

	created := *appt
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.nextID++
	f.byID[created.ID] = &created

	return &created, nil
}

func (f *fakeAppointmentRepo) FindActiveSlot(_ context.Context, workerID int64, date time.Time, startTime types.TimeString) (*domain.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.byID {
		if existing.IsActive() &&
			existing.WorkerID == workerID &&
			existing.Date.Equal(date) &&
			existing.StartTime == startTime {
			found := *existing
			return &found, nil
		}
	}

	return nil, apptRepo.ErrAppointmentNotFound
}

func (f *fakeAppointmentRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.byID)
}

type fakeWorkerRepo struct {
	worker   *domain.Worker
	schedule *domain.WorkerSchedule
}

func (f *fakeWorkerRepo) GetByID(_ context.Context, _ int64) (*domain.Worker, error) {
	if f.worker == nil {
		return nil, workerRepo.ErrWorkerNotFound
	}
	return f.worker, nil
}

func (f *fakeWorkerRepo) GetScheduleForDay(_ context.Context, _ int64, _ int) (*domain.WorkerSchedule, error) {
	if f.schedule == nil {
		return nil, workerRepo.ErrScheduleNotFound
	}
	return f.schedule, nil
}

type fakeConfigService struct {
	duration int
}

func (f *fakeConfigService) SlotDurationMinutes(_ context.Context) int {
	return f.duration
}

// fakeTxManager выполняет функцию без настоящей транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time {
	return f.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func activeWorker() *domain.Worker {
	return &domain.Worker{ID: 1, Name: "Ayşe", IsActive: true}
}

func workingSchedule() *domain.WorkerSchedule {
	return &domain.WorkerSchedule{
		ID:        1,
		WorkerID:  1,
		StartTime: "09:00",
		EndTime:   "18:00",
		IsWorking: true,
	}
}

func newTestUseCase(repo *fakeAppointmentRepo, workers *fakeWorkerRepo, now time.Time) *UseCase {
	uc := NewUseCase(repo, workers, &fakeConfigService{duration: 60}, fakeTxManager{}, time.UTC, noopLogger{})
	return uc.WithTimeProvider(&fakeTimeProvider{now: now})
}

func validRequest(date time.Time, startTime types.TimeString) *Request {
	return &Request{
		UserID:    10,
		WorkerID:  1,
		Date:      date,
		StartTime: startTime,
	}
}

func TestExecute_Success(t *testing.T) {
	now := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)

	repo := newFakeAppointmentRepo()
	uc := newTestUseCase(repo, &fakeWorkerRepo{worker: activeWorker(), schedule: workingSchedule()}, now)

	resp, err := uc.Execute(context.Background(), validRequest(date, "14:00"))
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, 60, resp.DurationMinutes)
	assert.Equal(t, types.TimeString("14:00"), resp.StartTime)
}

func TestExecute_SlotStartingNowIsPast(t *testing.T) {
	// Граница: слот, начинающийся ровно в текущий момент, уже недоступен
	now := time.Date(2026, 3, 4, 14, 0, 0, 0, time.UTC)
	today := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)

	repo := newFakeAppointmentRepo()
	uc := newTestUseCase(repo, &fakeWorkerRepo{worker: activeWorker(), schedule: workingSchedule()}, now)

	_, err := uc.Execute(context.Background(), validRequest(today, "14:00"))
	assert.ErrorIs(t, err, ErrPastSlot)

	resp, err := uc.Execute(context.Background(), validRequest(today, "15:00"))
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("15:00"), resp.StartTime)
}

func TestExecute_PastDate(t *testing.T) {
	now := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)
	yesterday := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)

	uc := newTestUseCase(newFakeAppointmentRepo(), &fakeWorkerRepo{worker: activeWorker(), schedule: workingSchedule()}, now)

	_, err := uc.Execute(context.Background(), validRequest(yesterday, "14:00"))
	assert.ErrorIs(t, err, ErrPastSlot)
}

func TestExecute_WorkerNotFound(t *testing.T) {
	now := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)

	uc := newTestUseCase(newFakeAppointmentRepo(), &fakeWorkerRepo{}, now)

	_, err := uc.Execute(context.Background(), validRequest(date, "14:00"))
	assert.ErrorIs(t, err, ErrWorkerNotFound)
}

func TestExecute_InactiveWorker(t *testing.T) {
	now := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)

	worker := activeWorker()
	worker.IsActive = false

	uc := newTestUseCase(newFakeAppointmentRepo(), &fakeWorkerRepo{worker: worker, schedule: workingSchedule()}, now)

	_, err := uc.Execute(context.Background(), validRequest(date, "14:00"))
	assert.ErrorIs(t, err, ErrWorkerNotFound)
}

func TestExecute_OutsideWorkingHours(t *testing.T) {
	now := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)

	uc := newTestUseCase(newFakeAppointmentRepo(), &fakeWorkerRepo{worker: activeWorker(), schedule: workingSchedule()}, now)

	tests := []struct {
		name string
		time types.TimeString
	}{
		{name: "before shift", time: "08:00"},
		{name: "at shift end", time: "18:00"},
		{name: "after shift", time: "19:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), validRequest(date, tt.time))
			assert.ErrorIs(t, err, ErrWorkerNotAvailable)
		})
	}
}

func TestExecute_DayOff(t *testing.T) {
	now := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)

	schedule := workingSchedule()
	schedule.IsWorking = false

	uc := newTestUseCase(newFakeAppointmentRepo(), &fakeWorkerRepo{worker: activeWorker(), schedule: schedule}, now)

	_, err := uc.Execute(context.Background(), validRequest(date, "14:00"))
	assert.ErrorIs(t, err, ErrWorkerNotAvailable)
}

func TestExecute_SlotTaken(t *testing.T) {
	now := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)

	repo := newFakeAppointmentRepo()
	uc := newTestUseCase(repo, &fakeWorkerRepo{worker: activeWorker(), schedule: workingSchedule()}, now)

	_, err := uc.Execute(context.Background(), validRequest(date, "14:00"))
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), validRequest(date, "14:00"))
	assert.ErrorIs(t, err, ErrSlotTaken)

	assert.Equal(t, 1, repo.count())
}

func TestExecute_ConcurrentBookingsOneWins(t *testing.T) {
	now := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)

	repo := newFakeAppointmentRepo()
	uc := newTestUseCase(repo, &fakeWorkerRepo{worker: activeWorker(), schedule: workingSchedule()}, now)

	const attempts = 20

	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), &Request{
				UserID:    int64(100 + i),
				WorkerID:  1,
				Date:      date,
				StartTime: "14:00",
			})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, ErrSlotTaken)
		}
	}

	// Ровно одно бронирование выигрывает гонку за слот
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, repo.count())
}

func TestExecute_ExplicitDurationOverridesConfigured(t *testing.T) {
	now := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)

	repo := newFakeAppointmentRepo()
	uc := newTestUseCase(repo, &fakeWorkerRepo{worker: activeWorker(), schedule: workingSchedule()}, now)

	req := validRequest(date, "14:00")
	req.DurationMinutes = 45

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 45, resp.DurationMinutes)
}

func TestExecute_InvalidInput(t *testing.T) {
	now := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)

	uc := newTestUseCase(newFakeAppointmentRepo(), &fakeWorkerRepo{worker: activeWorker(), schedule: workingSchedule()}, now)

	tests := []struct {
		name string
		req  *Request
	}{
		{name: "zero user", req: &Request{WorkerID: 1, Date: date, StartTime: "14:00"}},
		{name: "zero worker", req: &Request{UserID: 10, Date: date, StartTime: "14:00"}},
		{name: "zero date", req: &Request{UserID: 10, WorkerID: 1, StartTime: "14:00"}},
		{name: "bad time", req: &Request{UserID: 10, WorkerID: 1, Date: date, StartTime: "25:99"}},
		{name: "negative duration", req: &Request{UserID: 10, WorkerID: 1, Date: date, StartTime: "14:00", DurationMinutes: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
