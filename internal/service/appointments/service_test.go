package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HairdresserBot/internal/domain"
	apptRepo "github.com/m04kA/SMC-HairdresserBot/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-HairdresserBot/internal/service/appointments/models"
	"github.com/m04kA/SMC-HairdresserBot/pkg/types"
)

// fakeRepo имитирует репозиторий записей с семантикой CancelOwned:
// отменить можно только свою запись в активном статусе
type fakeRepo struct {
	byID      map[int64]*domain.Appointment
	slotTaken bool
}

func newFakeRepo(appts ...*domain.Appointment) *fakeRepo {
	repo := &fakeRepo{byID: make(map[int64]*domain.Appointment)}
	for _, a := range appts {
		repo.byID[a.ID] = a
	}
	return repo
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	appt, ok := f.byID[id]
	if !ok {
		return nil, apptRepo.ErrAppointmentNotFound
	}
	copy := *appt
	return &copy, nil
}

func (f *fakeRepo) GetActiveByUser(_ context.Context, userID int64) ([]*domain.Appointment, error) {
	var result []*domain.Appointment
	for _, a := range f.byID {
		if a.UserID == userID && a.IsActive() {
			result = append(result, a)
		}
	}
	return result, nil
}

func (f *fakeRepo) GetActiveByWorkerAndDate(_ context.Context, workerID int64, date time.Time) ([]*domain.Appointment, error) {
	var result []*domain.Appointment
	for _, a := range f.byID {
		if a.WorkerID == workerID && a.Date.Equal(date) && a.IsActive() {
			result = append(result, a)
		}
	}
	return result, nil
}

func (f *fakeRepo) HasActiveSlot(_ context.Context, _ int64, _ time.Time, _ types.TimeString, _ *int64) (bool, error) {
	return f.slotTaken, nil
}

func (f *fakeRepo) CancelOwned(_ context.Context, id, userID int64) error {
	appt, ok := f.byID[id]
	if !ok || appt.UserID != userID || !appt.CanBeCancelled() {
		return apptRepo.ErrAppointmentNotFound
	}
	appt.Status = domain.StatusCancelled
	return nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus) error {
	appt, ok := f.byID[id]
	if !ok {
		return apptRepo.ErrAppointmentNotFound
	}
	appt.Status = status
	return nil
}

func (f *fakeRepo) UpdateSlot(_ context.Context, id int64, date time.Time, startTime types.TimeString) error {
	appt, ok := f.byID[id]
	if !ok {
		return apptRepo.ErrAppointmentNotFound
	}
	appt.Date = date
	appt.StartTime = startTime
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func pendingAppointment(id, userID int64) *domain.Appointment {
	return &domain.Appointment{
		ID:              id,
		UserID:          userID,
		WorkerID:        1,
		Date:            time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
		StartTime:       "14:00",
		DurationMinutes: 60,
		Status:          domain.StatusPending,
	}
}

func TestGetUserAppointments(t *testing.T) {
	repo := newFakeRepo(pendingAppointment(1, 10), pendingAppointment(2, 20))
	svc := NewService(repo, noopLogger{})

	resp, err := svc.GetUserAppointments(context.Background(), 10)
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, int64(1), resp.Appointments[0].ID)
}

func TestCancel(t *testing.T) {
	repo := newFakeRepo(pendingAppointment(1, 10))
	svc := NewService(repo, noopLogger{})

	err := svc.Cancel(context.Background(), 1, 10)
	require.NoError(t, err)

	appt, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, appt.Status)
}

func TestCancel_ForeignAppointment(t *testing.T) {
	repo := newFakeRepo(pendingAppointment(1, 10))
	svc := NewService(repo, noopLogger{})

	// Чужая запись выглядит как несуществующая
	err := svc.Cancel(context.Background(), 1, 999)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)

	appt, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, appt.Status)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	repo := newFakeRepo(pendingAppointment(1, 10))
	svc := NewService(repo, noopLogger{})

	require.NoError(t, svc.Cancel(context.Background(), 1, 10))

	// Повторная отмена неотличима от отмены несуществующей записи
	err := svc.Cancel(context.Background(), 1, 10)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestCancel_NotFound(t *testing.T) {
	svc := NewService(newFakeRepo(), noopLogger{})

	err := svc.Cancel(context.Background(), 42, 10)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestReschedule(t *testing.T) {
	repo := newFakeRepo(pendingAppointment(1, 10))
	svc := NewService(repo, noopLogger{})

	resp, err := svc.Reschedule(context.Background(), 1, &models.RescheduleAppointmentRequest{
		UserID:    10,
		Date:      "2026-03-06",
		StartTime: "15:00",
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-03-06", resp.Date)
	assert.Equal(t, "15:00", resp.StartTime)
}

func TestReschedule_ForeignAppointment(t *testing.T) {
	repo := newFakeRepo(pendingAppointment(1, 10))
	svc := NewService(repo, noopLogger{})

	_, err := svc.Reschedule(context.Background(), 1, &models.RescheduleAppointmentRequest{
		UserID:    999,
		Date:      "2026-03-06",
		StartTime: "15:00",
	})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestReschedule_CancelledAppointment(t *testing.T) {
	appt := pendingAppointment(1, 10)
	appt.Status = domain.StatusCancelled

	svc := NewService(newFakeRepo(appt), noopLogger{})

	_, err := svc.Reschedule(context.Background(), 1, &models.RescheduleAppointmentRequest{
		UserID:    10,
		Date:      "2026-03-06",
		StartTime: "15:00",
	})
	assert.ErrorIs(t, err, ErrCannotReschedule)
}

func TestReschedule_TargetSlotTaken(t *testing.T) {
	repo := newFakeRepo(pendingAppointment(1, 10))
	repo.slotTaken = true

	svc := NewService(repo, noopLogger{})

	_, err := svc.Reschedule(context.Background(), 1, &models.RescheduleAppointmentRequest{
		UserID:    10,
		Date:      "2026-03-06",
		StartTime: "15:00",
	})
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestReschedule_InvalidInput(t *testing.T) {
	svc := NewService(newFakeRepo(pendingAppointment(1, 10)), noopLogger{})

	tests := []struct {
		name string
		req  *models.RescheduleAppointmentRequest
	}{
		{name: "bad date", req: &models.RescheduleAppointmentRequest{UserID: 10, Date: "06.03.2026", StartTime: "15:00"}},
		{name: "bad time", req: &models.RescheduleAppointmentRequest{UserID: 10, Date: "2026-03-06", StartTime: "15h00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Reschedule(context.Background(), 1, tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUpdateStatus(t *testing.T) {
	repo := newFakeRepo(pendingAppointment(1, 10))
	svc := NewService(repo, noopLogger{})

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "confirmed"})
	require.NoError(t, err)

	appt, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, appt.Status)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	svc := NewService(newFakeRepo(pendingAppointment(1, 10)), noopLogger{})

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "done"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
