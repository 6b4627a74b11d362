package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	configRepo "github.com/m04kA/SMC-HairdresserBot/internal/infra/storage/businessconfig"
)

type fakeRepo struct {
	values map[string]string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{values: make(map[string]string)}
}

func (f *fakeRepo) GetByKey(_ context.Context, key string) (string, error) {
	value, ok := f.values[key]
	if !ok {
		return "", configRepo.ErrConfigNotFound
	}
	return value, nil
}

func (f *fakeRepo) Upsert(_ context.Context, key, value string) error {
	f.values[key] = value
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestSlotDurationMinutes(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		want   int
	}{
		{name: "stored value wins", stored: "30", want: 30},
		{name: "missing falls back to default", stored: "", want: 60},
		{name: "non-numeric falls back to default", stored: "fast", want: 60},
		{name: "zero falls back to default", stored: "0", want: 60},
		{name: "negative falls back to default", stored: "-15", want: 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo()
			if tt.stored != "" {
				repo.values["slot_duration_minutes"] = tt.stored
			}

			svc := NewService(repo, 60, noopLogger{})
			assert.Equal(t, tt.want, svc.SlotDurationMinutes(context.Background()))
		})
	}
}

func TestSetSlotDurationMinutes(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, 60, noopLogger{})

	require.NoError(t, svc.SetSlotDurationMinutes(context.Background(), 45))
	assert.Equal(t, "45", repo.values["slot_duration_minutes"])
	assert.Equal(t, 45, svc.SlotDurationMinutes(context.Background()))
}

func TestSetSlotDurationMinutes_Invalid(t *testing.T) {
	svc := NewService(newFakeRepo(), 60, noopLogger{})

	err := svc.SetSlotDurationMinutes(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestGetSetRaw(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, 60, noopLogger{})

	ctx := context.Background()

	_, err := svc.GetRaw(ctx, "salon_motto")
	assert.ErrorIs(t, err, configRepo.ErrConfigNotFound)

	require.NoError(t, svc.SetRaw(ctx, "salon_motto", "her gün güzellik"))

	value, err := svc.GetRaw(ctx, "salon_motto")
	require.NoError(t, err)
	assert.Equal(t, "her gün güzellik", value)
}

func TestSetRaw_EmptyKey(t *testing.T) {
	svc := NewService(newFakeRepo(), 60, noopLogger{})

	err := svc.SetRaw(context.Background(), "", "value")
	assert.ErrorIs(t, err, ErrInvalidValue)
}
