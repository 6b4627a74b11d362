package convstore

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HairdresserBot/internal/domain"
	"github.com/m04kA/SMC-HairdresserBot/pkg/ptr"
)

func newState(phone string) *domain.ConversationState {
	return &domain.ConversationState{
		PhoneNumber: phone,
		CurrentStep: domain.StepAwaitingWorker,
	}
}

func TestMemoryStore_PutGet(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	defer store.Close()

	ctx := context.Background()

	require.NoError(t, store.Put(ctx, newState("905551112233")))

	state, err := store.Get(ctx, "905551112233")
	require.NoError(t, err)
	assert.Equal(t, "905551112233", state.PhoneNumber)
	assert.Equal(t, domain.StepAwaitingWorker, state.CurrentStep)
}

func TestMemoryStore_GetMissing(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	defer store.Close()

	_, err := store.Get(context.Background(), "905551112233")
	assert.ErrorIs(t, err, ErrStateNotFound)
}

func TestMemoryStore_Remove(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	defer store.Close()

	ctx := context.Background()

	require.NoError(t, store.Put(ctx, newState("905551112233")))
	require.NoError(t, store.Remove(ctx, "905551112233"))

	_, err := store.Get(ctx, "905551112233")
	assert.ErrorIs(t, err, ErrStateNotFound)
}

func TestMemoryStore_RemoveMissingIsNoop(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	defer store.Close()

	assert.NoError(t, store.Remove(context.Background(), "905551112233"))
}

func TestMemoryStore_TTLExpiry(t *testing.T) {
	store := NewMemoryStore(10 * time.Millisecond)
	defer store.Close()

	ctx := context.Background()

	require.NoError(t, store.Put(ctx, newState("905551112233")))

	time.Sleep(30 * time.Millisecond)

	// Протухшее состояние недоступно даже до прихода janitor
	_, err := store.Get(ctx, "905551112233")
	assert.ErrorIs(t, err, ErrStateNotFound)
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	defer store.Close()

	ctx := context.Background()

	original := newState("905551112233")
	original.SelectedWorkerID = ptr.Ptr(int64(1))
	require.NoError(t, store.Put(ctx, original))

	first, err := store.Get(ctx, "905551112233")
	require.NoError(t, err)

	// Мутация выданной копии не должна менять хранимое состояние
	first.CurrentStep = domain.StepConfirming
	*first.SelectedWorkerID = 99

	second, err := store.Get(ctx, "905551112233")
	require.NoError(t, err)
	assert.Equal(t, domain.StepAwaitingWorker, second.CurrentStep)
	assert.Equal(t, int64(1), *second.SelectedWorkerID)
}

func TestMemoryStore_PutIsolatesCaller(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	defer store.Close()

	ctx := context.Background()

	state := newState("905551112233")
	require.NoError(t, store.Put(ctx, state))

	// Мутация после Put не протекает в хранилище
	state.CurrentStep = domain.StepConfirming

	stored, err := store.Get(ctx, "905551112233")
	require.NoError(t, err)
	assert.Equal(t, domain.StepAwaitingWorker, stored.CurrentStep)
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	defer store.Close()

	ctx := context.Background()

	const workers = 16

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(n int) {
			defer wg.Done()

			phone := "9055500000" + strconv.Itoa(n)
			for j := 0; j < 50; j++ {
				_ = store.Put(ctx, newState(phone))
				if state, err := store.Get(ctx, phone); err == nil {
					assert.Equal(t, phone, state.PhoneNumber)
				}
				_ = store.Remove(ctx, phone)
			}
		}(i)
	}
	wg.Wait()
}

func TestMemoryStore_CloseIsIdempotent(t *testing.T) {
	store := NewMemoryStore(time.Minute)

	assert.NoError(t, store.Close())
	assert.NoError(t, store.Close())
}
