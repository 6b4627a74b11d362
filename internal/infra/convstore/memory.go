package convstore

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-HairdresserBot/internal/domain"
)

const janitorInterval = time.Minute

type memoryEntry struct {
	state     *domain.ConversationState
	expiresAt time.Time
}

// MemoryStore хранит состояния диалогов в памяти процесса
// Подходит для одного инстанса; при перезапуске диалоги теряются
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	stopCh  chan struct{}
	once    sync.Once
}

// NewMemoryStore создает in-memory хранилище с фоновой очисткой протухших диалогов
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	s := &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		stopCh:  make(chan struct{}),
	}

	go s.janitor()

	return s
}

func (s *MemoryStore) Get(_ context.Context, phoneNumber string) (*domain.ConversationState, error) {
	s.mu.RLock()
	entry, ok := s.entries[phoneNumber]
	s.mu.RUnlock()

	if !ok || time.Now().After(entry.expiresAt) {
		return nil, ErrStateNotFound
	}

	// Копия, чтобы вызывающий код не менял хранимое состояние напрямую
	return entry.state.Clone(), nil
}

func (s *MemoryStore) Put(_ context.Context, state *domain.ConversationState) error {
	s.mu.Lock()
	s.entries[state.PhoneNumber] = memoryEntry{
		state:     state.Clone(),
		expiresAt: time.Now().Add(s.ttl),
	}
	s.mu.Unlock()

	return nil
}

func (s *MemoryStore) Remove(_ context.Context, phoneNumber string) error {
	s.mu.Lock()
	delete(s.entries, phoneNumber)
	s.mu.Unlock()

	return nil
}

func (s *MemoryStore) Close() error {
	s.once.Do(func() {
		close(s.stopCh)
	})
	return nil
}

func (s *MemoryStore) janitor() {
	ticker := time.NewTicker(janitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.evictExpired()
		case <-s.stopCh:
			return
		}
	}
}

func (s *MemoryStore) evictExpired() {
	now := time.Now()

	s.mu.Lock()
	for phone, entry := range s.entries {
		if now.After(entry.expiresAt) {
			delete(s.entries, phone)
		}
	}
	s.mu.Unlock()
}
