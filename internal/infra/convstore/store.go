package convstore

import (
	"context"
	"errors"

	"github.com/m04kA/SMC-HairdresserBot/internal/domain"
)

var (
	// ErrStateNotFound - у пользователя нет активного диалога
	ErrStateNotFound = errors.New("convstore: state not found")
)

// Store хранилище состояний диалогов, ключ - номер телефона
type Store interface {
	Get(ctx context.Context, phoneNumber string) (*domain.ConversationState, error)
	Put(ctx context.Context, state *domain.ConversationState) error
	Remove(ctx context.Context, phoneNumber string) error
	Close() error
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}
