package config

import "context"

// ConfigRepository интерфейс репозитория настроек салона
type ConfigRepository interface {
	GetByKey(ctx context.Context, key string) (string, error)
	Upsert(ctx context.Context, key, value string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
