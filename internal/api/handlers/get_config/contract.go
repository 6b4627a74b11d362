package get_config

import "context"

type ConfigService interface {
	GetRaw(ctx context.Context, key string) (string, error)
	SlotDurationMinutes(ctx context.Context) int
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
