package update_config

import "context"

type ConfigService interface {
	SetRaw(ctx context.Context, key, value string) error
	SetSlotDurationMinutes(ctx context.Context, minutes int) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
