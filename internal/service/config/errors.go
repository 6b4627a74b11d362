package config

import "errors"

var (
	// ErrInvalidValue возвращается при недопустимом значении настройки
	ErrInvalidValue = errors.New("invalid config value")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
