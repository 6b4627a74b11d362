package conversation

import "errors"

var (
	// ErrInvalidReply возвращается при нераспознанном или битом reply ID
	ErrInvalidReply = errors.New("conversation: invalid reply id")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("conversation: internal error")
)
