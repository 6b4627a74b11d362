package webhook

import "context"

// ConversationService интерфейс конечного автомата диалога
type ConversationService interface {
	HandleTextMessage(ctx context.Context, from, text string, senderName *string) error
	HandleInteractiveReply(ctx context.Context, from, replyID string) error
}

// MessageReader интерфейс для пометки входящих сообщений прочитанными
type MessageReader interface {
	MarkRead(ctx context.Context, messageID string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
