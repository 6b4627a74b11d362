package whatsapp

import "errors"

var (
	// ErrInternal - внутренняя ошибка клиента (сеть, таймаут, формирование запроса)
	ErrInternal = errors.New("whatsapp: internal error")

	// ErrAPIResponse - Cloud API вернул ошибку
	ErrAPIResponse = errors.New("whatsapp: api error response")

	// ErrTooManyRows - список превышает лимит WhatsApp в 10 строк
	ErrTooManyRows = errors.New("whatsapp: too many list rows")

	// ErrTooManyButtons - больше трех кнопок в одном сообщении
	ErrTooManyButtons = errors.New("whatsapp: too many buttons")
)
