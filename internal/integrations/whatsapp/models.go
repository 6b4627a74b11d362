package whatsapp

// Лимиты интерактивных сообщений WhatsApp Cloud API
const (
	MaxListRows = 10
	MaxButtons  = 3
)

// Button кнопка быстрого ответа
type Button struct {
	ID    string
	Title string
}

// ListRow строка интерактивного списка
type ListRow struct {
	ID          string
	Title       string
	Description string
}

// ListSection секция интерактивного списка
type ListSection struct {
	Title string
	Rows  []ListRow
}

// --- Исходящие payload'ы Cloud API ---

type messagePayload struct {
	MessagingProduct string              `json:"messaging_product"`
	RecipientType    string              `json:"recipient_type,omitempty"`
	To               string              `json:"to,omitempty"`
	Type             string              `json:"type,omitempty"`
	Text             *textPayload        `json:"text,omitempty"`
	Interactive      *interactivePayload `json:"interactive,omitempty"`
	Location         *locationPayload    `json:"location,omitempty"`
	Status           string              `json:"status,omitempty"`
	MessageID        string              `json:"message_id,omitempty"`
}

type textPayload struct {
	Body string `json:"body"`
}

type interactivePayload struct {
	Type   string             `json:"type"`
	Header *interactiveHeader `json:"header,omitempty"`
	Body   interactiveBody    `json:"body"`
	Action interactiveAction  `json:"action"`
}

type interactiveHeader struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type interactiveBody struct {
	Text string `json:"text"`
}

type interactiveAction struct {
	Button   string           `json:"button,omitempty"`
	Buttons  []buttonPayload  `json:"buttons,omitempty"`
	Sections []sectionPayload `json:"sections,omitempty"`
}

type buttonPayload struct {
	Type  string             `json:"type"`
	Reply buttonReplyPayload `json:"reply"`
}

type buttonReplyPayload struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type sectionPayload struct {
	Title string       `json:"title,omitempty"`
	Rows  []rowPayload `json:"rows"`
}

type rowPayload struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type locationPayload struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Name      string  `json:"name,omitempty"`
	Address   string  `json:"address,omitempty"`
}

type apiErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    int    `json:"code"`
	} `json:"error"`
}
