package webhook

// Входящий конверт WhatsApp Cloud API

type webhookPayload struct {
	Object string         `json:"object"`
	Entry  []webhookEntry `json:"entry"`
}

type webhookEntry struct {
	ID      string          `json:"id"`
	Changes []webhookChange `json:"changes"`
}

type webhookChange struct {
	Value webhookValue `json:"value"`
	Field string       `json:"field"`
}

type webhookValue struct {
	MessagingProduct string           `json:"messaging_product"`
	Metadata         webhookMetadata  `json:"metadata"`
	Contacts         []webhookContact `json:"contacts,omitempty"`
	Messages         []webhookMessage `json:"messages,omitempty"`
	Statuses         []webhookStatus  `json:"statuses,omitempty"`
}

type webhookMetadata struct {
	DisplayPhoneNumber string `json:"display_phone_number"`
	PhoneNumberID      string `json:"phone_number_id"`
}

type webhookContact struct {
	Profile webhookProfile `json:"profile"`
	WaID    string         `json:"wa_id"`
}

type webhookProfile struct {
	Name string `json:"name"`
}

type webhookMessage struct {
	From        string              `json:"from"`
	ID          string              `json:"id"`
	Timestamp   string              `json:"timestamp"`
	Type        string              `json:"type"`
	Text        *webhookText        `json:"text,omitempty"`
	Interactive *webhookInteractive `json:"interactive,omitempty"`
}

type webhookText struct {
	Body string `json:"body"`
}

type webhookInteractive struct {
	Type        string        `json:"type"`
	ButtonReply *webhookReply `json:"button_reply,omitempty"`
	ListReply   *webhookReply `json:"list_reply,omitempty"`
}

type webhookReply struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type webhookStatus struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}
