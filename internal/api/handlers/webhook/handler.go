package webhook

import (
	"net/http"

	"github.com/m04kA/SMC-HairdresserBot/internal/api/handlers"
)

type Handler struct {
	conversation ConversationService
	reader       MessageReader
	verifyToken  string
	logger       Logger
}

func NewHandler(conversation ConversationService, reader MessageReader, verifyToken string, logger Logger) *Handler {
	return &Handler{
		conversation: conversation,
		reader:       reader,
		verifyToken:  verifyToken,
		logger:       logger,
	}
}

// HandleVerify GET /webhook
// Рукопожатие Meta при подписке на webhook: сверяем verify token и возвращаем challenge
func (h *Handler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	mode := query.Get("hub.mode")
	token := query.Get("hub.verify_token")
	challenge := query.Get("hub.challenge")

	if mode == "subscribe" && token == h.verifyToken {
		h.logger.Info("GET /webhook - verification succeeded")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(challenge))
		return
	}

	h.logger.Warn("GET /webhook - verification failed, mode=%q", mode)
	http.Error(w, "Forbidden: Invalid verify token", http.StatusForbidden)
}

// HandleEvent POST /webhook
// Всегда отвечает 200: иначе Meta начинает ретраить доставку, и пользователь
// получает одно и то же сообщение несколько раз
func (h *Handler) HandleEvent(w http.ResponseWriter, r *http.Request) {
	var payload webhookPayload
	if err := handlers.DecodeJSON(r, &payload); err != nil {
		h.logger.Warn("POST /webhook - invalid payload: %v", err)
		w.WriteHeader(http.StatusOK)
		return
	}

	if payload.Object != "whatsapp_business_account" {
		h.logger.Warn("POST /webhook - unexpected object %q", payload.Object)
		w.WriteHeader(http.StatusOK)
		return
	}

	ctx := r.Context()

	for _, entry := range payload.Entry {
		for _, change := range entry.Changes {
			if change.Field != "messages" {
				continue
			}

			for _, msg := range change.Value.Messages {
				if err := h.reader.MarkRead(ctx, msg.ID); err != nil {
					h.logger.Warn("POST /webhook - failed to mark message %s as read: %v", msg.ID, err)
				}

				senderName := senderNameFor(change.Value.Contacts, msg.From)

				switch {
				case msg.Type == "text" && msg.Text != nil:
					if err := h.conversation.HandleTextMessage(ctx, msg.From, msg.Text.Body, senderName); err != nil {
						h.logger.Error("POST /webhook - failed to handle text message from %s: %v", msg.From, err)
					}

				case msg.Type == "interactive" && msg.Interactive != nil:
					reply := msg.Interactive.ButtonReply
					if reply == nil {
						reply = msg.Interactive.ListReply
					}
					if reply == nil {
						continue
					}
					if err := h.conversation.HandleInteractiveReply(ctx, msg.From, reply.ID); err != nil {
						h.logger.Error("POST /webhook - failed to handle interactive reply from %s: %v", msg.From, err)
					}
				}
			}

			for _, status := range change.Value.Statuses {
				h.logger.Info("POST /webhook - message status update: %s - %s", status.ID, status.Status)
			}
		}
	}

	w.WriteHeader(http.StatusOK)
}

func senderNameFor(contacts []webhookContact, waID string) *string {
	for _, c := range contacts {
		if c.WaID == waID && c.Profile.Name != "" {
			name := c.Profile.Name
			return &name
		}
	}
	return nil
}
