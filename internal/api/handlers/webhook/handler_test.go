package webhook

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type handledText struct {
	from       string
	text       string
	senderName *string
}

type fakeConversation struct {
	texts   []handledText
	replies []string
}

func (f *fakeConversation) HandleTextMessage(_ context.Context, from, text string, senderName *string) error {
	f.texts = append(f.texts, handledText{from: from, text: text, senderName: senderName})
	return nil
}

func (f *fakeConversation) HandleInteractiveReply(_ context.Context, _, replyID string) error {
	f.replies = append(f.replies, replyID)
	return nil
}

type fakeReader struct {
	marked []string
	err    error
}

func (f *fakeReader) MarkRead(_ context.Context, messageID string) error {
	if f.err != nil {
		return f.err
	}
	f.marked = append(f.marked, messageID)
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestHandler() (*Handler, *fakeConversation, *fakeReader) {
	conv := &fakeConversation{}
	reader := &fakeReader{}
	return NewHandler(conv, reader, "secret-token", noopLogger{}), conv, reader
}

func TestHandleVerify(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "valid handshake returns challenge",
			query:      "hub.mode=subscribe&hub.verify_token=secret-token&hub.challenge=12345",
			wantStatus: http.StatusOK,
			wantBody:   "12345",
		},
		{
			name:       "wrong token",
			query:      "hub.mode=subscribe&hub.verify_token=wrong&hub.challenge=12345",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "wrong mode",
			query:      "hub.mode=unsubscribe&hub.verify_token=secret-token&hub.challenge=12345",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "missing params",
			query:      "",
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _, _ := newTestHandler()

			req := httptest.NewRequest(http.MethodGet, "/webhook?"+tt.query, nil)
			rec := httptest.NewRecorder()

			h.HandleVerify(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func postEvent(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	h.HandleEvent(rec, req)
	return rec
}

func TestHandleEvent_TextMessage(t *testing.T) {
	h, conv, reader := newTestHandler()

	rec := postEvent(t, h, `{
		"object": "whatsapp_business_account",
		"entry": [{
			"id": "entry-1",
			"changes": [{
				"field": "messages",
				"value": {
					"messaging_product": "whatsapp",
					"contacts": [{"profile": {"name": "Zeynep"}, "wa_id": "905551112233"}],
					"messages": [{
						"from": "905551112233",
						"id": "wamid.1",
						"type": "text",
						"text": {"body": "randevu"}
					}]
				}
			}]
		}]
	}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"wamid.1"}, reader.marked)

	require.Len(t, conv.texts, 1)
	assert.Equal(t, "905551112233", conv.texts[0].from)
	assert.Equal(t, "randevu", conv.texts[0].text)
	require.NotNil(t, conv.texts[0].senderName)
	assert.Equal(t, "Zeynep", *conv.texts[0].senderName)
}

func TestHandleEvent_ListReply(t *testing.T) {
	h, conv, _ := newTestHandler()

	rec := postEvent(t, h, `{
		"object": "whatsapp_business_account",
		"entry": [{
			"changes": [{
				"field": "messages",
				"value": {
					"messages": [{
						"from": "905551112233",
						"id": "wamid.2",
						"type": "interactive",
						"interactive": {
							"type": "list_reply",
							"list_reply": {"id": "worker_1", "title": "Ayşe"}
						}
					}]
				}
			}]
		}]
	}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"worker_1"}, conv.replies)
}

func TestHandleEvent_ButtonReply(t *testing.T) {
	h, conv, _ := newTestHandler()

	rec := postEvent(t, h, `{
		"object": "whatsapp_business_account",
		"entry": [{
			"changes": [{
				"field": "messages",
				"value": {
					"messages": [{
						"from": "905551112233",
						"id": "wamid.3",
						"type": "interactive",
						"interactive": {
							"type": "button_reply",
							"button_reply": {"id": "confirm_yes", "title": "Evet"}
						}
					}]
				}
			}]
		}]
	}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"confirm_yes"}, conv.replies)
}

func TestHandleEvent_AlwaysAcks(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "broken json", body: `{not json`},
		{name: "unexpected object", body: `{"object": "instagram", "entry": []}`},
		{name: "status-only delivery", body: `{
			"object": "whatsapp_business_account",
			"entry": [{
				"changes": [{
					"field": "messages",
					"value": {"statuses": [{"id": "wamid.4", "status": "delivered"}]}
				}]
			}]
		}`},
		{name: "unrelated change field", body: `{
			"object": "whatsapp_business_account",
			"entry": [{"changes": [{"field": "account_update", "value": {}}]}]
		}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, conv, _ := newTestHandler()

			rec := postEvent(t, h, tt.body)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Empty(t, conv.texts)
			assert.Empty(t, conv.replies)
		})
	}
}

func TestHandleEvent_MarkReadFailureDoesNotBlockDispatch(t *testing.T) {
	h, conv, reader := newTestHandler()
	reader.err = assert.AnError

	rec := postEvent(t, h, `{
		"object": "whatsapp_business_account",
		"entry": [{
			"changes": [{
				"field": "messages",
				"value": {
					"messages": [{
						"from": "905551112233",
						"id": "wamid.5",
						"type": "text",
						"text": {"body": "adres"}
					}]
				}
			}]
		}]
	}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, conv.texts, 1)
	assert.Equal(t, "adres", conv.texts[0].text)
}

func TestHandleEvent_MissingSenderName(t *testing.T) {
	h, conv, _ := newTestHandler()

	postEvent(t, h, `{
		"object": "whatsapp_business_account",
		"entry": [{
			"changes": [{
				"field": "messages",
				"value": {
					"contacts": [{"profile": {"name": "Zeynep"}, "wa_id": "905559998877"}],
					"messages": [{
						"from": "905551112233",
						"id": "wamid.6",
						"type": "text",
						"text": {"body": "merhaba"}
					}]
				}
			}]
		}]
	}`)

	require.Len(t, conv.texts, 1)
	// Контакт с другим wa_id не считается отправителем
	assert.Nil(t, conv.texts[0].senderName)
}
