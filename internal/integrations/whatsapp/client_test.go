package whatsapp

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type capturedRequest struct {
	path    string
	auth    string
	payload map[string]interface{}
}

func newTestClient(t *testing.T, status int, response string) (*Client, *capturedRequest) {
	t.Helper()

	captured := &capturedRequest{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.path = r.URL.Path
		captured.auth = r.Header.Get("Authorization")

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &captured.payload))

		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)

	return NewClient(srv.URL, "123456", "test-token", 5*time.Second, noopLogger{}), captured
}

func TestSendText(t *testing.T) {
	client, captured := newTestClient(t, http.StatusOK, `{"messages": [{"id": "wamid.out"}]}`)

	err := client.SendText(context.Background(), "905551112233", "Merhaba!")
	require.NoError(t, err)

	assert.Equal(t, "/123456/messages", captured.path)
	assert.Equal(t, "Bearer test-token", captured.auth)
	assert.Equal(t, "whatsapp", captured.payload["messaging_product"])
	assert.Equal(t, "905551112233", captured.payload["to"])
	assert.Equal(t, "text", captured.payload["type"])

	text := captured.payload["text"].(map[string]interface{})
	assert.Equal(t, "Merhaba!", text["body"])
}

func TestSendButtons(t *testing.T) {
	client, captured := newTestClient(t, http.StatusOK, `{}`)

	err := client.SendButtons(context.Background(), "905551112233", "Onaylıyor musunuz?", []Button{
		{ID: "confirm_yes", Title: "Evet"},
		{ID: "confirm_no", Title: "Hayır"},
	})
	require.NoError(t, err)

	interactive := captured.payload["interactive"].(map[string]interface{})
	assert.Equal(t, "button", interactive["type"])

	action := interactive["action"].(map[string]interface{})
	buttons := action["buttons"].([]interface{})
	require.Len(t, buttons, 2)

	first := buttons[0].(map[string]interface{})
	assert.Equal(t, "reply", first["type"])
	assert.Equal(t, "confirm_yes", first["reply"].(map[string]interface{})["id"])
}

func TestSendButtons_TooMany(t *testing.T) {
	client, _ := newTestClient(t, http.StatusOK, `{}`)

	buttons := make([]Button, MaxButtons+1)
	for i := range buttons {
		buttons[i] = Button{ID: "b", Title: "B"}
	}

	err := client.SendButtons(context.Background(), "905551112233", "body", buttons)
	assert.ErrorIs(t, err, ErrTooManyButtons)
}

func TestSendList(t *testing.T) {
	client, captured := newTestClient(t, http.StatusOK, `{}`)

	err := client.SendList(context.Background(), "905551112233", "", "Saat seçin", "Saat Seç", []ListSection{
		{Rows: []ListRow{
			{ID: "time_10:00", Title: "10:00"},
			{ID: "time_11:00", Title: "11:00"},
		}},
	})
	require.NoError(t, err)

	interactive := captured.payload["interactive"].(map[string]interface{})
	assert.Equal(t, "list", interactive["type"])
	// Пустой заголовок в payload не попадает
	assert.NotContains(t, interactive, "header")

	action := interactive["action"].(map[string]interface{})
	assert.Equal(t, "Saat Seç", action["button"])

	sections := action["sections"].([]interface{})
	require.Len(t, sections, 1)
	rows := sections[0].(map[string]interface{})["rows"].([]interface{})
	require.Len(t, rows, 2)
}

func TestSendList_TooManyRows(t *testing.T) {
	client, _ := newTestClient(t, http.StatusOK, `{}`)

	rows := make([]ListRow, MaxListRows+1)
	for i := range rows {
		rows[i] = ListRow{ID: "r", Title: "R"}
	}

	err := client.SendList(context.Background(), "905551112233", "", "body", "btn", []ListSection{{Rows: rows}})
	assert.ErrorIs(t, err, ErrTooManyRows)
}

func TestMarkRead(t *testing.T) {
	client, captured := newTestClient(t, http.StatusOK, `{}`)

	err := client.MarkRead(context.Background(), "wamid.inbound")
	require.NoError(t, err)

	assert.Equal(t, "read", captured.payload["status"])
	assert.Equal(t, "wamid.inbound", captured.payload["message_id"])
}

func TestSend_APIError(t *testing.T) {
	client, _ := newTestClient(t, http.StatusUnauthorized, `{
		"error": {"message": "Invalid OAuth access token", "type": "OAuthException", "code": 190}
	}`)

	err := client.SendText(context.Background(), "905551112233", "Merhaba!")
	assert.ErrorIs(t, err, ErrAPIResponse)
}
