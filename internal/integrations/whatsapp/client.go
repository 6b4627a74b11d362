package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const messagingProduct = "whatsapp"

// Client клиент WhatsApp Cloud API для отправки сообщений
type Client struct {
	baseURL       string
	phoneNumberID string
	accessToken   string
	httpClient    *http.Client
	log           Logger
}

// NewClient создает новый экземпляр клиента WhatsApp Cloud API
func NewClient(baseURL, phoneNumberID, accessToken string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:       baseURL,
		phoneNumberID: phoneNumberID,
		accessToken:   accessToken,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SendText отправляет текстовое сообщение
func (c *Client) SendText(ctx context.Context, to, body string) error {
	payload := messagePayload{
		MessagingProduct: messagingProduct,
		RecipientType:    "individual",
		To:               to,
		Type:             "text",
		Text:             &textPayload{Body: body},
	}

	return c.send(ctx, payload)
}

// SendButtons отправляет сообщение с кнопками быстрого ответа (максимум 3)
func (c *Client) SendButtons(ctx context.Context, to, body string, buttons []Button) error {
	if len(buttons) > MaxButtons {
		return fmt.Errorf("%w: got %d", ErrTooManyButtons, len(buttons))
	}

	action := interactiveAction{}
	for _, b := range buttons {
		action.Buttons = append(action.Buttons, buttonPayload{
			Type:  "reply",
			Reply: buttonReplyPayload{ID: b.ID, Title: b.Title},
		})
	}

	payload := messagePayload{
		MessagingProduct: messagingProduct,
		RecipientType:    "individual",
		To:               to,
		Type:             "interactive",
		Interactive: &interactivePayload{
			Type:   "button",
			Body:   interactiveBody{Text: body},
			Action: action,
		},
	}

	return c.send(ctx, payload)
}

// SendList отправляет интерактивный список (максимум 10 строк суммарно по секциям)
func (c *Client) SendList(ctx context.Context, to, header, body, buttonText string, sections []ListSection) error {
	total := 0
	for _, s := range sections {
		total += len(s.Rows)
	}
	if total > MaxListRows {
		return fmt.Errorf("%w: got %d", ErrTooManyRows, total)
	}

	action := interactiveAction{Button: buttonText}
	for _, s := range sections {
		section := sectionPayload{Title: s.Title}
		for _, row := range s.Rows {
			section.Rows = append(section.Rows, rowPayload{
				ID:          row.ID,
				Title:       row.Title,
				Description: row.Description,
			})
		}
		action.Sections = append(action.Sections, section)
	}

	interactive := &interactivePayload{
		Type:   "list",
		Body:   interactiveBody{Text: body},
		Action: action,
	}
	if header != "" {
		interactive.Header = &interactiveHeader{Type: "text", Text: header}
	}

	payload := messagePayload{
		MessagingProduct: messagingProduct,
		RecipientType:    "individual",
		To:               to,
		Type:             "interactive",
		Interactive:      interactive,
	}

	return c.send(ctx, payload)
}

// SendLocation отправляет геолокацию салона
func (c *Client) SendLocation(ctx context.Context, to string, latitude, longitude float64, name, address string) error {
	payload := messagePayload{
		MessagingProduct: messagingProduct,
		RecipientType:    "individual",
		To:               to,
		Type:             "location",
		Location: &locationPayload{
			Latitude:  latitude,
			Longitude: longitude,
			Name:      name,
			Address:   address,
		},
	}

	return c.send(ctx, payload)
}

// MarkRead помечает входящее сообщение прочитанным (две галочки у клиента)
func (c *Client) MarkRead(ctx context.Context, messageID string) error {
	payload := messagePayload{
		MessagingProduct: messagingProduct,
		Status:           "read",
		MessageID:        messageID,
	}

	return c.send(ctx, payload)
}

func (c *Client) send(ctx context.Context, payload messagePayload) error {
	url := fmt.Sprintf("%s/%s/messages", c.baseURL, c.phoneNumberID)

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal payload: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		c.log.Debug("WhatsApp message sent, type=%s to=%s", payload.Type, payload.To)
		return nil
	}

	respBody, _ := io.ReadAll(resp.Body)

	var apiErr apiErrorResponse
	if err := json.Unmarshal(respBody, &apiErr); err == nil && apiErr.Error.Message != "" {
		return fmt.Errorf("%w: status %d, code %d: %s", ErrAPIResponse, resp.StatusCode, apiErr.Error.Code, apiErr.Error.Message)
	}

	return fmt.Errorf("%w: status %d: %s", ErrAPIResponse, resp.StatusCode, string(respBody))
}
