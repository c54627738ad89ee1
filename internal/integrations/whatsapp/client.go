package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для передачи диалога в WhatsApp.
// Поддерживает два канала:
//   - отправка текста через Cloud API (если настроен access token);
//   - универсальная wa.me ссылка с предзаполненным текстом, которую клиентское
//     приложение открывает само.
type Client struct {
	apiURL        string
	accessToken   string
	phoneNumberID string
	httpClient    *http.Client
	log           Logger
}

// NewClient создает новый экземпляр WhatsApp клиента
func NewClient(apiURL, accessToken, phoneNumberID string, timeout time.Duration, log Logger) *Client {
	return &Client{
		apiURL:        apiURL,
		accessToken:   accessToken,
		phoneNumberID: phoneNumberID,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// IsConfigured возвращает true, если отправка через Cloud API доступна
func (c *Client) IsConfigured() bool {
	return c.accessToken != "" && c.phoneNumberID != ""
}

// ChatLink строит универсальную wa.me ссылку на чат с предзаполненным текстом.
// Работает без Cloud API и служит fallback-каналом передачи диалога.
func (c *Client) ChatLink(phone, text string) string {
	digits := sanitizePhone(phone)
	return fmt.Sprintf("https://wa.me/%s?text=%s", digits, url.QueryEscape(text))
}

// SendText отправляет текстовое сообщение через Cloud API
func (c *Client) SendText(ctx context.Context, to, body string) error {
	if !c.IsConfigured() {
		return ErrNotConfigured
	}

	endpoint := fmt.Sprintf("%s/%s/messages", c.apiURL, c.phoneNumberID)

	message := TextMessage{
		MessagingProduct: "whatsapp",
		RecipientType:    "individual",
		To:               sanitizePhone(to),
		Type:             "text",
	}
	message.Text.Body = body

	payload, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal message: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response: %v", ErrInvalidResponse, err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	var sendResp SendResponse
	if err := json.Unmarshal(respBody, &sendResp); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if len(sendResp.Messages) == 0 {
		return fmt.Errorf("%w: no message ID in response", ErrInvalidResponse)
	}

	c.log.Info("SendText: message %s delivered to Cloud API", sendResp.Messages[0].ID)
	return nil
}

// sanitizePhone оставляет в номере только цифры (формат wa.me и Cloud API)
func sanitizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
