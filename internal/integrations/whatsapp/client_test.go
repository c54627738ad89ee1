package whatsapp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestClient_IsConfigured(t *testing.T) {
	configured := NewClient("https://graph.facebook.com/v18.0", "token", "12345", time.Second, nopLogger{})
	assert.True(t, configured.IsConfigured())

	linkOnly := NewClient("https://graph.facebook.com/v18.0", "", "", time.Second, nopLogger{})
	assert.False(t, linkOnly.IsConfigured())
}

func TestClient_ChatLink(t *testing.T) {
	c := NewClient("", "", "", time.Second, nopLogger{})

	link := c.ChatLink("+7 (999) 000-11-22", "Здравствуйте! Хочу отменить запись")

	// В ссылке только цифры номера и URL-экранированный текст
	assert.Contains(t, link, "https://wa.me/79990001122?text=")
	assert.NotContains(t, link, " ")
	assert.NotContains(t, link, "+")
}

func TestClient_SendText(t *testing.T) {
	var gotAuth string
	var gotBody TextMessage

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(SendResponse{
			Messages: []struct {
				ID string `json:"id"`
			}{{ID: "wamid.test"}},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "token", "12345", time.Second, nopLogger{})

	err := c.SendText(context.Background(), "+7 999 000-11-22", "текст сообщения")
	require.NoError(t, err)

	assert.Equal(t, "Bearer token", gotAuth)
	assert.Equal(t, "79990001122", gotBody.To)
	assert.Equal(t, "текст сообщения", gotBody.Text.Body)
}

func TestClient_SendText_NotConfigured(t *testing.T) {
	c := NewClient("https://graph.facebook.com/v18.0", "", "", time.Second, nopLogger{})

	err := c.SendText(context.Background(), "+79990001122", "текст")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestClient_SendText_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "token", "12345", time.Second, nopLogger{})

	err := c.SendText(context.Background(), "+79990001122", "текст")
	assert.ErrorIs(t, err, ErrInvalidResponse)
}
