package telegram_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"darkwave-task-manager/pkg/telegram"
)

func TestSendMessageWithMode(t *testing.T) {
	var got telegram.SendMessageRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/sendMessage" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	bot := telegram.NewBot("test-token")
	bot.SetAPIURL(srv.URL)

	if err := bot.SendMessageWithMode(42, "*hello*", "Markdown"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ChatID != 42 || got.Text != "*hello*" || got.ParseMode != "Markdown" {
		t.Errorf("unexpected payload: %+v", got)
	}
}

func TestSendMessageAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"ok":false,"description":"chat not found"}`))
	}))
	defer srv.Close()

	bot := telegram.NewBot("test-token")
	bot.SetAPIURL(srv.URL)

	if err := bot.SendMessage(1, "hi"); err == nil {
		t.Fatal("expected error on non-200 response")
	}
}

func TestSetWebhook(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/setWebhook" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	bot := telegram.NewBot("test-token")
	bot.SetAPIURL(srv.URL)

	if err := bot.SetWebhook("https://example.com/webhook/telegram"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
