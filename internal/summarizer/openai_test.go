package summarizer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestOpenAICompleter_Complete(t *testing.T) {
	var got struct {
		Model       string  `json:"model"`
		Temperature float64 `json:"temperature"`
		Messages    []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	var auth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		auth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&got)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1700000000,
			"model": "gpt-3.5-turbo",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "Resumen breve."}, "finish_reason": "stop"}]
		}`))
	}))
	defer server.Close()

	c := NewOpenAICompleter("sk-test", server.URL, "", DefaultTemperature)
	out, err := c.Complete(context.Background(), "hola")
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}

	if out != "Resumen breve." {
		t.Errorf("out = %q", out)
	}
	if auth != "Bearer sk-test" {
		t.Errorf("authorization = %q", auth)
	}
	if got.Model != DefaultChatModel {
		t.Errorf("model = %q, want %q", got.Model, DefaultChatModel)
	}
	if got.Temperature < 0.69 || got.Temperature > 0.71 {
		t.Errorf("temperature = %v, want 0.7", got.Temperature)
	}
	if len(got.Messages) != 1 || got.Messages[0].Role != "user" || got.Messages[0].Content != "hola" {
		t.Errorf("messages = %+v", got.Messages)
	}
}

func TestOpenAICompleter_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": {"message": "quota exceeded", "type": "rate_limit"}}`))
	}))
	defer server.Close()

	s := New(NewOpenAICompleter("sk-test", server.URL, "", DefaultTemperature), 0)
	brief := s.Brief(context.Background(), "u", "t", richContent)

	if !strings.HasPrefix(brief, "[ERROR al generar brief: ") {
		t.Errorf("brief = %q, want error placeholder", brief)
	}
	if !strings.Contains(brief, "quota exceeded") {
		t.Errorf("brief should embed API message, got %q", brief)
	}
}

func TestOpenAICompleter_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "x", "object": "chat.completion", "choices": []}`))
	}))
	defer server.Close()

	_, err := NewOpenAICompleter("sk-test", server.URL, "", DefaultTemperature).Complete(context.Background(), "hola")
	if err == nil {
		t.Fatal("expected error for empty choices")
	}
}

func TestOpenAIFactory_RequiresKey(t *testing.T) {
	if _, err := OpenAIFactory(OpenRouterBaseURL, "", DefaultTemperature)(context.Background(), ""); err == nil {
		t.Error("expected error for empty key")
	}

	c, err := OpenAIFactory(OpenRouterBaseURL, "", DefaultTemperature)(context.Background(), "sk-test")
	if err != nil || c == nil {
		t.Fatalf("factory failed: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}
