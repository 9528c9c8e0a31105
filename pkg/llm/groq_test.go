package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/exec-assistant-team/exec-assistant/pkg/config"
)

func TestGenerate_Success(t *testing.T) {
	// Mock Groq server
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST got %s", r.Method)
		}
		if r.URL.Path != "/openai/v1/chat/completions" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Fatalf("unexpected auth header %q", got)
		}
		var payload ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		msgs, ok := payload.Messages.([]interface{})
		if !ok || len(msgs) != 2 {
			t.Fatalf("expected system+user messages, got %v", payload.Messages)
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "a short brief"}},
			},
		})
	}))
	defer ts.Close()

	client := NewGroqClient(&config.LLMConfig{APIKey: "test-key", BaseURL: ts.URL})

	got, err := client.Generate(context.Background(), "be brief", "hello")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if got != "a short brief" {
		t.Fatalf("unexpected content %q", got)
	}
}

func TestGenerate_RetriesOn5xx(t *testing.T) {
	attempts := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "recovered"}},
			},
		})
	}))
	defer ts.Close()

	client := NewGroqClient(&config.LLMConfig{APIKey: "test-key", BaseURL: ts.URL})

	got, err := client.Generate(context.Background(), "sys", "user")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if got != "recovered" {
		t.Fatalf("unexpected content %q", got)
	}
	if attempts != 2 {
		t.Fatalf("expected one retry, got %d attempts", attempts)
	}
}

func TestGenerate_NoRetryOn4xx(t *testing.T) {
	attempts := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	client := NewGroqClient(&config.LLMConfig{APIKey: "bad-key", BaseURL: ts.URL})

	if _, err := client.Generate(context.Background(), "sys", "user"); err == nil {
		t.Fatalf("expected error on 401")
	}
	if attempts != 1 {
		t.Fatalf("4xx must not retry, got %d attempts", attempts)
	}
}

func TestGenerate_EmptyChoices(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"choices": []interface{}{}})
	}))
	defer ts.Close()

	client := NewGroqClient(&config.LLMConfig{APIKey: "test-key", BaseURL: ts.URL})

	if _, err := client.Generate(context.Background(), "sys", "user"); err == nil {
		t.Fatalf("expected error for empty choices")
	}
}
