package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	backoff "github.com/cenkalti/backoff/v4"

	"github.com/exec-assistant-team/exec-assistant/pkg/config"
)

// Generator is the text-generation interface consumed by the assistant
// core: fixed system instructions plus a single user turn, one awaited
// result.
type Generator interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// GroqClient is a minimal client for Groq chat-completion calls
type GroqClient struct {
	apiKey      string
	baseURL     string
	model       string
	maxTokens   int
	temperature float64
	client      *http.Client
}

// NewGroqClient creates a Groq client using values from the provided config.
// Pass a nil config to fall back to environment variables.
func NewGroqClient(cfg *config.LLMConfig) *GroqClient {
	var apiKey string
	if cfg != nil {
		apiKey = cfg.APIKey
	}
	if apiKey == "" {
		apiKey = os.Getenv("GROQ_API_KEY")
	}

	var base string
	if cfg != nil && cfg.BaseURL != "" {
		base = cfg.BaseURL
	} else {
		base = os.Getenv("GROQ_API_URL")
		if base == "" {
			base = "https://api.groq.com"
		}
	}

	model := "llama-3.1-70b-versatile"
	maxTokens := 1024
	temperature := 0.4
	if cfg != nil {
		if cfg.Model != "" {
			model = cfg.Model
		}
		if cfg.MaxTokens > 0 {
			maxTokens = cfg.MaxTokens
		}
		if cfg.Temperature > 0 {
			temperature = cfg.Temperature
		}
	}

	return &GroqClient{
		apiKey:      apiKey,
		baseURL:     base,
		model:       model,
		maxTokens:   maxTokens,
		temperature: temperature,
		client:      &http.Client{Timeout: 60 * time.Second},
	}
}

// ChatRequest is the shape for chat completion requests
type ChatRequest struct {
	Model       string      `json:"model,omitempty"`
	Messages    interface{} `json:"messages,omitempty"`
	Temperature float64     `json:"temperature,omitempty"`
	MaxTokens   int         `json:"max_tokens,omitempty"`
}

// ChatResponse is a minimal response shape
type ChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Generate sends one system+user message pair and returns the assistant
// content. Transient HTTP failures (429, 5xx) are retried with exponential
// backoff; request shaping errors are not.
func (g *GroqClient) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	reqBody := ChatRequest{
		Model: g.model,
		Messages: []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": userPrompt},
		},
		Temperature: g.temperature,
		MaxTokens:   g.maxTokens,
	}

	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	var content string
	callFn := func() error {
		endpoint := g.baseURL + "/openai/v1/chat/completions"
		req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(b))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Authorization", "Bearer "+g.apiKey)
		req.Header.Set("Content-Type", "application/json")

		resp, err := g.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			return fmt.Errorf("groq returned status %d", resp.StatusCode)
		}
		if resp.StatusCode >= 400 {
			return backoff.Permanent(fmt.Errorf("groq returned status %d", resp.StatusCode))
		}

		var cr ChatResponse
		if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
			return backoff.Permanent(err)
		}
		if len(cr.Choices) == 0 {
			return backoff.Permanent(fmt.Errorf("empty response from groq"))
		}
		content = cr.Choices[0].Message.Content
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 2 * time.Second
	bo.MaxInterval = 10 * time.Second
	bo.MaxElapsedTime = 30 * time.Second

	if err := backoff.Retry(callFn, backoff.WithContext(bo, ctx)); err != nil {
		return "", err
	}
	return content, nil
}
