package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"talent-service/internal/config"
)

// Client talks to an OpenAI-compatible chat-completion endpoint. Temperature
// and MaxTokens are the configured defaults applied when a caller passes nil.
type Client struct {
	HTTPClient  *http.Client
	BaseURL     string
	APIKey      string
	Model       string
	Provider    string
	Temperature float64
	MaxTokens   int
}

var llmClient *Client

func InitLLMClient() error {
	cfg := config.ServiceConfig.LLM
	llmClient = &Client{
		HTTPClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		BaseURL:     cfg.BaseURL,
		APIKey:      cfg.APIKey,
		Model:       cfg.Model,
		Provider:    cfg.Provider,
		Temperature: cfg.Temperature,
		MaxTokens:   cfg.MaxTokens,
	}
	return nil
}

func GetLLMClient() *Client {
	return llmClient
}

type ChatCompletionRequest struct {
	Model       string                  `json:"model"`
	Messages    []ChatCompletionMessage `json:"messages"`
	Stream      bool                    `json:"stream"`
	Temperature *float64                `json:"temperature,omitempty"`
	MaxTokens   *int                    `json:"max_tokens,omitempty"`
}

type ChatCompletionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionResponse struct {
	Choices []struct {
		Message ChatCompletionMessage `json:"message"`
	} `json:"choices"`
}

// Complete sends a system+user prompt pair and returns the assistant text.
// Callers are expected to treat errors as a signal to fall back, never to
// fail the request.
func (l *Client) Complete(systemPrompt, userPrompt string, temperature *float64, maxTokens *int) (string, error) {
	if l.APIKey == "" {
		return "", fmt.Errorf("LLM API key is not configured")
	}

	if temperature == nil {
		temperature = &l.Temperature
	}
	if maxTokens == nil && l.MaxTokens > 0 {
		maxTokens = &l.MaxTokens
	}

	request := ChatCompletionRequest{
		Model: l.Model,
		Messages: []ChatCompletionMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Stream:      false,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}

	body, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("failed to serialize LLM request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, l.BaseURL+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("failed to create LLM request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	// Azure OpenAI deployments authenticate with an api-key header instead of
	// a bearer token
	if l.Provider == "azure" {
		req.Header.Set("api-key", l.APIKey)
	} else {
		req.Header.Set("Authorization", "Bearer "+l.APIKey)
	}

	resp, err := l.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send LLM request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read LLM response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("LLM API returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var completion ChatCompletionResponse
	if err := json.Unmarshal(respBody, &completion); err != nil {
		return "", fmt.Errorf("failed to decode LLM response: %w", err)
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("LLM returned no choices")
	}

	log.Printf("LLM completion received (%d chars)", len(completion.Choices[0].Message.Content))
	return completion.Choices[0].Message.Content, nil
}

// StripJSONFences removes markdown code fences some models wrap around JSON
// output, returning the innermost JSON payload.
func StripJSONFences(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "```") {
		trimmed = strings.TrimPrefix(trimmed, "```json")
		trimmed = strings.TrimPrefix(trimmed, "```")
		if idx := strings.LastIndex(trimmed, "```"); idx >= 0 {
			trimmed = trimmed[:idx]
		}
	}
	return strings.TrimSpace(trimmed)
}
