package llm

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

const completionReply = `{"choices":[{"message":{"role":"assistant","content":"ok"}}]}`

func newCompletionServer(t *testing.T, captured *ChatCompletionRequest, headers *http.Header) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if headers != nil {
			*headers = r.Header.Clone()
		}
		if captured != nil {
			if err := json.NewDecoder(r.Body).Decode(captured); err != nil {
				t.Errorf("failed to decode completion request: %v", err)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionReply))
	}))
}

func TestCompleteAppliesConfiguredDefaults(t *testing.T) {
	var captured ChatCompletionRequest
	server := newCompletionServer(t, &captured, nil)
	defer server.Close()

	client := &Client{
		HTTPClient:  server.Client(),
		BaseURL:     server.URL,
		APIKey:      "test-key",
		Model:       "test-model",
		Provider:    "openai",
		Temperature: 0.3,
		MaxTokens:   2048,
	}

	reply, err := client.Complete("system", "user", nil, nil)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if reply != "ok" {
		t.Errorf("unexpected reply %q", reply)
	}
	if captured.Temperature == nil || *captured.Temperature != 0.3 {
		t.Errorf("expected configured temperature 0.3, got %v", captured.Temperature)
	}
	if captured.MaxTokens == nil || *captured.MaxTokens != 2048 {
		t.Errorf("expected configured max_tokens 2048, got %v", captured.MaxTokens)
	}
}

func TestCompleteExplicitSamplingWins(t *testing.T) {
	var captured ChatCompletionRequest
	server := newCompletionServer(t, &captured, nil)
	defer server.Close()

	client := &Client{
		HTTPClient:  server.Client(),
		BaseURL:     server.URL,
		APIKey:      "test-key",
		Model:       "test-model",
		Temperature: 0.3,
		MaxTokens:   2048,
	}

	temperature := 0.9
	maxTokens := 64
	if _, err := client.Complete("system", "user", &temperature, &maxTokens); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if captured.Temperature == nil || *captured.Temperature != 0.9 {
		t.Errorf("expected explicit temperature 0.9, got %v", captured.Temperature)
	}
	if captured.MaxTokens == nil || *captured.MaxTokens != 64 {
		t.Errorf("expected explicit max_tokens 64, got %v", captured.MaxTokens)
	}
}

func TestCompleteProviderAuthHeaders(t *testing.T) {
	tests := []struct {
		name       string
		provider   string
		apiKey     string
		authHeader string
	}{
		{"openai uses bearer auth", "openai", "", "Bearer test-key"},
		{"azure uses api-key header", "azure", "test-key", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var headers http.Header
			server := newCompletionServer(t, nil, &headers)
			defer server.Close()

			client := &Client{
				HTTPClient: server.Client(),
				BaseURL:    server.URL,
				APIKey:     "test-key",
				Model:      "test-model",
				Provider:   tc.provider,
			}

			if _, err := client.Complete("system", "user", nil, nil); err != nil {
				t.Fatalf("Complete: %v", err)
			}
			if got := headers.Get("api-key"); got != tc.apiKey {
				t.Errorf("api-key header = %q, expected %q", got, tc.apiKey)
			}
			if got := headers.Get("Authorization"); got != tc.authHeader {
				t.Errorf("Authorization header = %q, expected %q", got, tc.authHeader)
			}
		})
	}
}
