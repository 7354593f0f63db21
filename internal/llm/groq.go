// Package llm - groq.go implements the Client interface against Groq's
// OpenAI-compatible chat completions endpoint.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const groqBaseURL = "https://api.groq.com/openai/v1"

// GroqClient implements Client for the Groq API
type GroqClient struct {
	apiKey     string
	config     *Config
	baseURL    string
	httpClient *http.Client
}

// NewGroqClient creates a new Groq client
func NewGroqClient(config *Config, apiKey string) (*GroqClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if config == nil {
		config = DefaultGroqConfig()
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = groqBaseURL
	}

	return &GroqClient{
		apiKey:     apiKey,
		config:     config,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float32       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error,omitempty"`
}

// GenerateContent generates text content from a prompt
func (c *GroqClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	reqBody := chatRequest{
		Model: c.config.Model,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
		Temperature: c.config.Temperature,
		MaxTokens:   c.config.MaxTokens,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if err := classifyAPIError(resp.StatusCode, bodyBytes); err != nil {
		return "", err
	}

	var chatResp chatResponse
	if err := json.Unmarshal(bodyBytes, &chatResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if chatResp.Error != nil {
		return "", fmt.Errorf("API error: %s", chatResp.Error.Message)
	}
	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned from API")
	}

	return strings.TrimSpace(chatResp.Choices[0].Message.Content), nil
}

// Close releases resources held by the client
func (c *GroqClient) Close() error {
	return nil
}

// classifyAPIError turns a non-success HTTP response into a typed
// error. Quota rejections become *RateLimitError so callers can read
// the suggested wait.
func classifyAPIError(statusCode int, body []byte) error {
	if statusCode == http.StatusOK {
		return nil
	}

	message := string(body)
	var errResp chatResponse
	if json.Unmarshal(body, &errResp) == nil && errResp.Error != nil {
		message = errResp.Error.Message
	}

	if statusCode == http.StatusTooManyRequests || strings.Contains(strings.ToLower(message), "rate_limit") {
		return &RateLimitError{
			Provider:   ProviderGroq,
			RetryAfter: parseRetryAfter(message),
			Message:    message,
		}
	}

	return fmt.Errorf("API returned status %d: %s", statusCode, message)
}
