package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGroqClient(t *testing.T, handler http.HandlerFunc) *GroqClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	config := DefaultGroqConfig()
	config.BaseURL = server.URL
	client, err := NewGroqClient(config, "test-key")
	require.NoError(t, err)
	return client
}

func TestGroqClient_GenerateContent(t *testing.T) {
	client := newTestGroqClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "llama-3.3-70b-versatile", req.Model)
		assert.InDelta(t, 0.3, req.Temperature, 0.001)
		require.Len(t, req.Messages, 1)
		assert.Equal(t, "user", req.Messages[0].Role)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"  A concise summary.  "}}]}`))
	})

	got, err := client.GenerateContent(context.Background(), "Summarize this role")
	require.NoError(t, err)
	assert.Equal(t, "A concise summary.", got)
}

func TestGroqClient_RequiresAPIKey(t *testing.T) {
	_, err := NewGroqClient(DefaultGroqConfig(), "")
	assert.Error(t, err)
}

func TestGroqClient_RateLimitWithRetryHint(t *testing.T) {
	client := newTestGroqClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"Rate limit reached. Please try again in 12m3.5s.","type":"rate_limit_exceeded"}}`))
	})

	_, err := client.GenerateContent(context.Background(), "prompt")
	require.Error(t, err)

	var rlErr *RateLimitError
	require.ErrorAs(t, err, &rlErr)
	assert.Equal(t, ProviderGroq, rlErr.Provider)
	assert.Equal(t, 12*time.Minute+3500*time.Millisecond, rlErr.RetryAfter)
}

func TestGroqClient_RateLimitWithoutHint(t *testing.T) {
	client := newTestGroqClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"Too many requests"}}`))
	})

	_, err := client.GenerateContent(context.Background(), "prompt")
	var rlErr *RateLimitError
	require.ErrorAs(t, err, &rlErr)
	assert.Zero(t, rlErr.RetryAfter)
}

func TestGroqClient_ServerError(t *testing.T) {
	client := newTestGroqClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"backend exploded"}}`))
	})

	_, err := client.GenerateContent(context.Background(), "prompt")
	require.Error(t, err)

	var rlErr *RateLimitError
	assert.False(t, errors.As(err, &rlErr))
	assert.Contains(t, err.Error(), "backend exploded")
}

func TestGroqClient_EmptyChoices(t *testing.T) {
	client := newTestGroqClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	})

	_, err := client.GenerateContent(context.Background(), "prompt")
	assert.Error(t, err)
}
