package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medsite-generator/internal/common/config"
	stderrors "medsite-generator/internal/common/errors"
	"medsite-generator/internal/common/logger"
)

func createTestClient(t *testing.T, baseURL string, maxRetries int) *HTTPClient {
	t.Helper()
	return NewHTTPClient(config.AIConfig{
		BaseURL:     baseURL,
		APIKey:      "test-key",
		Model:       "test-model",
		MaxTokens:   256,
		Temperature: 0.5,
		Timeout:     5000,
		MaxRetries:  maxRetries,
	}, logger.NewTestLogger(t))
}

func TestComplete_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "test-model", body["model"])
		assert.Equal(t, "hello", body["prompt"])

		json.NewEncoder(w).Encode(map[string]string{"text": "world"})
	}))
	defer server.Close()

	client := createTestClient(t, server.URL, 0)
	resp, err := client.Complete(context.Background(), CompletionRequest{Prompt: "hello"})

	require.NoError(t, err)
	assert.Equal(t, "world", resp.Text)
}

func TestComplete_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"text": "recovered"})
	}))
	defer server.Close()

	client := createTestClient(t, server.URL, 3)
	resp, err := client.Complete(context.Background(), CompletionRequest{Prompt: "hello"})

	require.NoError(t, err)
	assert.Equal(t, "recovered", resp.Text)
	assert.Equal(t, int32(3), calls.Load())
}

func TestComplete_RateLimitedAfterRetries(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte("slow down"))
	}))
	defer server.Close()

	client := createTestClient(t, server.URL, 2)
	_, err := client.Complete(context.Background(), CompletionRequest{Prompt: "hello"})

	require.Error(t, err)
	assert.Equal(t, stderrors.ErrCodeAIRateLimited, stderrors.CodeOf(err))
	assert.Equal(t, int32(3), calls.Load(), "initial attempt plus two retries")
}

func TestComplete_ClientErrorIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	client := createTestClient(t, server.URL, 3)
	_, err := client.Complete(context.Background(), CompletionRequest{Prompt: "hello"})

	require.Error(t, err)
	assert.Equal(t, stderrors.ErrCodeMalformedOutput, stderrors.CodeOf(err))
	assert.Equal(t, int32(1), calls.Load(), "non-retryable status must not be retried")
}

func TestComplete_HungAttemptIsRetried(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			// Well past the configured timeout; the second attempt
			// must still get its own full budget.
			time.Sleep(400 * time.Millisecond)
		}
		json.NewEncoder(w).Encode(map[string]string{"text": "ok"})
	}))
	defer server.Close()

	client := NewHTTPClient(config.AIConfig{
		BaseURL:    server.URL,
		Model:      "test-model",
		Timeout:    100,
		MaxRetries: 2,
	}, logger.NewTestLogger(t))

	resp, err := client.Complete(context.Background(), CompletionRequest{Prompt: "hello"})

	require.NoError(t, err, "timeout applies per attempt, not to the whole retry loop")
	assert.Equal(t, "ok", resp.Text)
	assert.Equal(t, int32(2), calls.Load())
}

func TestComplete_UnavailableAfterExhaustedRetries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := createTestClient(t, server.URL, 1)
	_, err := client.Complete(context.Background(), CompletionRequest{Prompt: "hello"})

	require.Error(t, err)
	assert.Equal(t, stderrors.ErrCodeAIUnavailable, stderrors.CodeOf(err))
}

func TestComplete_DefaultsFilledFromConfig(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.InDelta(t, 256, body["max_tokens"].(float64), 0.001)
		assert.InDelta(t, 0.5, body["temperature"].(float64), 0.001)
		json.NewEncoder(w).Encode(map[string]string{"text": "ok"})
	}))
	defer server.Close()

	client := createTestClient(t, server.URL, 0)
	_, err := client.Complete(context.Background(), CompletionRequest{Prompt: "hello"})
	require.NoError(t, err)
}

func TestComplete_MalformedResponseBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := createTestClient(t, server.URL, 0)
	_, err := client.Complete(context.Background(), CompletionRequest{Prompt: "hello"})

	require.Error(t, err)
	assert.Equal(t, stderrors.ErrCodeMalformedOutput, stderrors.CodeOf(err))
}
