// Package ai wraps the external text-completion capability. The backend is
// opaque: a prompt goes in, text comes out, and every failure mode is
// classified into the pipeline's generation error taxonomy.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"medsite-generator/internal/common/config"
	"medsite-generator/internal/common/errors"
	"medsite-generator/internal/common/logger"
	"medsite-generator/internal/common/metrics"
)

// CompletionRequest carries one completion call.
type CompletionRequest struct {
	Prompt      string  `json:"prompt"`
	MaxTokens   int     `json:"max_tokens"`
	Temperature float64 `json:"temperature"`
}

// CompletionResponse is the backend's reply.
type CompletionResponse struct {
	Text string `json:"text"`
}

// CompletionClient is the interface pipeline stages depend on. Tests swap in
// fakes; production uses HTTPClient.
type CompletionClient interface {
	Complete(ctx context.Context, req CompletionRequest) (CompletionResponse, error)
}

// HTTPClient calls the completion backend over HTTP with bounded retries and
// exponential backoff. No lock is held across the network call.
type HTTPClient struct {
	config config.AIConfig
	client *http.Client
	logger logger.Logger
}

func NewHTTPClient(cfg config.AIConfig, log logger.Logger) *HTTPClient {
	return &HTTPClient{
		config: cfg,
		// No client-level timeout; a per-attempt context bounds each call.
		client: &http.Client{},
		logger: log.WithFields(map[string]interface{}{"component": "ai-client"}),
	}
}

func (c *HTTPClient) Complete(ctx context.Context, req CompletionRequest) (CompletionResponse, error) {
	if req.MaxTokens <= 0 {
		req.MaxTokens = c.config.MaxTokens
	}
	if req.Temperature <= 0 {
		req.Temperature = c.config.Temperature
	}

	body, err := json.Marshal(map[string]interface{}{
		"model":       c.config.Model,
		"prompt":      req.Prompt,
		"max_tokens":  req.MaxTokens,
		"temperature": req.Temperature,
	})
	if err != nil {
		return CompletionResponse{}, errors.NewAIUnavailableError(err)
	}

	var lastErr *errors.StandardError
	for attempt := 0; attempt <= c.config.MaxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(100*(1<<(attempt-1))) * time.Millisecond
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				metrics.CompletionCalls.WithLabelValues("timeout").Inc()
				return CompletionResponse{}, errors.NewAIUnavailableError(ctx.Err())
			}
			c.logger.Warn("retrying completion call", map[string]interface{}{
				"attempt": attempt,
				"backoff": backoff.String(),
			})
		}

		resp, stdErr := c.doOnce(ctx, body)
		if stdErr == nil {
			metrics.CompletionCalls.WithLabelValues("success").Inc()
			return resp, nil
		}
		lastErr = stdErr
		if !stdErr.Retryable {
			break
		}
		// A timed-out attempt is retryable; a cancelled caller is not.
		if ctx.Err() != nil {
			metrics.CompletionCalls.WithLabelValues("timeout").Inc()
			return CompletionResponse{}, errors.NewAIUnavailableError(ctx.Err())
		}
	}

	metrics.CompletionCalls.WithLabelValues(string(lastErr.Code)).Inc()
	return CompletionResponse{}, lastErr
}

func (c *HTTPClient) doOnce(ctx context.Context, body []byte) (CompletionResponse, *errors.StandardError) {
	// The configured timeout bounds each attempt, not the whole retry
	// loop, so a hung attempt still leaves room for the next one.
	if c.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(c.config.Timeout)*time.Millisecond)
		defer cancel()
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.config.BaseURL+"/v1/completions", bytes.NewReader(body))
	if err != nil {
		return CompletionResponse{}, errors.NewAIUnavailableError(err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.config.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	}

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return CompletionResponse{}, errors.NewAIUnavailableError(ctx.Err())
		}
		return CompletionResponse{}, errors.NewAIUnavailableError(err)
	}
	defer httpResp.Body.Close()

	switch {
	case httpResp.StatusCode == http.StatusOK:
		// Fall through to decode.
	case httpResp.StatusCode == http.StatusTooManyRequests:
		drained, _ := io.ReadAll(io.LimitReader(httpResp.Body, 512))
		return CompletionResponse{}, errors.NewAIRateLimitedError(string(drained))
	case httpResp.StatusCode >= 500:
		return CompletionResponse{}, errors.NewAIUnavailableError(
			fmt.Errorf("backend status %d", httpResp.StatusCode))
	default:
		return CompletionResponse{}, errors.NewMalformedOutputError(
			fmt.Errorf("unexpected backend status %d", httpResp.StatusCode))
	}

	var apiResponse struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(httpResp.Body).Decode(&apiResponse); err != nil {
		return CompletionResponse{}, errors.NewMalformedOutputError(err)
	}
	return CompletionResponse{Text: apiResponse.Text}, nil
}
