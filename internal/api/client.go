package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/lamdoan/classdesk/internal/logger"
	"github.com/lamdoan/classdesk/internal/model"
)

// Internal adapter interface to enable mocking without a real server.
type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is the REST transport shared by all domain endpoint methods.
// It injects the bearer token and content-type headers, enforces a
// fixed per-request timeout and normalizes response bodies to JSON.
type Client struct {
	baseURL string
	timeout time.Duration
	http    httpDoer
	store   model.KeyValueStore
	logger  *logger.Logger

	mu    sync.RWMutex
	token string
}

// NewClient creates a transport client for the given base URL. The
// store receives the bearer token on SetToken so a later run can
// restore the session.
func NewClient(baseURL string, timeout time.Duration, store model.KeyValueStore, logger *logger.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		http:    &http.Client{},
		store:   store,
		logger:  logger,
	}
}

// SetToken replaces the bearer token and persists it; an empty token
// clears the persisted entry.
func (c *Client) SetToken(token string) error {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()

	if token == "" {
		if err := c.store.Remove(model.StorageKeyToken); err != nil && !errors.Is(err, model.ErrNotFound) {
			return fmt.Errorf("failed to clear token: %w", err)
		}
		return nil
	}

	if err := c.store.Set(model.StorageKeyToken, token); err != nil {
		return fmt.Errorf("failed to persist token: %w", err)
	}

	return nil
}

// Token returns the current bearer token, empty when unauthenticated.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Request issues an HTTP request against baseURL+endpoint and returns
// the response body as JSON bytes. Non-JSON bodies are wrapped as
// {"message": <text>}. Non-2xx responses return *HTTPError; timeouts
// return ErrTimeout.
func (c *Client) Request(ctx context.Context, method, endpoint string, body any) ([]byte, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.logger.Debug("API client: sending request", "method", method, "endpoint", endpoint)

	resp, err := c.http.Do(req)
	if err != nil {
		if isTimeout(err) {
			c.logger.Error("API client: request timed out", "method", method, "endpoint", endpoint)
			return nil, fmt.Errorf("%s %s: %w", method, endpoint, ErrTimeout)
		}
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("%s %s: %w", method, endpoint, ErrTimeout)
		}
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if !isJSON(resp.Header.Get("Content-Type")) {
		wrapped, err := json.Marshal(map[string]string{"message": strings.TrimSpace(string(data))})
		if err != nil {
			return nil, fmt.Errorf("failed to wrap text response: %w", err)
		}
		data = wrapped
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, NewHTTPError(resp.StatusCode, serverMessage(data))
	}

	return data, nil
}

// Ping checks the backend health endpoint.
func (c *Client) Ping(ctx context.Context) error {
	if _, err := c.Request(ctx, http.MethodGet, "/health", nil); err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	return nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}

func isJSON(contentType string) bool {
	return strings.Contains(contentType, "application/json")
}

// serverMessage extracts the "message" field of an error body, empty
// when absent or unparsable.
func serverMessage(data []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return ""
	}
	return payload.Message
}
