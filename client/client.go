// Package client talks to the environment-tracker REST backend. It
// owns the transport concerns the rest of the app should not see:
// timeouts, bearer auth, JSON envelopes and retry with exponential
// backoff on network errors.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/iroro1/et-mobile-new/models"
)

const (
	requestTimeout = 10 * time.Second

	// maxRetries is the number of additional attempts after the first
	// request fails with a network error. HTTP error statuses are never
	// retried.
	maxRetries = 3
)

// APIError is a server-reported failure (4xx/5xx with a message body).
// The message is passed through to the UI verbatim.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// Client is the REST client shared by every store. Always constructed
// with a timeout so a silent backend cannot hang the app forever.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenStore

	// sleep is swapped out in tests so backoff does not slow them down.
	sleep func(time.Duration)
}

// New creates a client for the given base URL (including the /api
// prefix, e.g. http://localhost:8000/api).
func New(baseURL string, tokens TokenStore) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		tokens: tokens,
		sleep:  time.Sleep,
	}
}

// do issues one logical request, retrying transport failures with
// exponential backoff (2^n seconds after the n-th failure). The caller
// owns the response body.
func (c *Client) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
	}

	token, err := c.tokens.Token()
	if err != nil {
		return nil, fmt.Errorf("reading auth token: %w", err)
	}

	retryCount := 0
	for {
		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			if retryCount < maxRetries {
				retryCount++
				c.sleep(time.Duration(1<<retryCount) * time.Second)
				continue
			}
			return nil, fmt.Errorf("request failed after %d attempts: %w", retryCount+1, err)
		}

		if resp.StatusCode >= http.StatusBadRequest {
			return nil, apiErrorFrom(resp)
		}
		return resp, nil
	}
}

// apiErrorFrom drains the response into an APIError, falling back to
// the HTTP status text when the body carries no envelope message.
func apiErrorFrom(resp *http.Response) *APIError {
	defer resp.Body.Close()

	var env models.ApiResponse[json.RawMessage]
	message := http.StatusText(resp.StatusCode)
	if err := json.NewDecoder(resp.Body).Decode(&env); err == nil && env.Message != "" {
		message = env.Message
	}
	return &APIError{Status: resp.StatusCode, Message: message}
}

// requestJSON performs a request and decodes the data field of the
// response envelope into T.
func requestJSON[T any](ctx context.Context, c *Client, method, path string, body any) (T, error) {
	var zero T

	resp, err := c.do(ctx, method, path, body)
	if err != nil {
		return zero, err
	}
	defer resp.Body.Close()

	var env models.ApiResponse[T]
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return zero, fmt.Errorf("decoding response: %w", err)
	}
	return env.Data, nil
}
