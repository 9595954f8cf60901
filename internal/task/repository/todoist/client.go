package todoist

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"darkwave-task-manager/internal/task/repository"
)

const (
	// DefaultBaseURL is the Todoist REST API v2 endpoint.
	DefaultBaseURL = "https://api.todoist.com/rest/v2"

	defaultTimeout = 10 * time.Second

	// maxRetries transient failures (429/5xx) are retried with
	// exponential backoff: 1s, 2s, 4s.
	maxRetries     = 3
	retryBaseDelay = time.Second
)

// Client is the HTTP wrapper for the Todoist REST API v2.
// https://developer.todoist.com/rest/v2/
type Client struct {
	baseURL    string
	apiToken   string
	httpClient *http.Client
	retryDelay time.Duration
}

// NewClient creates a new Todoist HTTP client. An empty baseURL selects
// the public API endpoint.
func NewClient(baseURL, apiToken string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		apiToken:   apiToken,
		httpClient: &http.Client{Timeout: defaultTimeout},
		retryDelay: retryBaseDelay,
	}
}

// doJSON performs one API call with retry on transient status codes and
// decodes the response body into out (when out is non-nil).
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, reqBody, out interface{}) error {
	var bodyBytes []byte
	if reqBody != nil {
		var err error
		bodyBytes, err = json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("failed to marshal todoist request: %w", err)
		}
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var lastStatus int
	var lastBody []byte

	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			delay := c.retryDelay << (attempt - 1)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return classifyTransportError(ctx.Err())
			}
		}

		var reader io.Reader
		if bodyBytes != nil {
			reader = bytes.NewReader(bodyBytes)
		}

		httpReq, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
		if err != nil {
			return fmt.Errorf("failed to build todoist request: %w", err)
		}
		httpReq.Header.Set("Authorization", "Bearer "+c.apiToken)
		httpReq.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(httpReq)
		if err != nil {
			return classifyTransportError(err)
		}

		respBody, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return fmt.Errorf("%w: failed to read response", repository.ErrService)
		}

		lastStatus = resp.StatusCode
		lastBody = respBody

		if isRetryable(resp.StatusCode) {
			continue
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return classifyStatusError(resp.StatusCode, respBody)
		}

		if out != nil {
			if err := json.Unmarshal(respBody, out); err != nil {
				return fmt.Errorf("%w: failed to decode response: %v", repository.ErrService, err)
			}
		}
		return nil
	}

	// Retries exhausted on a transient status.
	return classifyStatusError(lastStatus, lastBody)
}

func isRetryable(status int) bool {
	switch status {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

// classifyStatusError maps an HTTP status to a repository sentinel error.
func classifyStatusError(status int, body []byte) error {
	switch status {
	case http.StatusBadRequest:
		detail := "unknown validation error"
		var errResp struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
			detail = errResp.Error
		}
		return fmt.Errorf("%w: %s", repository.ErrValidation, detail)

	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: status %d", repository.ErrAuthentication, status)

	case http.StatusNotFound:
		return repository.ErrNotFound

	case http.StatusTooManyRequests:
		return repository.ErrRateLimit

	default:
		return fmt.Errorf("%w: status %d: %s", repository.ErrService, status, string(body))
	}
}

// classifyTransportError maps network-level failures to sentinel errors.
func classifyTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", repository.ErrTimeout, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", repository.ErrTimeout, err)
	}

	if errors.Is(err, context.Canceled) {
		return err
	}

	return fmt.Errorf("%w: %v", repository.ErrConnection, err)
}
