package taskfn

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const maxResponseBytes = 16 << 20

// RequestError is a non-2xx answer from the TaskFn service.
type RequestError struct {
	StatusCode int
	Body       string
}

func (e *RequestError) Error() string {
	body := strings.TrimSpace(e.Body)
	if body == "" {
		body = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("taskfn: API status %d: %s", e.StatusCode, body)
}

func (c *Client) postJSON(ctx context.Context, endpoint string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("taskfn: marshal request: %w", err)
	}

	url := strings.TrimRight(c.baseURL, "/") + "/" + endpoint
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("taskfn: build request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug().Str("endpoint", endpoint).Msg("dispatching request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("taskfn: request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("taskfn: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &RequestError{StatusCode: resp.StatusCode, Body: string(data)}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("taskfn: decode response: %w", err)
	}

	return nil
}
