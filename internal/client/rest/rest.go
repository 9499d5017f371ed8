// Package rest is the shared HTTP plumbing for the external service clients.
// It keeps upstream failures distinguishable: JSON error bodies surface their
// message and status, non-JSON (HTML) bodies are flagged so callers can map
// them to an upstream-unavailable class.
package rest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"runes-gateway/internal/pkg/errs"
)

// ErrNotConfigured marks calls attempted without the required API credential.
var ErrNotConfigured = errs.New("external service is not configured")

// APIError is a non-2xx upstream response.
type APIError struct {
	Status  int
	Message string
	Body    string
	NonJSON bool
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream status %d: %s", e.Status, e.Message)
}

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func New(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// Do performs a JSON round trip. Headers are applied after the default
// Authorization bearer, so callers can override or extend them.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, headers map[string]string, body any) (json.RawMessage, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, errs.Wrap(err, "failed to encode request body")
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build request")
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.Wrap(err, "failed to read response body")
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, newAPIError(resp.StatusCode, raw)
	}

	if !json.Valid(raw) {
		return nil, &APIError{
			Status:  resp.StatusCode,
			Message: "upstream returned a non-JSON response",
			Body:    truncate(string(raw), 512),
			NonJSON: true,
		}
	}

	return json.RawMessage(raw), nil
}

func newAPIError(status int, raw []byte) *APIError {
	apiErr := &APIError{Status: status, Body: truncate(string(raw), 512)}

	var parsed struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		apiErr.Message = http.StatusText(status)
		apiErr.NonJSON = looksLikeHTML(raw)
		return apiErr
	}

	switch {
	case parsed.Error != "":
		apiErr.Message = parsed.Error
	case parsed.Message != "":
		apiErr.Message = parsed.Message
	default:
		apiErr.Message = http.StatusText(status)
	}

	return apiErr
}

func looksLikeHTML(raw []byte) bool {
	trimmed := strings.TrimSpace(string(raw))
	return strings.HasPrefix(trimmed, "<")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
