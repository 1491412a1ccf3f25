package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client performs JSON requests against the pizzaria backend. It is shared by
// the per-entity remote stores the same way a database pool would be shared by
// repositories.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *log.Logger
}

// New builds a Client for the given base URL. A nil logger disables request
// logging.
func New(baseURL string, timeout time.Duration, logger *log.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// envelope is the response wrapper every mutating endpoint answers with.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// RemoteError carries a server-side rejection: the request reached the
// backend and was refused. The message is user-visible.
type RemoteError struct {
	Op      string
	Message string
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return e.Op + ": request rejected"
	}
	return e.Op + ": " + e.Message
}

// GetJSON issues a GET and decodes the raw response body into out. It is used
// by list endpoints whose contract is a bare JSON payload, not the envelope.
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	body, status, err := c.do(req)
	if err != nil {
		return err
	}
	if status >= http.StatusBadRequest {
		return statusError(http.MethodGet, path, status, body)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("GET %s: unexpected response shape: %w", path, err)
	}
	return nil
}

// Send issues a request whose response follows the success/message envelope.
// A transport failure is returned as-is; a success=false answer becomes a
// *RemoteError carrying the server message.
func (c *Client) Send(ctx context.Context, method, path string, query url.Values, payload interface{}) (json.RawMessage, error) {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("%s %s: encode payload: %w", method, path, err)
		}
		body = bytes.NewReader(raw)
	}
	req, err := c.newRequest(ctx, method, path, query, body)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	respBody, status, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		if status >= http.StatusBadRequest {
			return nil, statusError(method, path, status, respBody)
		}
		return nil, fmt.Errorf("%s %s: unexpected response shape: %w", method, path, err)
	}
	if !env.Success {
		return nil, &RemoteError{Op: method + " " + path, Message: env.Message}
	}
	return env.Data, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: build request: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (c *Client) do(req *http.Request) ([]byte, int, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("%s %s: read response: %w", req.Method, req.URL.Path, err)
	}
	if c.logger != nil {
		c.logger.Printf("%s %s -> %d", req.Method, req.URL.Path, resp.StatusCode)
	}
	return body, resp.StatusCode, nil
}

func statusError(method, path string, status int, body []byte) error {
	var env envelope
	if err := json.Unmarshal(body, &env); err == nil && env.Message != "" {
		return &RemoteError{Op: method + " " + path, Message: env.Message}
	}
	return fmt.Errorf("%s %s: unexpected status %d", method, path, status)
}
