// Package supabase talks to a hosted Supabase project: GoTrue for
// email/password auth and PostgREST for the brews table.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	hclog "github.com/hashicorp/go-hclog"
)

// Client is a thin Supabase REST client
type Client struct {
	baseURL string
	anonKey string
	http    *http.Client
	log     hclog.Logger
}

// New creates a client for the project at baseURL
func New(baseURL, anonKey string, httpClient *http.Client, log hclog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		anonKey: anonKey,
		http:    httpClient,
		log:     log,
	}
}

// Name identifies the backend
func (c *Client) Name() string {
	return "supabase"
}

// Close releases idle connections
func (c *Client) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// APIError is a non-2xx response from either service
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("supabase: %d %s: %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("supabase: %d: %s", e.Status, e.Message)
}

// errorBody covers the error shapes of GoTrue and PostgREST
type errorBody struct {
	Code             any    `json:"code"`
	ErrorCode        string `json:"error_code"`
	Message          string `json:"message"`
	Msg              string `json:"msg"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
	Details          string `json:"details"`
}

func parseAPIError(status int, raw []byte) *APIError {
	apiErr := &APIError{Status: status}

	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil {
		apiErr.Message = strings.TrimSpace(string(raw))
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(status)
		}
		return apiErr
	}

	switch code := body.Code.(type) {
	case string:
		apiErr.Code = code
	}
	if body.ErrorCode != "" {
		apiErr.Code = body.ErrorCode
	}

	for _, msg := range []string{body.Message, body.Msg, body.ErrorDescription, body.Error} {
		if msg != "" {
			apiErr.Message = msg
			break
		}
	}
	if body.Details != "" {
		apiErr.Message += " (" + body.Details + ")"
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(status)
	}
	return apiErr
}

// do sends a JSON request; out may be nil
func (c *Client) do(ctx context.Context, method, path, bearer string, headers map[string]string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("apikey", c.anonKey)
	if bearer == "" {
		bearer = c.anonKey
	}
	req.Header.Set("Authorization", "Bearer "+bearer)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := parseAPIError(resp.StatusCode, raw)
		c.log.Debug("supabase request failed", "method", method, "path", path, "status", resp.StatusCode, "code", apiErr.Code)
		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
