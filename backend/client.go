// Package backend wraps outgoing calls to the Kyuna REST API. The bearer
// token is supplied by an injected TokenSource rather than read from ambient
// state, so a client is always scoped to one operator session.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// TokenSource supplies the bearer token for privileged calls. An empty token
// means the call goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// StaticToken is a TokenSource holding a fixed token.
type StaticToken string

func (s StaticToken) Token() string { return string(s) }

// NoToken is the TokenSource for unauthenticated clients (login, public
// catalog reads).
var NoToken = StaticToken("")

// APIError is any non-2xx response from the backend.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend: status %d: %s", e.Status, e.Body)
}

// Client is the base HTTP resource client all repositories share.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

// NewClient builds a client for the given API base URL. A nil httpClient
// falls back to a default with a 30s timeout; a nil tokens source means
// unauthenticated.
func NewClient(baseURL string, httpClient *http.Client, tokens TokenSource) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if tokens == nil {
		tokens = NoToken
	}
	return &Client{baseURL: baseURL, http: httpClient, tokens: tokens}
}

// WithTokens returns a copy of the client bound to another token source.
func (c *Client) WithTokens(tokens TokenSource) *Client {
	return &Client{baseURL: c.baseURL, http: c.http, tokens: tokens}
}

// BaseURL returns the configured API base URL.
func (c *Client) BaseURL() string { return c.baseURL }

func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader, out interface{}, auth bool) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if auth {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Body: string(raw)}
	}
	if out != nil && len(raw) > 0 {
		return json.Unmarshal(raw, out)
	}
	return nil
}

// GetJSON performs an authenticated GET and decodes the response into out.
func (c *Client) GetJSON(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, "", nil, out, true)
}

// GetJSONPublic performs an unauthenticated GET (public catalog reads).
func (c *Client) GetJSONPublic(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, "", nil, out, false)
}

// PostJSON performs an authenticated POST with a JSON body.
func (c *Client) PostJSON(ctx context.Context, path string, body, out interface{}) error {
	return c.doJSON(ctx, http.MethodPost, path, body, out, true)
}

// PostJSONPublic performs an unauthenticated POST (login).
func (c *Client) PostJSONPublic(ctx context.Context, path string, body, out interface{}) error {
	return c.doJSON(ctx, http.MethodPost, path, body, out, false)
}

// PutJSON performs an authenticated PUT with a JSON body.
func (c *Client) PutJSON(ctx context.Context, path string, body, out interface{}) error {
	return c.doJSON(ctx, http.MethodPut, path, body, out, true)
}

// Delete performs an authenticated DELETE.
func (c *Client) Delete(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodDelete, path, "", nil, out, true)
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out interface{}, auth bool) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
	}
	return c.do(ctx, method, path, "application/json", reader, out, auth)
}

// UploadMultipart posts file bytes as a multipart form under the given field
// name and decodes the response into out.
func (c *Client) UploadMultipart(ctx context.Context, path, field, filename string, data []byte, out interface{}) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(field, filename)
	if err != nil {
		return err
	}
	if _, err := part.Write(data); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, w.FormDataContentType(), &buf, out, true)
}
