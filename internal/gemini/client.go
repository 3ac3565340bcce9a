package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the public Generative Language API root.
const DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Client is a minimal wrapper around the generateContent REST endpoint.
type Client struct {
	http    *http.Client
	baseURL string
	model   string
	apiKey  string
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithBaseURL points the client at another API root (tests, proxies).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// NewClient returns a ready-to-use client for model, authenticated by apiKey.
// The transport has no timeout of its own: callers bound each attempt with
// their context.
func NewClient(apiKey, model string, opts ...Option) *Client {
	c := &Client{
		http:    &http.Client{},
		baseURL: DefaultBaseURL,
		model:   model,
		apiKey:  apiKey,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Model returns the model name requests are sent to.
func (c *Client) Model() string { return c.model }

// endpoint renders {base}/models/{model}:generateContent?key={key}.
func (c *Client) endpoint() string {
	q := url.Values{}
	q.Set("key", c.apiKey)
	return fmt.Sprintf("%s/models/%s:generateContent?%s", c.baseURL, url.PathEscape(c.model), q.Encode())
}

// GenerateContent sends prompt as the only content part and decodes the reply.
func (c *Client) GenerateContent(ctx context.Context, prompt string) (*GenerateContentResponse, error) {
	body, err := json.Marshal(NewTextRequest(prompt))
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	c.addHeaders(req)

	var out GenerateContentResponse
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// addHeaders sets content negotiation headers.
func (c *Client) addHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "askme-server")
}

// do executes the HTTP request and decodes JSON into v.
func (c *Client) do(req *http.Request, v interface{}) error {
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("gemini: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return &StatusError{Code: resp.StatusCode, Status: resp.Status, Body: string(raw), Elapsed: time.Since(start)}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("gemini: decode response: %w", err)
	}
	return nil
}
