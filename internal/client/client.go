// Package client is the terminal app's link to the answer service.
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

	"github.com/ahmednasr/askme/internal/models"
)

// Client posts questions to {baseURL}/api/ask.
type Client struct {
	http    *http.Client
	baseURL string
}

// New returns a client with the given overall request timeout (0 = none).
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		http:    &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// StatusError is a non‑2xx reply from the service.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("askme: unexpected status %d", e.Code)
	}
	return fmt.Sprintf("askme: %d: %s", e.Code, e.Message)
}

// Ask sends one question and returns the raw answer text.
func (c *Client) Ask(ctx context.Context, question string) (string, error) {
	body, err := json.Marshal(models.AskRequest{Question: question})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/ask", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	var out models.AskResponse
	if err := c.do(req, &out); err != nil {
		return "", err
	}
	return out.Answer, nil
}

// do executes the HTTP request and decodes JSON into v.
func (c *Client) do(req *http.Request, v interface{}) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		se := &StatusError{Code: resp.StatusCode}
		var er models.ErrorResponse
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		if json.Unmarshal(raw, &er) == nil {
			se.Message = er.Message
		}
		return se
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("askme: decode response: %w", err)
	}
	return nil
}
