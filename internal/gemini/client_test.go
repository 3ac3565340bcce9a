package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateContent_RequestShape(t *testing.T) {
	var got GenerateContentRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/models/gemini-2.0-flash:generateContent", r.URL.Path)
		assert.Equal(t, "k3y", r.URL.Query().Get("key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Tacos 🌮, obviously!"}]}}]}`))
	}))
	defer srv.Close()

	c := NewClient("k3y", "gemini-2.0-flash", WithBaseURL(srv.URL+"/"))
	resp, err := c.GenerateContent(context.Background(), "the prompt")
	require.NoError(t, err)

	require.Len(t, got.Contents, 1)
	require.Len(t, got.Contents[0].Parts, 1)
	assert.Equal(t, "the prompt", got.Contents[0].Parts[0].Text)

	text, reason := resp.Text()
	assert.Empty(t, reason)
	assert.Equal(t, "Tacos 🌮, obviously!", text)
}

func TestGenerateContent_NonSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":{"message":"overloaded"}}`))
	}))
	defer srv.Close()

	c := NewClient("k", "m", WithBaseURL(srv.URL))
	_, err := c.GenerateContent(context.Background(), "p")

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusServiceUnavailable, se.Code)
	assert.Contains(t, se.Body, "overloaded")
}

func TestGenerateContent_MalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates": [`))
	}))
	defer srv.Close()

	c := NewClient("k", "m", WithBaseURL(srv.URL))
	_, err := c.GenerateContent(context.Background(), "p")
	assert.ErrorContains(t, err, "decode response")
}

func TestGenerateContent_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient("k", "m", WithBaseURL("http://127.0.0.1:1"))
	_, err := c.GenerateContent(ctx, "p")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResponseText(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		text   string
		reason string
	}{
		{"ok", `{"candidates":[{"content":{"parts":[{"text":"hi"},{"text":"ignored"}]}}]}`, "hi", ""},
		{"missing candidates", `{}`, "", "no candidates"},
		{"empty candidates", `{"candidates":[]}`, "", "no candidates"},
		{"blocked prompt", `{"promptFeedback":{"blockReason":"SAFETY"}}`, "", "prompt blocked: SAFETY"},
		{"safety stop", `{"candidates":[{"finishReason":"SAFETY"}]}`, "", "no content, finish reason SAFETY"},
		{"no parts", `{"candidates":[{"content":{"parts":[]}}]}`, "", "candidate has no parts"},
		{"inline data part", `{"candidates":[{"content":{"parts":[{"inlineData":{"mimeType":"image/png","data":"AA=="}}]}}]}`, "", "first part has no text"},
		{"empty text", `{"candidates":[{"content":{"parts":[{"text":""}]}}]}`, "", "first part has no text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp GenerateContentResponse
			require.NoError(t, json.Unmarshal([]byte(tt.body), &resp))
			text, reason := resp.Text()
			assert.Equal(t, tt.text, text)
			assert.Equal(t, tt.reason, reason)
		})
	}

	var nilResp *GenerateContentResponse
	_, reason := nilResp.Text()
	assert.Equal(t, "empty response", reason)
}
