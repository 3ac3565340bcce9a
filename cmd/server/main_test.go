package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ahmednasr/askme/internal/config"
	"github.com/ahmednasr/askme/internal/handler"
	"github.com/ahmednasr/askme/internal/persona"
	"github.com/ahmednasr/askme/internal/retry"
	"github.com/ahmednasr/askme/internal/service"
)

func testConfig() config.Config {
	return config.Config{
		Provider:        config.ProviderDummy,
		AllowedOrigins:  []string{"*"},
		ReadTimeoutSec:  5,
		WriteTimeoutSec: 5,
		LogLevel:        "info",
	}
}

func TestApp_AskEndToEnd(t *testing.T) {
	cfg := testConfig()
	svc := service.NewAnswerService(service.NewDummyLLM(), persona.New("I like tacos"), retry.DefaultPolicy, zap.NewNop())

	app := newApp(cfg, zap.NewNop())
	handler.RegisterRoutes(app, svc, handler.NewHealthHandler(cfg.Provider, cfg.ActiveModel()))

	req := httptest.NewRequest(http.MethodPost, "/api/ask", strings.NewReader(`{"question":"What's your favorite food?"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `"answer"`)
}

func TestApp_MethodNotAllowed(t *testing.T) {
	cfg := testConfig()
	svc := service.NewAnswerService(service.NewDummyLLM(), persona.New("bio"), retry.DefaultPolicy, zap.NewNop())

	app := newApp(cfg, zap.NewNop())
	handler.RegisterRoutes(app, svc, handler.NewHealthHandler(cfg.Provider, ""))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/ask", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"message":"Only POST requests allowed"}`, string(body))
}

func TestNewLogger(t *testing.T) {
	cfg := testConfig()
	l, err := newLogger(cfg)
	require.NoError(t, err)
	assert.NotNil(t, l)

	cfg.LogLevel = "loud"
	_, err = newLogger(cfg)
	assert.Error(t, err)
}
