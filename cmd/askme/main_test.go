package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRootCommandTree(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"chat", "ask", "version"} {
		assert.True(t, names[want], "missing subcommand %q", want)
	}
	for _, flag := range []string{"server", "timeout", "log-file"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(flag), "missing flag %q", flag)
	}
}

func TestVersion(t *testing.T) {
	var out bytes.Buffer
	versionCmd.SetOut(&out)
	versionCmd.Run(versionCmd, nil)
	assert.Equal(t, "askme dev\n", out.String())
}

func TestTypewrite(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, typewrite(context.Background(), &out, "Tacos 🌮!"))
	assert.Equal(t, "Tacos 🌮!", out.String())
}

func TestRunAsk(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"answer":"Tacos, obviously!"}`))
	}))
	defer srv.Close()

	logger = zap.NewNop()
	serverURL = srv.URL
	askFormat = "plain"
	askTypewriter = false
	t.Cleanup(func() { serverURL = "" })

	var out bytes.Buffer
	askCmd.SetOut(&out)
	askCmd.SetContext(context.Background())

	require.NoError(t, runAsk(askCmd, []string{"What's", "your", "favorite", "food?"}))
	assert.Equal(t, "Tacos, obviously!\n", out.String())
}

func TestRunAsk_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"message":"The model is unavailable right now. Please try again."}`))
	}))
	defer srv.Close()

	logger = zap.NewNop()
	serverURL = srv.URL
	askFormat = "plain"
	t.Cleanup(func() { serverURL = "" })

	err := runAsk(askCmd, []string{"hi"})
	assert.ErrorContains(t, err, "unavailable")
}

func TestNewLogger(t *testing.T) {
	l, err := newLogger("")
	require.NoError(t, err)
	assert.NotNil(t, l)

	path := t.TempDir() + "/askme.log"
	l, err = newLogger(path)
	require.NoError(t, err)
	l.Info("hello")
	require.NoError(t, l.Sync())
}
