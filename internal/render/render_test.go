package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTML_RendersAndSanitises(t *testing.T) {
	h := NewHTML()

	out, err := h.Convert("**Tacos** 🌮, obviously!")
	require.NoError(t, err)
	assert.Equal(t, "<p><strong>Tacos</strong> 🌮, obviously!</p>", out)

	out, err = h.Convert("hi <script>alert(1)</script> [x](javascript:alert(1))")
	require.NoError(t, err)
	assert.NotContains(t, out, "<script")
	assert.NotContains(t, out, "javascript:")
}

func TestTerminal_KeepsText(t *testing.T) {
	term, err := NewTerminal(40, "notty")
	require.NoError(t, err)

	out, err := term.Convert("# Hello\n\nI like **tacos**.")
	require.NoError(t, err)
	assert.Contains(t, out, "Hello")
	assert.Contains(t, out, "tacos")
	assert.NotRegexp(t, `^\n|\n$`, out)
}

func TestPlain(t *testing.T) {
	out, err := Plain{}.Convert("*as is*")
	require.NoError(t, err)
	assert.Equal(t, "*as is*", out)
}

func TestNew(t *testing.T) {
	for _, f := range []string{"", "terminal", "HTML", "plain"} {
		c, err := New(f, 60)
		require.NoError(t, err, f)
		assert.NotNil(t, c)
	}
	_, err := New("pdf", 60)
	assert.Error(t, err)
}
