// Package render converts a raw (markdown‑flavoured) answer into its display
// form before it is revealed.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Converter turns an answer into display markup.
type Converter interface {
	Convert(answer string) (string, error)
}

// Format names accepted by New.
const (
	FormatTerminal = "terminal"
	FormatHTML     = "html"
	FormatPlain    = "plain"
)

// New returns the converter for format. width only affects the terminal
// converter.
func New(format string, width int) (Converter, error) {
	switch strings.ToLower(format) {
	case FormatTerminal, "":
		return NewTerminal(width, "auto")
	case FormatHTML:
		return NewHTML(), nil
	case FormatPlain:
		return Plain{}, nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

// Terminal renders markdown to ANSI with glamour.
type Terminal struct {
	renderer *glamour.TermRenderer
}

// NewTerminal builds a glamour renderer wrapping at width. style is a glamour
// standard style name ("dark", "light", "notty", …) or "auto".
func NewTerminal(width int, style string) (*Terminal, error) {
	if width <= 0 {
		width = 80
	}
	styleOpt := glamour.WithAutoStyle()
	if style != "" && style != "auto" {
		styleOpt = glamour.WithStandardStyle(style)
	}

	r, err := glamour.NewTermRenderer(
		styleOpt,
		glamour.WithWordWrap(width),
		glamour.WithEmoji(),
	)
	if err != nil {
		return nil, fmt.Errorf("create markdown renderer: %w", err)
	}
	return &Terminal{renderer: r}, nil
}

// Convert renders answer; surrounding blank lines are trimmed.
func (t *Terminal) Convert(answer string) (string, error) {
	out, err := t.renderer.Render(answer)
	if err != nil {
		return "", err
	}
	return strings.Trim(out, "\n"), nil
}

// HTML renders markdown to HTML and sanitises it with the UGC policy.
type HTML struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// NewHTML returns a GFM goldmark pipeline followed by bluemonday.
func NewHTML() *HTML {
	return &HTML{
		md:     goldmark.New(goldmark.WithExtensions(extension.GFM)),
		policy: bluemonday.UGCPolicy(),
	}
}

// Convert renders answer to safe HTML.
func (h *HTML) Convert(answer string) (string, error) {
	var buf bytes.Buffer
	if err := h.md.Convert([]byte(answer), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return strings.TrimSpace(h.policy.Sanitize(buf.String())), nil
}

// Plain leaves the answer untouched.
type Plain struct{}

// Convert returns answer as is.
func (Plain) Convert(answer string) (string, error) { return answer, nil }
