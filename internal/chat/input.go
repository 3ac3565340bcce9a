package chat

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	minInputHeight = 1
	maxInputHeight = 8
)

// fitHeight is the number of rows value occupies when wrapped at width,
// clamped to [minH, maxH]. It depends on nothing else, so applying it twice
// to the same text changes nothing.
func fitHeight(value string, width, minH, maxH int) int {
	rows := 0
	for _, line := range strings.Split(value, "\n") {
		w := lipgloss.Width(line)
		if width <= 0 || w <= width {
			rows++
			continue
		}
		rows += (w + width - 1) / width
	}
	if rows < minH {
		rows = minH
	}
	if rows > maxH {
		rows = maxH
	}
	return rows
}

// fitInput grows or shrinks the textarea to its content.
func fitInput(ta *textarea.Model) {
	h := fitHeight(ta.Value(), ta.Width(), minInputHeight, maxInputHeight)
	if h != ta.Height() {
		ta.SetHeight(h)
	}
}

// focusPolicy keeps typing directed at the input: while attached, a key that
// arrives with the input blurred focuses it before being delivered.
type focusPolicy struct {
	attached bool
}

func (p focusPolicy) redirect(ta *textarea.Model) tea.Cmd {
	if !p.attached || ta.Focused() {
		return nil
	}
	return ta.Focus()
}

func newInput() textarea.Model {
	ta := textarea.New()
	ta.Placeholder = "What would you like to ask me?"
	ta.Prompt = ""
	ta.ShowLineNumbers = false
	ta.CharLimit = 4096
	ta.MaxHeight = maxInputHeight
	ta.SetWidth(60)
	ta.SetHeight(minInputHeight)
	ta.Focus()
	return ta
}
