// Package chat is the interactive front end of askme: a bubbletea model that
// collects a question, sends it to the answer service and reveals the reply.
package chat

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/ahmednasr/askme/internal/render"
	"github.com/ahmednasr/askme/internal/reveal"
)

const (
	title      = "Ask me anything"
	thinking   = "Thinking..."
	errGeneric = "Something went wrong. Please try again."
)

// Asker sends one question to the answer service.
type Asker interface {
	Ask(ctx context.Context, question string) (string, error)
}

// ConverterFunc builds the display converter for a terminal width.
type ConverterFunc func(width int) (render.Converter, error)

// Options configures New.
type Options struct {
	Asker     Asker
	Converter ConverterFunc // nil shows answers as plain text
	Logger    *zap.Logger
}

type answerMsg struct{ answer string }

type answerErrMsg struct{ err error }

// Model is the root bubbletea model of the chat screen.
type Model struct {
	asker      Asker
	newConvert ConverterFunc
	converter  render.Converter
	log        *zap.Logger

	ctx    context.Context
	cancel context.CancelFunc

	keys    keyMap
	styles  styles
	focus   focusPolicy
	input   textarea.Model
	spinner spinner.Model
	reveal  reveal.Model

	state  RequestState
	answer string
	errMsg string
	width  int
}

// New builds the chat model. The returned model owns a context that is
// canceled when the user quits, aborting any request in flight.
func New(opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(context.Background())

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		asker:      opts.Asker,
		newConvert: opts.Converter,
		converter:  render.Plain{},
		log:        log,
		ctx:        ctx,
		cancel:     cancel,
		keys:       defaultKeyMap(),
		styles:     defaultStyles(),
		focus:      focusPolicy{attached: true},
		input:      newInput(),
		spinner:    sp,
		reveal:     reveal.New(),
	}
	m.setConverter(80)
	return m
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// State is the current request state.
func (m Model) State() RequestState { return m.state }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.SetWidth(inputWidth(msg.Width))
		fitInput(&m.input)
		m.setConverter(msg.Width - 6)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case answerMsg:
		return m.handleAnswer(msg)

	case answerErrMsg:
		return m.handleFailure(msg)

	case spinner.TickMsg:
		if m.state != Sending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case reveal.TickMsg:
		var cmd tea.Cmd
		m.reveal, cmd = m.reveal.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.teardown(), tea.Quit
	case key.Matches(msg, m.keys.Send):
		return m.submit()
	case key.Matches(msg, m.keys.Blur) && m.input.Focused():
		m.input.Blur()
		return m, nil
	}

	var cmds []tea.Cmd
	if cmd := m.focus.redirect(&m.input); cmd != nil {
		cmds = append(cmds, cmd)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	fitInput(&m.input)
	return m, tea.Batch(cmds...)
}

// submit sends the current question. Blank input and a request already in
// flight are ignored.
func (m Model) submit() (tea.Model, tea.Cmd) {
	question := strings.TrimSpace(m.input.Value())
	if question == "" || m.state == Sending {
		return m, nil
	}

	m.errMsg = ""
	m.reveal = m.reveal.Stop()
	m.input.Reset()
	fitInput(&m.input)
	m.state = Sending

	return m, tea.Batch(m.ask(question), m.spinner.Tick)
}

func (m Model) ask(question string) tea.Cmd {
	ctx, asker := m.ctx, m.asker
	return func() tea.Msg {
		answer, err := asker.Ask(ctx, question)
		if err != nil {
			return answerErrMsg{err: err}
		}
		return answerMsg{answer: answer}
	}
}

func (m Model) handleAnswer(msg answerMsg) (tea.Model, tea.Cmd) {
	display, err := m.converter.Convert(msg.answer)
	if err != nil {
		m.log.Warn("convert answer", zap.Error(err))
		display = msg.answer
	}
	m.answer = display
	m.state = Success

	var cmd tea.Cmd
	m.reveal, cmd = m.reveal.Start(display)
	return m, cmd
}

func (m Model) handleFailure(msg answerErrMsg) (tea.Model, tea.Cmd) {
	m.log.Error("ask failed", zap.Error(msg.err))
	m.reveal = m.reveal.Clear()
	m.answer = ""
	m.errMsg = errGeneric
	m.state = Failed
	return m, nil
}

// teardown stops the reveal, aborts the request in flight and releases the
// input's focus policy.
func (m Model) teardown() Model {
	m.reveal = m.reveal.Stop()
	m.cancel()
	m.focus.attached = false
	return m
}

func (m *Model) setConverter(width int) {
	if m.newConvert == nil {
		return
	}
	c, err := m.newConvert(width)
	if err != nil {
		m.log.Warn("build converter", zap.Int("width", width), zap.Error(err))
		return
	}
	m.converter = c
}

func inputWidth(termWidth int) int {
	w := termWidth - 4
	if w < 20 {
		w = 20
	}
	return w
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render(title))
	b.WriteString("\n")
	b.WriteString(m.styles.Input.Render(m.input.View()))
	b.WriteString("\n")
	b.WriteString(m.hint())

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render(m.errMsg))
	}

	switch {
	case m.state == Sending:
		b.WriteString("\n")
		b.WriteString(m.styles.Answer.Render(
			lipgloss.JoinHorizontal(lipgloss.Top, m.spinner.View(), " ", m.styles.Thinking.Render(thinking)),
		))
	case m.answer != "":
		b.WriteString("\n")
		b.WriteString(m.styles.Answer.Render(m.reveal.View()))
	}

	b.WriteString("\n")
	return b.String()
}

func (m Model) hint() string {
	send := m.keys.Send.Help()
	first := send.Key + " " + send.Desc
	if m.state == Sending {
		first = send.Key + " disabled"
	}
	return m.styles.Hint.Render(strings.Join([]string{first, "enter newline", "ctrl+c quit"}, " • "))
}
