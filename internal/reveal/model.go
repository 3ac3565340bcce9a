package reveal

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultInterval is the pause between two revealed units.
const DefaultInterval = 20 * time.Millisecond

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// TickMsg advances the reveal it was scheduled for. Ticks of another Model
// or of a canceled reveal are ignored.
type TickMsg struct {
	ID   int
	Time time.Time
	tag  int
}

// Model is a bubbletea component revealing one answer at a time.
type Model struct {
	Interval time.Duration

	id  int
	tag int
	seq Sequence
}

// New returns an idle reveal model.
func New() Model {
	return Model{Interval: DefaultInterval, id: nextID()}
}

// ID identifies this model's ticks.
func (m Model) ID() int { return m.id }

// State of the current (or last) reveal.
func (m Model) State() State { return m.seq.State() }

// Len is the unit count of the current answer.
func (m Model) Len() int { return m.seq.Len() }

// Start cancels whatever is being revealed and begins revealing text from
// the empty prefix. Empty text schedules nothing.
func (m Model) Start(text string) (Model, tea.Cmd) {
	m = m.Stop()
	m.seq = NewSequence(text)
	m.seq.Begin()
	if m.seq.State() != Revealing {
		return m, nil
	}
	return m, m.tick()
}

// Stop is the only cancellation entry point: it cancels the running reveal
// and invalidates its pending tick. The displayed prefix is kept.
func (m Model) Stop() Model {
	m.seq.Cancel()
	m.tag++
	return m
}

// Clear stops the reveal and empties the display.
func (m Model) Clear() Model {
	m = m.Stop()
	m.seq = Sequence{}
	return m
}

// Update handles TickMsg.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	t, ok := msg.(TickMsg)
	if !ok || t.ID != m.id || t.tag != m.tag {
		return m, nil
	}
	if _, more := m.seq.Advance(); !more {
		return m, nil
	}
	return m, m.tick()
}

// View returns the revealed prefix.
func (m Model) View() string {
	return m.seq.Prefix()
}

func (m Model) tick() tea.Cmd {
	id, tag := m.id, m.tag
	interval := m.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t, tag: tag}
	})
}
