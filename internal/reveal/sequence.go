// Package reveal paces the display of an already complete answer, publishing
// a growing prefix one unit per tick.
package reveal

import "github.com/charmbracelet/x/ansi"

// State of a single reveal.
type State int

const (
	NotStarted State = iota
	Revealing
	Complete
	Canceled
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case Revealing:
		return "revealing"
	case Complete:
		return "complete"
	case Canceled:
		return "canceled"
	}
	return "unknown"
}

// Sequence is the state of one reveal: the source text, the end offset of
// every unit and a cursor. A unit is one grapheme (or control character)
// together with the escape sequences in front of it; escape sequences at the
// very end belong to the last unit, so the final prefix is the whole text.
type Sequence struct {
	text   string
	ends   []int
	cursor int
	state  State
}

// NewSequence splits text into units. Nothing is published until Begin.
func NewSequence(text string) Sequence {
	return Sequence{text: text, ends: unitEnds(text)}
}

func unitEnds(text string) []int {
	var (
		ends  []int
		state byte
	)
	for i := 0; i < len(text); {
		seq, _, n, newState := ansi.DecodeSequence(text[i:], state, nil)
		if n <= 0 {
			n = 1
		}
		state = newState
		i += n
		if !isEscape(seq) {
			ends = append(ends, i)
		}
	}
	if n := len(ends); n > 0 {
		ends[n-1] = len(text)
	}
	return ends
}

// isEscape reports whether seq is an ESC or C1 introduced sequence (CSI, OSC,
// DCS, APC, PM, SOS…) rather than something that takes a reveal step.
func isEscape(seq string) bool {
	if seq == "" {
		return true
	}
	c := seq[0]
	return c == ansi.ESC || (c >= 0x80 && c <= 0x9f)
}

// Len is the number of units, i.e. ticks needed to complete.
func (s *Sequence) Len() int { return len(s.ends) }

// State reports where the sequence is in its lifecycle.
func (s *Sequence) State() State { return s.state }

// Cursor is the number of units revealed so far.
func (s *Sequence) Cursor() int { return s.cursor }

// Prefix is the currently displayed text.
func (s *Sequence) Prefix() string {
	if s.cursor == 0 {
		return ""
	}
	return s.text[:s.ends[s.cursor-1]]
}

// Begin starts revealing from the empty prefix. An empty sequence completes
// at once.
func (s *Sequence) Begin() {
	if s.state != NotStarted {
		return
	}
	s.cursor = 0
	if len(s.ends) == 0 {
		s.state = Complete
		return
	}
	s.state = Revealing
}

// Advance reveals one more unit. It reports false once the sequence is no
// longer revealing, including when this call completed it.
func (s *Sequence) Advance() (string, bool) {
	if s.state != Revealing {
		return s.Prefix(), false
	}
	s.cursor++
	if s.cursor >= len(s.ends) {
		s.cursor = len(s.ends)
		s.state = Complete
		return s.Prefix(), false
	}
	return s.Prefix(), true
}

// Cancel stops a sequence that has not finished. Terminal states are kept.
func (s *Sequence) Cancel() {
	if s.state == NotStarted || s.state == Revealing {
		s.state = Canceled
	}
}
